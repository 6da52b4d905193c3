package api

import "time"

// Auth types
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"oneTimeCode"`
}

type VerifyOTPResponse struct {
	// One-time token accepted by the reset-password endpoint.
	ResetToken string `json:"resetToken"`
}

type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

// Post types
type Post struct {
	ID          string    `json:"id"`
	Author      User      `json:"author"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Images      []string  `json:"images,omitempty"`
	Category    Category  `json:"category"`
	Subcategory Category  `json:"subcategory"`
	Likes       []string  `json:"likes"`
	Comments    []Comment `json:"comments,omitempty"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreatePostRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
}

type UpdatePostRequest struct {
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
}

// Comment types. Replies nest recursively with the same shape.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	Likes     []string  `json:"likes"`
	Replies   []Comment `json:"replies,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateCommentRequest struct {
	PostID   string `json:"postId"`
	Content  string `json:"content"`
	ParentID string `json:"parentId,omitempty"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// Chat types
type Chat struct {
	ID           string    `json:"id"`
	Participants []User    `json:"participants"`
	LastMessage  *Message  `json:"lastMessage,omitempty"`
	UnreadCount  int       `json:"unreadCount"`
	MutedBy      []string  `json:"mutedBy,omitempty"`
	BlockedUsers []string  `json:"blockedUsers,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sender is the denormalized author reference carried on every message.
type Sender struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionLove  ReactionType = "love"
	ReactionHaha  ReactionType = "haha"
	ReactionSad   ReactionType = "sad"
	ReactionAngry ReactionType = "angry"
)

type Reaction struct {
	ID        string       `json:"id,omitempty"`
	UserID    string       `json:"userId"`
	Type      ReactionType `json:"reactionType"`
	Timestamp time.Time    `json:"timestamp"`
}

type Message struct {
	ID        string     `json:"id"`
	ChatID    string     `json:"chatId"`
	Sender    Sender     `json:"sender"`
	Text      string     `json:"text"`
	Images    []string   `json:"images,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`
	ReplyTo   string     `json:"replyTo,omitempty"`
	IsPinned  bool       `json:"isPinned"`
	PinnedBy  string     `json:"pinnedBy,omitempty"`
	PinnedAt  *time.Time `json:"pinnedAt,omitempty"`
	IsDeleted bool       `json:"isDeleted"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

type SendMessageRequest struct {
	ChatID  string   `json:"chatId"`
	Text    string   `json:"text"`
	Images  []string `json:"images,omitempty"`
	ReplyTo string   `json:"replyTo,omitempty"`
}

// Notification types
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationLike    NotificationType = "like"
	NotificationFollow  NotificationType = "follow"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationPost    NotificationType = "post"
	NotificationReply   NotificationType = "reply"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	PostID    string           `json:"postId,omitempty"`
	CommentID string           `json:"commentId,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Category types
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Subcategories []Category `json:"subcategories,omitempty"`
}

// FAQ types
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Feedback / report types
type FeedbackRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ReportRequest struct {
	PostID      string `json:"postId,omitempty"`
	CommentID   string `json:"commentId,omitempty"`
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

// Site content types
type Slide struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
}

// Meta is the pagination envelope shared by list responses
type Meta struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"totalPage"`
}

// List responses
type PostListResponse struct {
	Posts []Post `json:"posts"`
	Meta  Meta   `json:"meta"`
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
	Meta     Meta      `json:"meta"`
}

type ChatListResponse struct {
	Chats       []Chat `json:"chats"`
	UnreadCount int    `json:"unreadCount"`
	Meta        Meta   `json:"meta"`
}

type MessageListResponse struct {
	Messages       []Message `json:"messages"`
	PinnedMessages []Message `json:"pinnedMessages,omitempty"`
	Meta           Meta      `json:"meta"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
	Meta          Meta           `json:"meta"`
}

// Error response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
