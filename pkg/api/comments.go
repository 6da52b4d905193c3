package api

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// CreateComment creates a comment on a post; a non-empty ParentID makes it
// a nested reply
func CreateComment(req CreateCommentRequest) (*Comment, error) {
	logger.Debug("Creating comment", "post_id", req.PostID, "parent_id", req.ParentID)

	var response struct {
		Comment Comment `json:"comment"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post("/api/v1/comments")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagComment, TagPost)
	return &response.Comment, nil
}

// GetComments retrieves the comment tree of a post
func GetComments(postID string, page, limit int) (*CommentListResponse, error) {
	logger.Debug("Fetching comments", "post_id", postID, "page", page)

	var response CommentListResponse
	resp, err := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/posts/%s/comments", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetMyComments retrieves the logged-in user's comments
func GetMyComments(page, limit int) (*CommentListResponse, error) {
	logger.Debug("Fetching my comments", "page", page)

	var response CommentListResponse
	resp, err := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&response).
		Get("/api/v1/comments/my-comments")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// UpdateComment edits a comment's content
func UpdateComment(commentID string, req UpdateCommentRequest) (*Comment, error) {
	logger.Debug("Updating comment", "comment_id", commentID)

	var response struct {
		Comment Comment `json:"comment"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Patch(fmt.Sprintf("/api/v1/comments/%s", commentID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagComment, TagPost)
	return &response.Comment, nil
}

// DeleteComment deletes a comment and its replies
func DeleteComment(commentID string) error {
	logger.Debug("Deleting comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/comments/%s", commentID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagComment, TagPost)
	return nil
}

// ToggleLikeComment likes or unlikes a comment
func ToggleLikeComment(commentID string) (*Comment, error) {
	logger.Debug("Toggling comment like", "comment_id", commentID)

	var response struct {
		Comment Comment `json:"comment"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Post(fmt.Sprintf("/api/v1/comments/%s/like", commentID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagComment)
	return &response.Comment, nil
}
