package service

import (
	"fmt"
	"strings"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/formatter"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
	"github.com/sparktechagency/phoenixx-cli/pkg/output"
	"github.com/sparktechagency/phoenixx-cli/pkg/prompter"
	"github.com/sparktechagency/phoenixx-cli/pkg/store"
)

type CommentService struct{}

// NewCommentService creates a new comment service
func NewCommentService() *CommentService {
	return &CommentService{}
}

// List prints the comment tree for a post
func (s *CommentService) List(postID string, page, limit int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	resp, err := api.GetComments(postID, page, limit)
	if err != nil {
		formatter.PrintError("Failed to load comments: %v", err)
		return err
	}

	if len(resp.Comments) == 0 {
		formatter.PrintInfo("No comments yet")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("comments", resp.Comments)
	}

	total := store.CountComments(resp.Comments)
	fmt.Printf("\n%d comments\n\n", total)
	printCommentTree(resp.Comments, 0)
	return nil
}

// Add creates a comment, or a reply when parentID is set
func (s *CommentService) Add(postID, content, parentID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	var err error
	if content == "" {
		content, err = prompter.PromptString("Comment: ")
		if err != nil {
			return err
		}
	}
	if content == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	comment, err := api.CreateComment(api.CreateCommentRequest{
		PostID:   postID,
		Content:  content,
		ParentID: parentID,
	})
	if err != nil {
		formatter.PrintError("Failed to post comment: %v", err)
		return err
	}

	if parentID != "" {
		formatter.PrintSuccess("Reply posted (%s)", comment.ID)
	} else {
		formatter.PrintSuccess("Comment posted (%s)", comment.ID)
	}
	showThread(postID, func(tree []api.Comment) []api.Comment {
		return foldNewReply(tree, parentID, *comment)
	})
	return nil
}

// Mine lists the logged-in user's comments
func (s *CommentService) Mine(page, limit int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	resp, err := api.GetMyComments(page, limit)
	if err != nil {
		formatter.PrintError("Failed to load your comments: %v", err)
		return err
	}

	if len(resp.Comments) == 0 {
		formatter.PrintInfo("You haven't commented yet")
		return nil
	}

	headers := []string{"ID", "POST", "CONTENT", "LIKES", "CREATED"}
	rows := make([][]string, 0, len(resp.Comments))
	for _, c := range resp.Comments {
		content := c.Content
		if len(content) > 40 {
			content = content[:37] + "..."
		}
		rows = append(rows, []string{
			c.ID, c.PostID, content,
			fmt.Sprintf("%d", len(c.Likes)),
			c.CreatedAt.Format("2006-01-02"),
		})
	}
	formatter.PrintTable(headers, rows)
	return nil
}

// Edit updates a comment's content. When postID is set the post's
// thread is reprinted with the edit applied.
func (s *CommentService) Edit(commentID, content, postID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	var err error
	if content == "" {
		content, err = prompter.PromptString("New content: ")
		if err != nil {
			return err
		}
	}
	if content == "" {
		return fmt.Errorf("content cannot be empty")
	}

	updated, err := api.UpdateComment(commentID, api.UpdateCommentRequest{Content: content})
	if err != nil {
		formatter.PrintError("Failed to update comment: %v", err)
		return err
	}

	formatter.PrintSuccess("Comment updated")
	showThread(postID, func(tree []api.Comment) []api.Comment {
		return foldEditedComment(tree, *updated)
	})
	return nil
}

// Delete removes a comment
func (s *CommentService) Delete(commentID string, force bool, postID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Delete this comment?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeleteComment(commentID); err != nil {
		formatter.PrintError("Failed to delete comment: %v", err)
		return err
	}

	formatter.PrintSuccess("Comment deleted")
	showThread(postID, func(tree []api.Comment) []api.Comment {
		return foldDeletedComment(tree, commentID)
	})
	return nil
}

// Like toggles the like on a comment. When postID is set the post's
// thread is reprinted with the toggle applied.
func (s *CommentService) Like(commentID, postID string) error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	comment, err := api.ToggleLikeComment(commentID)
	if err != nil {
		formatter.PrintError("Failed to toggle like: %v", err)
		return err
	}

	liked := false
	for _, id := range comment.Likes {
		if id == creds.UserID {
			liked = true
			break
		}
	}
	if liked {
		formatter.PrintSuccess("Liked comment (%d likes)", len(comment.Likes))
	} else {
		formatter.PrintSuccess("Unliked comment (%d likes)", len(comment.Likes))
	}
	showThread(postID, func(tree []api.Comment) []api.Comment {
		return foldToggledLike(tree, *comment, creds.UserID)
	})
	return nil
}

// showThread reprints a post's comment thread after a mutation. The
// refetched tree can lag the write, so fold applies the known result
// before rendering. A no-op when postID is empty or JSON output is on.
func showThread(postID string, fold func([]api.Comment) []api.Comment) {
	if postID == "" || output.GetOutputFormat() == output.FormatJSON {
		return
	}
	resp, err := api.GetComments(postID, 1, 20)
	if err != nil {
		logger.Debug("Could not reload comments", "error", err)
		return
	}
	comments := fold(resp.Comments)
	fmt.Printf("\n%d comments\n\n", store.CountComments(comments))
	printCommentTree(comments, 0)
}

// foldEditedComment replaces the edited comment's content in the tree
func foldEditedComment(tree []api.Comment, updated api.Comment) []api.Comment {
	out, _ := store.TransformComments(tree, updated.ID, func(c api.Comment) api.Comment {
		c.Content = updated.Content
		return c
	})
	return out
}

// foldDeletedComment drops the comment and its replies from the tree
func foldDeletedComment(tree []api.Comment, commentID string) []api.Comment {
	out, _ := store.RemoveComment(tree, commentID)
	return out
}

// foldToggledLike reconciles the tree with the server's toggle result:
// it only re-toggles when the fetched tree does not show it yet.
func foldToggledLike(tree []api.Comment, updated api.Comment, userID string) []api.Comment {
	current, ok := store.FindComment(tree, updated.ID)
	if !ok || hasMember(current.Likes, userID) == hasMember(updated.Likes, userID) {
		return tree
	}
	out, _ := store.ToggleCommentLike(tree, updated.ID, userID)
	return out
}

// foldNewReply inserts the posted comment when the fetched tree does
// not include it yet. Top-level comments are appended.
func foldNewReply(tree []api.Comment, parentID string, reply api.Comment) []api.Comment {
	if _, ok := store.FindComment(tree, reply.ID); ok {
		return tree
	}
	if parentID == "" {
		return append(tree, reply)
	}
	out, _ := store.InsertReply(tree, parentID, reply)
	return out
}

func hasMember(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func printCommentTree(comments []api.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range comments {
		likes := ""
		if len(c.Likes) > 0 {
			likes = fmt.Sprintf(" [%d likes]", len(c.Likes))
		}
		fmt.Printf("%s@%s · %s%s\n", indent, c.Author.UserName, c.CreatedAt.Format("Jan 2 15:04"), likes)
		for _, line := range strings.Split(c.Content, "\n") {
			fmt.Printf("%s  %s\n", indent, line)
		}
		fmt.Printf("%s  (%s)\n", indent, c.ID)
		if len(c.Replies) > 0 {
			printCommentTree(c.Replies, depth+1)
		}
	}
}
