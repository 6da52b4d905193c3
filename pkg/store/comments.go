package store

import (
	"github.com/sparktechagency/phoenixx-cli/pkg/api"
)

// The comment tree nests replies recursively to unbounded depth, and
// update, delete and like all need the same visit-and-replace-by-id walk.
// One generic transform serves every call site.

// TransformComments walks the tree and replaces the comment whose id
// matches with fn's result. Returns the new tree and whether a match was
// found. The input slice is not modified.
func TransformComments(comments []api.Comment, commentID string, fn func(api.Comment) api.Comment) ([]api.Comment, bool) {
	out := make([]api.Comment, len(comments))
	found := false
	for i, c := range comments {
		if c.ID == commentID {
			out[i] = fn(c)
			found = true
			continue
		}
		replies, ok := TransformComments(c.Replies, commentID, fn)
		if ok {
			c.Replies = replies
			found = true
		}
		out[i] = c
	}
	return out, found
}

// RemoveComment walks the tree and removes the comment whose id matches,
// along with its nested replies. Returns the new tree and whether a match
// was found.
func RemoveComment(comments []api.Comment, commentID string) ([]api.Comment, bool) {
	out := make([]api.Comment, 0, len(comments))
	found := false
	for _, c := range comments {
		if c.ID == commentID {
			found = true
			continue
		}
		if !found {
			if replies, ok := RemoveComment(c.Replies, commentID); ok {
				c.Replies = replies
				found = true
			}
		}
		out = append(out, c)
	}
	return out, found
}

// FindComment walks the tree and returns the comment whose id matches
func FindComment(comments []api.Comment, commentID string) (api.Comment, bool) {
	for _, c := range comments {
		if c.ID == commentID {
			return c, true
		}
		if match, ok := FindComment(c.Replies, commentID); ok {
			return match, true
		}
	}
	return api.Comment{}, false
}

// InsertReply appends a reply under the comment whose id matches. Returns
// the new tree and whether the parent was found.
func InsertReply(comments []api.Comment, parentID string, reply api.Comment) ([]api.Comment, bool) {
	return TransformComments(comments, parentID, func(c api.Comment) api.Comment {
		c.Replies = append(c.Replies, reply)
		return c
	})
}

// ToggleCommentLike toggles the user's id in the comment's like list.
// Returns the new tree and whether the comment was found.
func ToggleCommentLike(comments []api.Comment, commentID, userID string) ([]api.Comment, bool) {
	return TransformComments(comments, commentID, func(c api.Comment) api.Comment {
		c.Likes = toggleMember(append([]string(nil), c.Likes...), userID)
		return c
	})
}

// CountComments returns the number of comments in the tree, replies
// included
func CountComments(comments []api.Comment) int {
	count := 0
	for _, c := range comments {
		count += 1 + CountComments(c.Replies)
	}
	return count
}
