package store

import (
	"testing"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
)

// commentTree builds:
//
//	c1
//	├── c1a
//	│   └── c1a1
//	└── c1b
//	c2
func commentTree() []api.Comment {
	return []api.Comment{
		{
			ID:      "c1",
			Content: "root one",
			Replies: []api.Comment{
				{
					ID:      "c1a",
					Content: "reply a",
					Replies: []api.Comment{
						{ID: "c1a1", Content: "deep reply"},
					},
				},
				{ID: "c1b", Content: "reply b"},
			},
		},
		{ID: "c2", Content: "root two"},
	}
}

// TestTransformCommentsAtDepth applies an edit three levels down and
// leaves the rest of the tree untouched
func TestTransformCommentsAtDepth(t *testing.T) {
	tree := commentTree()

	out, found := TransformComments(tree, "c1a1", func(c api.Comment) api.Comment {
		c.Content = "edited"
		return c
	})

	if !found {
		t.Fatal("c1a1 not found")
	}
	if got := out[0].Replies[0].Replies[0].Content; got != "edited" {
		t.Errorf("Content = %q, want edited", got)
	}
	if out[0].Replies[1].Content != "reply b" || out[1].Content != "root two" {
		t.Error("siblings were modified")
	}
	// Original input is untouched
	if tree[0].Replies[0].Replies[0].Content != "deep reply" {
		t.Error("input tree was mutated")
	}
}

// TestTransformCommentsMissingID reports no match
func TestTransformCommentsMissingID(t *testing.T) {
	_, found := TransformComments(commentTree(), "ghost", func(c api.Comment) api.Comment {
		return c
	})
	if found {
		t.Error("expected no match for unknown id")
	}
}

// TestRemoveCommentDropsSubtree removes a mid-level comment and its
// nested replies
func TestRemoveCommentDropsSubtree(t *testing.T) {
	out, found := RemoveComment(commentTree(), "c1a")

	if !found {
		t.Fatal("c1a not found")
	}
	if len(out[0].Replies) != 1 || out[0].Replies[0].ID != "c1b" {
		t.Errorf("expected only c1b left, got %+v", out[0].Replies)
	}
	if _, ok := FindComment(out, "c1a1"); ok {
		t.Error("nested reply survived subtree removal")
	}
}

// TestRemoveCommentRoot removes a top-level comment
func TestRemoveCommentRoot(t *testing.T) {
	out, found := RemoveComment(commentTree(), "c2")
	if !found {
		t.Fatal("c2 not found")
	}
	if len(out) != 1 || out[0].ID != "c1" {
		t.Errorf("expected only c1, got %d roots", len(out))
	}
}

// TestFindComment locates nodes at any depth
func TestFindComment(t *testing.T) {
	tree := commentTree()

	for _, id := range []string{"c1", "c1a", "c1a1", "c1b", "c2"} {
		if _, ok := FindComment(tree, id); !ok {
			t.Errorf("FindComment(%s) missed", id)
		}
	}
	if _, ok := FindComment(tree, "ghost"); ok {
		t.Error("found a comment that does not exist")
	}
}

// TestInsertReply appends under a nested parent
func TestInsertReply(t *testing.T) {
	out, found := InsertReply(commentTree(), "c1a1", api.Comment{ID: "new", Content: "fresh"})

	if !found {
		t.Fatal("parent not found")
	}
	parent, _ := FindComment(out, "c1a1")
	if len(parent.Replies) != 1 || parent.Replies[0].ID != "new" {
		t.Errorf("reply not inserted, got %+v", parent.Replies)
	}
}

// TestToggleCommentLike adds then removes the user id
func TestToggleCommentLike(t *testing.T) {
	tree := commentTree()

	out, found := ToggleCommentLike(tree, "c1b", "u1")
	if !found {
		t.Fatal("c1b not found")
	}
	liked, _ := FindComment(out, "c1b")
	if len(liked.Likes) != 1 || liked.Likes[0] != "u1" {
		t.Errorf("Likes = %v, want [u1]", liked.Likes)
	}

	out, _ = ToggleCommentLike(out, "c1b", "u1")
	unliked, _ := FindComment(out, "c1b")
	if len(unliked.Likes) != 0 {
		t.Errorf("Likes = %v, want empty", unliked.Likes)
	}
}

// TestCountComments counts replies at every depth
func TestCountComments(t *testing.T) {
	if got := CountComments(commentTree()); got != 5 {
		t.Errorf("CountComments = %d, want 5", got)
	}
	if got := CountComments(nil); got != 0 {
		t.Errorf("CountComments(nil) = %d, want 0", got)
	}
}
