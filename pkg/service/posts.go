package service

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/formatter"
	"github.com/sparktechagency/phoenixx-cli/pkg/output"
	"github.com/sparktechagency/phoenixx-cli/pkg/prompter"
)

type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// Feed lists posts, optionally filtered by category/subcategory
func (s *PostService) Feed(category, subcategory string, page, limit int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	resp, err := api.GetPosts(category, subcategory, page, limit)
	if err != nil {
		formatter.PrintError("Failed to load feed: %v", err)
		return err
	}

	if len(resp.Posts) == 0 {
		formatter.PrintInfo("No posts found")
		return nil
	}

	printPostTable(resp.Posts)
	fmt.Printf("\nPage %d/%d (%d posts total)\n", resp.Meta.Page, resp.Meta.TotalPage, resp.Meta.Total)
	return nil
}

// Show prints a single post with its body
func (s *PostService) Show(postID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	post, err := api.GetPost(postID)
	if err != nil {
		formatter.PrintError("Failed to load post: %v", err)
		return err
	}

	fmt.Printf("\n%s\n", post.Title)
	fmt.Printf("by %s (@%s) in %s · %d likes · %d views · %s\n",
		post.Author.Name, post.Author.UserName, post.Category.Name,
		len(post.Likes), post.Views, post.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("\n%s\n", post.Content)
	return nil
}

// Mine lists the logged-in user's posts
func (s *PostService) Mine(page, limit int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	resp, err := api.GetMyPosts(page, limit)
	if err != nil {
		formatter.PrintError("Failed to load your posts: %v", err)
		return err
	}

	if len(resp.Posts) == 0 {
		formatter.PrintInfo("You haven't posted anything yet")
		return nil
	}

	printPostTable(resp.Posts)
	return nil
}

// Create publishes a new post. Title/content fall back to prompts when empty.
func (s *PostService) Create(title, content, category, subcategory string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	var err error
	if title == "" {
		title, err = prompter.PromptString("Title: ")
		if err != nil {
			return err
		}
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if content == "" {
		content, err = prompter.PromptMultilineString("Content (empty line to finish):", 50)
		if err != nil {
			return err
		}
	}
	if content == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if category == "" {
		categories, err := api.GetCategories()
		if err != nil {
			formatter.PrintError("Failed to load categories: %v", err)
			return err
		}
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = c.Name
		}
		idx, err := prompter.PromptSelect("Category", names)
		if err != nil {
			return err
		}
		category = categories[idx].ID
	}

	post, err := api.CreatePost(api.CreatePostRequest{
		Title:       title,
		Content:     content,
		Category:    category,
		Subcategory: subcategory,
	})
	if err != nil {
		formatter.PrintError("Failed to create post: %v", err)
		return err
	}

	formatter.PrintSuccess("Published '%s' (%s)", post.Title, post.ID)
	return nil
}

// Update edits an existing post
func (s *PostService) Update(postID, title, content string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if title == "" && content == "" {
		return fmt.Errorf("nothing to update; pass --title and/or --content")
	}

	post, err := api.UpdatePost(postID, api.UpdatePostRequest{
		Title:   title,
		Content: content,
	})
	if err != nil {
		formatter.PrintError("Failed to update post: %v", err)
		return err
	}

	formatter.PrintSuccess("Updated '%s'", post.Title)
	return nil
}

// Delete removes a post after confirmation
func (s *PostService) Delete(postID string, force bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Delete this post?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeletePost(postID); err != nil {
		formatter.PrintError("Failed to delete post: %v", err)
		return err
	}

	formatter.PrintSuccess("Post deleted")
	return nil
}

// Like toggles the like on a post
func (s *PostService) Like(postID string) error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	post, err := api.ToggleLikePost(postID)
	if err != nil {
		formatter.PrintError("Failed to toggle like: %v", err)
		return err
	}

	liked := false
	for _, id := range post.Likes {
		if id == creds.UserID {
			liked = true
			break
		}
	}
	if liked {
		formatter.PrintSuccess("Liked '%s' (%d likes)", post.Title, len(post.Likes))
	} else {
		formatter.PrintSuccess("Unliked '%s' (%d likes)", post.Title, len(post.Likes))
	}
	return nil
}

// Save bookmarks a post
func (s *PostService) Save(postID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.SavePost(postID); err != nil {
		formatter.PrintError("Failed to save post: %v", err)
		return err
	}
	formatter.PrintSuccess("Post saved")
	return nil
}

// Unsave removes a bookmark
func (s *PostService) Unsave(postID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.UnsavePost(postID); err != nil {
		formatter.PrintError("Failed to unsave post: %v", err)
		return err
	}
	formatter.PrintSuccess("Post removed from saved")
	return nil
}

// Saved lists bookmarked posts
func (s *PostService) Saved(page, limit int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	resp, err := api.GetSavedPosts(page, limit)
	if err != nil {
		formatter.PrintError("Failed to load saved posts: %v", err)
		return err
	}

	if len(resp.Posts) == 0 {
		formatter.PrintInfo("No saved posts")
		return nil
	}

	printPostTable(resp.Posts)
	return nil
}

func printPostTable(posts []api.Post) {
	if output.GetOutputFormat() == output.FormatJSON {
		output.Print("posts", posts)
		return
	}

	headers := []string{"ID", "TITLE", "AUTHOR", "CATEGORY", "LIKES", "CREATED"}
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		title := p.Title
		if len(title) > 48 {
			title = title[:45] + "..."
		}
		rows = append(rows, []string{
			p.ID,
			title,
			"@" + p.Author.UserName,
			p.Category.Name,
			fmt.Sprintf("%d", len(p.Likes)),
			p.CreatedAt.Format("2006-01-02"),
		})
	}
	formatter.PrintTable(headers, rows)
}
