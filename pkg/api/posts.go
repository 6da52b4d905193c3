package api

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// GetPosts retrieves the post feed, optionally filtered by category
func GetPosts(category, subcategory string, page, limit int) (*PostListResponse, error) {
	logger.Debug("Fetching posts", "page", page, "category", category)

	req := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit))

	if category != "" {
		req.SetQueryParam("category", category)
	}
	if subcategory != "" {
		req.SetQueryParam("subcategory", subcategory)
	}

	var response PostListResponse
	resp, err := req.SetResult(&response).Get("/api/v1/posts")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetPost retrieves a single post with its comment tree
func GetPost(postID string) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/posts/%s", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.Post, nil
}

// GetMyPosts retrieves the logged-in user's posts
func GetMyPosts(page, limit int) (*PostListResponse, error) {
	logger.Debug("Fetching my posts", "page", page)

	var response PostListResponse
	resp, err := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&response).
		Get("/api/v1/posts/my-posts")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// CreatePost creates a new post
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post", "title", req.Title)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post("/api/v1/posts")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagPost)
	return &response.Post, nil
}

// UpdatePost edits an existing post
func UpdatePost(postID string, req UpdatePostRequest) (*Post, error) {
	logger.Debug("Updating post", "post_id", postID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Patch(fmt.Sprintf("/api/v1/posts/%s", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagPost)
	return &response.Post, nil
}

// DeletePost deletes a post
func DeletePost(postID string) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/posts/%s", postID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagPost)
	return nil
}

// ToggleLikePost likes or unlikes a post
func ToggleLikePost(postID string) (*Post, error) {
	logger.Debug("Toggling post like", "post_id", postID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Post(fmt.Sprintf("/api/v1/posts/%s/like", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagPost)
	return &response.Post, nil
}

// SavePost saves a post for later reading
func SavePost(postID string) error {
	logger.Debug("Saving post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/v1/posts/%s/save", postID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagPost)
	return nil
}

// UnsavePost removes a post from the saved list
func UnsavePost(postID string) error {
	logger.Debug("Unsaving post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/posts/%s/save", postID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagPost)
	return nil
}

// GetSavedPosts retrieves the logged-in user's saved posts
func GetSavedPosts(page, limit int) (*PostListResponse, error) {
	logger.Debug("Fetching saved posts", "page", page)

	var response PostListResponse
	resp, err := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&response).
		Get("/api/v1/posts/saved")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}
