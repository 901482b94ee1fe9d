package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"siteapi/models"
	"siteapi/services"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	blogService *services.BlogService
	hubService  *services.HubService
}

func NewBlogController(blogService *services.BlogService, hubService *services.HubService) *BlogController {
	return &BlogController{
		blogService: blogService,
		hubService:  hubService,
	}
}

// CreatePost creates a new blog post
func (bc *BlogController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := bc.blogService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post: " + err.Error()})
		return
	}

	bc.hubService.BroadcastEvent("post_created", post)

	c.JSON(http.StatusCreated, gin.H{"data": post})
}

// ListPosts returns posts, newest first, with optional tag/published filters
func (bc *BlogController) ListPosts(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}

	q := models.PostListQuery{
		Skip:  skip,
		Limit: limit,
		Tag:   c.Query("tag"),
	}
	if published := c.Query("published"); published != "" {
		val := published == "true"
		q.Published = &val
	}

	posts, err := bc.blogService.ListPosts(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": posts,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"count": len(posts),
		},
	})
}

// GetPost returns a single post by id
func (bc *BlogController) GetPost(c *gin.Context) {
	post, err := bc.blogService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// UpdatePost applies a partial update to a post
func (bc *BlogController) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := bc.blogService.UpdatePost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	bc.hubService.BroadcastEvent("post_updated", post)

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// DeletePost removes a post
func (bc *BlogController) DeletePost(c *gin.Context) {
	id := c.Param("id")
	if err := bc.blogService.DeletePost(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	bc.hubService.BroadcastEvent("post_deleted", gin.H{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// GetTags returns every tag used across posts, sorted
func (bc *BlogController) GetTags(c *gin.Context) {
	tags, err := bc.blogService.DistinctTags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tags})
}

// GetAIResults returns the ai_results map of a post
func (bc *BlogController) GetAIResults(c *gin.Context) {
	results, err := bc.blogService.GetAIResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}

// respondStoreError maps gateway errors onto the response taxonomy: bad
// identifiers and empty updates are the client's fault, missing documents
// are 404, everything else is an upstream failure.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
	case errors.Is(err, services.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid update data provided"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
