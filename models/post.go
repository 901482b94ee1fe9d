package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is the blog post document.
// Collection: blog_posts
type BlogPost struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Title         string                 `bson:"title" json:"title"`
	Content       string                 `bson:"content" json:"content"`
	Excerpt       string                 `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Author        string                 `bson:"author,omitempty" json:"author,omitempty"`
	Tags          []string               `bson:"tags" json:"tags"`
	Published     bool                   `bson:"published" json:"published"`
	FeaturedImage string                 `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	CreatedAt     time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at" json:"updated_at"`
	AIResults     map[string]interface{} `bson:"ai_results" json:"ai_results"`
}

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	Excerpt       string   `json:"excerpt"`
	Author        string   `json:"author"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
	FeaturedImage string   `json:"featured_image"`
}

// UpdatePostRequest carries partial updates. Only non-nil fields are
// written; everything else on the document is left alone.
type UpdatePostRequest struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	Author        *string   `json:"author"`
	Tags          *[]string `json:"tags"`
	Published     *bool     `json:"published"`
	FeaturedImage *string   `json:"featured_image"`
}

type PostListQuery struct {
	Skip      int
	Limit     int
	Tag       string
	Published *bool
}

// AIToolRequest is the body for every blog AI endpoint. Tone is ignored by
// operations that do not take one. PostID, when present, asks the server to
// save the result on that post.
type AIToolRequest struct {
	BlogContent string `json:"blog_content" binding:"required"`
	Tone        string `json:"tone"`
	PostID      string `json:"post_id"`
}

// DedupeTags returns tags with duplicates and empty entries removed,
// preserving first-seen order.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
