package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectImage references a stored media file plus its caption.
type ProjectImage struct {
	Image       string `bson:"image" json:"image"`
	Description string `bson:"description" json:"description"`
}

type ProjectDetails struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	ClientCode  string   `bson:"client_code,omitempty" json:"client_code,omitempty"`
	ServerCode  string   `bson:"server_code,omitempty" json:"server_code,omitempty"`
	ClientTech  []string `bson:"client_tech" json:"client_tech"`
	ServerTech  []string `bson:"server_tech" json:"server_tech"`
}

// Project is a portfolio project document.
// Collection: projects
type Project struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Images    []ProjectImage     `bson:"images" json:"images"`
	Details   ProjectDetails     `bson:"project_details" json:"project_details"`
	Published bool               `bson:"published" json:"published"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreateProjectRequest struct {
	Images    []ProjectImage `json:"images"`
	Details   ProjectDetails `json:"project_details" binding:"required"`
	Published bool           `json:"published"`
}

// UpdateProjectRequest carries partial updates. AddImages are appended to the
// document's image list; RemoveImagePaths are dropped from it (and their
// backing files deleted best effort).
type UpdateProjectRequest struct {
	Details          *ProjectDetails `json:"project_details"`
	Published        *bool           `json:"published"`
	AddImages        []ProjectImage  `json:"add_images"`
	RemoveImagePaths []string        `json:"remove_image_paths"`
}

type ProjectListQuery struct {
	Skip      int
	Limit     int
	Published *bool
}
