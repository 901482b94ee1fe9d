package services

import (
	"context"
	"log"
	"time"

	"siteapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectService struct {
	collection *mongo.Collection
	media      *MediaService
}

func NewProjectService(collection *mongo.Collection, media *MediaService) *ProjectService {
	return &ProjectService{collection: collection, media: media}
}

// CreateProject inserts a project document. Image uploads happen before this
// call; if the insert fails the caller-supplied paths are compensated by
// deleting the just-uploaded files so the media store does not accumulate
// orphans.
func (s *ProjectService) CreateProject(ctx context.Context, req *models.CreateProjectRequest, uploadedPaths []string) (*models.Project, error) {
	now := time.Now().UTC()
	project := &models.Project{
		Images:    req.Images,
		Details:   req.Details,
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if project.Images == nil {
		project.Images = []models.ProjectImage{}
	}
	if project.Details.ClientTech == nil {
		project.Details.ClientTech = []string{}
	}
	if project.Details.ServerTech == nil {
		project.Details.ServerTech = []string{}
	}

	result, err := s.collection.InsertOne(ctx, project)
	if err != nil {
		s.compensateUploads(uploadedPaths)
		return nil, err
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var project models.Project
	if err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&project); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, q models.ProjectListQuery) ([]models.Project, error) {
	filter := bson.M{}
	if q.Published != nil {
		filter["published"] = *q.Published
	}

	opts := options.Find().
		SetSkip(int64(q.Skip)).
		SetLimit(int64(q.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject applies a partial update. New images are appended and removed
// paths dropped from the image list in the same write. Backing files for
// removed paths are deleted afterwards, best effort; a failed file delete is
// logged and never blocks the reference removal.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, req *models.UpdateProjectRequest, uploadedPaths []string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		s.compensateUploads(uploadedPaths)
		return nil, ErrInvalidID
	}

	current, err := s.GetProject(ctx, id)
	if err != nil {
		s.compensateUploads(uploadedPaths)
		return nil, err
	}

	set := bson.M{}
	if req.Details != nil {
		set["project_details"] = *req.Details
	}
	if req.Published != nil {
		set["published"] = *req.Published
	}

	if len(req.AddImages) > 0 || len(req.RemoveImagePaths) > 0 {
		set["images"] = mergeImages(current.Images, req.AddImages, req.RemoveImagePaths)
	}

	if len(set) == 0 {
		return nil, ErrEmptyUpdate
	}
	set["updated_at"] = time.Now().UTC()

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		s.compensateUploads(uploadedPaths)
		return nil, err
	}
	if result.MatchedCount == 0 {
		s.compensateUploads(uploadedPaths)
		return nil, ErrNotFound
	}

	for _, path := range req.RemoveImagePaths {
		if ok := s.media.Delete(path); !ok {
			log.Printf("Image file not removed, leaving for reconciliation: %s", path)
		}
	}

	return s.GetProject(ctx, id)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	project, err := s.GetProject(ctx, id)
	if err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	for _, img := range project.Images {
		if ok := s.media.Delete(img.Image); !ok {
			log.Printf("Image file not removed, leaving for reconciliation: %s", img.Image)
		}
	}
	return nil
}

func (s *ProjectService) compensateUploads(paths []string) {
	for _, path := range paths {
		if ok := s.media.Delete(path); !ok {
			log.Printf("Compensation delete found no file: %s", path)
		}
	}
}

// mergeImages appends added images and drops removed paths, keeping paths
// unique across the result.
func mergeImages(current, added []models.ProjectImage, removePaths []string) []models.ProjectImage {
	remove := make(map[string]struct{}, len(removePaths))
	for _, p := range removePaths {
		remove[p] = struct{}{}
	}

	seen := make(map[string]struct{})
	merged := []models.ProjectImage{}
	for _, img := range append(append([]models.ProjectImage{}, current...), added...) {
		if _, drop := remove[img.Image]; drop {
			continue
		}
		if _, dup := seen[img.Image]; dup {
			continue
		}
		seen[img.Image] = struct{}{}
		merged = append(merged, img)
	}
	return merged
}
