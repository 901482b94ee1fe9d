package services

import (
	"context"
	"time"

	"siteapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BlogService struct {
	collection *mongo.Collection
}

func NewBlogService(collection *mongo.Collection) *BlogService {
	return &BlogService{collection: collection}
}

// newPostDocument builds the document inserted for a create request: both
// timestamps set to the same instant, tags deduplicated and never nil, and
// an empty ai_results map ready for merge writes.
func newPostDocument(req *models.CreatePostRequest, now time.Time) *models.BlogPost {
	post := &models.BlogPost{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Author:        req.Author,
		Tags:          models.DedupeTags(req.Tags),
		Published:     req.Published,
		FeaturedImage: req.FeaturedImage,
		CreatedAt:     now,
		UpdatedAt:     now,
		AIResults:     map[string]interface{}{},
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post
}

func (s *BlogService) CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.BlogPost, error) {
	post := newPostDocument(req, time.Now().UTC())

	result, err := s.collection.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	return post, nil
}

func (s *BlogService) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var post models.BlogPost
	if err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *BlogService) ListPosts(ctx context.Context, q models.PostListQuery) ([]models.BlogPost, error) {
	filter := bson.M{}
	if q.Tag != "" {
		filter["tags"] = q.Tag
	}
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

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// BuildPostUpdate translates a partial update request into a $set document.
// Returns an empty map when nothing was supplied.
func BuildPostUpdate(req *models.UpdatePostRequest) bson.M {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.Excerpt != nil {
		set["excerpt"] = *req.Excerpt
	}
	if req.Author != nil {
		set["author"] = *req.Author
	}
	if req.Tags != nil {
		set["tags"] = models.DedupeTags(*req.Tags)
	}
	if req.Published != nil {
		set["published"] = *req.Published
	}
	if req.FeaturedImage != nil {
		set["featured_image"] = *req.FeaturedImage
	}
	return set
}

func (s *BlogService) UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := BuildPostUpdate(req)
	if len(set) == 0 {
		return nil, ErrEmptyUpdate
	}
	set["updated_at"] = time.Now().UTC()

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var post models.BlogPost
	if err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DistinctTags returns every tag used across all posts, deduplicated and
// sorted ascending.
func (s *BlogService) DistinctTags(ctx context.Context) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{"_id": "$tags"}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Tag string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(docs))
	for _, doc := range docs {
		tags = append(tags, doc.Tag)
	}
	return tags, nil
}

func (s *BlogService) GetAIResults(ctx context.Context, id string) (map[string]interface{}, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AIResults == nil {
		return map[string]interface{}{}, nil
	}
	return post.AIResults, nil
}

// SaveAIResult merges a transform result under ai_results.<key> on the given
// post. Returns whether a document was actually updated; a malformed id or an
// unknown post yields false without an error so callers can treat the save as
// best effort.
func (s *BlogService) SaveAIResult(ctx context.Context, postID, key string, value interface{}) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return false, nil
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"ai_results." + key: value}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
