package services

import (
	"context"
	"testing"
	"time"

	"siteapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func strPtr(s string) *string { return &s }

func TestBuildPostUpdateOnlyNonNilFields(t *testing.T) {
	published := true
	req := &models.UpdatePostRequest{
		Title:     strPtr("New title"),
		Published: &published,
	}

	set := BuildPostUpdate(req)

	assert.Equal(t, "New title", set["title"])
	assert.Equal(t, true, set["published"])
	assert.NotContains(t, set, "content")
	assert.NotContains(t, set, "excerpt")
	assert.NotContains(t, set, "author")
	assert.NotContains(t, set, "tags")
	assert.NotContains(t, set, "featured_image")
}

func TestBuildPostUpdateEmpty(t *testing.T) {
	set := BuildPostUpdate(&models.UpdatePostRequest{})
	assert.Empty(t, set)
}

func TestBuildPostUpdateDedupesTags(t *testing.T) {
	tags := []string{"go", "go", "web"}
	set := BuildPostUpdate(&models.UpdatePostRequest{Tags: &tags})
	assert.Equal(t, []string{"go", "web"}, set["tags"])
}

func TestNewPostDocumentTimestampsMatch(t *testing.T) {
	now := time.Now().UTC()
	post := newPostDocument(&models.CreatePostRequest{Title: "t", Content: "c"}, now)

	assert.Equal(t, now, post.CreatedAt)
	assert.Equal(t, now, post.UpdatedAt)
	assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
}

func TestNewPostDocumentDefaults(t *testing.T) {
	post := newPostDocument(&models.CreatePostRequest{Title: "t", Content: "c"}, time.Now().UTC())

	assert.NotNil(t, post.AIResults)
	assert.Empty(t, post.AIResults)
	assert.NotNil(t, post.Tags)
	assert.Empty(t, post.Tags)
}

func TestNewPostDocumentDedupesTags(t *testing.T) {
	post := newPostDocument(&models.CreatePostRequest{
		Title:   "t",
		Content: "c",
		Tags:    []string{"go", "go", "", "web"},
	}, time.Now().UTC())

	assert.Equal(t, []string{"go", "web"}, post.Tags)
}

func TestDeletePostTwice(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second delete reports not found", func(mt *mtest.T) {
		s := NewBlogService(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		require.NoError(mt, s.DeletePost(context.Background(), id))
		assert.ErrorIs(mt, s.DeletePost(context.Background(), id), ErrNotFound)
	})
}

func TestDistinctTagsAggregation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns sorted tag list", func(mt *mtest.T) {
		s := NewBlogService(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "api"}},
			bson.D{{Key: "_id", Value: "go"}},
			bson.D{{Key: "_id", Value: "web"}},
		))

		tags, err := s.DistinctTags(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"api", "go", "web"}, tags)
	})

	mt.Run("no tags yields empty list", func(mt *mtest.T) {
		s := NewBlogService(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		tags, err := s.DistinctTags(context.Background())
		require.NoError(mt, err)
		assert.Empty(mt, tags)
	})
}

func TestSaveAIResultMalformedIDDoesNotTouchStore(t *testing.T) {
	// nil collection: a malformed id must bail out before any store access.
	s := NewBlogService(nil)

	saved, err := s.SaveAIResult(context.Background(), "not-an-object-id", "titles", map[string]string{"x": "y"})
	assert.NoError(t, err)
	assert.False(t, saved)
}

func TestGetPostInvalidID(t *testing.T) {
	s := NewBlogService(nil)

	_, err := s.GetPost(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDeletePostInvalidID(t *testing.T) {
	s := NewBlogService(nil)
	assert.ErrorIs(t, s.DeletePost(context.Background(), "%%%"), ErrInvalidID)
}

func TestUpdatePostInvalidID(t *testing.T) {
	s := NewBlogService(nil)
	_, err := s.UpdatePost(context.Background(), "short", &models.UpdatePostRequest{Title: strPtr("t")})
	assert.ErrorIs(t, err, ErrInvalidID)
}
