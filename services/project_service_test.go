package services

import (
	"context"
	"testing"

	"siteapi/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeImagesAppendsAndRemoves(t *testing.T) {
	current := []models.ProjectImage{
		{Image: "/media/projects/a.jpg", Description: "a"},
		{Image: "/media/projects/b.jpg", Description: "b"},
	}
	added := []models.ProjectImage{
		{Image: "/media/projects/c.jpg", Description: "c"},
	}

	merged := mergeImages(current, added, []string{"/media/projects/b.jpg"})

	assert.Equal(t, []models.ProjectImage{
		{Image: "/media/projects/a.jpg", Description: "a"},
		{Image: "/media/projects/c.jpg", Description: "c"},
	}, merged)
}

func TestMergeImagesKeepsPathsUnique(t *testing.T) {
	current := []models.ProjectImage{
		{Image: "/media/projects/a.jpg", Description: "original"},
	}
	added := []models.ProjectImage{
		{Image: "/media/projects/a.jpg", Description: "duplicate"},
	}

	merged := mergeImages(current, added, nil)

	assert.Len(t, merged, 1)
	assert.Equal(t, "original", merged[0].Description)
}

func TestMergeImagesRemoveAll(t *testing.T) {
	current := []models.ProjectImage{
		{Image: "/media/projects/a.jpg"},
	}

	merged := mergeImages(current, nil, []string{"/media/projects/a.jpg"})
	assert.Empty(t, merged)
}

func TestProjectServiceInvalidID(t *testing.T) {
	s := NewProjectService(nil, NewMediaService(t.TempDir()))

	_, err := s.GetProject(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.ErrorIs(t, s.DeleteProject(context.Background(), "bogus"), ErrInvalidID)
}
