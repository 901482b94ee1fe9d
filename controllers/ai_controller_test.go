package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"siteapi/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type cannedClient struct {
	response string
}

func (c *cannedClient) Complete(_ context.Context, _, _ string) (string, error) {
	return c.response, nil
}

func newAIRouter(client services.CompletionClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewAIService(client, services.NewBlogService(nil))
	ctrl := NewAIController(svc)

	r := gin.New()
	r.POST("/ai/:operation", ctrl.Run)
	return r
}

func TestRunUnknownOperation(t *testing.T) {
	r := newAIRouter(&cannedClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/summarize-everything",
		strings.NewReader(`{"blog_content": "text"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown operation")
}

func TestRunMissingContent(t *testing.T) {
	r := newAIRouter(&cannedClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/generate-titles",
		strings.NewReader(`{"tone": "casual"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunReturnsResult(t *testing.T) {
	r := newAIRouter(&cannedClient{
		response: `{"attention_grabbing_titles": ["T"], "seo_friendly_titles": ["S"]}`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/generate-titles",
		strings.NewReader(`{"blog_content": "my draft"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"attention_grabbing_titles":["T"]`)
	// No post_id, so no save outcome in the response.
	assert.NotContains(t, w.Body.String(), `"saved"`)
}

func TestRunReportsUnsavedResult(t *testing.T) {
	r := newAIRouter(&cannedClient{
		response: `{"attention_grabbing_titles": ["T"], "seo_friendly_titles": ["S"]}`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/generate-titles",
		strings.NewReader(`{"blog_content": "my draft", "post_id": "not-an-object-id"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"saved":false`)
}
