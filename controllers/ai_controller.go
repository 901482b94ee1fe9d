package controllers

import (
	"errors"
	"net/http"

	"siteapi/models"
	"siteapi/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	aiService *services.AIService
}

func NewAIController(aiService *services.AIService) *AIController {
	return &AIController{aiService: aiService}
}

// Run executes the transform named by the :operation path parameter. When
// the body carries a post_id the result is also saved on that post and the
// response reports whether the save matched a document.
func (ac *AIController) Run(c *gin.Context) {
	op, ok := services.LookupOperation(c.Param("operation"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation: " + c.Param("operation")})
		return
	}

	var req models.AIToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, saved, err := ac.aiService.ProcessAndSave(c.Request.Context(), op, req.BlogContent, req.Tone, req.PostID)
	if err != nil {
		if errors.Is(err, services.ErrContentTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content exceeds maximum length"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"result": result}
	if req.PostID != "" {
		response["saved"] = saved
	}
	c.JSON(http.StatusOK, response)
}
