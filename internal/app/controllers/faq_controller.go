package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// FAQController serves frequently asked questions
type FAQController struct {
	faqService services.FAQService
}

// NewFAQController creates a new FAQController
func NewFAQController(faqService services.FAQService) *FAQController {
	return &FAQController{
		faqService: faqService,
	}
}

// List returns FAQs, optionally filtered by category
func (c *FAQController) List(ctx *gin.Context) {
	category := queryString(ctx, "category")

	faqs, err := c.faqService.List(ctx.Request.Context(), category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"faqs": dto.NewFAQListResponse(faqs)})
}
