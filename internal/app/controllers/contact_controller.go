package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// ContactController handles contact form submissions
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// Submit accepts a contact form submission
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	contact, err := c.contactService.Submit(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Your message has been sent. We will get back to you soon.",
		"contact": contact,
	})
}
