package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// CourseController serves the course catalogue
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Courses returns courses, optionally filtered by subject area
func (c *CourseController) Courses(ctx *gin.Context) {
	subjectAreaID := queryInt64(ctx, "subject_area_id")

	courses, err := c.courseService.List(ctx.Request.Context(), subjectAreaID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"courses": dto.NewCourseListResponse(courses)})
}

// SubjectAreas returns all subject areas
func (c *CourseController) SubjectAreas(ctx *gin.Context) {
	areas, err := c.courseService.SubjectAreas(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"subject_areas": dto.NewSubjectAreaListResponse(areas)})
}
