package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/campus-reslife/reslife_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// directoryHandler handles HTTP requests against the housing directory.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

// newDirectoryHandler creates a new directoryHandler.
func newDirectoryHandler(ds portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{
		directoryService: ds,
	}
}

// registerDirectoryRoutes registers directory lookup routes. The student
// search sits behind the rate limiter since the UI fires it per keystroke.
func registerDirectoryRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade, searchLimiter gin.HandlerFunc) {
	h := newDirectoryHandler(directoryService)

	students := rg.Group("/students")
	{
		students.GET("", searchLimiter, h.searchStudents)
		students.GET("/:id", h.getStudentByID)
	}

	buildings := rg.Group("/buildings")
	{
		buildings.GET("", h.listBuildings)
	}
}

// searchStudents godoc
// @Summary Search students
// @Description Case-insensitive search on name or student number. Abandoning a search (client disconnect) is side-effect free.
// @Tags directory
// @Produce  json
// @Param   search query string false "Search term"
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.SearchStudentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 502 {object} map[string]string "Directory lookup failed"
// @Security BearerAuth
// @Router /students [get]
func (h *directoryHandler) searchStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchStudentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.directoryService.SearchStudents(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; nothing to answer.
			c.Abort()
			return
		}
		logger.Error("Student search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory lookup failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getStudentByID godoc
// @Summary Get a student by ID
// @Tags directory
// @Produce  json
// @Param   id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 502 {object} map[string]string "Directory lookup failed"
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *directoryHandler) getStudentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studentID := c.Param("id")

	student, err := h.directoryService.ResolveStudent(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			logger.Error("Failed to resolve student", slog.String("error", err.Error()), slog.String("student_id", studentID))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Directory lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// listBuildings godoc
// @Summary List buildings
// @Description Retrieves every building for audit scope and intake pickers
// @Tags directory
// @Produce  json
// @Success 200 {object} dto.ListBuildingsResponse
// @Failure 502 {object} map[string]string "Directory lookup failed"
// @Security BearerAuth
// @Router /buildings [get]
func (h *directoryHandler) listBuildings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.directoryService.ListBuildings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list buildings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory lookup failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
