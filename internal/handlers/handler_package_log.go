package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/campus-reslife/reslife_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// packageLogHandler handles HTTP requests related to reconciliation audits.
type packageLogHandler struct {
	packageLogService portssvc.PackageLogSvcFacade
}

// newPackageLogHandler creates a new packageLogHandler.
func newPackageLogHandler(ls portssvc.PackageLogSvcFacade) *packageLogHandler {
	return &packageLogHandler{
		packageLogService: ls,
	}
}

// registerPackageLogRoutes registers routes related to audit logs.
func registerPackageLogRoutes(rg *gin.RouterGroup, packageLogService portssvc.PackageLogSvcFacade) {
	h := newPackageLogHandler(packageLogService)

	logs := rg.Group("/packagelogs")
	{
		logs.POST("", h.createLog)
		logs.GET("", h.listLogs)
		logs.GET("/:id", h.getLogDetail)
	}
}

// createLog godoc
// @Summary Run a reconciliation audit
// @Description Snapshots every LOGGED_IN package in the named buildings, applies presence overrides and marks missing packages LOST
// @Tags packagelogs
// @Accept  json
// @Produce  json
// @Param   request body dto.CreatePackageLogRequest true "Audit scope and overrides"
// @Success 201 {object} dto.CreatePackageLogResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create package log"
// @Security BearerAuth
// @Router /packagelogs [post]
func (h *packageLogHandler) createLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePackageLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.packageLogService.CreateLog(c.Request.Context(), req, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating package log", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrAdapter) {
			logger.Error("Directory unavailable during audit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Directory lookup failed"})
		} else {
			logger.Error("Failed to create package log", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package log"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listLogs godoc
// @Summary List audit logs
// @Description Retrieves a filtered, paginated list of logs with derived present/missing counters
// @Tags packagelogs
// @Produce  json
// @Param   staff query string false "Match creating staff member's first or last name"
// @Param   buildings query []string false "Building IDs the audit scope must intersect"
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.ListPackageLogsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list package logs"
// @Security BearerAuth
// @Router /packagelogs [get]
func (h *packageLogHandler) listLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPackageLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.packageLogService.ListLogs(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list package logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list package logs"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getLogDetail godoc
// @Summary Get an audit log's detail
// @Description Retrieves one log with entries grouped by recipient, groups ordered by surname
// @Tags packagelogs
// @Produce  json
// @Param   id path string true "Package log ID"
// @Success 200 {object} dto.PackageLogDetailResponse
// @Failure 404 {object} map[string]string "Package log not found"
// @Failure 500 {object} map[string]string "Failed to retrieve package log"
// @Security BearerAuth
// @Router /packagelogs/{id} [get]
func (h *packageLogHandler) getLogDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageLogID := c.Param("id")

	resp, err := h.packageLogService.GetLogDetail(c.Request.Context(), packageLogID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package log not found"})
		} else {
			logger.Error("Failed to get package log detail", slog.String("error", err.Error()), slog.String("package_log_id", packageLogID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve package log"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
