package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/campus-reslife/reslife_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// packageHandler handles HTTP requests related to package custody.
type packageHandler struct {
	packageService portssvc.PackageSvcFacade
}

// newPackageHandler creates a new packageHandler.
func newPackageHandler(ps portssvc.PackageSvcFacade) *packageHandler {
	return &packageHandler{
		packageService: ps,
	}
}

// registerPackageRoutes registers routes related to packages.
func registerPackageRoutes(rg *gin.RouterGroup, packageService portssvc.PackageSvcFacade) {
	h := newPackageHandler(packageService)

	packages := rg.Group("/packages")
	{
		packages.POST("", h.intakePackage)
		packages.GET("", h.listPackages)
		packages.GET("/grouped", h.listPackagesGrouped)
		packages.GET("/:id", h.getPackageByID)
		packages.PATCH("/logout", h.logoutPackages)
		packages.PATCH("/lost", h.markPackagesLost)
	}
}

// intakePackage godoc
// @Summary Log in a newly received package
// @Description Registers a package into custody with status LOGGED_IN
// @Tags packages
// @Accept  json
// @Produce  json
// @Param   package body dto.CreatePackageRequest true "Package details"
// @Success 201 {object} dto.PackageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to log in package"
// @Security BearerAuth
// @Router /packages [post]
func (h *packageHandler) intakePackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IntakePackage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pkg, err := h.packageService.IntakePackage(c.Request.Context(), req, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error logging in package", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrAdapter) {
			logger.Error("Directory unavailable during intake", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Directory lookup failed"})
		} else {
			logger.Error("Failed to log in package", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in package"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPackageResponse(pkg))
}

// getPackageByID godoc
// @Summary Get a package by ID
// @Tags packages
// @Produce  json
// @Param   id path string true "Package ID"
// @Success 200 {object} dto.PackageResponse
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 500 {object} map[string]string "Failed to retrieve package"
// @Security BearerAuth
// @Router /packages/{id} [get]
func (h *packageHandler) getPackageByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("id")

	pkg, err := h.packageService.GetPackageByID(c.Request.Context(), packageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else {
			logger.Error("Failed to get package", slog.String("error", err.Error()), slog.String("package_id", packageID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve package"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// listPackages godoc
// @Summary List packages
// @Description Retrieves a filtered, paginated list of packages
// @Tags packages
// @Produce  json
// @Param   search query string false "Match recipient name, student number or tracking number"
// @Param   buildings query []string false "Building IDs"
// @Param   status query string false "Custody status" Enums(LOGGED_IN, LOGGED_OUT, LOST)
// @Param   studentID query string false "Recipient student ID"
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.ListPackagesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list packages"
// @Security BearerAuth
// @Router /packages [get]
func (h *packageHandler) listPackages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPackagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.packageService.ListPackages(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list packages", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packages"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listPackagesGrouped godoc
// @Summary List packages grouped by recipient
// @Description Same page as the flat listing, grouped per recipient in order of first appearance
// @Tags packages
// @Produce  json
// @Param   search query string false "Match recipient name, student number or tracking number"
// @Param   buildings query []string false "Building IDs"
// @Param   status query string false "Custody status" Enums(LOGGED_IN, LOGGED_OUT, LOST)
// @Param   studentID query string false "Recipient student ID"
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.GroupedPackagesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list packages"
// @Security BearerAuth
// @Router /packages/grouped [get]
func (h *packageHandler) listPackagesGrouped(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPackagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.packageService.ListPackagesGroupedByRecipient(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list grouped packages", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packages"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// logoutPackages godoc
// @Summary Log out packages
// @Description Transitions the named packages LOGGED_IN -> LOGGED_OUT. Partial success: conflicting packages are reported per item.
// @Tags packages
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkTransitionRequest true "Package IDs"
// @Success 200 {object} dto.BulkTransitionResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to log out packages"
// @Security BearerAuth
// @Router /packages/logout [patch]
func (h *packageHandler) logoutPackages(c *gin.Context) {
	h.bulkTransition(c, "LOGGED_OUT")
}

// markPackagesLost godoc
// @Summary Mark packages lost
// @Description Transitions the named packages LOGGED_IN -> LOST. Partial success: conflicting packages are reported per item.
// @Tags packages
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkTransitionRequest true "Package IDs"
// @Success 200 {object} dto.BulkTransitionResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to mark packages lost"
// @Security BearerAuth
// @Router /packages/lost [patch]
func (h *packageHandler) markPackagesLost(c *gin.Context) {
	h.bulkTransition(c, "LOST")
}

func (h *packageHandler) bulkTransition(c *gin.Context, target string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulk transition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.packageService.BulkTransition(c.Request.Context(), req.PackageIDs, domain.PackageStatus(target), staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to transition packages", slog.String("error", err.Error()), slog.String("target", target))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transition packages"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
