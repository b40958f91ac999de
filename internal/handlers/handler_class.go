package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/dto"
	"github.com/printenterprise/pe_backend/internal/middleware"
)

// classHandler handles HTTP requests for the class balance ledger.
type classHandler struct {
	classService portssvc.ClassSvcFacade
}

func newClassHandler(cs portssvc.ClassSvcFacade) *classHandler {
	return &classHandler{classService: cs}
}

// registerClassRoutes registers routes related to classes.
func registerClassRoutes(rg *gin.RouterGroup, classService portssvc.ClassSvcFacade) {
	h := newClassHandler(classService)

	classes := rg.Group("/classes")
	{
		classes.GET("", h.listClasses)
		classes.POST("", h.createClass)
		classes.POST("/adjust-balance", h.adjustBalance)
		classes.POST("/recompute-balances", h.recomputeBalances)
		classes.PUT("/:classID", h.updateClass)
		classes.DELETE("/:classID", h.deleteClass)
	}
}

func (h *classHandler) listClasses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	classes, err := h.classService.GetClasses(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			logger.Warn("Class ledger unreadable, presenting empty collection", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToListClassResponse(classes))
			return
		}
		logger.Error("Failed to list classes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list classes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClassResponse(classes))
}

func (h *classHandler) createClass(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClass", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	class, err := h.classService.CreateClass(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "A class with this name already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure creating class", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, class not recorded"})
		default:
			logger.Error("Failed to create class", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassResponse(class))
}

func (h *classHandler) updateClass(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	classID := c.Param("classID")

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClass", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	class, err := h.classService.UpdateClass(c.Request.Context(), classID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "A class with this name already exists"})
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure updating class", slog.String("class_id", classID), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, class not updated"})
		default:
			logger.Error("Failed to update class", slog.String("class_id", classID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

func (h *classHandler) deleteClass(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	classID := c.Param("classID")

	if err := h.classService.DeleteClass(c.Request.Context(), classID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure deleting class", slog.String("class_id", classID), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, class not deleted"})
		default:
			logger.Error("Failed to delete class", slog.String("class_id", classID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// adjustBalance applies a signed delta to a class balance, creating the class
// on first reference. The stored balance never drops below zero.
func (h *classHandler) adjustBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	class, err := h.classService.AdjustBalance(c.Request.Context(), req.ClassName, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure adjusting class balance", slog.String("class_name", req.ClassName), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, balance not adjusted"})
		default:
			logger.Error("Failed to adjust class balance", slog.String("class_name", req.ClassName), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust class balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

// recomputeBalances rebuilds every class balance from the unpaid jobs in the
// ledger, discarding whatever incremental drift the balances had accumulated.
func (h *classHandler) recomputeBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	classes, err := h.classService.RecomputeBalances(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure recomputing balances", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, balances not recomputed"})
		default:
			logger.Error("Failed to recompute balances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute balances"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListClassResponse(classes))
}
