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

// registryHandler handles the teacher and document-type name registries. Both
// registries have identical shapes so they share one handler.
type registryHandler struct {
	teacherService portssvc.TeacherSvcFacade
	docTypeService portssvc.DocumentTypeSvcFacade
}

func newRegistryHandler(ts portssvc.TeacherSvcFacade, ds portssvc.DocumentTypeSvcFacade) *registryHandler {
	return &registryHandler{teacherService: ts, docTypeService: ds}
}

// registerRegistryRoutes registers routes for both name registries.
func registerRegistryRoutes(rg *gin.RouterGroup, ts portssvc.TeacherSvcFacade, ds portssvc.DocumentTypeSvcFacade) {
	h := newRegistryHandler(ts, ds)

	teachers := rg.Group("/teachers")
	{
		teachers.GET("", h.listTeachers)
		teachers.POST("", h.createTeacher)
		teachers.PUT("/:teacherID", h.updateTeacher)
		teachers.DELETE("/:teacherID", h.deleteTeacher)
	}

	docTypes := rg.Group("/document-types")
	{
		docTypes.GET("", h.listDocumentTypes)
		docTypes.POST("", h.createDocumentType)
		docTypes.PUT("/:docTypeID", h.updateDocumentType)
		docTypes.DELETE("/:docTypeID", h.deleteDocumentType)
	}
}

func (h *registryHandler) listTeachers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	teachers, err := h.teacherService.GetTeachers(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			logger.Warn("Teacher registry unreadable, presenting empty collection", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToListTeacherResponse(teachers))
			return
		}
		logger.Error("Failed to list teachers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teachers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeacherResponse(teachers))
}

func (h *registryHandler) createTeacher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTeacher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	teacher, err := h.teacherService.CreateTeacher(c.Request.Context(), req.Name)
	if err != nil {
		h.writeRegistryError(c, logger, err, "teacher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeacherResponse(teacher))
}

func (h *registryHandler) updateTeacher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTeacher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	teacher, err := h.teacherService.UpdateTeacher(c.Request.Context(), c.Param("teacherID"), req.Name)
	if err != nil {
		h.writeRegistryError(c, logger, err, "teacher")
		return
	}

	c.JSON(http.StatusOK, dto.ToTeacherResponse(teacher))
}

func (h *registryHandler) deleteTeacher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.teacherService.DeleteTeacher(c.Request.Context(), c.Param("teacherID")); err != nil {
		h.writeRegistryError(c, logger, err, "teacher")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *registryHandler) listDocumentTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.docTypeService.GetDocumentTypes(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			logger.Warn("Document-type registry unreadable, presenting empty collection", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToListDocumentTypeResponse(types))
			return
		}
		logger.Error("Failed to list document types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list document types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocumentTypeResponse(types))
}

func (h *registryHandler) createDocumentType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDocumentType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	docType, err := h.docTypeService.CreateDocumentType(c.Request.Context(), req.Name)
	if err != nil {
		h.writeRegistryError(c, logger, err, "document type")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentTypeResponse(docType))
}

func (h *registryHandler) updateDocumentType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDocumentType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	docType, err := h.docTypeService.UpdateDocumentType(c.Request.Context(), c.Param("docTypeID"), req.Name)
	if err != nil {
		h.writeRegistryError(c, logger, err, "document type")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentTypeResponse(docType))
}

func (h *registryHandler) deleteDocumentType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.docTypeService.DeleteDocumentType(c.Request.Context(), c.Param("docTypeID")); err != nil {
		h.writeRegistryError(c, logger, err, "document type")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *registryHandler) writeRegistryError(c *gin.Context, logger *slog.Logger, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "The " + entity + " was not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "A " + entity + " with this name already exists"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
		logger.Error("Storage failure in registry operation", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, " + entity + " not saved"})
	default:
		logger.Error("Registry operation failed", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registry operation failed"})
	}
}
