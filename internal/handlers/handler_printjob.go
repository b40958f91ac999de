package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/dto"
	"github.com/printenterprise/pe_backend/internal/middleware"
)

// printJobHandler handles HTTP requests related to the print-job ledger.
type printJobHandler struct {
	printJobService portssvc.PrintJobSvcFacade
}

func newPrintJobHandler(ps portssvc.PrintJobSvcFacade) *printJobHandler {
	return &printJobHandler{printJobService: ps}
}

// registerPrintJobRoutes registers routes related to print jobs.
func registerPrintJobRoutes(rg *gin.RouterGroup, printJobService portssvc.PrintJobSvcFacade) {
	h := newPrintJobHandler(printJobService)

	jobs := rg.Group("/print-jobs")
	{
		jobs.POST("", h.createPrintJob)
		jobs.GET("", h.listPrintJobs)
		jobs.POST("/check-duplicate", h.checkDuplicate)
		jobs.GET("/:jobID", h.getPrintJob)
		jobs.PUT("/:jobID", h.updatePrintJob)
		jobs.DELETE("/:jobID", h.deletePrintJob)
	}
}

// createPrintJob records a new job ticket. The ledger assigns id, serial
// number, timestamp and total price. Duplicates are not blocked here; the
// caller is expected to have asked /check-duplicate first if it cares.
func (h *printJobHandler) createPrintJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePrintJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePrintJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	job, err := h.printJobService.CreatePrintJob(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating print job", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure creating print job", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, print job not recorded"})
		default:
			logger.Error("Failed to create print job", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create print job"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPrintJobResponse(job))
}

// listPrintJobs returns the ledger, optionally filtered with
// ?filter=today|unpaid or ?class=NAME. When the backing store cannot be read
// the ledger degrades to an empty collection rather than failing the request.
func (h *printJobHandler) listPrintJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var (
		jobs []domain.PrintJob
		err  error
	)
	switch {
	case c.Query("class") != "":
		jobs, err = h.printJobService.GetJobsByClass(ctx, c.Query("class"))
	case c.Query("filter") == "today":
		jobs, err = h.printJobService.GetTodayJobs(ctx)
	case c.Query("filter") == "unpaid":
		jobs, err = h.printJobService.GetUnpaidJobs(ctx)
	default:
		jobs, err = h.printJobService.GetPrintJobs(ctx)
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			logger.Warn("Ledger unreadable, presenting empty collection", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToListPrintJobResponse(jobs))
			return
		}
		logger.Error("Failed to list print jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list print jobs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPrintJobResponse(jobs))
}

// getPrintJob returns one job by id.
func (h *printJobHandler) getPrintJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	job, err := h.printJobService.GetPrintJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Print job not found"})
			return
		}
		logger.Error("Failed to get print job", slog.String("job_id", jobID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve print job"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPrintJobResponse(job))
}

// updatePrintJob applies the mutable fields (paid, notes, teacher, document
// type) to a stored job. Toggling paid drives the compensating balance delta.
func (h *printJobHandler) updatePrintJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	var req dto.UpdatePrintJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePrintJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	job, err := h.printJobService.UpdatePrintJob(c.Request.Context(), jobID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Print job not found"})
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure updating print job", slog.String("job_id", jobID), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, print job not updated"})
		default:
			logger.Error("Failed to update print job", slog.String("job_id", jobID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update print job"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPrintJobResponse(job))
}

// deletePrintJob removes a job; an unpaid job's total is subtracted from its
// class balance as part of the removal.
func (h *printJobHandler) deletePrintJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	if err := h.printJobService.DeletePrintJob(c.Request.Context(), jobID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Print job not found"})
		case errors.Is(err, apperrors.ErrPersistence), errors.Is(err, apperrors.ErrStorageUnavailable):
			logger.Error("Storage failure deleting print job", slog.String("job_id", jobID), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage failure, print job not deleted"})
		default:
			logger.Error("Failed to delete print job", slog.String("job_id", jobID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete print job"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// checkDuplicate classifies a draft as a probable resubmission of a recent
// job. It never blocks creation; the caller decides what to do with the answer.
func (h *printJobHandler) checkDuplicate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CheckDuplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckDuplicate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	duplicate, err := h.printJobService.CheckDuplicate(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to run duplicate check", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run duplicate check"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckDuplicateResponse{Duplicate: duplicate})
}
