package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
	"github.com/Raular78/taxi-cash-register-sub000/internal/middleware"
)

// dailyRecordHandler handles HTTP requests for driver shift records.
type dailyRecordHandler struct {
	recordService portssvc.DailyRecordSvcFacade
}

// newDailyRecordHandler creates a new dailyRecordHandler.
func newDailyRecordHandler(rs portssvc.DailyRecordSvcFacade) *dailyRecordHandler {
	return &dailyRecordHandler{
		recordService: rs,
	}
}

// registerDailyRecordRoutes registers routes related to daily records.
func registerDailyRecordRoutes(rg *gin.RouterGroup, recordService portssvc.DailyRecordSvcFacade) {
	h := newDailyRecordHandler(recordService)

	records := rg.Group("/daily-records")
	{
		records.POST("", h.createDailyRecord)
		records.GET("", h.listDailyRecords)
		records.GET("/:id", h.getDailyRecordByID)
		records.PUT("/:id", h.updateDailyRecord)
		records.DELETE("/:id", h.deleteDailyRecord)
	}
}

// createDailyRecord godoc
// @Summary Create a daily record
// @Description Logs one driver shift with income split by payment channel
// @Tags daily-records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateDailyRecordRequest true "Shift details"
// @Success 201 {object} dto.DailyRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create daily record"
// @Security BearerAuth
// @Router /daily-records [post]
func (h *dailyRecordHandler) createDailyRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDailyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDailyRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.CreateDailyRecord(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create daily record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create daily record"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDailyRecordResponse(record))
}

// listDailyRecords godoc
// @Summary List daily records
// @Description Retrieves shift records within a date range
// @Tags daily-records
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListDailyRecordsResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to list daily records"
// @Security BearerAuth
// @Router /daily-records [get]
func (h *dailyRecordHandler) listDailyRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	records, err := h.recordService.ListDailyRecords(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list daily records", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list daily records"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListDailyRecordsResponse{Records: dto.ToListDailyRecordResponse(records)})
}

// getDailyRecordByID godoc
// @Summary Get a daily record by ID
// @Tags daily-records
// @Produce  json
// @Param   id path string true "Record ID"
// @Success 200 {object} dto.DailyRecordResponse
// @Failure 404 {object} map[string]string "Daily record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve daily record"
// @Security BearerAuth
// @Router /daily-records/{id} [get]
func (h *dailyRecordHandler) getDailyRecordByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	record, err := h.recordService.GetDailyRecordByID(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Daily record not found"})
		} else {
			logger.Error("Failed to get daily record", slog.String("record_id", recordID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve daily record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyRecordResponse(record))
}

// updateDailyRecord godoc
// @Summary Update a daily record
// @Tags daily-records
// @Accept  json
// @Produce  json
// @Param   id path string true "Record ID"
// @Param   record body dto.UpdateDailyRecordRequest true "Fields to update"
// @Success 200 {object} dto.DailyRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Daily record not found"
// @Failure 500 {object} map[string]string "Failed to update daily record"
// @Security BearerAuth
// @Router /daily-records/{id} [put]
func (h *dailyRecordHandler) updateDailyRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	var req dto.UpdateDailyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDailyRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.UpdateDailyRecord(c.Request.Context(), recordID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Daily record not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update daily record", slog.String("record_id", recordID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyRecordResponse(record))
}

// deleteDailyRecord godoc
// @Summary Delete a daily record
// @Tags daily-records
// @Produce  json
// @Param   id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Daily record not found"
// @Failure 500 {object} map[string]string "Failed to delete daily record"
// @Security BearerAuth
// @Router /daily-records/{id} [delete]
func (h *dailyRecordHandler) deleteDailyRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	if err := h.recordService.DeleteDailyRecord(c.Request.Context(), recordID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Daily record not found"})
		} else {
			logger.Error("Failed to delete daily record", slog.String("record_id", recordID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete daily record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
