package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
	"github.com/Raular78/taxi-cash-register-sub000/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportHandler handles HTTP requests for quarterly summaries.
type reportHandler struct {
	reportService portssvc.ReportSvc
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvc) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers routes related to quarterly reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvc) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/quarterly", h.getQuarterlySummary)
		reports.GET("/quarterly/export", h.exportQuarterlyXLSX)
	}
}

func (h *reportHandler) parseQuarterParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, 0, false
	}
	quarter, err := strconv.Atoi(c.Query("quarter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quarter"})
		return 0, 0, false
	}
	return year, quarter, true
}

// getQuarterlySummary godoc
// @Summary Get the quarterly summary
// @Description Combines income totals with the unified expense breakdown for one calendar quarter
// @Tags reports
// @Produce  json
// @Param   year query int true "Year"
// @Param   quarter query int true "Quarter (1-4)"
// @Success 200 {object} dto.QuarterlyReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to build quarterly summary"
// @Security BearerAuth
// @Router /reports/quarterly [get]
func (h *reportHandler) getQuarterlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, quarter, ok := h.parseQuarterParams(c)
	if !ok {
		return
	}

	report, err := h.reportService.QuarterlySummary(c.Request.Context(), year, quarter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build quarterly summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build quarterly summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuarterlyReportResponse(report))
}

// exportQuarterlyXLSX godoc
// @Summary Export the quarterly summary as an Excel workbook
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   year query int true "Year"
// @Param   quarter query int true "Quarter (1-4)"
// @Success 200 {file} file "Workbook attachment"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to export quarterly summary"
// @Security BearerAuth
// @Router /reports/quarterly/export [get]
func (h *reportHandler) exportQuarterlyXLSX(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, quarter, ok := h.parseQuarterParams(c)
	if !ok {
		return
	}

	workbook, err := h.reportService.ExportQuarterlyXLSX(c.Request.Context(), year, quarter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to export quarterly summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export quarterly summary"})
		}
		return
	}

	filename := fmt.Sprintf("resumen_%dT%d.xlsx", quarter, year)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
