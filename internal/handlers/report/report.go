// internal/handlers/report/report.go
package report

import (
	"errors"
	"net/http"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/vehicle"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/pkg/response"
	service "secad-service/internal/service/report"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// VehicleStats returns the aggregate view over the filtered vehicle set
func (h *ReportHandler) VehicleStats(c *gin.Context) {
	var filters vehicle.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	result, err := h.reportService.VehicleStats(c.Request.Context(), filters)
	if err != nil {
		fail(c, err, "failed to compute vehicle statistics")
		return
	}

	response.Success(c, http.StatusOK, "statistics computed", result)
}

// AssetStats returns the aggregate view over the filtered asset set
func (h *ReportHandler) AssetStats(c *gin.Context) {
	var filters asset.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	result, err := h.reportService.AssetStats(c.Request.Context(), filters)
	if err != nil {
		fail(c, err, "failed to compute asset statistics")
		return
	}

	response.Success(c, http.StatusOK, "statistics computed", result)
}

// VehiclePDF streams the printable vehicle report
func (h *ReportHandler) VehiclePDF(c *gin.Context) {
	var filters vehicle.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	pdf, err := h.reportService.VehiclePDF(c.Request.Context(), filters)
	if err != nil {
		fail(c, err, "failed to render vehicle report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="relatorio_veiculos.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// AssetPDF streams the printable asset report
func (h *ReportHandler) AssetPDF(c *gin.Context) {
	var filters asset.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	pdf, err := h.reportService.AssetPDF(c.Request.Context(), filters)
	if err != nil {
		fail(c, err, "failed to render asset report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="relatorio_bens.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// VehicleXLSX streams the vehicle workbook export
func (h *ReportHandler) VehicleXLSX(c *gin.Context) {
	var filters vehicle.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	book, err := h.reportService.VehicleXLSX(c.Request.Context(), filters)
	if err != nil {
		fail(c, err, "failed to render vehicle workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="veiculos.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

// AssetXLSX streams the asset workbook export
func (h *ReportHandler) AssetXLSX(c *gin.Context) {
	var filters asset.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	book, err := h.reportService.AssetXLSX(c.Request.Context(), filters)
	if err != nil {
		fail(c, err, "failed to render asset workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bens.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

// VehicleChart streams one PNG chart; the dimension is a path parameter
func (h *ReportHandler) VehicleChart(c *gin.Context) {
	var filters vehicle.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	png, err := h.reportService.VehicleChart(c.Request.Context(), filters, c.Param("dimension"))
	if err != nil {
		fail(c, err, "failed to render chart")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// AssetChart streams one PNG chart; the dimension is a path parameter
func (h *ReportHandler) AssetChart(c *gin.Context) {
	var filters asset.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}

	png, err := h.reportService.AssetChart(c.Request.Context(), filters, c.Param("dimension"))
	if err != nil {
		fail(c, err, "failed to render chart")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
