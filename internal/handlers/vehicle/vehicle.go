// internal/handlers/vehicle/vehicle.go
package vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"secad-service/internal/domain/vehicle"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/pkg/response"
	service "secad-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
}

func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// CreateVehicle registers an impounded vehicle
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req vehicle.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.vehicleService.CreateVehicle(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "failed to create vehicle")
		return
	}

	response.Success(c, http.StatusCreated, "vehicle created successfully", result)
}

// GetVehicle retrieves a vehicle by id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	result, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "failed to retrieve vehicle")
		return
	}

	response.Success(c, http.StatusOK, "vehicle retrieved", result)
}

// UpdateVehicle merges the submitted fields into the record
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var req vehicle.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err, "failed to update vehicle")
		return
	}

	response.Success(c, http.StatusOK, "vehicle updated", result)
}

// SetReleaseDate records or clears the release of a vehicle
func (h *VehicleHandler) SetReleaseDate(c *gin.Context) {
	var req struct {
		ReleaseDate string `json:"release_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.vehicleService.SetReleaseDate(c.Request.Context(), c.Param("id"), req.ReleaseDate)
	if err != nil {
		fail(c, err, "failed to set release date")
		return
	}

	response.Success(c, http.StatusOK, "release date updated", result)
}

// DeleteVehicle removes a record permanently
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "failed to delete vehicle")
		return
	}

	response.Success(c, http.StatusOK, "vehicle deleted", nil)
}

// ListVehicles returns one page of the collection
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := h.vehicleService.ListVehicles(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, err, "failed to list vehicles")
		return
	}

	response.Success(c, http.StatusOK, "vehicles retrieved", result)
}

// SearchVehicles filters the collection by the query parameters
func (h *VehicleHandler) SearchVehicles(c *gin.Context) {
	var filters vehicle.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}
	page, pageSize := pageParams(c)

	result, err := h.vehicleService.SearchVehicles(c.Request.Context(), filters, page, pageSize)
	if err != nil {
		fail(c, err, "failed to search vehicles")
		return
	}

	response.Success(c, http.StatusOK, "vehicles retrieved", result)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "30"))
	return page, pageSize
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "vehicle not found")
	case errors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
