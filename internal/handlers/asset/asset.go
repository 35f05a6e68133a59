// internal/handlers/asset/asset.go
package asset

import (
	"errors"
	"net/http"
	"strconv"

	"secad-service/internal/domain/asset"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/pkg/response"
	service "secad-service/internal/service/asset"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assetService *service.AssetService
}

func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// CreateAsset incorporates a new asset
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req asset.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.assetService.CreateAsset(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "failed to create asset")
		return
	}

	response.Success(c, http.StatusCreated, "asset created successfully", result)
}

// GetAsset retrieves an asset by id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	result, err := h.assetService.GetAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "failed to retrieve asset")
		return
	}

	response.Success(c, http.StatusOK, "asset retrieved", result)
}

// UpdateAsset merges the submitted fields into the record
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var req asset.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.assetService.UpdateAsset(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err, "failed to update asset")
		return
	}

	response.Success(c, http.StatusOK, "asset updated", result)
}

// TransferAsset moves an asset to another sector
func (h *AssetHandler) TransferAsset(c *gin.Context) {
	var req asset.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.assetService.TransferAsset(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err, "failed to transfer asset")
		return
	}

	response.Success(c, http.StatusOK, "asset transferred", result)
}

// RemoveAsset decommissions an asset (transfer to the removal sector)
func (h *AssetHandler) RemoveAsset(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.assetService.RemoveAsset(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		fail(c, err, "failed to remove asset")
		return
	}

	response.Success(c, http.StatusOK, "asset removed", result)
}

// ListAssets returns one page of the collection
func (h *AssetHandler) ListAssets(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := h.assetService.ListAssets(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, err, "failed to list assets")
		return
	}

	response.Success(c, http.StatusOK, "assets retrieved", result)
}

// SearchAssets filters the collection by the query parameters
func (h *AssetHandler) SearchAssets(c *gin.Context) {
	var filters asset.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid filters", err)
		return
	}
	page, pageSize := pageParams(c)

	result, err := h.assetService.SearchAssets(c.Request.Context(), filters, page, pageSize)
	if err != nil {
		fail(c, err, "failed to search assets")
		return
	}

	response.Success(c, http.StatusOK, "assets retrieved", result)
}

// Descriptions returns the distinct descriptions for autocomplete
func (h *AssetHandler) Descriptions(c *gin.Context) {
	result, err := h.assetService.Descriptions(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to list descriptions")
		return
	}

	response.Success(c, http.StatusOK, "descriptions retrieved", result)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "30"))
	return page, pageSize
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "asset not found")
	case errors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
