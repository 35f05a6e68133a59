package asset

// CreateAssetRequest is the form payload for incorporating an asset.
type CreateAssetRequest struct {
	Sector            string  `json:"sector" binding:"required"`
	GeneralTag        string  `json:"general_tag" binding:"required"`
	LocalTag          string  `json:"local_tag" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	AssetClass        string  `json:"asset_class" binding:"required"`
	ConservationState string  `json:"conservation_state" binding:"required"`
	AcquisitionDate   string  `json:"acquisition_date" binding:"required"`
	IncorporationType string  `json:"incorporation_type" binding:"required"`
	AcquisitionValue  float64 `json:"acquisition_value"`
	EvaluationValue   float64 `json:"evaluation_value"`
	NetValue          float64 `json:"net_value"`
}

// UpdateAssetRequest carries the editable fields with merge semantics.
// Sector is deliberately absent: it only changes through the transfer
// operation so the history stays consistent.
type UpdateAssetRequest struct {
	GeneralTag        *string  `json:"general_tag"`
	LocalTag          *string  `json:"local_tag"`
	Description       *string  `json:"description"`
	AssetClass        *string  `json:"asset_class"`
	ConservationState *string  `json:"conservation_state"`
	AcquisitionDate   *string  `json:"acquisition_date"`
	IncorporationType *string  `json:"incorporation_type"`
	AcquisitionValue  *float64 `json:"acquisition_value"`
	EvaluationValue   *float64 `json:"evaluation_value"`
	NetValue          *float64 `json:"net_value"`
}

// TransferRequest moves an asset to another sector.
type TransferRequest struct {
	ToSector string `json:"to_sector" binding:"required"`
	Reason   string `json:"reason"`
}

// SearchFilters mirrors the search form; empty means "no constraint".
type SearchFilters struct {
	GeneralTag        string `form:"general_tag"`
	LocalTag          string `form:"local_tag"`
	Description       string `form:"description"`
	Sector            string `form:"sector"`
	AssetClass        string `form:"asset_class"`
	ConservationState string `form:"conservation_state"`
	AcquisitionFrom   string `form:"acquisition_from"`
	AcquisitionTo     string `form:"acquisition_to"`
	MinValue          string `form:"min_value"`
	MaxValue          string `form:"max_value"`
}

// ReportFilters narrows the report universe; both are optional.
type ReportFilters struct {
	Sector   string `form:"sector"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// ListResponse is a paginated window over a filtered asset set.
type ListResponse struct {
	Assets     []Asset `json:"assets"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}
