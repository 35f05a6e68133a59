package vehicle

// CreateVehicleRequest is the form payload for registering a vehicle.
// Registration number handling is a two-mode toggle: when UseExternalNumber
// is set the caller supplies ExternalNumber (a positive integer, as printed
// on the Detran paperwork); otherwise the service allocates the next number.
type CreateVehicleRequest struct {
	UseExternalNumber bool   `json:"use_external_number"`
	ExternalNumber    string `json:"external_number"`

	Plate              string `json:"plate"`
	State              string `json:"state"`
	InspectionDate     string `json:"inspection_date" binding:"required"`
	Brand              string `json:"brand" binding:"required"`
	Model              string `json:"model" binding:"required"`
	VehicleType        string `json:"vehicle_type" binding:"required"`
	HasKey             bool   `json:"has_key"`
	ChassisObservation string `json:"chassis_observation"`
	City               string `json:"city" binding:"required"`
	BouTrv             string `json:"bou_trv"`
	HasNoPlate         bool   `json:"has_no_plate"`
}

// UpdateVehicleRequest carries the editable fields; nil pointers are left
// untouched (merge semantics, matching the store's field-level update).
type UpdateVehicleRequest struct {
	UseExternalNumber *bool   `json:"use_external_number"`
	ExternalNumber    *string `json:"external_number"`

	Plate              *string `json:"plate"`
	State              *string `json:"state"`
	InspectionDate     *string `json:"inspection_date"`
	ReleaseDate        *string `json:"release_date"`
	Brand              *string `json:"brand"`
	Model              *string `json:"model"`
	VehicleType        *string `json:"vehicle_type"`
	HasKey             *bool   `json:"has_key"`
	ChassisObservation *string `json:"chassis_observation"`
	City               *string `json:"city"`
	BouTrv             *string `json:"bou_trv"`
	HasNoPlate         *bool   `json:"has_no_plate"`
}

// SearchFilters mirrors the search form. Empty strings mean "no constraint".
// Released is a tri-state: "" (any), "true", "false".
type SearchFilters struct {
	RegistrationNumber string `form:"registration_number"`
	Plate              string `form:"plate"`
	City               string `form:"city"`
	VehicleType        string `form:"vehicle_type"`
	State              string `form:"state"`
	Brand              string `form:"brand"`
	Model              string `form:"model"`
	HasKey             string `form:"has_key"`
	Released           string `form:"released"`
	BouTrv             string `form:"bou_trv"`
	HasNoPlate         bool   `form:"has_no_plate"`
	InspectionFrom     string `form:"inspection_from"`
	InspectionTo       string `form:"inspection_to"`
	ReleaseFrom        string `form:"release_from"`
	ReleaseTo          string `form:"release_to"`
}

// ReportFilters narrows the report universe; both are optional.
type ReportFilters struct {
	City     string `form:"city"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// ListResponse is a paginated window over a filtered vehicle set.
type ListResponse struct {
	Vehicles   []Vehicle `json:"vehicles"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
