package event

// CreateEventRequest is the form payload for a new service order.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	OrderNumber string `json:"order_number" binding:"required"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
}

// UpdateEventRequest edits an existing service order; the color never
// changes after creation.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	OrderNumber *string `json:"order_number"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}
