// internal/handlers/event/event.go
package event

import (
	"errors"
	"net/http"

	"secad-service/internal/domain/event"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/pkg/response"
	service "secad-service/internal/service/event"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent schedules a service order on the calendar
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "failed to create event")
		return
	}

	response.Success(c, http.StatusCreated, "event created successfully", result)
}

// GetEvent retrieves a service order by id
func (h *EventHandler) GetEvent(c *gin.Context) {
	result, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "failed to retrieve event")
		return
	}

	response.Success(c, http.StatusOK, "event retrieved", result)
}

// UpdateEvent merges the submitted fields into the record
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req event.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err, "failed to update event")
		return
	}

	response.Success(c, http.StatusOK, "event updated", result)
}

// DeleteEvent removes the service order
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "failed to delete event")
		return
	}

	response.Success(c, http.StatusOK, "event deleted", nil)
}

// ListEvents returns every service order
func (h *EventHandler) ListEvents(c *gin.Context) {
	result, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to list events")
		return
	}

	response.Success(c, http.StatusOK, "events retrieved", result)
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "event not found")
	case errors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
