package list_booking_requests

import (
	"errors"
	"net/http"

	"github.com/avalonwc/AWC-BookingService/internal/api/handlers"
	"github.com/avalonwc/AWC-BookingService/internal/service/bookings"
)

const (
	msgInvalidParams = "invalid query parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-requests
// Query params: status, startDate, endDate, postcode, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("postcode"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /booking-requests - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /booking-requests - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /booking-requests - Failed to list booking requests: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-requests - Booking requests retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
