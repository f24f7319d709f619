package create_booking

import (
	"errors"
	"net/http"

	"github.com/avalonwc/AWC-BookingService/internal/api/handlers"
	createBooking "github.com/avalonwc/AWC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid scheduled date, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid booking details"
	msgPostcodeNotCovered = "this postcode is outside our service area"
	msgDateNotAvailable   = "the chosen date is not available for this postcode"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse scheduled date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPostcodeNotCovered):
			h.logger.Warn("POST /bookings - Postcode not covered: postcode=%s", req.Postcode)
			handlers.RespondError(w, http.StatusConflict, msgPostcodeNotCovered)

		case errors.Is(err, createBooking.ErrDateNotAvailable):
			h.logger.Warn("POST /bookings - Date not available: postcode=%s", req.Postcode)
			handlers.RespondError(w, http.StatusConflict, msgDateNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking request: postcode=%s, error=%v",
				req.Postcode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking request created: booking_id=%d, postcode=%s",
		result.ID, req.Postcode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
