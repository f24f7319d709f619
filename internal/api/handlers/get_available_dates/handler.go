package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/avalonwc/AWC-BookingService/internal/api/handlers"
	getAvailableDates "github.com/avalonwc/AWC-BookingService/internal/usecase/get_available_dates"
)

const (
	msgMissingPostcode = "postcode query parameter is required"
	msgInvalidInput    = "invalid postcode or address"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates?postcode=...&addressLine1=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	postcode := r.URL.Query().Get("postcode")
	addressLine1 := r.URL.Query().Get("addressLine1")

	if postcode == "" {
		h.logger.Warn("GET /available-dates - Missing postcode")
		handlers.RespondBadRequest(w, msgMissingPostcode)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		Postcode:     postcode,
		AddressLine1: addressLine1,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrNeedMoreInput):
			h.logger.Info("GET /available-dates - Need more input: postcode=%s", postcode)
			handlers.RespondJSON(w, http.StatusOK, EmptyResponse(StatusNeedMoreInput))

		case errors.Is(err, getAvailableDates.ErrNotCovered):
			h.logger.Info("GET /available-dates - Not covered: postcode=%s", postcode)
			handlers.RespondJSON(w, http.StatusOK, EmptyResponse(StatusNotCovered))

		case errors.Is(err, getAvailableDates.ErrNoDatesInWindow):
			h.logger.Warn("GET /available-dates - No dates in window: postcode=%s", postcode)
			handlers.RespondJSON(w, http.StatusOK, EmptyResponse(StatusNoDatesInWindow))

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-dates - Failed to resolve dates: postcode=%s, error=%v", postcode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-dates - Resolved %d dates: postcode=%s", len(result.Dates), postcode)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
