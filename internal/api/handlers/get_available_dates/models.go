package get_available_dates

import (
	"github.com/avalonwc/AWC-BookingService/internal/domain"
	getAvailableDates "github.com/avalonwc/AWC-BookingService/internal/usecase/get_available_dates"
)

// Статусы подбора дат. Частичный индекс и отсутствие покрытия — ожидаемые
// состояния формы, а не ошибки, поэтому отдаются как 200 со статусом
const (
	StatusOK              = "OK"
	StatusNeedMoreInput   = "NEED_MORE_INPUT"
	StatusNotCovered      = "NOT_COVERED"
	StatusNoDatesInWindow = "NO_DATES_IN_WINDOW"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Status string   `json:"status"`
	Dates  []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &AvailableDatesResponse{
		Status: StatusOK,
		Dates:  dates,
	}
}

// EmptyResponse ответ с пустым списком дат и указанным статусом
func EmptyResponse(status string) *AvailableDatesResponse {
	return &AvailableDatesResponse{
		Status: status,
		Dates:  []string{},
	}
}
