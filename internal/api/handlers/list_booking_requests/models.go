package list_booking_requests

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
	"github.com/avalonwc/AWC-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	statusStr string,
	startDateStr string,
	endDateStr string,
	postcodeStr string,
	includeInactiveStr string,
) (*models.ListBookingRequestsRequest, error) {
	req := &models.ListBookingRequestsRequest{
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим startDate если указана
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	// Парсим postcode если указан
	if postcodeStr != "" {
		req.Postcode = &postcodeStr
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
