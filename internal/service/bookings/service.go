package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
	bookingRepo "github.com/avalonwc/AWC-BookingService/internal/infra/storage/booking"
	"github.com/avalonwc/AWC-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с заявками на уборку
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking request id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking request id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking request id=%d", id)
	return models.FromDomainBookingRequest(booking), nil
}

// List получает заявки с фильтрацией по статусу, периоду первой уборки и
// префиксу индекса
func (s *Service) List(ctx context.Context, req *models.ListBookingRequestsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching booking requests")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d booking requests", len(bookings))
	return models.FromDomainBookingRequests(bookings), nil
}

// Cancel отменяет заявку. Отменить можно только заявки в статусах
// received и confirmed
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking request id=%d", bookingID)

	if strings.TrimSpace(req.CancellationReason) == "" {
		s.logger.Warn("Cancel: missing cancellation reason for booking request id=%d", bookingID)
		return fmt.Errorf("%w: cancellationReason is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking request id=%d", bookingID)
		return fmt.Errorf("%w: cancellationReason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// Получаем заявку
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking request id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking request id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить заявку
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking request id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	cancelStatus := domain.StatusCancelledByCompany
	if req.ByCustomer {
		cancelStatus = domain.StatusCancelledByUser
	}

	// Отменяем заявку
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking request id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking request id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking request id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус заявки (подтверждение, завершение)
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking request id=%d to status=%s", bookingID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking request id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Отмена идёт через Cancel: там проверяется статус и пишется причина
	if newStatus == domain.StatusCancelledByUser || newStatus == domain.StatusCancelledByCompany {
		s.logger.Warn("UpdateStatus: cancellation requested via status update for booking request id=%d", bookingID)
		return fmt.Errorf("%w: use the cancel endpoint for cancellations", ErrInvalidInput)
	}

	// Получаем заявку
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking request id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking request id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Warn("UpdateStatus: booking request id=%d is cancelled, status=%s", bookingID, booking.Status)
		return fmt.Errorf("%w: booking request is cancelled", ErrInvalidStatus)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking request id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking request id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking request id=%d to status=%s", bookingID, newStatus)
	return nil
}
