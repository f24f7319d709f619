package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
	"github.com/avalonwc/AWC-BookingService/internal/integrations/notify"
	"github.com/avalonwc/AWC-BookingService/internal/usecase/calculate_quote"
	"github.com/avalonwc/AWC-BookingService/internal/usecase/get_available_dates"
	"github.com/avalonwc/AWC-BookingService/pkg/ptr"
)

// UseCase use case для создания заявки на уборку
type UseCase struct {
	bookingRepo  BookingRepository
	quoteCalc    QuoteCalculator
	dateResolver DateResolver
	notifyClient NotifyClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	quoteCalc QuoteCalculator,
	dateResolver DateResolver,
	notifyClient NotifyClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		quoteCalc:    quoteCalc,
		dateResolver: dateResolver,
		notifyClient: notifyClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки.
// Смета пересчитывается на сервере, выбранная дата сверяется со списком
// предложенных для этого индекса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: postcode=%s, category=%s, frequency=%s, asap=%t",
		req.Postcode, req.Category, req.Frequency, req.ASAP)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Пересчитываем смету на сервере
	quote, err := uc.quoteCalc.Execute(ctx, &calculate_quote.Request{
		Category:           req.Category,
		PropertyType:       req.PropertyType,
		BedroomBand:        req.BedroomBand,
		Frequency:          req.Frequency,
		HasConservatory:    req.HasConservatory,
		HasExtension:       req.HasExtension,
		GutterClearing:     req.GutterClearing,
		FasciaSoffitGutter: req.FasciaSoffitGutter,
	})
	if err != nil {
		if errors.Is(err, calculate_quote.ErrInvalidInput) || errors.Is(err, calculate_quote.ErrUnknownTier) {
			uc.logger.Warn("CreateBooking: quote calculation rejected input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateBooking: failed to calculate quote: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate quote: %v", ErrInternal, err)
	}

	// 3. Проверяем покрытие индекса и доступность выбранной даты
	dates, err := uc.dateResolver.Execute(ctx, &get_available_dates.Request{
		Postcode:     req.Postcode,
		AddressLine1: req.AddressLine1,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_available_dates.ErrNotCovered):
			uc.logger.Warn("CreateBooking: postcode=%s not covered", req.Postcode)
			return nil, ErrPostcodeNotCovered
		case errors.Is(err, get_available_dates.ErrNeedMoreInput):
			// Для заявки нужен полный индекс, частичный не принимаем
			uc.logger.Warn("CreateBooking: postcode=%s too short", req.Postcode)
			return nil, fmt.Errorf("%w: full postcode is required", ErrInvalidInput)
		case errors.Is(err, get_available_dates.ErrNoDatesInWindow):
			// Дат в окне нет: конкретную дату выбрать нельзя, ASAP — можно
			if req.ScheduledDate != nil {
				uc.logger.Warn("CreateBooking: no dates in window for postcode=%s", req.Postcode)
				return nil, ErrDateNotAvailable
			}
			dates = &get_available_dates.Response{}
		case errors.Is(err, get_available_dates.ErrInvalidInput):
			uc.logger.Warn("CreateBooking: date resolution rejected input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateBooking: failed to resolve dates: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve dates: %v", ErrInternal, err)
		}
	}

	// 4. Выбранная дата должна входить в список предложенных
	if req.ScheduledDate != nil && !containsDate(dates.Dates, *req.ScheduledDate) {
		uc.logger.Warn("CreateBooking: date %s not available for postcode=%s",
			req.ScheduledDate.Format(domain.DateFormat), req.Postcode)
		return nil, ErrDateNotAvailable
	}

	// 5. Собираем заявку со снимком цен: последующие изменения каталога
	// не переписывают уже разосланные сметы
	booking := &domain.BookingRequest{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Postcode:     req.Postcode,
		AddressLine1: req.AddressLine1,
		Town:         req.Town,

		Category:           req.Category,
		PropertyType:       req.PropertyType,
		BedroomBand:        req.BedroomBand,
		Frequency:          req.Frequency,
		HasConservatory:    req.HasConservatory,
		HasExtension:       req.HasExtension,
		GutterClearing:     req.GutterClearing,
		FasciaSoffitGutter: req.FasciaSoffitGutter,

		SubtotalBeforeDiscount: quote.SubtotalBeforeDiscount,
		Discount:               quote.Discount,
		GrandTotal:             quote.GrandTotal,

		ScheduledDate: req.ScheduledDate,
		ASAP:          req.ASAP,

		Status: domain.StatusReceived,
		Notes:  req.Notes,
	}

	// 6. Сохраняем заявку
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking request: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking request: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking request id=%d", created.ID)

	// 7. Отправляем письмо со сметой. Релей не критичен: заявка уже
	// сохранена, при сбое только логируем
	if uc.notifyClient != nil {
		if err := uc.notifyClient.SendQuoteWithGracefulDegradation(ctx, buildQuoteEmail(created, quote)); err != nil {
			uc.logger.Warn("CreateBooking: quote email not sent for booking id=%d: %v", created.ID, err)
		}
	}

	// Конвертируем в response
	return &Response{
		ID:           created.ID,
		CustomerName: created.CustomerName,
		Email:        created.Email,
		Postcode:     created.Postcode,
		AddressLine1: created.AddressLine1,

		Lines:                  quote.Lines,
		SubtotalBeforeDiscount: created.SubtotalBeforeDiscount,
		Discount:               created.Discount,
		GrandTotal:             created.GrandTotal,

		ScheduledDate: created.ScheduledDate,
		ASAP:          created.ASAP,

		Status: string(created.Status),

		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}

// buildQuoteEmail собирает полезную нагрузку письма из заявки и сметы
func buildQuoteEmail(booking *domain.BookingRequest, quote *calculate_quote.Response) *notify.QuoteEmail {
	lines := make([]notify.QuoteLine, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, notify.QuoteLine{Label: line.Label, Amount: line.Amount})
	}

	var scheduledDate *string
	if booking.ScheduledDate != nil {
		scheduledDate = ptr.Ptr(booking.ScheduledDate.Format(domain.DateFormat))
	}

	return &notify.QuoteEmail{
		To:           booking.Email,
		CustomerName: booking.CustomerName,
		Postcode:     booking.Postcode,
		AddressLine1: booking.AddressLine1,

		Frequency: booking.Frequency.Label(),

		Lines:                  lines,
		SubtotalBeforeDiscount: booking.SubtotalBeforeDiscount,
		Discount:               booking.Discount,
		GrandTotal:             booking.GrandTotal,

		ScheduledDate: scheduledDate,
		ASAP:          booking.ASAP,
	}
}
