package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// psql построитель запросов с $N-плейсхолдерами PostgreSQL
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// bookingColumns колонки заявки в порядке сканирования
var bookingColumns = []string{
	"id",
	"customer_name",
	"email",
	"phone",
	"postcode",
	"address_line1",
	"town",
	"category",
	"property_type",
	"bedroom_band",
	"frequency",
	"has_conservatory",
	"has_extension",
	"gutter_clearing",
	"fascia_soffit_gutter",
	"subtotal_before_discount",
	"discount",
	"grand_total",
	"scheduled_date",
	"asap",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку. Снимок цены кладётся вместе с заявкой:
// последующие правки прайс-листа не переписывают уже отправленные сметы.
func (r *Repository) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	query, args, err := psql.Insert("booking_requests").
		Columns(
			"customer_name",
			"email",
			"phone",
			"postcode",
			"address_line1",
			"town",
			"category",
			"property_type",
			"bedroom_band",
			"frequency",
			"has_conservatory",
			"has_extension",
			"gutter_clearing",
			"fascia_soffit_gutter",
			"subtotal_before_discount",
			"discount",
			"grand_total",
			"scheduled_date",
			"asap",
			"status",
			"notes",
		).
		Values(
			req.CustomerName,
			req.Email,
			req.Phone,
			req.Postcode,
			req.AddressLine1,
			req.Town,
			req.Category,
			req.PropertyType,
			req.BedroomBand,
			req.Frequency,
			req.HasConservatory,
			req.HasExtension,
			req.GutterClearing,
			req.FasciaSoffitGutter,
			req.SubtotalBeforeDiscount,
			req.Discount,
			req.GrandTotal,
			req.ScheduledDate,
			req.ASAP,
			req.Status,
			req.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("booking_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	req, err := scanBookingRequest(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking request: %v", ErrScanRow, err)
	}

	return req, nil
}

// List получает заявки с гибкой фильтрацией: по статусу, по периоду первой
// уборки, по префиксу индекса; отменённые по умолчанию исключаются
func (r *Repository) List(ctx context.Context, filter domain.BookingRequestFilter) ([]*domain.BookingRequest, error) {
	selectBuilder := psql.Select(bookingColumns...).
		From("booking_requests")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"scheduled_date": *filter.EndDate})
	}
	if filter.Postcode != nil {
		selectBuilder = selectBuilder.Where(squirrel.Like{"postcode": *filter.Postcode + "%"})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.BookingRequest, 0)
	for rows.Next() {
		req, err := scanBookingRequest(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingRequestStatus) error {
	query, args, err := psql.Update("booking_requests").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет заявку с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingRequestStatus, reason string) error {
	query, args, err := psql.Update("booking_requests").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookingRequest сканирует одну строку заявки; принимает Scan от
// *sql.Row или *sql.Rows
func scanBookingRequest(scan func(dest ...interface{}) error) (*domain.BookingRequest, error) {
	var req domain.BookingRequest
	var scheduledDate, cancelledAt, createdAt, updatedAt sql.NullTime

	err := scan(
		&req.ID,
		&req.CustomerName,
		&req.Email,
		&req.Phone,
		&req.Postcode,
		&req.AddressLine1,
		&req.Town,
		&req.Category,
		&req.PropertyType,
		&req.BedroomBand,
		&req.Frequency,
		&req.HasConservatory,
		&req.HasExtension,
		&req.GutterClearing,
		&req.FasciaSoffitGutter,
		&req.SubtotalBeforeDiscount,
		&req.Discount,
		&req.GrandTotal,
		&scheduledDate,
		&req.ASAP,
		&req.Status,
		&req.Notes,
		&req.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if scheduledDate.Valid {
		req.ScheduledDate = &scheduledDate.Time
	}
	if cancelledAt.Valid {
		req.CancelledAt = &cancelledAt.Time
	}
	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
