package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями к барберам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её
// Статус всегда задается вызывающей стороной (в норме - scheduled)
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"unit_id",
			"customer_id",
			"barber_id",
			"service_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"service_name",
			"service_price_cents",
		).
		Values(
			apt.UnitID,
			apt.CustomerID,
			apt.BarberID,
			apt.ServiceID,
			apt.AppointmentDate,
			apt.StartTime,
			apt.DurationMinutes,
			apt.Status,
			apt.ServiceName,
			apt.ServicePriceCents,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"customer_id",
		"barber_id",
		"service_id",
		"appointment_date",
		"start_time",
		"duration_minutes",
		"status",
		"service_name",
		"service_price_cents",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var apt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&apt.UnitID,
		&apt.CustomerID,
		&apt.BarberID,
		&apt.ServiceID,
		&apt.AppointmentDate,
		&apt.StartTime,
		&apt.DurationMinutes,
		&apt.Status,
		&apt.ServiceName,
		&apt.ServicePriceCents,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}

// GetByCustomerID получает записи клиента с присоединенными отображаемыми
// данными (название юнита, имя барбера), новые первыми
func (r *Repository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.unit_id",
		"a.customer_id",
		"a.barber_id",
		"a.service_id",
		"a.appointment_date",
		"a.start_time",
		"a.duration_minutes",
		"a.status",
		"a.service_name",
		"a.service_price_cents",
		"u.name AS unit_name",
		"COALESCE(bp.full_name, '') AS barber_name",
		"a.created_at",
		"a.updated_at",
	).
		From("appointments a").
		Join("units u ON u.id = a.unit_id").
		Join("barbers b ON b.id = a.barber_id").
		LeftJoin("profiles bp ON bp.id = b.profile_id").
		Where(squirrel.Eq{"a.customer_id": customerID}).
		OrderBy("a.appointment_date DESC", "a.start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		var apt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.UnitID,
			&apt.CustomerID,
			&apt.BarberID,
			&apt.ServiceID,
			&apt.AppointmentDate,
			&apt.StartTime,
			&apt.DurationMinutes,
			&apt.Status,
			&apt.ServiceName,
			&apt.ServicePriceCents,
			&apt.UnitName,
			&apt.BarberName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerID - scan appointment: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time
		apt.UpdatedAt = updatedAt.Time
		result = append(result, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByUnitAndDate получает записи юнита на календарный день по возрастанию
// времени начала, с именами барбера и клиента для панели администратора
func (r *Repository) GetByUnitAndDate(ctx context.Context, filter domain.UnitDayFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"a.id",
		"a.unit_id",
		"a.customer_id",
		"a.barber_id",
		"a.service_id",
		"a.appointment_date",
		"a.start_time",
		"a.duration_minutes",
		"a.status",
		"a.service_name",
		"a.service_price_cents",
		"COALESCE(bp.full_name, '') AS barber_name",
		"COALESCE(cp.full_name, '') AS customer_name",
		"COALESCE(cp.phone, '') AS customer_phone",
		"a.created_at",
		"a.updated_at",
	).
		From("appointments a").
		Join("barbers b ON b.id = a.barber_id").
		LeftJoin("profiles bp ON bp.id = b.profile_id").
		LeftJoin("profiles cp ON cp.id = a.customer_id").
		Where(squirrel.Eq{"a.unit_id": filter.UnitID}).
		Where(squirrel.Eq{"a.appointment_date": filter.Date}).
		OrderBy("a.start_time ASC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": string(domain.StatusCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnitAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnitAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		var apt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.UnitID,
			&apt.CustomerID,
			&apt.BarberID,
			&apt.ServiceID,
			&apt.AppointmentDate,
			&apt.StartTime,
			&apt.DurationMinutes,
			&apt.Status,
			&apt.ServiceName,
			&apt.ServicePriceCents,
			&apt.BarberName,
			&apt.CustomerName,
			&apt.CustomerPhone,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUnitAndDate - scan appointment: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time
		apt.UpdatedAt = updatedAt.Time
		result = append(result, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUnitAndDate - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetBookedIntervals получает занятые интервалы барбера на календарный день
// Отмененные записи слот не занимают и не учитываются
// Внутри транзакции строки блокируются FOR UPDATE - так usecase создания
// записи исключает двойное бронирование
func (r *Repository) GetBookedIntervals(ctx context.Context, barberID int64, date time.Time) ([]domain.BookedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"a.start_time",
		"a.duration_minutes",
	).
		From("appointments a").
		Where(squirrel.Eq{"a.barber_id": barberID}).
		Where(squirrel.Eq{"a.appointment_date": date}).
		Where(squirrel.NotEq{"a.status": string(domain.StatusCancelled)}).
		OrderBy("a.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.BookedInterval, 0)
	for rows.Next() {
		var interval domain.BookedInterval
		if err := rows.Scan(&interval.StartTime, &interval.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: GetBookedIntervals - scan interval: %v", ErrScanRow, err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
