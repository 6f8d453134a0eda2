package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных: юниты, услуги, барберы
// Данные read-only со стороны сервиса - записи в эти таблицы не выполняются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочных данных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListUnits возвращает все юниты сети, отсортированные по названию
func (r *Repository) ListUnits(ctx context.Context) ([]*domain.Unit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"COALESCE(address, '')",
		"COALESCE(city, '')",
		"COALESCE(photo_path, '')",
	).
		From("units").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUnits - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnits - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	units := make([]*domain.Unit, 0)
	for rows.Next() {
		var unit domain.Unit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.Address, &unit.City, &unit.PhotoPath); err != nil {
			return nil, fmt.Errorf("%w: ListUnits - scan unit: %v", ErrScanRow, err)
		}
		units = append(units, &unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUnits - rows error: %v", ErrScanRow, err)
	}

	return units, nil
}

// GetUnit возвращает юнит по ID
func (r *Repository) GetUnit(ctx context.Context, unitID int64) (*domain.Unit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"COALESCE(address, '')",
		"COALESCE(city, '')",
		"COALESCE(photo_path, '')",
	).
		From("units").
		Where(squirrel.Eq{"id": unitID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUnit - build select query: %v", ErrBuildQuery, err)
	}

	var unit domain.Unit
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&unit.ID, &unit.Name, &unit.Address, &unit.City, &unit.PhotoPath,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnit - scan unit: %v", ErrScanRow, err)
	}

	return &unit, nil
}

// ListServicesByUnit возвращает услуги, доступные в юните, по названию
func (r *Repository) ListServicesByUnit(ctx context.Context, unitID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.name",
		"s.duration_minutes",
		"s.price_cents",
	).
		From("unit_services us").
		Join("services s ON s.id = us.service_id").
		Where(squirrel.Eq{"us.unit_id": unitID}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByUnit - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByUnit - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// ListAllServices возвращает все услуги сети, отсортированные по названию
func (r *Repository) ListAllServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price_cents",
	).
		From("services").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAllServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAllServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// GetService возвращает услугу по ID, проверяя её доступность в юните
func (r *Repository) GetService(ctx context.Context, unitID, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.name",
		"s.duration_minutes",
		"s.price_cents",
	).
		From("unit_services us").
		Join("services s ON s.id = us.service_id").
		Where(squirrel.Eq{"us.unit_id": unitID}).
		Where(squirrel.Eq{"us.service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID, &svc.Name, &svc.DurationMinutes, &svc.PriceCents,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// ListBarbersByUnit возвращает барберов юнита с именем из связанного профиля
func (r *Repository) ListBarbersByUnit(ctx context.Context, unitID int64) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.profile_id",
		"COALESCE(p.full_name, '')",
		"COALESCE(b.bio, '')",
		"COALESCE(b.avatar_path, '')",
	).
		From("barber_units bu").
		Join("barbers b ON b.id = bu.barber_id").
		LeftJoin("profiles p ON p.id = b.profile_id").
		Where(squirrel.Eq{"bu.unit_id": unitID}).
		OrderBy("p.full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbersByUnit - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbersByUnit - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var barber domain.Barber
		if err := rows.Scan(&barber.ID, &barber.ProfileID, &barber.Name, &barber.Bio, &barber.AvatarPath); err != nil {
			return nil, fmt.Errorf("%w: ListBarbersByUnit - scan barber: %v", ErrScanRow, err)
		}
		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBarbersByUnit - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetBarber возвращает барбера по ID, проверяя его назначение в юнит
func (r *Repository) GetBarber(ctx context.Context, unitID, barberID int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.profile_id",
		"COALESCE(p.full_name, '')",
		"COALESCE(b.bio, '')",
		"COALESCE(b.avatar_path, '')",
	).
		From("barber_units bu").
		Join("barbers b ON b.id = bu.barber_id").
		LeftJoin("profiles p ON p.id = b.profile_id").
		Where(squirrel.Eq{"bu.unit_id": unitID}).
		Where(squirrel.Eq{"bu.barber_id": barberID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID, &barber.ProfileID, &barber.Name, &barber.Bio, &barber.AvatarPath,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - scan barber: %v", ErrScanRow, err)
	}

	return &barber, nil
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.DurationMinutes, &svc.PriceCents); err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
