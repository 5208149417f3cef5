package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"facility_id",
	"court_id",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписаниями кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacilityAndCourt получает расписание для площадки и корта
// courtID == nil означает расписание для всех кортов площадки
func (r *Repository) GetByFacilityAndCourt(ctx context.Context, facilityID int64, courtID *int64) (*domain.CourtSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("court_schedules").
		Where(squirrel.Eq{"facility_id": facilityID})

	if courtID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *courtID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityAndCourt - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.CourtSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.FacilityID,
		&schedule.CourtID,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&schedule.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityAndCourt - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// GetScheduleWithHierarchy получает расписание с учетом иерархии приоритетов
// Приоритет применения:
// 1. Расписание конкретного корта (facilityID, courtID)
// 2. Расписание всей площадки (facilityID, NULL)
//
// Если расписание не найдено ни на одном уровне, возвращает ErrScheduleNotFound —
// вызывающая сторона подставляет встроенные дефолты
func (r *Repository) GetScheduleWithHierarchy(ctx context.Context, facilityID int64, courtID *int64) (*domain.CourtSchedule, error) {
	if courtID != nil {
		schedule, err := r.GetByFacilityAndCourt(ctx, facilityID, courtID)
		if err == nil {
			return schedule, nil
		}
		if err != ErrScheduleNotFound {
			return nil, fmt.Errorf("%w: GetScheduleWithHierarchy - court level: %v", ErrExecQuery, err)
		}
	}

	schedule, err := r.GetByFacilityAndCourt(ctx, facilityID, nil)
	if err == nil {
		return schedule, nil
	}
	if err != ErrScheduleNotFound {
		return nil, fmt.Errorf("%w: GetScheduleWithHierarchy - facility level: %v", ErrExecQuery, err)
	}

	return nil, ErrScheduleNotFound
}

// Upsert создает или обновляет расписание для пары (facility_id, court_id)
// Уникальность пары обеспечивается индексом, обновление идет через ON CONFLICT
func (r *Repository) Upsert(ctx context.Context, schedule *domain.CourtSchedule) (*domain.CourtSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("court_schedules").
		Columns(
			"facility_id",
			"court_id",
			"open_time",
			"close_time",
			"slot_duration_minutes",
		).
		Values(
			schedule.FacilityID,
			schedule.CourtID,
			schedule.OpenTime,
			schedule.CloseTime,
			schedule.SlotDurationMinutes,
		).
		Suffix(`ON CONFLICT (facility_id, COALESCE(court_id, 0)) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// Delete удаляет расписание по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("court_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}
