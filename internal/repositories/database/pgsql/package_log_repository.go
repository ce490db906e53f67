package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	"github.com/campus-reslife/reslife_backend/internal/models"
	"github.com/campus-reslife/reslife_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPackageLogRepository owns the package_logs tables. Logs are write-once:
// the repository exposes no update or delete.
type PgxPackageLogRepository struct {
	BaseRepository
}

// NewPgxPackageLogRepository creates a new repository for audit log data.
func NewPgxPackageLogRepository(pool *pgxpool.Pool) *PgxPackageLogRepository {
	return &PgxPackageLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPackageLogRepository implements portsrepo.PackageLogRepositoryFacade
var _ portsrepo.PackageLogRepositoryFacade = (*PgxPackageLogRepository)(nil)

// SaveLog persists the log header, its building scope and all entries within
// a single database transaction. Either the whole log is written or none of it.
func (r *PgxPackageLogRepository) SaveLog(ctx context.Context, log domain.PackageLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO package_logs (package_log_id, created_by, created_at)
		VALUES ($1, $2, $3);
	`
	if _, err := tx.Exec(ctx, headerQuery, log.PackageLogID, log.CreatedBy, log.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to insert package log "+log.PackageLogID, err)
	}

	batch := &pgx.Batch{}

	buildingQuery := `
		INSERT INTO package_log_buildings (package_log_id, building_id)
		VALUES ($1, $2);
	`
	for _, buildingID := range log.BuildingIDs {
		batch.Queue(buildingQuery, log.PackageLogID, buildingID)
	}

	entryQuery := `
		INSERT INTO package_log_entries (package_log_id, package_id, present, entry_seq)
		VALUES ($1, $2, $3, $4);
	`
	for i, entry := range log.Entries {
		batch.Queue(entryQuery, log.PackageLogID, entry.PackageID, entry.Present, i)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute entry batch for package log "+log.PackageLogID, err)
	}

	return r.Commit(ctx, tx)
}

// FindLogByID retrieves a log with its building scope and entries in their
// captured order.
func (r *PgxPackageLogRepository) FindLogByID(ctx context.Context, packageLogID string) (*domain.PackageLog, error) {
	query := `
		SELECT package_log_id, created_by, created_at
		FROM package_logs
		WHERE package_log_id = $1;
	`
	var m models.PackageLog
	err := r.Pool.QueryRow(ctx, query, packageLogID).Scan(&m.PackageLogID, &m.CreatedBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find package log by ID "+packageLogID, err)
	}

	buildingsMap, err := r.findBuildingsByLogIDs(ctx, []string{packageLogID})
	if err != nil {
		return nil, err
	}
	entriesMap, err := r.findEntriesByLogIDs(ctx, []string{packageLogID})
	if err != nil {
		return nil, err
	}

	log := domain.PackageLog{
		PackageLogID: m.PackageLogID,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		BuildingIDs:  buildingsMap[packageLogID],
		Entries:      entriesMap[packageLogID],
	}
	return &log, nil
}

// ListLogs retrieves a filtered page of logs ordered by created_at
// descending, with scope and entries populated, plus the total row count.
func (r *PgxPackageLogRepository) ListLogs(ctx context.Context, filters portsrepo.PackageLogListFilters, limit, offset int) ([]domain.PackageLog, int64, error) {
	if limit <= 0 {
		limit = 20
	}

	baseFrom := ` FROM package_logs l JOIN staff st ON l.created_by = st.staff_id`

	clauses := []string{}
	args := []interface{}{}

	if filters.StaffName != "" {
		pattern := "%" + filters.StaffName + "%"
		args = append(args, pattern)
		n := strconv.Itoa(len(args))
		clauses = append(clauses, `(st.first_name ILIKE $`+n+` OR st.last_name ILIKE $`+n+`)`)
	}
	if len(filters.BuildingIDs) > 0 {
		args = append(args, filters.BuildingIDs)
		clauses = append(clauses, `l.package_log_id IN (
			SELECT package_log_id FROM package_log_buildings WHERE building_id = ANY($`+strconv.Itoa(len(args))+`))`)
	}

	whereClause := ""
	if len(clauses) > 0 {
		whereClause = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*)` + baseFrom + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count package logs", err)
	}

	args = append(args, limit)
	limitPos := strconv.Itoa(len(args))
	args = append(args, offset)
	offsetPos := strconv.Itoa(len(args))

	query := `SELECT l.package_log_id, l.created_by, l.created_at` + baseFrom + whereClause +
		` ORDER BY l.created_at DESC, l.package_log_id DESC LIMIT $` + limitPos + ` OFFSET $` + offsetPos + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query package logs", err)
	}
	defer rows.Close()

	modelLogs := make([]models.PackageLog, 0, limit)
	for rows.Next() {
		var m models.PackageLog
		if err := rows.Scan(&m.PackageLogID, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan package log row", err)
		}
		modelLogs = append(modelLogs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating package log rows", err)
	}

	logIDs := make([]string, len(modelLogs))
	for i, m := range modelLogs {
		logIDs[i] = m.PackageLogID
	}

	buildingsMap, err := r.findBuildingsByLogIDs(ctx, logIDs)
	if err != nil {
		return nil, 0, err
	}
	entriesMap, err := r.findEntriesByLogIDs(ctx, logIDs)
	if err != nil {
		return nil, 0, err
	}

	logs := make([]domain.PackageLog, len(modelLogs))
	for i, m := range modelLogs {
		logs[i] = domain.PackageLog{
			PackageLogID: m.PackageLogID,
			CreatedBy:    m.CreatedBy,
			CreatedAt:    m.CreatedAt,
			BuildingIDs:  buildingsMap[m.PackageLogID],
			Entries:      entriesMap[m.PackageLogID],
		}
	}

	return logs, total, nil
}

// findBuildingsByLogIDs fetches building scopes for several logs at once.
func (r *PgxPackageLogRepository) findBuildingsByLogIDs(ctx context.Context, logIDs []string) (map[string][]string, error) {
	if len(logIDs) == 0 {
		return map[string][]string{}, nil
	}

	query := `
		SELECT package_log_id, building_id
		FROM package_log_buildings
		WHERE package_log_id = ANY($1)
		ORDER BY package_log_id, building_id;
	`
	rows, err := r.Pool.Query(ctx, query, logIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query package log buildings", err)
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var m models.PackageLogBuilding
		if err := rows.Scan(&m.PackageLogID, &m.BuildingID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan package log building row", err)
		}
		result[m.PackageLogID] = append(result[m.PackageLogID], m.BuildingID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating package log building rows", err)
	}

	return result, nil
}

// findEntriesByLogIDs fetches entries for several logs at once, ordered by
// their captured sequence.
func (r *PgxPackageLogRepository) findEntriesByLogIDs(ctx context.Context, logIDs []string) (map[string][]domain.PackageLogEntry, error) {
	if len(logIDs) == 0 {
		return map[string][]domain.PackageLogEntry{}, nil
	}

	query := `
		SELECT package_log_id, package_id, present, entry_seq
		FROM package_log_entries
		WHERE package_log_id = ANY($1)
		ORDER BY package_log_id, entry_seq;
	`
	rows, err := r.Pool.Query(ctx, query, logIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query package log entries", err)
	}
	defer rows.Close()

	modelEntries := make(map[string][]models.PackageLogEntry)
	for rows.Next() {
		var m models.PackageLogEntry
		if err := rows.Scan(&m.PackageLogID, &m.PackageID, &m.Present, &m.EntrySeq); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan package log entry row", err)
		}
		modelEntries[m.PackageLogID] = append(modelEntries[m.PackageLogID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating package log entry rows", err)
	}

	result := make(map[string][]domain.PackageLogEntry, len(modelEntries))
	for logID, ms := range modelEntries {
		result[logID] = mapping.ToDomainLogEntrySlice(ms)
	}
	return result, nil
}
