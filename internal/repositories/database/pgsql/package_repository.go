package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	"github.com/campus-reslife/reslife_backend/internal/models"
	"github.com/campus-reslife/reslife_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPackageRepository owns the packages table.
type PgxPackageRepository struct {
	BaseRepository
}

// NewPgxPackageRepository creates a new repository for package data.
func NewPgxPackageRepository(pool *pgxpool.Pool) *PgxPackageRepository {
	return &PgxPackageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPackageRepository implements portsrepo.PackageRepositoryFacade
var _ portsrepo.PackageRepositoryFacade = (*PgxPackageRepository)(nil)

const packageColumns = `
	package_id, tracking_number, recipient_id, building_id, staff_id,
	parcel_type, shipping_type, mail_room, storage_location,
	email_receipt_from, description, comments, received_at, status, version,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPackage(row pgx.Row) (*models.Package, error) {
	var m models.Package
	err := row.Scan(
		&m.PackageID,
		&m.TrackingNumber,
		&m.RecipientID,
		&m.BuildingID,
		&m.StaffID,
		&m.ParcelType,
		&m.ShippingType,
		&m.MailRoom,
		&m.StorageLocation,
		&m.EmailReceiptFrom,
		&m.Description,
		&m.Comments,
		&m.ReceivedAt,
		&m.Status,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SavePackage persists a newly received package.
func (r *PgxPackageRepository) SavePackage(ctx context.Context, pkg domain.Package) error {
	m := mapping.ToModelPackage(pkg)
	query := `
		INSERT INTO packages (` + packageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PackageID,
		m.TrackingNumber,
		m.RecipientID,
		m.BuildingID,
		m.StaffID,
		m.ParcelType,
		m.ShippingType,
		m.MailRoom,
		m.StorageLocation,
		m.EmailReceiptFrom,
		m.Description,
		m.Comments,
		m.ReceivedAt,
		m.Status,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert package "+m.PackageID, err)
	}
	return nil
}

// FindPackageByID retrieves a package by its ID.
func (r *PgxPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE package_id = $1;`

	m, err := scanPackage(r.Pool.QueryRow(ctx, query, packageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find package by ID "+packageID, err)
	}

	d := mapping.ToDomainPackage(*m)
	return &d, nil
}

// FindPackagesByIDs retrieves the packages for the given ids, keyed by id.
func (r *PgxPackageRepository) FindPackagesByIDs(ctx context.Context, packageIDs []string) (map[string]domain.Package, error) {
	if len(packageIDs) == 0 {
		return map[string]domain.Package{}, nil
	}

	query := `SELECT ` + packageColumns + ` FROM packages WHERE package_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, packageIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query packages by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Package, len(packageIDs))
	for rows.Next() {
		m, err := scanPackage(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan package row during batch fetch", err)
		}
		result[m.PackageID] = mapping.ToDomainPackage(*m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating package rows during batch fetch", err)
	}

	return result, nil
}

// buildListFilterClauses renders filter conditions for ListPackages, joining
// students when the free-text search needs recipient fields.
func buildListFilterClauses(filters portsrepo.PackageListFilters, args []interface{}) ([]string, []interface{}) {
	clauses := []string{}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		args = append(args, pattern)
		n := strconv.Itoa(len(args))
		clauses = append(clauses, `(s.first_name ILIKE $`+n+` OR s.last_name ILIKE $`+n+` OR s.student_number ILIKE $`+n+` OR p.tracking_number ILIKE $`+n+`)`)
	}
	if len(filters.BuildingIDs) > 0 {
		args = append(args, filters.BuildingIDs)
		clauses = append(clauses, `p.building_id = ANY($`+strconv.Itoa(len(args))+`)`)
	}
	if filters.Status != "" {
		args = append(args, string(filters.Status))
		clauses = append(clauses, `p.status = $`+strconv.Itoa(len(args)))
	}
	if filters.StudentID != "" {
		args = append(args, filters.StudentID)
		clauses = append(clauses, `p.recipient_id = $`+strconv.Itoa(len(args)))
	}

	return clauses, args
}

// ListPackages retrieves a filtered page of packages and the total row count
// for the filter. Ordering is stable: received_at descending with package_id
// descending as tie-breaker.
func (r *PgxPackageRepository) ListPackages(ctx context.Context, filters portsrepo.PackageListFilters, limit, offset int) ([]domain.Package, int64, error) {
	if limit <= 0 {
		limit = 20
	}

	baseFrom := ` FROM packages p JOIN students s ON p.recipient_id = s.student_id`

	clauses, args := buildListFilterClauses(filters, nil)
	whereClause := ""
	if len(clauses) > 0 {
		whereClause = " WHERE " + strings.Join(clauses, " AND ")
	}

	// Count first so the caller can report total pages.
	var total int64
	countQuery := `SELECT COUNT(*)` + baseFrom + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count packages", err)
	}

	args = append(args, limit)
	limitPos := strconv.Itoa(len(args))
	args = append(args, offset)
	offsetPos := strconv.Itoa(len(args))

	query := `SELECT p.package_id, p.tracking_number, p.recipient_id, p.building_id, p.staff_id,
		p.parcel_type, p.shipping_type, p.mail_room, p.storage_location,
		p.email_receipt_from, p.description, p.comments, p.received_at, p.status, p.version,
		p.created_at, p.created_by, p.last_updated_at, p.last_updated_by` +
		baseFrom + whereClause +
		` ORDER BY p.received_at DESC, p.package_id DESC LIMIT $` + limitPos + ` OFFSET $` + offsetPos + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query packages", err)
	}
	defer rows.Close()

	modelPackages := make([]models.Package, 0, limit)
	for rows.Next() {
		m, err := scanPackage(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan package row", err)
		}
		modelPackages = append(modelPackages, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating package rows", err)
	}

	return mapping.ToDomainPackageSlice(modelPackages), total, nil
}

// FindLoggedInPackagesByBuildings retrieves the reconciliation audit
// population in one consistent query: every LOGGED_IN package whose building
// is in buildingIDs, ordered for deterministic log entry sequence.
func (r *PgxPackageRepository) FindLoggedInPackagesByBuildings(ctx context.Context, buildingIDs []string) ([]domain.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE status = 'LOGGED_IN' AND building_id = ANY($1)
		ORDER BY received_at DESC, package_id DESC;`

	rows, err := r.Pool.Query(ctx, query, buildingIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit population", err)
	}
	defer rows.Close()

	modelPackages := []models.Package{}
	for rows.Next() {
		m, err := scanPackage(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit population row", err)
		}
		modelPackages = append(modelPackages, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit population rows", err)
	}

	return mapping.ToDomainPackageSlice(modelPackages), nil
}

// TransitionPackageStatus performs the compare-and-set status transition.
// The row moves only if it is still LOGGED_IN at the expected version;
// otherwise ErrConflict is returned and nothing changes.
func (r *PgxPackageRepository) TransitionPackageStatus(ctx context.Context, packageID string, expectedVersion int64, target domain.PackageStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE packages
		SET status = $3,
		    version = version + 1,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE package_id = $1 AND status = 'LOGGED_IN' AND version = $2;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		packageID,
		expectedVersion,
		string(target),
		updatedAt,
		updatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to transition package "+packageID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Row missing, already transitioned, or lost the version race.
		return apperrors.ErrConflict
	}

	return nil
}
