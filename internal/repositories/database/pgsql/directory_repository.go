package pgsql

import (
	"context"
	"errors"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	"github.com/campus-reslife/reslife_backend/internal/models"
	"github.com/campus-reslife/reslife_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const studentColumns = `student_id, first_name, last_name, student_number, email, building_id, picture_url`
const staffColumns = `staff_id, first_name, last_name, email, role`
const buildingColumns = `building_id, name, code`

// PgxDirectoryRepository reads the directory tables (students, staff,
// buildings). The custody core never writes to these.
type PgxDirectoryRepository struct {
	BaseRepository
}

// NewPgxDirectoryRepository creates a new repository for directory lookups.
func NewPgxDirectoryRepository(pool *pgxpool.Pool) *PgxDirectoryRepository {
	return &PgxDirectoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDirectoryRepository implements portsrepo.DirectoryRepositoryFacade
var _ portsrepo.DirectoryRepositoryFacade = (*PgxDirectoryRepository)(nil)

func scanStudent(row pgx.Row) (models.Student, error) {
	var m models.Student
	err := row.Scan(&m.StudentID, &m.FirstName, &m.LastName, &m.StudentNumber, &m.Email, &m.BuildingID, &m.PictureURL)
	return m, err
}

// FindStudentByID retrieves a student by their ID.
func (r *PgxDirectoryRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1;`
	m, err := scanStudent(r.Pool.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find student by ID "+studentID, err)
	}
	student := mapping.ToDomainStudent(m)
	return &student, nil
}

// FindStudentsByIDs retrieves several students at once. Unknown ids are
// simply absent from the returned map.
func (r *PgxDirectoryRepository) FindStudentsByIDs(ctx context.Context, studentIDs []string) (map[string]domain.Student, error) {
	if len(studentIDs) == 0 {
		return map[string]domain.Student{}, nil
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, studentIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query students by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Student, len(studentIDs))
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan student row", err)
		}
		result[m.StudentID] = mapping.ToDomainStudent(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating student rows", err)
	}

	return result, nil
}

// FindStaffByID retrieves a staff member by their ID.
func (r *PgxDirectoryRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1;`
	var m models.Staff
	err := r.Pool.QueryRow(ctx, query, staffID).Scan(&m.StaffID, &m.FirstName, &m.LastName, &m.Email, &m.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find staff by ID "+staffID, err)
	}
	staff := mapping.ToDomainStaff(m)
	return &staff, nil
}

// FindStaffByIDs retrieves several staff members at once, keyed by id.
func (r *PgxDirectoryRepository) FindStaffByIDs(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	if len(staffIDs) == 0 {
		return map[string]domain.Staff{}, nil
	}

	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, staffIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query staff by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Staff, len(staffIDs))
	for rows.Next() {
		var m models.Staff
		if err := rows.Scan(&m.StaffID, &m.FirstName, &m.LastName, &m.Email, &m.Role); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan staff row", err)
		}
		result[m.StaffID] = mapping.ToDomainStaff(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating staff rows", err)
	}

	return result, nil
}

// FindBuildingByID retrieves a building by its ID.
func (r *PgxDirectoryRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE building_id = $1;`
	var m models.Building
	err := r.Pool.QueryRow(ctx, query, buildingID).Scan(&m.BuildingID, &m.Name, &m.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find building by ID "+buildingID, err)
	}
	building := mapping.ToDomainBuilding(m)
	return &building, nil
}

// FindBuildingsByIDs retrieves several buildings at once, keyed by id.
func (r *PgxDirectoryRepository) FindBuildingsByIDs(ctx context.Context, buildingIDs []string) (map[string]domain.Building, error) {
	if len(buildingIDs) == 0 {
		return map[string]domain.Building{}, nil
	}

	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE building_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, buildingIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query buildings by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Building, len(buildingIDs))
	for rows.Next() {
		var m models.Building
		if err := rows.Scan(&m.BuildingID, &m.Name, &m.Code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan building row", err)
		}
		result[m.BuildingID] = mapping.ToDomainBuilding(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating building rows", err)
	}

	return result, nil
}

// SearchStudents retrieves a page of students whose name or student number
// matches the query case-insensitively, ordered by surname.
func (r *PgxDirectoryRepository) SearchStudents(ctx context.Context, query string, limit, offset int) ([]domain.Student, int64, error) {
	if limit <= 0 {
		limit = 20
	}

	pattern := "%" + query + "%"
	whereClause := ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR student_number ILIKE $1`

	var total int64
	countQuery := `SELECT COUNT(*) FROM students` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count students", err)
	}

	pageQuery := `SELECT ` + studentColumns + ` FROM students` + whereClause +
		` ORDER BY last_name, first_name, student_id LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, pageQuery, pattern, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to search students", err)
	}
	defer rows.Close()

	ms := make([]models.Student, 0, limit)
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan student row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating student rows", err)
	}

	return mapping.ToDomainStudentSlice(ms), total, nil
}

// ListBuildings retrieves every building, ordered by name.
func (r *PgxDirectoryRepository) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query buildings", err)
	}
	defer rows.Close()

	ms := []models.Building{}
	for rows.Next() {
		var m models.Building
		if err := rows.Scan(&m.BuildingID, &m.Name, &m.Code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan building row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating building rows", err)
	}

	return mapping.ToDomainBuildingSlice(ms), nil
}
