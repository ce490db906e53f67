package repositories

import (
	"context"

	"github.com/campus-reslife/reslife_backend/internal/core/domain"
)

// PackageLogListFilters narrows a log list query.
type PackageLogListFilters struct {
	// StaffName matches case-insensitively against the creating staff
	// member's first or last name.
	StaffName   string
	BuildingIDs []string
}

// PackageLogReader defines read operations for audit log data
type PackageLogReader interface {
	// FindLogByID retrieves a log with its building scope and entries in
	// their captured order.
	FindLogByID(ctx context.Context, packageLogID string) (*domain.PackageLog, error)

	// ListLogs retrieves a filtered page of logs ordered by created_at
	// descending, with entries and building scope populated, along with the
	// total row count for the filter.
	ListLogs(ctx context.Context, filters PackageLogListFilters, limit, offset int) ([]domain.PackageLog, int64, error)
}

// PackageLogWriter defines write operations for audit log data.
// Logs are write-once: there is deliberately no update or delete.
type PackageLogWriter interface {
	// SaveLog persists the log, its building scope and all entries in one
	// database transaction. Either the whole log is written or none of it.
	SaveLog(ctx context.Context, log domain.PackageLog) error
}

// PackageLogRepositoryFacade combines all log repository interfaces
type PackageLogRepositoryFacade interface {
	PackageLogReader
	PackageLogWriter
}
