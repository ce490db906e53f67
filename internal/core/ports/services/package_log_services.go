package services

import (
	"context"

	"github.com/campus-reslife/reslife_backend/internal/dto"
)

// PackageLogReaderSvc defines read projections over audit logs
type PackageLogReaderSvc interface {
	// ListLogs retrieves a filtered, paginated list of logs annotated with
	// derived present/missing counters.
	ListLogs(ctx context.Context, params dto.ListPackageLogsParams) (*dto.ListPackageLogsResponse, error)

	// GetLogDetail retrieves one log with entries grouped by recipient,
	// groups sorted by recipient surname.
	GetLogDetail(ctx context.Context, packageLogID string) (*dto.PackageLogDetailResponse, error)
}

// PackageLogWriterSvc defines the reconciliation operation
type PackageLogWriterSvc interface {
	// CreateLog snapshots the audit population (every LoggedIn package in
	// the building scope), applies presence overrides, persists the log
	// atomically, and marks missing packages Lost.
	CreateLog(ctx context.Context, req dto.CreatePackageLogRequest, staffID string) (*dto.CreatePackageLogResponse, error)
}

// PackageLogSvcFacade combines all log-related service interfaces
type PackageLogSvcFacade interface {
	PackageLogReaderSvc
	PackageLogWriterSvc
}
