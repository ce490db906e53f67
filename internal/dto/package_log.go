package dto

import "time"

// CreatePackageLogRequest starts a reconciliation audit over a building
// scope. PresenceOverrides marks specific packages as not found; every other
// package in scope defaults to present.
type CreatePackageLogRequest struct {
	BuildingIDs       []string        `json:"buildingIDs" binding:"required,min=1"`
	PresenceOverrides map[string]bool `json:"presenceOverrides"`
}

// ListPackageLogsParams holds query parameters for log listing.
type ListPackageLogsParams struct {
	StaffName   string   `form:"staff"`
	BuildingIDs []string `form:"buildings"`
	Page        int      `form:"page,default=1" binding:"omitempty,min=1"`
	Limit       int      `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// PackageLogEntryResponse is one audited package inside a log.
type PackageLogEntryResponse struct {
	PackageID string `json:"packageID"`
	Present   bool   `json:"present"`
}

// PackageLogResponse is the list-view shape of a log. The counters are
// derived from the entries at read time, never stored.
type PackageLogResponse struct {
	PackageLogID  string                    `json:"packageLogID"`
	CreatedBy     StaffResponse             `json:"createdBy"`
	CreatedAt     time.Time                 `json:"createdAt"`
	Buildings     []BuildingResponse        `json:"buildings"`
	Entries       []PackageLogEntryResponse `json:"entries"`
	TotalPackages int                       `json:"totalPackages"`
	PresentCount  int                       `json:"presentCount"`
	MissingCount  int                       `json:"missingCount"`
}

// CreatePackageLogResponse is the result of a reconciliation run: the
// persisted log plus the per-item outcome of marking missing packages lost.
type CreatePackageLogResponse struct {
	Log                 PackageLogResponse   `json:"log"`
	TransitionConflicts []TransitionConflict `json:"transitionConflicts,omitempty"`
}

// ListPackageLogsResponse is one page of logs.
type ListPackageLogsResponse struct {
	Logs       []PackageLogResponse `json:"logs"`
	TotalPages int64                `json:"totalPages"`
}

// PackageLogEntryDetail pairs an entry with its package snapshot for the
// detail view.
type PackageLogEntryDetail struct {
	Package PackageResponse `json:"package"`
	Present bool            `json:"present"`
}

// PackageLogRecipientGroup groups a log's entries under one recipient.
type PackageLogRecipientGroup struct {
	Recipient StudentResponse         `json:"recipient"`
	Entries   []PackageLogEntryDetail `json:"entries"`
}

// PackageLogDetailResponse is the detail-view shape of a log: entries grouped
// by recipient, groups ordered by recipient surname.
type PackageLogDetailResponse struct {
	PackageLogID  string                     `json:"packageLogID"`
	CreatedBy     StaffResponse              `json:"createdBy"`
	CreatedAt     time.Time                  `json:"createdAt"`
	Buildings     []BuildingResponse         `json:"buildings"`
	Groups        []PackageLogRecipientGroup `json:"groups"`
	TotalPackages int                        `json:"totalPackages"`
	PresentCount  int                        `json:"presentCount"`
	MissingCount  int                        `json:"missingCount"`
}
