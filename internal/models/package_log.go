package models

import "time"

// PackageLog is the row shape of the package_logs table. Rows are write-once.
type PackageLog struct {
	PackageLogID string    `db:"package_log_id"`
	CreatedBy    string    `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
}

// PackageLogEntry is one row of package_log_entries. entry_seq preserves the
// order entries were captured in at audit time.
type PackageLogEntry struct {
	PackageLogID string `db:"package_log_id"`
	PackageID    string `db:"package_id"`
	Present      bool   `db:"present"`
	EntrySeq     int    `db:"entry_seq"`
}

// PackageLogBuilding is one row of package_log_buildings, the audit's scope.
type PackageLogBuilding struct {
	PackageLogID string `db:"package_log_id"`
	BuildingID   string `db:"building_id"`
}
