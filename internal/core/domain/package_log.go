package domain

import "time"

// PackageLogEntry records, inside a log, whether one package was physically
// verified during the audit. It is a value captured at log creation; later
// status changes on the package never rewrite it.
type PackageLogEntry struct {
	PackageID string `json:"packageID"`
	Present   bool   `json:"present"`
}

// PackageLog is an immutable point-in-time audit record: which currently-held
// packages inside a set of buildings were found present. Logs are created
// once and never updated or deleted.
type PackageLog struct {
	PackageLogID string            `json:"packageLogID"`
	CreatedBy    string            `json:"createdBy"` // StaffID reference
	CreatedAt    time.Time         `json:"createdAt"`
	BuildingIDs  []string          `json:"buildingIDs"`
	Entries      []PackageLogEntry `json:"entries"`
}

// PresentCount returns how many entries were verified present.
func (l *PackageLog) PresentCount() int {
	n := 0
	for _, e := range l.Entries {
		if e.Present {
			n++
		}
	}
	return n
}

// MissingCount returns how many entries were reported missing.
func (l *PackageLog) MissingCount() int {
	return len(l.Entries) - l.PresentCount()
}
