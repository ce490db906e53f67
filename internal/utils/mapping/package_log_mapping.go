package mapping

import (
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	"github.com/campus-reslife/reslife_backend/internal/models"
)

// ToDomainLogEntry converts a model PackageLogEntry to a domain entry.
func ToDomainLogEntry(m models.PackageLogEntry) domain.PackageLogEntry {
	return domain.PackageLogEntry{
		PackageID: m.PackageID,
		Present:   m.Present,
	}
}

// ToDomainLogEntrySlice converts model entries, which are expected to be
// ordered by entry_seq, to domain entries.
func ToDomainLogEntrySlice(ms []models.PackageLogEntry) []domain.PackageLogEntry {
	ds := make([]domain.PackageLogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLogEntry(m)
	}
	return ds
}
