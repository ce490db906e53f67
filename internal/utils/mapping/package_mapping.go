package mapping

import (
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	"github.com/campus-reslife/reslife_backend/internal/models"
)

// ToModelPackage converts a domain Package to a model Package
func ToModelPackage(d domain.Package) models.Package {
	return models.Package{
		PackageID:        d.PackageID,
		TrackingNumber:   d.TrackingNumber,
		RecipientID:      d.RecipientID,
		BuildingID:       d.BuildingID,
		StaffID:          d.StaffID,
		ParcelType:       string(d.ParcelType),
		ShippingType:     string(d.ShippingType),
		MailRoom:         d.MailRoom,
		StorageLocation:  d.StorageLocation,
		EmailReceiptFrom: d.EmailReceiptFrom,
		Description:      d.Description,
		Comments:         d.Comments,
		ReceivedAt:       d.ReceivedAt,
		Status:           models.PackageStatus(d.Status),
		Version:          d.Version,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPackage converts a model Package to a domain Package
func ToDomainPackage(m models.Package) domain.Package {
	return domain.Package{
		PackageID:        m.PackageID,
		TrackingNumber:   m.TrackingNumber,
		RecipientID:      m.RecipientID,
		BuildingID:       m.BuildingID,
		StaffID:          m.StaffID,
		ParcelType:       domain.ParcelType(m.ParcelType),
		ShippingType:     domain.ShippingType(m.ShippingType),
		MailRoom:         m.MailRoom,
		StorageLocation:  m.StorageLocation,
		EmailReceiptFrom: m.EmailReceiptFrom,
		Description:      m.Description,
		Comments:         m.Comments,
		ReceivedAt:       m.ReceivedAt,
		Status:           domain.PackageStatus(m.Status),
		Version:          m.Version,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPackageSlice converts a slice of model Packages to domain Packages
func ToDomainPackageSlice(ms []models.Package) []domain.Package {
	ds := make([]domain.Package, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPackage(m)
	}
	return ds
}
