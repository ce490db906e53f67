package models

import "time"

// PackageStatus mirrors the domain custody states at the storage layer.
type PackageStatus string

const (
	LoggedIn  PackageStatus = "LOGGED_IN"
	LoggedOut PackageStatus = "LOGGED_OUT"
	Lost      PackageStatus = "LOST"
)

// Package is the row shape of the packages table. Status changes go through
// the compare-and-set update only; version is the CAS counter.
type Package struct {
	PackageID        string        `db:"package_id"`
	TrackingNumber   string        `db:"tracking_number"`
	RecipientID      string        `db:"recipient_id"`
	BuildingID       string        `db:"building_id"`
	StaffID          string        `db:"staff_id"`
	ParcelType       string        `db:"parcel_type"`
	ShippingType     string        `db:"shipping_type"`
	MailRoom         string        `db:"mail_room"`
	StorageLocation  string        `db:"storage_location"`
	EmailReceiptFrom string        `db:"email_receipt_from"`
	Description      string        `db:"description"`
	Comments         string        `db:"comments"`
	ReceivedAt       time.Time     `db:"received_at"`
	Status           PackageStatus `db:"status"`
	Version          int64         `db:"version"`
	AuditFields

	// Joined from students for list views; not columns of packages.
	RecipientFirstName string `db:"recipient_first_name"`
	RecipientLastName  string `db:"recipient_last_name"`
}
