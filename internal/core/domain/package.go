package domain

import "time"

// PackageStatus is the custody state of a package.
type PackageStatus string

const (
	LoggedIn  PackageStatus = "LOGGED_IN"
	LoggedOut PackageStatus = "LOGGED_OUT"
	Lost      PackageStatus = "LOST"
)

// TerminalStatuses lists the statuses a logged-in package may transition to.
// Both are terminal; there is no way back out of them.
var TerminalStatuses = []PackageStatus{LoggedOut, Lost}

// IsValidTarget reports whether s is a status a bulk transition may move a
// package into. LoggedIn is never a valid target.
func (s PackageStatus) IsValidTarget() bool {
	return s == LoggedOut || s == Lost
}

// IsValid reports whether s is a member of the closed status set.
func (s PackageStatus) IsValid() bool {
	return s == LoggedIn || s == LoggedOut || s == Lost
}

// ParcelType is the physical form factor of a package.
type ParcelType string

const (
	ParcelBox        ParcelType = "BOX"
	ParcelEnvelope   ParcelType = "ENVELOPE"
	ParcelTube       ParcelType = "TUBE"
	ParcelPerishable ParcelType = "PERISHABLE"
	ParcelOther      ParcelType = "OTHER"
)

func (p ParcelType) IsValid() bool {
	switch p {
	case ParcelBox, ParcelEnvelope, ParcelTube, ParcelPerishable, ParcelOther:
		return true
	}
	return false
}

// ShippingType is the carrier that delivered a package.
type ShippingType string

const (
	ShippingUSPS   ShippingType = "USPS"
	ShippingUPS    ShippingType = "UPS"
	ShippingFedEx  ShippingType = "FEDEX"
	ShippingDHL    ShippingType = "DHL"
	ShippingAmazon ShippingType = "AMAZON"
	ShippingOther  ShippingType = "OTHER"
)

func (s ShippingType) IsValid() bool {
	switch s {
	case ShippingUSPS, ShippingUPS, ShippingFedEx, ShippingDHL, ShippingAmazon, ShippingOther:
		return true
	}
	return false
}

// Package is a physical item held in custody for a recipient until it is
// logged out (or written off as lost by an audit). Status moves only through
// the compare-and-set transition path; Version increments on every transition.
type Package struct {
	PackageID        string        `json:"packageID"`
	TrackingNumber   string        `json:"trackingNumber,omitempty"`
	RecipientID      string        `json:"recipientID"` // StudentID reference
	BuildingID       string        `json:"buildingID"`
	StaffID          string        `json:"staffID"` // Staff who received it
	ParcelType       ParcelType    `json:"parcelType"`
	ShippingType     ShippingType  `json:"shippingType"`
	MailRoom         string        `json:"mailRoom,omitempty"`
	StorageLocation  string        `json:"storageLocation,omitempty"`
	EmailReceiptFrom string        `json:"emailReceiptFrom,omitempty"`
	Description      string        `json:"description,omitempty"`
	Comments         string        `json:"comments,omitempty"`
	ReceivedAt       time.Time     `json:"receivedAt"`
	Status           PackageStatus `json:"status"`
	Version          int64         `json:"version"`
	AuditFields
}
