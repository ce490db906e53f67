package dto

import (
	"time"

	"github.com/campus-reslife/reslife_backend/internal/core/domain"
)

// CreatePackageRequest is the intake payload. The receiving staff member is
// the authenticated principal, not part of the body.
type CreatePackageRequest struct {
	TrackingNumber   string     `json:"trackingNumber" binding:"omitempty,max=255"`
	RecipientID      string     `json:"recipientID" binding:"required"`
	BuildingID       string     `json:"buildingID" binding:"required"`
	ParcelType       string     `json:"parcelType" binding:"required,parceltype"`
	ShippingType     string     `json:"shippingType" binding:"required,shippingtype"`
	MailRoom         string     `json:"mailRoom" binding:"omitempty,max=255"`
	StorageLocation  string     `json:"storageLocation" binding:"omitempty,max=255"`
	EmailReceiptFrom string     `json:"emailReceiptFrom" binding:"omitempty,email"`
	Description      string     `json:"description"`
	Comments         string     `json:"comments"`
	ReceivedAt       *time.Time `json:"receivedAt"` // defaults to now
}

// ListPackagesParams holds query parameters for package listing.
type ListPackagesParams struct {
	Search      string   `form:"search"`
	BuildingIDs []string `form:"buildings"`
	Status      string   `form:"status" binding:"omitempty,custodystatus"`
	StudentID   string   `form:"studentID"`
	Page        int      `form:"page,default=1" binding:"omitempty,min=1"`
	Limit       int      `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// PackageResponse defines the data returned for a package.
type PackageResponse struct {
	PackageID        string    `json:"packageID"`
	TrackingNumber   string    `json:"trackingNumber,omitempty"`
	RecipientID      string    `json:"recipientID"`
	BuildingID       string    `json:"buildingID"`
	StaffID          string    `json:"staffID"`
	ParcelType       string    `json:"parcelType"`
	ShippingType     string    `json:"shippingType"`
	MailRoom         string    `json:"mailRoom,omitempty"`
	StorageLocation  string    `json:"storageLocation,omitempty"`
	EmailReceiptFrom string    `json:"emailReceiptFrom,omitempty"`
	Description      string    `json:"description,omitempty"`
	Comments         string    `json:"comments,omitempty"`
	ReceivedAt       time.Time `json:"receivedAt"`
	Status           string    `json:"status"`
}

// ListPackagesResponse is one page of packages.
type ListPackagesResponse struct {
	Packages   []PackageResponse `json:"packages"`
	TotalPages int64             `json:"totalPages"`
}

// RecipientPackagesGroup is the per-recipient slice of a grouped listing.
type RecipientPackagesGroup struct {
	Recipient StudentResponse   `json:"recipient"`
	Packages  []PackageResponse `json:"packages"`
}

// GroupedPackagesResponse is one page of packages grouped by recipient.
// Group order follows first appearance in the underlying page.
type GroupedPackagesResponse struct {
	Groups     []RecipientPackagesGroup `json:"groups"`
	TotalPages int64                    `json:"totalPages"`
}

// BulkTransitionRequest names the packages to move out of custody.
type BulkTransitionRequest struct {
	PackageIDs []string `json:"packageIDs" binding:"required,min=1"`
}

// TransitionConflict reports one package that could not be transitioned.
type TransitionConflict struct {
	PackageID string `json:"packageID"`
	Reason    string `json:"reason"` // "not_found", "already_logged_out", "already_lost", "version_conflict"
}

// BulkTransitionResult is the explicit per-item accounting of a bulk
// transition. A package id never appears in both lists.
type BulkTransitionResult struct {
	Updated   []string             `json:"updated"`
	Conflicts []TransitionConflict `json:"conflicts"`
}

// ToPackageResponse converts a domain.Package to PackageResponse DTO.
func ToPackageResponse(p *domain.Package) PackageResponse {
	return PackageResponse{
		PackageID:        p.PackageID,
		TrackingNumber:   p.TrackingNumber,
		RecipientID:      p.RecipientID,
		BuildingID:       p.BuildingID,
		StaffID:          p.StaffID,
		ParcelType:       string(p.ParcelType),
		ShippingType:     string(p.ShippingType),
		MailRoom:         p.MailRoom,
		StorageLocation:  p.StorageLocation,
		EmailReceiptFrom: p.EmailReceiptFrom,
		Description:      p.Description,
		Comments:         p.Comments,
		ReceivedAt:       p.ReceivedAt,
		Status:           string(p.Status),
	}
}

// ToPackageResponses converts a slice of domain.Package to DTOs.
func ToPackageResponses(ps []domain.Package) []PackageResponse {
	responses := make([]PackageResponse, len(ps))
	for i := range ps {
		responses[i] = ToPackageResponse(&ps[i])
	}
	return responses
}
