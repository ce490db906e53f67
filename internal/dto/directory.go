package dto

import (
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
)

// StudentResponse defines the data returned for a student identity.
type StudentResponse struct {
	StudentID     string `json:"studentID"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StudentNumber string `json:"studentNumber"`
	PictureURL    string `json:"pictureURL,omitempty"`
}

// StaffResponse defines the data returned for a staff identity.
type StaffResponse struct {
	StaffID   string `json:"staffID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// BuildingResponse defines the data returned for a building.
type BuildingResponse struct {
	BuildingID string `json:"buildingID"`
	Name       string `json:"name"`
	Code       string `json:"code,omitempty"`
}

// SearchStudentsParams holds query parameters for the student search.
type SearchStudentsParams struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// SearchStudentsResponse is a page of student search results.
type SearchStudentsResponse struct {
	Students   []StudentResponse `json:"students"`
	TotalPages int64             `json:"totalPages"`
}

// ListBuildingsResponse wraps the building list.
type ListBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
}

// ToStudentResponse converts a domain.Student to StudentResponse DTO.
func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID:     s.StudentID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		StudentNumber: s.StudentNumber,
		PictureURL:    s.PictureURL,
	}
}

// ToStaffResponse converts a domain.Staff to StaffResponse DTO.
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:   s.StaffID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
	}
}

// ToBuildingResponse converts a domain.Building to BuildingResponse DTO.
func ToBuildingResponse(b *domain.Building) BuildingResponse {
	return BuildingResponse{
		BuildingID: b.BuildingID,
		Name:       b.Name,
		Code:       b.Code,
	}
}

// ToBuildingResponses converts a slice of domain.Building to DTOs.
func ToBuildingResponses(bs []domain.Building) []BuildingResponse {
	responses := make([]BuildingResponse, len(bs))
	for i := range bs {
		responses[i] = ToBuildingResponse(&bs[i])
	}
	return responses
}
