package mapping

import (
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	"github.com/campus-reslife/reslife_backend/internal/models"
)

// ToDomainStudent converts a model Student to a domain Student
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		StudentID:     m.StudentID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		StudentNumber: m.StudentNumber,
		Email:         m.Email,
		BuildingID:    m.BuildingID,
		PictureURL:    m.PictureURL,
	}
}

// ToDomainStudentSlice converts a slice of model Students to domain Students
func ToDomainStudentSlice(ms []models.Student) []domain.Student {
	ds := make([]domain.Student, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStudent(m)
	}
	return ds
}

// ToDomainStaff converts a model Staff to a domain Staff
func ToDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		StaffID:   m.StaffID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Role:      m.Role,
	}
}

// ToDomainBuilding converts a model Building to a domain Building
func ToDomainBuilding(m models.Building) domain.Building {
	return domain.Building{
		BuildingID: m.BuildingID,
		Name:       m.Name,
		Code:       m.Code,
	}
}

// ToDomainBuildingSlice converts a slice of model Buildings to domain Buildings
func ToDomainBuildingSlice(ms []models.Building) []domain.Building {
	ds := make([]domain.Building, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBuilding(m)
	}
	return ds
}
