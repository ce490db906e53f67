package models

// Directory row shapes. These tables are maintained by the housing directory
// side of the system; the custody core only reads them.

type Student struct {
	StudentID     string `db:"student_id"`
	FirstName     string `db:"first_name"`
	LastName      string `db:"last_name"`
	StudentNumber string `db:"student_number"`
	Email         string `db:"email"`
	BuildingID    string `db:"building_id"`
	PictureURL    string `db:"picture_url"`
}

type Staff struct {
	StaffID   string `db:"staff_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Role      string `db:"role"`
}

type Building struct {
	BuildingID string `db:"building_id"`
	Name       string `db:"name"`
	Code       string `db:"code"`
}
