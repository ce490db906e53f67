package domain

// Directory entities are owned by the housing directory, an external
// collaborator from the custody core's point of view. The core resolves them
// by id (or paginated search) and never mutates them.

// Student is a package recipient.
type Student struct {
	StudentID     string `json:"studentID"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StudentNumber string `json:"studentNumber"`
	Email         string `json:"email,omitempty"`
	BuildingID    string `json:"buildingID,omitempty"`
	PictureURL    string `json:"pictureURL,omitempty"`
}

// Staff is a mail-room or residence-hall staff member.
type Staff struct {
	StaffID   string `json:"staffID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

// Building is a residence building; package queries and audit logs are scoped
// to sets of buildings.
type Building struct {
	BuildingID string `json:"buildingID"`
	Name       string `json:"name"`
	Code       string `json:"code,omitempty"`
}
