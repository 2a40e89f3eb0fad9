package models

type ComplaintCategory string
type ComplaintPriority string
type ComplaintStatus string
type Department string
type UserRole string

// FilterAll is the presentation value meaning "no constraint" for a filter field.
const FilterAll = "all"

const (
	CategoryStreetlight ComplaintCategory = "streetlight"
	CategoryPothole     ComplaintCategory = "pothole"
	CategoryDrainage    ComplaintCategory = "drainage"
	CategoryGarbage     ComplaintCategory = "garbage"
)

const (
	PriorityHigh   ComplaintPriority = "high"
	PriorityMedium ComplaintPriority = "medium"
	PriorityLow    ComplaintPriority = "low"
)

const (
	StatusOpen       ComplaintStatus = "open"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

const (
	DepartmentPublicWorks    Department = "Public Works"
	DepartmentUtilities      Department = "Utilities"
	DepartmentAdministration Department = "Administration"

	// DepartmentUnassigned is only ever displayed; a complaint without a
	// department stores nil.
	DepartmentUnassigned Department = "Unassigned"
)

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

var (
	Categories  = []ComplaintCategory{CategoryStreetlight, CategoryPothole, CategoryDrainage, CategoryGarbage}
	Priorities  = []ComplaintPriority{PriorityHigh, PriorityMedium, PriorityLow}
	Statuses    = []ComplaintStatus{StatusOpen, StatusInProgress, StatusResolved}
	Departments = []Department{DepartmentPublicWorks, DepartmentUtilities, DepartmentAdministration}
)

func (c ComplaintCategory) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func (p ComplaintPriority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

func (s ComplaintStatus) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

func (d Department) Valid() bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}
