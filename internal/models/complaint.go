package models

import (
	"time"
)

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type Location struct {
	Address     string      `json:"address" yaml:"address"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
}

// Complaint is a citizen-reported municipal issue. ID and CreatedAt never
// change after seeding; Comments only ever grow.
type Complaint struct {
	ID                 int               `json:"id" yaml:"id"`
	Title              string            `json:"title" yaml:"title"`
	Description        string            `json:"description" yaml:"description"`
	Category           ComplaintCategory `json:"category" yaml:"category"`
	Priority           ComplaintPriority `json:"priority" yaml:"priority"`
	Status             ComplaintStatus   `json:"status" yaml:"status"`
	Location           Location          `json:"location" yaml:"location"`
	ReportedBy         string            `json:"reportedBy" yaml:"reportedBy"`
	AssignedTo         *int              `json:"assignedTo" yaml:"assignedTo"`
	AssignedDepartment *Department       `json:"assignedDepartment" yaml:"assignedDepartment"`
	CreatedAt          time.Time         `json:"createdAt" yaml:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt" yaml:"updatedAt"`
	Images             []string          `json:"images" yaml:"images"`
	Comments           []Comment         `json:"comments" yaml:"comments"`
}

// Clone returns a deep copy so callers never share slices or pointers with
// the record store.
func (c Complaint) Clone() Complaint {
	out := c
	if c.AssignedTo != nil {
		v := *c.AssignedTo
		out.AssignedTo = &v
	}
	if c.AssignedDepartment != nil {
		v := *c.AssignedDepartment
		out.AssignedDepartment = &v
	}
	out.Images = append([]string{}, c.Images...)
	out.Comments = append([]Comment{}, c.Comments...)
	return out
}

// DepartmentLabel returns the assigned department or the Unassigned sentinel.
func (c Complaint) DepartmentLabel() Department {
	if c.AssignedDepartment == nil {
		return DepartmentUnassigned
	}
	return *c.AssignedDepartment
}
