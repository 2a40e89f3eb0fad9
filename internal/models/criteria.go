package models

// Criteria selects complaints. A nil field places no constraint on that
// dimension; all set fields must match.
type Criteria struct {
	Category   *ComplaintCategory
	Status     *ComplaintStatus
	Priority   *ComplaintPriority
	Department *Department

	// Search is matched case-insensitively against title, description and
	// address. Empty means no constraint.
	Search string
}

// IsEmpty reports whether the criteria would select every record.
func (c Criteria) IsEmpty() bool {
	return c.Category == nil && c.Status == nil && c.Priority == nil &&
		c.Department == nil && c.Search == ""
}
