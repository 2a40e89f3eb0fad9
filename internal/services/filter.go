package services

import (
	"strings"

	"github.com/civiclink/backend/internal/models"
)

// Filter returns the records matching every set field of criteria, in their
// original order. An empty criteria returns all records.
func Filter(records []models.Complaint, criteria models.Criteria) []models.Complaint {
	result := make([]models.Complaint, 0, len(records))
	search := strings.ToLower(criteria.Search)
	for _, c := range records {
		if matchesCriteria(&c, &criteria, search) {
			result = append(result, c)
		}
	}
	return result
}

func matchesCriteria(c *models.Complaint, criteria *models.Criteria, search string) bool {
	if criteria.Category != nil && c.Category != *criteria.Category {
		return false
	}
	if criteria.Status != nil && c.Status != *criteria.Status {
		return false
	}
	if criteria.Priority != nil && c.Priority != *criteria.Priority {
		return false
	}
	if criteria.Department != nil {
		if c.AssignedDepartment == nil || *c.AssignedDepartment != *criteria.Department {
			return false
		}
	}
	if search != "" && !matchesSearch(c, search) {
		return false
	}
	return true
}

// matchesSearch expects search to be lower-cased already.
func matchesSearch(c *models.Complaint, search string) bool {
	return strings.Contains(strings.ToLower(c.Title), search) ||
		strings.Contains(strings.ToLower(c.Description), search) ||
		strings.Contains(strings.ToLower(c.Location.Address), search)
}

// ParseCriteria builds criteria from presentation values, where "" and
// "all" mean no constraint.
func ParseCriteria(category, status, priority, department, search string) models.Criteria {
	var criteria models.Criteria
	if isSet(category) {
		v := models.ComplaintCategory(category)
		criteria.Category = &v
	}
	if isSet(status) {
		v := models.ComplaintStatus(status)
		criteria.Status = &v
	}
	if isSet(priority) {
		v := models.ComplaintPriority(priority)
		criteria.Priority = &v
	}
	if isSet(department) {
		v := models.Department(department)
		criteria.Department = &v
	}
	criteria.Search = search
	return criteria
}

func isSet(v string) bool {
	return v != "" && v != models.FilterAll
}
