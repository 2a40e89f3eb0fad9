package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/civiclink/backend/internal/models"
	"github.com/civiclink/backend/internal/store"
)

// UpdateComplaint applies patch to the complaint with the given id and
// stamps updatedAt. Nothing changes if the complaint is missing or the patch
// is invalid.
func UpdateComplaint(st *store.Store, id int, patch models.ComplaintPatch) (models.Complaint, error) {
	updated, _, err := updateComplaint(st, id, patch)
	return updated, err
}

func updateComplaint(st *store.Store, id int, patch models.ComplaintPatch) (models.Complaint, []string, error) {
	var fields []string
	updated, err := st.Update(id, func(c *models.Complaint, _ time.Time) error {
		var err error
		fields, err = applyPatch(c, patch)
		return err
	})
	if err != nil {
		return models.Complaint{}, nil, err
	}
	return updated, fields, nil
}

// applyPatch mutates c and returns the names of the fields the patch set.
// Empty status and priority keep the current value; assignment fields
// follow presence, so an explicit null clears them.
func applyPatch(c *models.Complaint, patch models.ComplaintPatch) ([]string, error) {
	var fields []string

	if patch.Status != "" {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, patch.Status)
		}
		c.Status = patch.Status
		fields = append(fields, "status")
	}

	if patch.Priority != "" {
		if !patch.Priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, patch.Priority)
		}
		c.Priority = patch.Priority
		fields = append(fields, "priority")
	}

	if patch.AssignedTo.Set {
		if patch.AssignedTo.Value == nil {
			c.AssignedTo = nil
		} else {
			v := *patch.AssignedTo.Value
			c.AssignedTo = &v
		}
		fields = append(fields, "assignedTo")
	}

	if patch.AssignedDepartment.Set {
		dept := patch.AssignedDepartment.Value
		switch {
		case dept == nil || *dept == "" || *dept == models.DepartmentUnassigned:
			c.AssignedDepartment = nil
		case !dept.Valid():
			return nil, fmt.Errorf("%w: unknown department %q", ErrInvalidInput, *dept)
		default:
			v := *dept
			c.AssignedDepartment = &v
		}
		fields = append(fields, "assignedDepartment")
	}

	return fields, nil
}

// AddComment appends a comment by author to the complaint and stamps its
// updatedAt. A blank author is replaced with the default administrator.
func AddComment(st *store.Store, id int, author, message string) (models.Comment, error) {
	if strings.TrimSpace(author) == "" {
		author = models.DefaultStaff.Name
	}

	var comment models.Comment
	_, err := st.Update(id, func(c *models.Complaint, at time.Time) error {
		if strings.TrimSpace(message) == "" {
			return fmt.Errorf("%w: comment message is empty", ErrInvalidInput)
		}
		comment = models.Comment{
			ID:        st.NextCommentID(),
			Author:    author,
			Message:   message,
			Timestamp: at,
		}
		c.Comments = append(c.Comments, comment)
		return nil
	})
	if err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
