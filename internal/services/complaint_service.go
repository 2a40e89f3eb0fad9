package services

import (
	"errors"

	"github.com/civiclink/backend/internal/logger"
	"github.com/civiclink/backend/internal/metrics"
	"github.com/civiclink/backend/internal/models"
	"github.com/civiclink/backend/internal/store"
	"github.com/sirupsen/logrus"
)

// ComplaintService is the entry point the dashboard consumes: queries,
// analytics and mutations over one record store.
type ComplaintService struct {
	store   *store.Store
	metrics *metrics.Metrics
}

func NewComplaintService(st *store.Store, m *metrics.Metrics) *ComplaintService {
	return &ComplaintService{
		store:   st,
		metrics: m,
	}
}

// GetComplaints returns the complaints matching criteria in store order.
func (cs *ComplaintService) GetComplaints(criteria models.Criteria) []models.Complaint {
	complaints := Filter(cs.store.Complaints(), criteria)
	logger.Debug("Complaints listed", map[string]interface{}{
		"count":    len(complaints),
		"filtered": !criteria.IsEmpty(),
	})
	return complaints
}

func (cs *ComplaintService) GetComplaint(id int) (models.Complaint, error) {
	return cs.store.Complaint(id)
}

// RecentComplaints returns the first limit complaints of the unfiltered list.
func (cs *ComplaintService) RecentComplaints(limit int) []models.Complaint {
	all := cs.store.Complaints()
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

func (cs *ComplaintService) UpdateComplaint(id int, patch models.ComplaintPatch) (models.Complaint, error) {
	logEntry := logger.WithComplaint(id, "complaint_service")

	updated, fields, err := updateComplaint(cs.store, id, patch)
	if err != nil {
		logMutationError(logEntry.WithField("operation", "update"), err)
		return models.Complaint{}, err
	}

	cs.metrics.ObserveFieldUpdates(fields)
	logEntry.WithField("fields", fields).Info("Complaint updated")
	return updated, nil
}

func (cs *ComplaintService) AddComment(id int, author, message string) (models.Comment, error) {
	logEntry := logger.WithComplaint(id, "complaint_service")

	comment, err := AddComment(cs.store, id, author, message)
	if err != nil {
		logMutationError(logEntry.WithField("operation", "add_comment"), err)
		return models.Comment{}, err
	}

	cs.metrics.ObserveComment()
	logEntry.WithField("comment_id", comment.ID).Info("Comment added")
	return comment, nil
}

// GetDashboardAnalytics aggregates over every complaint in the store.
func (cs *ComplaintService) GetDashboardAnalytics() models.DashboardStats {
	stats := Aggregate(cs.store.Complaints())
	cs.metrics.RecordStats(stats)
	return stats
}

// GetAnalytics aggregates over the complaints matching criteria and adds
// the derived rates and chart breakdowns.
func (cs *ComplaintService) GetAnalytics(criteria models.Criteria) models.AnalyticsReport {
	if criteria.IsEmpty() {
		return BuildReport(cs.GetDashboardAnalytics())
	}
	return BuildReport(Aggregate(cs.GetComplaints(criteria)))
}

func (cs *ComplaintService) GetUsers() []models.User {
	return cs.store.Users()
}

func (cs *ComplaintService) GetUser(id int) (models.User, error) {
	return cs.store.User(id)
}

func logMutationError(entry *logrus.Entry, err error) {
	switch {
	case errors.Is(err, store.ErrComplaintNotFound):
		entry.Warn("Complaint not found")
	case errors.Is(err, ErrInvalidInput):
		entry.Warn(err.Error())
	default:
		entry.Error(err.Error())
	}
}
