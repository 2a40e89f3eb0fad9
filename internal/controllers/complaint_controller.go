package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/civiclink/backend/internal/logger"
	"github.com/civiclink/backend/internal/middleware"
	"github.com/civiclink/backend/internal/models"
	"github.com/civiclink/backend/internal/services"
	"github.com/civiclink/backend/internal/store"
	"github.com/gin-gonic/gin"
)

type ComplaintController struct {
	service     *services.ComplaintService
	recentLimit int
}

func NewComplaintController(service *services.ComplaintService, recentLimit int) *ComplaintController {
	return &ComplaintController{
		service:     service,
		recentLimit: recentLimit,
	}
}

type AddCommentRequest struct {
	Message string `json:"message"`
}

type DashboardResponse struct {
	Stats            models.AnalyticsReport `json:"stats"`
	RecentComplaints []models.Complaint     `json:"recentComplaints"`
}

type EnumsResponse struct {
	Categories  []models.ComplaintCategory `json:"categories"`
	Priorities  []models.ComplaintPriority `json:"priorities"`
	Statuses    []models.ComplaintStatus   `json:"statuses"`
	Departments []models.Department        `json:"departments"`
	Unassigned  models.Department          `json:"unassigned"`
	FilterAll   string                     `json:"filterAll"`
}

// ListComplaints handles GET /complaints with the optional category,
// status, priority, department and search query parameters.
func (cc *ComplaintController) ListComplaints(c *gin.Context) {
	complaints := cc.service.GetComplaints(criteriaFromQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaints,
		"count":   len(complaints),
	})
}

func (cc *ComplaintController) GetComplaint(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	complaint, err := cc.service.GetComplaint(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaint,
	})
}

// UpdateComplaint handles PATCH and PUT /complaints/:id. Omitted fields are
// left alone; an explicit null clears an assignment.
func (cc *ComplaintController) UpdateComplaint(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var patch models.ComplaintPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.WithComplaint(id, "complaint_controller").WithError(err).Warn("Rejected complaint update")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	complaint, err := cc.service.UpdateComplaint(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Complaint updated successfully",
		"data":    complaint,
	})
}

// AddComment handles POST /complaints/:id/comments. The author is the
// staff member resolved by the identity middleware.
func (cc *ComplaintController) AddComment(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	comment, err := cc.service.AddComment(id, middleware.CurrentStaff(c).Name, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Comment added successfully",
		"data":    comment,
	})
}

// GetAnalytics aggregates over the complaints matching the same query
// parameters ListComplaints accepts.
func (cc *ComplaintController) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cc.service.GetAnalytics(criteriaFromQuery(c)),
	})
}

func (cc *ComplaintController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": DashboardResponse{
			Stats:            cc.service.GetAnalytics(models.Criteria{}),
			RecentComplaints: cc.service.RecentComplaints(cc.recentLimit),
		},
	})
}

func (cc *ComplaintController) GetEnums(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": EnumsResponse{
			Categories:  models.Categories,
			Priorities:  models.Priorities,
			Statuses:    models.Statuses,
			Departments: models.Departments,
			Unassigned:  models.DepartmentUnassigned,
			FilterAll:   models.FilterAll,
		},
	})
}

func criteriaFromQuery(c *gin.Context) models.Criteria {
	return services.ParseCriteria(
		c.Query("category"),
		c.Query("status"),
		c.Query("priority"),
		c.Query("department"),
		c.Query("search"),
	)
}

func complaintID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid complaint ID",
		})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrComplaintNotFound), errors.Is(err, store.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
	default:
		logger.WithError(err, "complaint_controller").Error("Unhandled request error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	}
}
