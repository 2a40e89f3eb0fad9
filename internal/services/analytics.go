package services

import (
	"math"
	"sort"

	"github.com/civiclink/backend/internal/models"
)

// Aggregate computes grouped counts over records. Complaints without a
// department are left out of DepartmentStats only.
func Aggregate(records []models.Complaint) models.DashboardStats {
	stats := models.DashboardStats{
		TotalComplaints: len(records),
		CategoryStats:   make(map[models.ComplaintCategory]int),
		PriorityStats:   make(map[models.ComplaintPriority]int),
		DepartmentStats: make(map[models.Department]int),
	}
	for _, c := range records {
		switch c.Status {
		case models.StatusOpen:
			stats.OpenComplaints++
		case models.StatusInProgress:
			stats.InProgressComplaints++
		case models.StatusResolved:
			stats.ResolvedComplaints++
		}
		stats.CategoryStats[c.Category]++
		stats.PriorityStats[c.Priority]++
		if c.AssignedDepartment != nil {
			stats.DepartmentStats[*c.AssignedDepartment]++
		}
	}
	return stats
}

// ResolutionRate is the rounded share of resolved complaints, 0..100.
func ResolutionRate(stats models.DashboardStats) int {
	return Percentage(stats.ResolvedComplaints, stats.TotalComplaints)
}

// Percentage returns round(part/total*100), or 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Breakdown turns a count map into chart rows sorted by count, largest
// first, then by name.
func Breakdown[K ~string](counts map[K]int, total int) []models.Bucket {
	buckets := make([]models.Bucket, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, models.Bucket{
			Name:       string(name),
			Count:      count,
			Percentage: Percentage(count, total),
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}

// BuildReport derives the analytics view from stats. Department
// percentages are relative to all complaints, assigned or not.
func BuildReport(stats models.DashboardStats) models.AnalyticsReport {
	total := stats.TotalComplaints
	return models.AnalyticsReport{
		DashboardStats: stats,
		ResolutionRate: ResolutionRate(stats),
		StatusBreakdown: []models.Bucket{
			{Name: string(models.StatusOpen), Count: stats.OpenComplaints, Percentage: Percentage(stats.OpenComplaints, total)},
			{Name: string(models.StatusInProgress), Count: stats.InProgressComplaints, Percentage: Percentage(stats.InProgressComplaints, total)},
			{Name: string(models.StatusResolved), Count: stats.ResolvedComplaints, Percentage: Percentage(stats.ResolvedComplaints, total)},
		},
		CategoryBreakdown:   Breakdown(stats.CategoryStats, total),
		PriorityBreakdown:   Breakdown(stats.PriorityStats, total),
		DepartmentBreakdown: Breakdown(stats.DepartmentStats, total),
	}
}
