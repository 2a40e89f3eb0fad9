package services

import (
	"testing"

	"github.com/civiclink/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregateSeed(t *testing.T) {
	stats := Aggregate(newSeededStore(t).Complaints())

	assert.Equal(t, 4, stats.TotalComplaints)
	assert.Equal(t, 2, stats.OpenComplaints)
	assert.Equal(t, 1, stats.InProgressComplaints)
	assert.Equal(t, 1, stats.ResolvedComplaints)

	assert.Equal(t, map[models.ComplaintCategory]int{
		models.CategoryStreetlight: 1,
		models.CategoryPothole:     1,
		models.CategoryDrainage:    1,
		models.CategoryGarbage:     1,
	}, stats.CategoryStats)
	assert.Equal(t, map[models.ComplaintPriority]int{
		models.PriorityHigh:   2,
		models.PriorityMedium: 1,
		models.PriorityLow:    1,
	}, stats.PriorityStats)
	assert.Equal(t, map[models.Department]int{
		models.DepartmentPublicWorks: 2,
		models.DepartmentUtilities:   1,
	}, stats.DepartmentStats)

	assert.Equal(t, 25, ResolutionRate(stats))
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.TotalComplaints)
	assert.Equal(t, 0, ResolutionRate(stats))
	assert.NotNil(t, stats.CategoryStats)
	assert.Empty(t, stats.CategoryStats)
	assert.Empty(t, stats.DepartmentStats)

	report := BuildReport(stats)
	assert.Equal(t, 0, report.ResolutionRate)
	for _, b := range report.StatusBreakdown {
		assert.Equal(t, 0, b.Percentage)
	}
}

func TestAggregateTotals(t *testing.T) {
	for _, n := range []int{1, 7, 30, 61} {
		records := syntheticComplaints(n)
		stats := Aggregate(records)

		assert.Equal(t, n, stats.TotalComplaints)
		assert.Equal(t, stats.TotalComplaints,
			stats.OpenComplaints+stats.InProgressComplaints+stats.ResolvedComplaints)
		assert.Equal(t, stats.TotalComplaints, sum(stats.CategoryStats))
		assert.Equal(t, stats.TotalComplaints, sum(stats.PriorityStats))
		assert.LessOrEqual(t, sum(stats.DepartmentStats), stats.TotalComplaints)

		assigned := 0
		for _, c := range records {
			if c.AssignedDepartment != nil {
				assigned++
			}
		}
		assert.Equal(t, assigned, sum(stats.DepartmentStats))

		// deterministic across calls
		assert.Equal(t, stats, Aggregate(records))
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total, expected int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{1, 4, 25},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Percentage(test.part, test.total), "%d/%d", test.part, test.total)
	}
}

func TestBreakdownOrdering(t *testing.T) {
	counts := map[models.Department]int{
		models.DepartmentUtilities:      2,
		models.DepartmentPublicWorks:    2,
		models.DepartmentAdministration: 5,
	}

	buckets := Breakdown(counts, 10)
	assert.Equal(t, []models.Bucket{
		{Name: "Administration", Count: 5, Percentage: 50},
		{Name: "Public Works", Count: 2, Percentage: 20},
		{Name: "Utilities", Count: 2, Percentage: 20},
	}, buckets)

	assert.Empty(t, Breakdown(map[models.Department]int{}, 0))
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(Aggregate(newSeededStore(t).Complaints()))

	assert.Equal(t, 4, report.TotalComplaints)
	assert.Equal(t, 25, report.ResolutionRate)
	assert.Equal(t, []models.Bucket{
		{Name: "open", Count: 2, Percentage: 50},
		{Name: "in-progress", Count: 1, Percentage: 25},
		{Name: "resolved", Count: 1, Percentage: 25},
	}, report.StatusBreakdown)
	assert.Equal(t, models.Bucket{Name: "high", Count: 2, Percentage: 50}, report.PriorityBreakdown[0])
	assert.Len(t, report.CategoryBreakdown, 4)
	assert.Equal(t, []models.Bucket{
		{Name: "Public Works", Count: 2, Percentage: 50},
		{Name: "Utilities", Count: 1, Percentage: 25},
	}, report.DepartmentBreakdown)
}

func sum[K comparable](m map[K]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
