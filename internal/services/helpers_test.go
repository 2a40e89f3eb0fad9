package services

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/civiclink/backend/internal/logger"
	"github.com/civiclink/backend/internal/models"
	"github.com/civiclink/backend/internal/store"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Options{Level: "ERROR"})
	os.Exit(m.Run())
}

func newSeededStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	seed, err := store.DefaultSeed()
	require.NoError(t, err)
	st, err := store.NewSeeded(seed, opts...)
	require.NoError(t, err)
	return st
}

func ids(complaints []models.Complaint) []int {
	out := make([]int, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, c.ID)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

// syntheticComplaints cycles through every enum value so filters and
// aggregates see a mix of everything, including unassigned complaints.
func syntheticComplaints(n int) []models.Complaint {
	depts := append([]models.Department{}, models.Departments...)
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	out := make([]models.Complaint, 0, n)
	for i := 0; i < n; i++ {
		c := models.Complaint{
			ID:          i + 1,
			Title:       fmt.Sprintf("Issue %d", i+1),
			Description: fmt.Sprintf("Reported near block %d", i%7),
			Category:    models.Categories[i%len(models.Categories)],
			Priority:    models.Priorities[i%len(models.Priorities)],
			Status:      models.Statuses[(i/2)%len(models.Statuses)],
			Location:    models.Location{Address: fmt.Sprintf("%d Oak Ave", 100+i)},
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		if i%4 != 3 {
			c.AssignedDepartment = ptr(depts[i%len(depts)])
		}
		out = append(out, c)
	}
	return out
}

func lower(s string) string {
	return strings.ToLower(s)
}
