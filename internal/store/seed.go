package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/civiclink/backend/internal/models"
)

//go:embed seed.json
var embeddedSeed []byte

// Seed is the initial data set loaded at process start.
type Seed struct {
	Users      []models.User      `json:"users"`
	Complaints []models.Complaint `json:"complaints"`
}

// DefaultSeed returns the built-in demo data: three staff accounts and four
// complaints.
func DefaultSeed() (Seed, error) {
	return decodeSeed(embeddedSeed)
}

// LoadSeedFile reads a seed from a JSON file with the same shape as the
// embedded one.
func LoadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// ResolveSeed loads path when it is set and the embedded seed otherwise.
func ResolveSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	return LoadSeedFile(path)
}

func LoadSeed(r io.Reader) (Seed, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed: %w", err)
	}
	return decodeSeed(data)
}

func decodeSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to decode seed: %w", err)
	}
	if err := seed.normalize(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// normalize validates enum values and ids and fills in empty collections.
func (s *Seed) normalize() error {
	userIDs := make(map[int]bool, len(s.Users))
	for _, u := range s.Users {
		if userIDs[u.ID] {
			return fmt.Errorf("duplicate user id %d in seed", u.ID)
		}
		userIDs[u.ID] = true
	}

	complaintIDs := make(map[int]bool, len(s.Complaints))
	for i := range s.Complaints {
		c := &s.Complaints[i]
		if complaintIDs[c.ID] {
			return fmt.Errorf("duplicate complaint id %d in seed", c.ID)
		}
		complaintIDs[c.ID] = true

		if !c.Category.Valid() {
			return fmt.Errorf("complaint %d: unknown category %q", c.ID, c.Category)
		}
		if !c.Priority.Valid() {
			return fmt.Errorf("complaint %d: unknown priority %q", c.ID, c.Priority)
		}
		if !c.Status.Valid() {
			return fmt.Errorf("complaint %d: unknown status %q", c.ID, c.Status)
		}
		if c.AssignedDepartment != nil {
			switch d := *c.AssignedDepartment; {
			case d == "" || d == models.DepartmentUnassigned:
				c.AssignedDepartment = nil
			case !d.Valid():
				return fmt.Errorf("complaint %d: unknown department %q", c.ID, d)
			}
		}
		if c.UpdatedAt.Before(c.CreatedAt) {
			return fmt.Errorf("complaint %d: updatedAt precedes createdAt", c.ID)
		}
		if c.Images == nil {
			c.Images = []string{}
		}
		if c.Comments == nil {
			c.Comments = []models.Comment{}
		}
	}
	return nil
}
