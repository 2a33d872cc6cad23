// Package catalog holds the browsable content of the platform: career
// paths, mentors and learning modules.
package catalog

import (
	"strings"
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/domain/shared/valueobject"
)

// DemandLevel describes current market demand for a career
type DemandLevel string

const (
	DemandHigh   DemandLevel = "high"
	DemandMedium DemandLevel = "medium"
	DemandLow    DemandLevel = "low"
)

// SalaryRange is the expected compensation band for a career
type SalaryRange struct {
	Min valueobject.Money `json:"min"`
	Max valueobject.Money `json:"max"`
}

// Career represents a career path users can explore and bookmark
type Career struct {
	shared.BaseAggregateRoot
	Title        string
	Description  string
	Requirements []string
	Salary       SalaryRange
	Skills       []string
	Demand       DemandLevel
	GrowthRate   string
	Categories   []string
}

// NewCareer creates a new career path
func NewCareer(title, description string) (*Career, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Career title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Career title cannot exceed 200 characters")
	}

	return &Career{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Description:       strings.TrimSpace(description),
		Requirements:      make([]string, 0),
		Skills:            make([]string, 0),
		Categories:        make([]string, 0),
		Demand:            DemandMedium,
	}, nil
}

// SetSalaryRange sets the salary band. Min must not exceed max.
func (c *Career) SetSalaryRange(min, max valueobject.Money) error {
	if min.IsNegative() || max.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}

	maxBelowMin, err := max.LessThan(min)
	if err != nil {
		return shared.NewDomainError("INVALID_SALARY", "Salary range must use a single currency")
	}
	if maxBelowMin {
		return shared.NewDomainError("INVALID_SALARY", "Maximum salary cannot be below minimum")
	}

	c.Salary = SalaryRange{Min: min, Max: max}
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetDemand sets the market demand level
func (c *Career) SetDemand(demand DemandLevel) error {
	switch demand {
	case DemandHigh, DemandMedium, DemandLow:
	default:
		return shared.NewDomainError("INVALID_DEMAND", "Demand must be high, medium or low")
	}

	c.Demand = demand
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetGrowthRate sets the projected growth rate label, e.g. "8% (2023-2033)"
func (c *Career) SetGrowthRate(growthRate string) {
	c.GrowthRate = strings.TrimSpace(growthRate)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetRequirements replaces the requirement list
func (c *Career) SetRequirements(requirements []string) {
	c.Requirements = cleanList(requirements)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetSkills replaces the skill list
func (c *Career) SetSkills(skills []string) {
	c.Skills = cleanList(skills)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetCategories replaces the category list
func (c *Career) SetCategories(categories []string) {
	c.Categories = cleanList(categories)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// HasCategory reports whether the career is tagged with the category
func (c *Career) HasCategory(category string) bool {
	for _, cat := range c.Categories {
		if strings.EqualFold(cat, category) {
			return true
		}
	}
	return false
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
