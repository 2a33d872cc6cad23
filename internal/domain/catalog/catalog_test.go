package catalog

import (
	"testing"
	"time"

	"github.com/careernest/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCareer(t *testing.T) {
	career, err := NewCareer("  Data Engineer  ", "Builds data pipelines")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", career.Title)
	assert.Equal(t, DemandMedium, career.Demand)
}

func TestNewCareer_EmptyTitle(t *testing.T) {
	_, err := NewCareer("   ", "desc")
	assert.Error(t, err)
}

func TestCareer_SetSalaryRange(t *testing.T) {
	career, _ := NewCareer("Data Engineer", "")
	min, _ := valueobject.NewMoneyFromFloat(90000, valueobject.USD)
	max, _ := valueobject.NewMoneyFromFloat(150000, valueobject.USD)

	require.NoError(t, career.SetSalaryRange(min, max))
	assert.True(t, career.Salary.Min.Equals(min))

	// inverted range
	assert.Error(t, career.SetSalaryRange(max, min))

	// mixed currencies
	eur, _ := valueobject.NewMoneyFromFloat(100000, valueobject.EUR)
	assert.Error(t, career.SetSalaryRange(min, eur))
}

func TestCareer_SetDemand(t *testing.T) {
	career, _ := NewCareer("Data Engineer", "")
	require.NoError(t, career.SetDemand(DemandHigh))
	assert.Error(t, career.SetDemand("extreme"))
}

func TestCareer_Categories(t *testing.T) {
	career, _ := NewCareer("Data Engineer", "")
	career.SetCategories([]string{"Technology", " Data ", ""})
	assert.Equal(t, []string{"Technology", "Data"}, career.Categories)
	assert.True(t, career.HasCategory("technology"))
	assert.False(t, career.HasCategory("finance"))
}

func TestNewMentor(t *testing.T) {
	mentor, err := NewMentor("Ada Lovelace", "Staff Engineer", "Babbage Inc")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", mentor.Name)

	_, err = NewMentor("", "x", "y")
	assert.Error(t, err)
}

func TestMentor_SetRating(t *testing.T) {
	mentor, _ := NewMentor("Ada Lovelace", "", "")
	require.NoError(t, mentor.SetRating(4.5))
	assert.Error(t, mentor.SetRating(5.1))
	assert.Error(t, mentor.SetRating(-0.1))
}

func TestMentor_SetAvailability(t *testing.T) {
	mentor, _ := NewMentor("Ada Lovelace", "", "")

	err := mentor.SetAvailability([]AvailabilitySlot{
		{DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: time.Wednesday, StartTime: "14:00", EndTime: "18:00"},
	})
	require.NoError(t, err)

	assert.True(t, mentor.AcceptsSlot(time.Monday, "10:00", "11:00"))
	assert.True(t, mentor.AcceptsSlot(time.Monday, "09:00", "12:00"))
	assert.False(t, mentor.AcceptsSlot(time.Monday, "11:30", "12:30"))
	assert.False(t, mentor.AcceptsSlot(time.Tuesday, "10:00", "11:00"))
}

func TestMentor_SetAvailability_Invalid(t *testing.T) {
	mentor, _ := NewMentor("Ada Lovelace", "", "")

	err := mentor.SetAvailability([]AvailabilitySlot{
		{DayOfWeek: time.Monday, StartTime: "12:00", EndTime: "09:00"},
	})
	assert.Error(t, err)

	err = mentor.SetAvailability([]AvailabilitySlot{
		{DayOfWeek: time.Monday, StartTime: "9am", EndTime: "12:00"},
	})
	assert.Error(t, err)
}

func TestNewLearningModule(t *testing.T) {
	module, err := NewLearningModule("Intro to SQL", "Basics", "SELECT ...")
	require.NoError(t, err)
	assert.Equal(t, "Intro to SQL", module.Title)

	_, err = NewLearningModule("Intro to SQL", "Basics", "  ")
	assert.Error(t, err)
}

func TestLearningModule_Prerequisites(t *testing.T) {
	module, _ := NewLearningModule("Advanced SQL", "", "JOIN ...")

	assert.Error(t, module.SetPrerequisites([]uuid.UUID{uuid.Nil}))
	assert.Error(t, module.SetPrerequisites([]uuid.UUID{module.ID}))
	require.NoError(t, module.SetPrerequisites([]uuid.UUID{uuid.New()}))
	assert.Len(t, module.Prerequisites, 1)
}

func TestLearningModule_Resources(t *testing.T) {
	module, _ := NewLearningModule("Intro to SQL", "", "SELECT ...")

	err := module.AddResource(Resource{Title: "SQL in 100 Seconds", URL: "https://example.com/v", Type: ResourceVideo})
	require.NoError(t, err)

	assert.Error(t, module.AddResource(Resource{Title: "", URL: "https://example.com", Type: ResourceVideo}))
	assert.Error(t, module.AddResource(Resource{Title: "x", URL: "not a url", Type: ResourceVideo}))
	assert.Error(t, module.AddResource(Resource{Title: "x", URL: "https://example.com", Type: "podcast"}))
	assert.Len(t, module.Resources, 1)
}
