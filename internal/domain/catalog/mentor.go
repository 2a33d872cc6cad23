package catalog

import (
	"strings"
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/domain/shared/valueobject"
)

// AvailabilitySlot is a weekly recurring window in which a mentor
// accepts session bookings. Times are "HH:MM" in the mentor's timezone.
type AvailabilitySlot struct {
	DayOfWeek time.Weekday `json:"day_of_week"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
}

// Mentor represents a professional offering mentorship sessions
type Mentor struct {
	shared.BaseAggregateRoot
	Name              string
	Title             string
	Company           string
	Bio               string
	Expertise         []string
	YearsOfExperience int
	Rating            float64
	HourlyRate        valueobject.Money
	ProfilePicture    string
	Availability      []AvailabilitySlot
}

// NewMentor creates a new mentor profile
func NewMentor(name, title, company string) (*Mentor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Mentor name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Mentor name cannot exceed 200 characters")
	}

	return &Mentor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Title:             strings.TrimSpace(title),
		Company:           strings.TrimSpace(company),
		Expertise:         make([]string, 0),
		Availability:      make([]AvailabilitySlot, 0),
	}, nil
}

// SetBio sets the mentor's biography
func (m *Mentor) SetBio(bio string) error {
	if len(bio) > 2000 {
		return shared.NewDomainError("INVALID_BIO", "Bio cannot exceed 2000 characters")
	}

	m.Bio = strings.TrimSpace(bio)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetExpertise replaces the expertise list
func (m *Mentor) SetExpertise(expertise []string) {
	m.Expertise = cleanList(expertise)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

// SetYearsOfExperience sets the mentor's experience
func (m *Mentor) SetYearsOfExperience(years int) error {
	if years < 0 || years > 80 {
		return shared.NewDomainError("INVALID_EXPERIENCE", "Years of experience must be between 0 and 80")
	}

	m.YearsOfExperience = years
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetRating sets the mentor's average rating
func (m *Mentor) SetRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 0 and 5")
	}

	m.Rating = rating
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetHourlyRate sets the mentor's hourly rate
func (m *Mentor) SetHourlyRate(rate valueobject.Money) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Hourly rate cannot be negative")
	}

	m.HourlyRate = rate
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetProfilePicture sets the mentor's profile picture URL
func (m *Mentor) SetProfilePicture(url string) error {
	if url != "" && len(url) > 500 {
		return shared.NewDomainError("INVALID_PROFILE_PICTURE", "Profile picture URL cannot exceed 500 characters")
	}

	m.ProfilePicture = url
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetAvailability replaces the mentor's weekly availability
func (m *Mentor) SetAvailability(slots []AvailabilitySlot) error {
	for _, slot := range slots {
		if err := validateSlot(slot); err != nil {
			return err
		}
	}

	m.Availability = slots
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// HasExpertise reports whether the mentor lists the given expertise area
func (m *Mentor) HasExpertise(area string) bool {
	for _, e := range m.Expertise {
		if strings.EqualFold(e, area) {
			return true
		}
	}
	return false
}

// AcceptsSlot reports whether (day, start, end) falls inside one of the
// mentor's declared availability windows.
func (m *Mentor) AcceptsSlot(day time.Weekday, startTime, endTime string) bool {
	for _, slot := range m.Availability {
		if slot.DayOfWeek == day && slot.StartTime <= startTime && endTime <= slot.EndTime {
			return true
		}
	}
	return false
}

func validateSlot(slot AvailabilitySlot) error {
	if slot.DayOfWeek < time.Sunday || slot.DayOfWeek > time.Saturday {
		return shared.NewDomainError("INVALID_AVAILABILITY", "Day of week is out of range")
	}
	if !validClockTime(slot.StartTime) || !validClockTime(slot.EndTime) {
		return shared.NewDomainError("INVALID_AVAILABILITY", "Times must be in HH:MM format")
	}
	if slot.EndTime <= slot.StartTime {
		return shared.NewDomainError("INVALID_AVAILABILITY", "End time must be after start time")
	}
	return nil
}

// validClockTime checks the "HH:MM" shape. Lexicographic comparison of
// times is only valid with zero-padded hours, so the shape is strict.
func validClockTime(value string) bool {
	if _, err := time.Parse("15:04", value); err != nil {
		return false
	}
	return len(value) == 5
}
