package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/careernest/backend/internal/domain/assessment"
	"github.com/careernest/backend/internal/domain/catalog"
)

// SalaryRangeDTO is the serialized salary range
type SalaryRangeDTO struct {
	Min      string `json:"min"`
	Max      string `json:"max"`
	Currency string `json:"currency"`
}

// CareerDTO is the career view returned by the catalog services
type CareerDTO struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Requirements []string       `json:"requirements"`
	Salary       SalaryRangeDTO `json:"salary"`
	Skills       []string       `json:"skills"`
	Demand       string         `json:"demand"`
	GrowthRate   string         `json:"growth_rate,omitempty"`
	Categories   []string       `json:"categories"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ToCareerDTO converts a domain Career to its DTO. Exported for the
// booking package's bookmark listing.
func ToCareerDTO(career *catalog.Career) *CareerDTO {
	return &CareerDTO{
		ID:           career.ID,
		Title:        career.Title,
		Description:  career.Description,
		Requirements: emptyIfNil(career.Requirements),
		Salary: SalaryRangeDTO{
			Min:      career.Salary.Min.Amount().String(),
			Max:      career.Salary.Max.Amount().String(),
			Currency: string(career.Salary.Min.Currency()),
		},
		Skills:     emptyIfNil(career.Skills),
		Demand:     string(career.Demand),
		GrowthRate: career.GrowthRate,
		Categories: emptyIfNil(career.Categories),
		CreatedAt:  career.CreatedAt,
		UpdatedAt:  career.UpdatedAt,
	}
}

// MentorDTO is the mentor view returned by the catalog services
type MentorDTO struct {
	ID                uuid.UUID                 `json:"id"`
	Name              string                    `json:"name"`
	Title             string                    `json:"title"`
	Company           string                    `json:"company"`
	Bio               string                    `json:"bio,omitempty"`
	Expertise         []string                  `json:"expertise"`
	YearsOfExperience int                       `json:"years_of_experience"`
	Rating            float64                   `json:"rating"`
	HourlyRate        string                    `json:"hourly_rate"`
	HourlyRateCur     string                    `json:"hourly_rate_currency"`
	ProfilePicture    string                    `json:"profile_picture,omitempty"`
	Availability      []catalog.AvailabilitySlot `json:"availability"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

func toMentorDTO(mentor *catalog.Mentor) *MentorDTO {
	availability := mentor.Availability
	if availability == nil {
		availability = []catalog.AvailabilitySlot{}
	}
	return &MentorDTO{
		ID:                mentor.ID,
		Name:              mentor.Name,
		Title:             mentor.Title,
		Company:           mentor.Company,
		Bio:               mentor.Bio,
		Expertise:         emptyIfNil(mentor.Expertise),
		YearsOfExperience: mentor.YearsOfExperience,
		Rating:            mentor.Rating,
		HourlyRate:        mentor.HourlyRate.Amount().String(),
		HourlyRateCur:     string(mentor.HourlyRate.Currency()),
		ProfilePicture:    mentor.ProfilePicture,
		Availability:      availability,
		CreatedAt:         mentor.CreatedAt,
		UpdatedAt:         mentor.UpdatedAt,
	}
}

// ModuleSummaryDTO is the learning module list view without content
type ModuleSummaryDTO struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	EstimatedTime string      `json:"estimated_time,omitempty"`
	Category      string      `json:"category,omitempty"`
	Prerequisites []uuid.UUID `json:"prerequisites"`
	ResourceCount int         `json:"resource_count"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ModuleDTO is the full learning module view including content
type ModuleDTO struct {
	ModuleSummaryDTO
	Content   string             `json:"content"`
	Resources []catalog.Resource `json:"resources"`
}

func toModuleSummaryDTO(module *catalog.LearningModule) *ModuleSummaryDTO {
	prerequisites := module.Prerequisites
	if prerequisites == nil {
		prerequisites = []uuid.UUID{}
	}
	return &ModuleSummaryDTO{
		ID:            module.ID,
		Title:         module.Title,
		Description:   module.Description,
		EstimatedTime: module.EstimatedTime,
		Category:      module.Category,
		Prerequisites: prerequisites,
		ResourceCount: len(module.Resources),
		CreatedAt:     module.CreatedAt,
		UpdatedAt:     module.UpdatedAt,
	}
}

func toModuleDTO(module *catalog.LearningModule) *ModuleDTO {
	resources := module.Resources
	if resources == nil {
		resources = []catalog.Resource{}
	}
	return &ModuleDTO{
		ModuleSummaryDTO: *toModuleSummaryDTO(module),
		Content:          module.Content,
		Resources:        resources,
	}
}

// PublicOptionDTO is an answer option as shown before submission. The
// type has no correctness field at all, so grading data cannot leak
// through serialization.
type PublicOptionDTO struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// PublicQuestionDTO is a question as shown before submission
type PublicQuestionDTO struct {
	ID      uuid.UUID         `json:"id"`
	Text    string            `json:"text"`
	Kind    string            `json:"kind"`
	Points  int               `json:"points"`
	Options []PublicOptionDTO `json:"options"`
}

// AssessmentSummaryDTO is the assessment list view
type AssessmentSummaryDTO struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category,omitempty"`
	Difficulty       string    `json:"difficulty,omitempty"`
	QuestionCount    int       `json:"question_count"`
	TotalPoints      int       `json:"total_points"`
	TimeLimitSeconds int       `json:"time_limit_seconds,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AssessmentDetailDTO is the assessment detail view with redacted
// questions
type AssessmentDetailDTO struct {
	AssessmentSummaryDTO
	Questions []PublicQuestionDTO `json:"questions"`
}

func toAssessmentSummaryDTO(def *assessment.Assessment) *AssessmentSummaryDTO {
	return &AssessmentSummaryDTO{
		ID:               def.ID,
		Title:            def.Title,
		Description:      def.Description,
		Category:         def.Category,
		Difficulty:       def.Difficulty,
		QuestionCount:    len(def.Questions),
		TotalPoints:      def.TotalPossiblePoints(),
		TimeLimitSeconds: def.TimeLimitSeconds,
		CreatedAt:        def.CreatedAt,
		UpdatedAt:        def.UpdatedAt,
	}
}

func toAssessmentDetailDTO(def *assessment.Assessment) *AssessmentDetailDTO {
	questions := make([]PublicQuestionDTO, len(def.Questions))
	for i, q := range def.Questions {
		options := make([]PublicOptionDTO, len(q.Options))
		for j, opt := range q.Options {
			options[j] = PublicOptionDTO{ID: opt.ID, Text: opt.Text}
		}
		questions[i] = PublicQuestionDTO{
			ID:      q.ID,
			Text:    q.Text,
			Kind:    string(q.Kind),
			Points:  q.Points,
			Options: options,
		}
	}
	return &AssessmentDetailDTO{
		AssessmentSummaryDTO: *toAssessmentSummaryDTO(def),
		Questions:            questions,
	}
}

// ListResult is the paginated envelope shared by the catalog services
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func newListResult[T any](items []T, total int64, page, pageSize int) *ListResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return &ListResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
