package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careernest/backend/internal/domain/assessment"
)

// AssessmentModel is the persistence model for assessment definitions.
// Questions are stored whole as jsonb, correctness flags included; the
// application layer is responsible for never serving them raw.
type AssessmentModel struct {
	AggregateModel
	Title            string `gorm:"type:varchar(200);not null;index"`
	Description      string `gorm:"type:text"`
	Category         string `gorm:"type:varchar(100);index"`
	Difficulty       string `gorm:"type:varchar(20);index"`
	TimeLimitSeconds int    `gorm:"not null;default:0"`
	Questions        string `gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for AssessmentModel
func (AssessmentModel) TableName() string {
	return "assessments"
}

// ToDomain converts AssessmentModel to domain Assessment
func (m *AssessmentModel) ToDomain() (*assessment.Assessment, error) {
	def := &assessment.Assessment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Description:       m.Description,
		Category:          m.Category,
		Difficulty:        m.Difficulty,
		TimeLimitSeconds:  m.TimeLimitSeconds,
		Questions:         []assessment.Question{},
	}
	if err := unmarshalJSON(m.Questions, &def.Questions); err != nil {
		return nil, fmt.Errorf("assessment %s: %w", m.ID, err)
	}
	return def, nil
}

// AssessmentModelFromDomain converts domain Assessment to AssessmentModel
func AssessmentModelFromDomain(def *assessment.Assessment) *AssessmentModel {
	model := &AssessmentModel{
		Title:            def.Title,
		Description:      def.Description,
		Category:         def.Category,
		Difficulty:       def.Difficulty,
		TimeLimitSeconds: def.TimeLimitSeconds,
		Questions:        marshalJSON(def.Questions),
	}
	model.FromDomainAggregateRoot(def.BaseAggregateRoot)
	return model
}

// AssessmentResultModel is the persistence model for graded results
type AssessmentResultModel struct {
	AggregateModel
	UserID              uuid.UUID `gorm:"type:uuid;not null;index:idx_results_user"`
	AssessmentID        uuid.UUID `gorm:"type:uuid;not null;index"`
	GradedAnswers       string    `gorm:"type:jsonb;not null;default:'[]'"`
	Score               int       `gorm:"not null"`
	TotalPossiblePoints int       `gorm:"not null"`
	Percentage          int       `gorm:"not null"`
	TimeTakenSeconds    *int
	CompletedAt         time.Time `gorm:"not null;index"`
}

// TableName returns the table name for AssessmentResultModel
func (AssessmentResultModel) TableName() string {
	return "assessment_results"
}

// ToDomain converts AssessmentResultModel to domain AssessmentResult
func (m *AssessmentResultModel) ToDomain() (*assessment.AssessmentResult, error) {
	result := &assessment.AssessmentResult{
		BaseAggregateRoot:   m.ToDomainAggregateRoot(),
		UserID:              m.UserID,
		AssessmentID:        m.AssessmentID,
		GradedAnswers:       []assessment.GradedAnswer{},
		Score:               m.Score,
		TotalPossiblePoints: m.TotalPossiblePoints,
		Percentage:          m.Percentage,
		TimeTakenSeconds:    m.TimeTakenSeconds,
		CompletedAt:         m.CompletedAt,
	}
	if err := unmarshalJSON(m.GradedAnswers, &result.GradedAnswers); err != nil {
		return nil, fmt.Errorf("assessment result %s: %w", m.ID, err)
	}
	return result, nil
}

// AssessmentResultModelFromDomain converts domain AssessmentResult to AssessmentResultModel
func AssessmentResultModelFromDomain(result *assessment.AssessmentResult) *AssessmentResultModel {
	model := &AssessmentResultModel{
		UserID:              result.UserID,
		AssessmentID:        result.AssessmentID,
		GradedAnswers:       marshalJSON(result.GradedAnswers),
		Score:               result.Score,
		TotalPossiblePoints: result.TotalPossiblePoints,
		Percentage:          result.Percentage,
		TimeTakenSeconds:    result.TimeTakenSeconds,
		CompletedAt:         result.CompletedAt,
	}
	model.FromDomainAggregateRoot(result.BaseAggregateRoot)
	return model
}
