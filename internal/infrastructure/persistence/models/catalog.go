package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/domain/shared/valueobject"
)

// CareerModel is the persistence model for career paths
type CareerModel struct {
	AggregateModel
	Title          string          `gorm:"type:varchar(200);not null;index"`
	Description    string          `gorm:"type:text;not null"`
	Requirements   string          `gorm:"type:jsonb;default:'[]'"`
	SalaryMin      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	SalaryMax      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	SalaryCurrency string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Skills         string          `gorm:"type:jsonb;default:'[]'"`
	Demand         string          `gorm:"type:varchar(10);index"`
	GrowthRate     string          `gorm:"type:varchar(50)"`
	Categories     string          `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for CareerModel
func (CareerModel) TableName() string {
	return "careers"
}

// ToDomain converts CareerModel to domain Career
func (m *CareerModel) ToDomain() (*catalog.Career, error) {
	currency := valueobject.Currency(m.SalaryCurrency)
	career := &catalog.Career{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Description:       m.Description,
		Requirements:      []string{},
		Salary: catalog.SalaryRange{
			Min: valueobject.MustMoney(m.SalaryMin, currency),
			Max: valueobject.MustMoney(m.SalaryMax, currency),
		},
		Skills:     []string{},
		Demand:     catalog.DemandLevel(m.Demand),
		GrowthRate: m.GrowthRate,
		Categories: []string{},
	}
	if err := unmarshalJSON(m.Requirements, &career.Requirements); err != nil {
		return nil, fmt.Errorf("career %s: %w", m.ID, err)
	}
	if err := unmarshalJSON(m.Skills, &career.Skills); err != nil {
		return nil, fmt.Errorf("career %s: %w", m.ID, err)
	}
	if err := unmarshalJSON(m.Categories, &career.Categories); err != nil {
		return nil, fmt.Errorf("career %s: %w", m.ID, err)
	}
	return career, nil
}

// CareerModelFromDomain converts domain Career to CareerModel
func CareerModelFromDomain(career *catalog.Career) *CareerModel {
	model := &CareerModel{
		Title:          career.Title,
		Description:    career.Description,
		Requirements:   marshalJSON(career.Requirements),
		SalaryMin:      career.Salary.Min.Amount(),
		SalaryMax:      career.Salary.Max.Amount(),
		SalaryCurrency: string(career.Salary.Min.Currency()),
		Skills:         marshalJSON(career.Skills),
		Demand:         string(career.Demand),
		GrowthRate:     career.GrowthRate,
		Categories:     marshalJSON(career.Categories),
	}
	if model.SalaryCurrency == "" {
		model.SalaryCurrency = string(valueobject.USD)
	}
	model.FromDomainAggregateRoot(career.BaseAggregateRoot)
	return model
}

// MentorModel is the persistence model for mentors
type MentorModel struct {
	AggregateModel
	Name              string          `gorm:"type:varchar(200);not null;index"`
	Title             string          `gorm:"type:varchar(200)"`
	Company           string          `gorm:"type:varchar(200)"`
	Bio               string          `gorm:"type:text"`
	Expertise         string          `gorm:"type:jsonb;default:'[]'"`
	YearsOfExperience int             `gorm:"not null;default:0"`
	Rating            float64         `gorm:"not null;default:0"`
	HourlyRate        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	HourlyRateCur     string          `gorm:"column:hourly_rate_currency;type:varchar(3);not null;default:'USD'"`
	ProfilePicture    string          `gorm:"type:varchar(500)"`
	Availability      string          `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for MentorModel
func (MentorModel) TableName() string {
	return "mentors"
}

// ToDomain converts MentorModel to domain Mentor
func (m *MentorModel) ToDomain() (*catalog.Mentor, error) {
	mentor := &catalog.Mentor{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Title:             m.Title,
		Company:           m.Company,
		Bio:               m.Bio,
		Expertise:         []string{},
		YearsOfExperience: m.YearsOfExperience,
		Rating:            m.Rating,
		HourlyRate:        valueobject.MustMoney(m.HourlyRate, valueobject.Currency(m.HourlyRateCur)),
		ProfilePicture:    m.ProfilePicture,
		Availability:      []catalog.AvailabilitySlot{},
	}
	if err := unmarshalJSON(m.Expertise, &mentor.Expertise); err != nil {
		return nil, fmt.Errorf("mentor %s: %w", m.ID, err)
	}
	if err := unmarshalJSON(m.Availability, &mentor.Availability); err != nil {
		return nil, fmt.Errorf("mentor %s: %w", m.ID, err)
	}
	return mentor, nil
}

// MentorModelFromDomain converts domain Mentor to MentorModel
func MentorModelFromDomain(mentor *catalog.Mentor) *MentorModel {
	model := &MentorModel{
		Name:              mentor.Name,
		Title:             mentor.Title,
		Company:           mentor.Company,
		Bio:               mentor.Bio,
		Expertise:         marshalJSON(mentor.Expertise),
		YearsOfExperience: mentor.YearsOfExperience,
		Rating:            mentor.Rating,
		HourlyRate:        mentor.HourlyRate.Amount(),
		HourlyRateCur:     string(mentor.HourlyRate.Currency()),
		ProfilePicture:    mentor.ProfilePicture,
		Availability:      marshalJSON(mentor.Availability),
	}
	if model.HourlyRateCur == "" {
		model.HourlyRateCur = string(valueobject.USD)
	}
	model.FromDomainAggregateRoot(mentor.BaseAggregateRoot)
	return model
}

// LearningModuleModel is the persistence model for learning modules
type LearningModuleModel struct {
	AggregateModel
	Title         string `gorm:"type:varchar(200);not null;index"`
	Description   string `gorm:"type:text"`
	Content       string `gorm:"type:text;not null"`
	EstimatedTime string `gorm:"type:varchar(50)"`
	Category      string `gorm:"type:varchar(100);index"`
	Prerequisites string `gorm:"type:jsonb;default:'[]'"`
	Resources     string `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for LearningModuleModel
func (LearningModuleModel) TableName() string {
	return "learning_modules"
}

// ToDomain converts LearningModuleModel to domain LearningModule
func (m *LearningModuleModel) ToDomain() (*catalog.LearningModule, error) {
	module := &catalog.LearningModule{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Description:       m.Description,
		Content:           m.Content,
		EstimatedTime:     m.EstimatedTime,
		Category:          m.Category,
		Prerequisites:     []uuid.UUID{},
		Resources:         []catalog.Resource{},
	}
	if err := unmarshalJSON(m.Prerequisites, &module.Prerequisites); err != nil {
		return nil, fmt.Errorf("learning module %s: %w", m.ID, err)
	}
	if err := unmarshalJSON(m.Resources, &module.Resources); err != nil {
		return nil, fmt.Errorf("learning module %s: %w", m.ID, err)
	}
	return module, nil
}

// LearningModuleModelFromDomain converts domain LearningModule to LearningModuleModel
func LearningModuleModelFromDomain(module *catalog.LearningModule) *LearningModuleModel {
	model := &LearningModuleModel{
		Title:         module.Title,
		Description:   module.Description,
		Content:       module.Content,
		EstimatedTime: module.EstimatedTime,
		Category:      module.Category,
		Prerequisites: marshalJSON(module.Prerequisites),
		Resources:     marshalJSON(module.Resources),
	}
	model.FromDomainAggregateRoot(module.BaseAggregateRoot)
	return model
}
