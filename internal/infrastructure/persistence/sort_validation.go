package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"username":      true,
	"email":         true,
	"status":        true,
	"last_login_at": true,
}

// CareerSortFields contains allowed sort fields for careers
var CareerSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"title":       true,
	"demand":      true,
	"salary_min":  true,
	"salary_max":  true,
	"growth_rate": true,
}

// MentorSortFields contains allowed sort fields for mentors
var MentorSortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"name":                true,
	"company":             true,
	"rating":              true,
	"hourly_rate":         true,
	"years_of_experience": true,
}

// ModuleSortFields contains allowed sort fields for learning modules
var ModuleSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"category":   true,
}

// AssessmentSortFields contains allowed sort fields for assessments
var AssessmentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"category":   true,
	"difficulty": true,
}

// ResultSortFields contains allowed sort fields for assessment results
var ResultSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"completed_at": true,
	"score":        true,
	"percentage":   true,
}

// SessionSortFields contains allowed sort fields for mentor sessions
var SessionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"date":       true,
	"start_time": true,
	"status":     true,
}
