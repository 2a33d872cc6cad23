package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"desc lowercase returns DESC", "desc", "DESC"},
		{"invalid value returns DESC", "sideways", "DESC"},
		{"sql injection attempt returns DESC", "ASC; DROP TABLE users;--", "DESC"},
		{"whitespace around ASC returns ASC", "  asc  ", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		allowedMap   map[string]bool
		defaultField string
		expected     string
	}{
		{"empty string returns default", "", CareerSortFields, "created_at", "created_at"},
		{"valid field returns field", "title", CareerSortFields, "created_at", "title"},
		{"field from another whitelist returns default", "username", CareerSortFields, "created_at", "created_at"},
		{"sql injection attempt returns default", "title; DROP TABLE careers;--", CareerSortFields, "created_at", "created_at"},
		{"case sensitive so uppercase is invalid", "TITLE", CareerSortFields, "created_at", "created_at"},
		{"whitespace around valid field returns field", "  title  ", CareerSortFields, "created_at", "title"},
		{"user whitelist accepts username", "username", UserSortFields, "created_at", "username"},
		{"session whitelist accepts date", "date", SessionSortFields, "created_at", "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, tt.allowedMap, tt.defaultField))
		})
	}
}
