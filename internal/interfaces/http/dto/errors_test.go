package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"MAX_REFRESH_EXCEEDED", http.StatusUnauthorized},
		{"ACCOUNT_LOCKED", http.StatusForbidden},
		{"FORBIDDEN", http.StatusForbidden},
		{"CAREER_NOT_FOUND", http.StatusNotFound},
		{"MENTOR_NOT_FOUND", http.StatusNotFound},
		{"USERNAME_EXISTS", http.StatusConflict},
		{"EMAIL_EXISTS", http.StatusConflict},
		{"SLOT_UNAVAILABLE", http.StatusConflict},
		{"OUTSIDE_AVAILABILITY", http.StatusUnprocessableEntity},
		{"INVALID_RATING", http.StatusBadRequest},
		{"INVALID_TITLE", http.StatusBadRequest},
		{"INVALID_DEFINITION", http.StatusInternalServerError},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
		{"SOMETHING_UNEXPECTED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta([]string{}, 41, 1, 20)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.Meta.TotalPages)
	})

	t.Run("zero page size yields zero pages", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta(nil, 10, 1, 0)
		assert.Equal(t, 0, resp.Meta.TotalPages)
	})
}

func TestListRequestToFilter(t *testing.T) {
	t.Run("defaults applied for zero values", func(t *testing.T) {
		filter := ListRequest{}.ToFilter()
		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, 20, filter.PageSize)
	})

	t.Run("explicit values win", func(t *testing.T) {
		filter := ListRequest{Page: 3, PageSize: 50, OrderBy: "title", OrderDir: "asc", Search: "go"}.ToFilter()
		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 50, filter.PageSize)
		assert.Equal(t, "title", filter.OrderBy)
		assert.Equal(t, "asc", filter.OrderDir)
		assert.Equal(t, "go", filter.Search)
	})
}
