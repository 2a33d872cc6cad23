package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates up and down files", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "add users table")
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(mf.UpPath, "_add_users_table.up.sql"))
		assert.True(t, strings.HasSuffix(mf.DownPath, "_add_users_table.down.sql"))
		assert.Len(t, mf.Version, 14)

		for _, path := range []string{mf.UpPath, mf.DownPath} {
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(content), "add users table")
		}
	})

	t.Run("creates directory when missing", func(t *testing.T) {
		dir := t.TempDir() + "/nested/migrations"

		_, err := CreateMigration(dir, "init")
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add users table", "add_users_table"},
		{"Add-Mentor Sessions", "add_mentor_sessions"},
		{"weird!!chars##", "weirdchars"},
		{"  spaced  out  ", "spaced_out"},
		{"already_clean_123", "already_clean_123"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("lists migration pairs", func(t *testing.T) {
		dir := t.TempDir()

		_, err := CreateMigration(dir, "first")
		require.NoError(t, err)

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Len(t, migrations, 1)
		assert.True(t, strings.HasSuffix(migrations[0], "_first"))
	})

	t.Run("missing directory yields empty list", func(t *testing.T) {
		migrations, err := ListMigrations(t.TempDir() + "/absent")
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
