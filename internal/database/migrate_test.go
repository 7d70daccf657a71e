package database

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embeddedMigrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups, downs := 0, 0
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups++
		case strings.HasSuffix(f, ".down.sql"):
			downs++
		default:
			t.Errorf("unexpected migration file %s", f)
		}
	}
	assert.Equal(t, ups, downs, "every up migration needs a down migration")

	schema, err := fs.ReadFile(embeddedMigrations, migrationsDir+"/000001_create_shops_and_invoices.up.sql")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`invoice_number\s+TEXT\s+NOT NULL\s+UNIQUE`), string(schema),
		"duplicate invoice numbers are detected through the unique constraint")
}

func TestRollbackMigrations_InvalidSteps(t *testing.T) {
	db := &PostgresDB{}
	assert.Error(t, db.RollbackMigrations(0))
}

func TestNewPostgresDB_MissingURL(t *testing.T) {
	_, err := NewPostgresDB(t.Context(), "")
	assert.Error(t, err)
}
