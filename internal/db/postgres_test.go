package db

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeelmohammed/portfolio-backend/migrations"
)

func TestMigrations_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"002_media.sql":     {Data: []byte("SELECT 2;")},
		"001_init.sql":      {Data: []byte("SELECT 1;")},
		"README.md":         {Data: []byte("docs")},
		"archive/0_old.sql": {Data: []byte("SELECT 0;")},
	}

	names, err := Migrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_media.sql"}, names)
}

func TestMigrations_EmbeddedSchema(t *testing.T) {
	names, err := Migrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_init.sql", names[0])
}
