package database

import (
	"path/filepath"
	"testing"

	"attendance-registry/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesTables(t *testing.T) {
	logger.Nop()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("records"))

	// повторное открытие того же файла не ломает схему
	db2, err := Open(path)
	require.NoError(t, err)
	assert.True(t, db2.Migrator().HasTable("records"))
}
