// Package gormtest opens throwaway in-memory SQLite databases with the application schema.
package gormtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbgorm "zipcode-web/internal/infra/database/gorm"
)

var sequence atomic.Int64

// New returns a migrated database private to t, closed on cleanup
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", name, sequence.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), dbgorm.NewGormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbgorm.Migrate(db))
	return db
}
