package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	"ultraai/internal/db"
)

var testDBCounter atomic.Int64

// newTestDB abre um banco SQLite em memória com o mesmo esquema gerado
// pelas migrações de produção. Cada chamada recebe um banco isolado.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBCounter.Add(1))

	sqlDB, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	t.Cleanup(func() { bunDB.Close() })

	require.NoError(t, db.NewMigrator(bunDB).AutoMigrate(context.Background()))

	return bunDB
}
