package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	DBExecutor
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubDB struct {
	DBExecutor
}

func (stubDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

func TestGetExecutor(t *testing.T) {
	db := stubDB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	tx := stubTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))

	got, ok := GetTx(txCtx)
	assert.True(t, ok)
	assert.Equal(t, TxExecutor(tx), got)
}
