// Package txmanager выполняет функции внутри сериализуемых транзакций с повтором
// при ошибках сериализации PostgreSQL
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-StaffBooking/pkg/dbmetrics"
)

const (
	// DefaultMaxRetries количество попыток по умолчанию
	DefaultMaxRetries = 3

	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

var (
	// ErrBeginTx ошибка начала транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")
	// ErrCommitTx ошибка фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
	// ErrRetriesExhausted все попытки завершились ошибкой сериализации
	ErrRetriesExhausted = errors.New("txmanager: serialization retries exhausted")
)

// TxBeginner интерфейс для начала транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db         TxBeginner
	maxRetries int
}

// NewTransactionManager создает менеджер транзакций.
// maxRetries <= 0 означает DefaultMaxRetries.
func NewTransactionManager(db TxBeginner, maxRetries int) *TransactionManager {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &TransactionManager{db: db, maxRetries: maxRetries}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE.
// Транзакция передается в fn через контекст (dbmetrics.WithTx).
// Если в контексте уже есть транзакция, fn выполняется в ней.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 0; attempt < m.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = m.runOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}
	return nil
}

// IsRetryable проверяет, что ошибка вызвана конфликтом сериализации или дедлоком
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
	}
	return false
}
