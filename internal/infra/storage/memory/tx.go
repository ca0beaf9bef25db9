package memory

import (
	"context"
	"sync"
)

type txKey struct{}

// TxManager выполняет функции строго последовательно, как SERIALIZABLE транзакции
// без конфликтов. Вложенные вызовы выполняются в уже захваченной "транзакции".
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает менеджер транзакций
func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}
