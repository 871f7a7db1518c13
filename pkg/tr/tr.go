package tr

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

type ctxKey struct{}

// CtxWithTx кладёт объект транзакции в контекст. Значение принимается
// нетипизированным, проверка на pgx.Tx выполняется при извлечении.
func CtxWithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value(ctxKey{})
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
