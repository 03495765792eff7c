package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-api/internal/application/transfer"
)

var _ transfer.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repositorios de movimiento atados a esa tx. La conexión queda tomada del
// pool durante todo el ciclo bloquear -> validar -> mutar -> registrar.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia la transacción, arma los repos sobre la tx y hace Commit si fn
// devuelve nil; cualquier error revierte todo.
func (r *TxRunner) Run(ctx context.Context, fn func(repos transfer.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := transfer.Repos{
		Warehouses: NewWarehouseRepository(tx),
		Stocks:     NewStockRepository(tx),
		Areas:      NewAreaRepository(tx),
		Logs:       NewMovementLogRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
