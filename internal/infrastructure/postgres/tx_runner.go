package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Bodega-api/internal/application/asset"
	"github.com/jhoicas/Bodega-api/internal/application/batch"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// Ensure TxRunner implements batch.TxRunner y asset.TxRunner.
var _ batch.TxRunner = (*TxRunner)(nil)
var _ asset.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la pieza
// que hace atómicos los chequeos leer-sumar-comparar-insertar de los
// invariantes de conservación.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	eventRepo repository.DeliveryEventRepository,
	lotRepo repository.ExpiryLotRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	eventRepo := NewDeliveryEventRepository(tx)
	lotRepo := NewExpiryLotRepository(tx)

	if err := fn(eventRepo, lotRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAsset inicia una transacción con los repos de activos y sus dos desgloses.
func (r *TxRunner) RunAsset(ctx context.Context, fn func(
	assetRepo repository.AssetRepository,
	statusRepo repository.StatusAllocationRepository,
	acqRepo repository.AcquisitionLotRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	assetRepo := NewAssetRepository(tx)
	statusRepo := NewStatusAllocationRepository(tx)
	acqRepo := NewAcquisitionLotRepository(tx)

	if err := fn(assetRepo, statusRepo, acqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
