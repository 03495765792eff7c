package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// stockViewSelect proyección del lote de stock; los campos descriptivos
// vienen del lote de almacén origen.
const stockViewSelect = `
	SELECT s.id, s.quantity, s.left_over, s.serial_number, s.material_id,
	       w.material_name, w.unit,
	       COALESCE(mc.code_num, 'N/A') AS material_code,
	       COALESCE(cat.category_name, 'N/A') AS category,
	       COALESCE(NULLIF(CONCAT_WS(' ', o.f_name, o.m_name, o.l_name), ''), 'N/A') AS ordered,
	       COALESCE(co.company_name, 'N/A') AS company,
	       COALESCE(p.project_name, 'N/A') AS project,
	       s.warehouse_id, s.project_id, s.created_at
	FROM stock s
	JOIN warehouse w ON w.id = s.warehouse_id
	LEFT JOIN material_codes mc ON mc.id = w.material_code_id
	LEFT JOIN categories cat ON cat.id = w.category_id
	LEFT JOIN ordered o ON o.id = w.ordered_id
	LEFT JOIN companies co ON co.id = w.company_id
	LEFT JOIN projects p ON p.id = s.project_id`

// CreateBatch inserta los lotes emitidos y rellena sus IDs (RETURNING).
func (r *StockRepo) CreateBatch(lots []*entity.Stock) error {
	if len(lots) == 0 {
		return nil
	}
	query := `
		INSERT INTO stock (quantity, left_over, serial_number, material_id,
		                   warehouse_id, project_id, created_by_id)
		VALUES `
	args := make([]any, 0, len(lots)*7)
	for i, s := range lots {
		if i > 0 {
			query += ", "
		}
		base := i * 7
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, s.Quantity, s.LeftOver, s.SerialNumber, s.MaterialID,
			s.WarehouseID, s.ProjectID, s.CreatedByID)
	}
	query += " RETURNING id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("create stock batch: %w", err)
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&lots[i].ID); err != nil {
			return fmt.Errorf("scan stock id: %w", err)
		}
	}
	return rows.Err()
}

// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
func (r *StockRepo) GetForUpdate(id int64) (*entity.Stock, error) {
	query := `
		SELECT id, quantity, left_over, serial_number, material_id,
		       warehouse_id, project_id, created_by_id, created_at
		FROM stock WHERE id = $1
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Quantity, &s.LeftOver, &s.SerialNumber, &s.MaterialID,
		&s.WarehouseID, &s.ProjectID, &s.CreatedByID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// AdjustLeftOver suma delta (negativo para repartir) al left_over de la fila.
func (r *StockRepo) AdjustLeftOver(id int64, delta decimal.Decimal) error {
	query := `UPDATE stock SET left_over = left_over + $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock left_over: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReduceOnReturn retira parte del retiro original: baja quantity Y left_over
// en la misma sentencia.
func (r *StockRepo) ReduceOnReturn(id int64, qty decimal.Decimal) error {
	query := `
		UPDATE stock
		SET quantity = quantity - $2, left_over = left_over - $2
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return fmt.Errorf("reduce stock on return: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Fetch lista los lotes de stock visibles para el scope, más recientes primero.
func (r *StockRepo) Fetch(scope domain.Scope, limit int) ([]*view.StockView, error) {
	var b condBuilder
	b.scope("s.project_id", scope)
	query := fmt.Sprintf("%s%s ORDER BY s.id DESC LIMIT $%d",
		stockViewSelect, b.where(), b.next())
	args := append(b.args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch stock: %w", err)
	}
	defer rows.Close()
	return scanStockViews(rows)
}

// FetchByIDs lista los lotes pedidos que el scope puede ver.
func (r *StockRepo) FetchByIDs(scope domain.Scope, ids []int64) ([]*view.StockView, error) {
	var b condBuilder
	b.scope("s.project_id", scope)
	b.conds = append(b.conds, fmt.Sprintf("s.id = ANY($%d)", b.next()))
	b.args = append(b.args, ids)
	query := stockViewSelect + b.where() + " ORDER BY s.id"

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("fetch stock by ids: %w", err)
	}
	defer rows.Close()
	return scanStockViews(rows)
}

// GetByID devuelve el lote si el scope lo admite; nil si no existe o no es
// visible.
func (r *StockRepo) GetByID(scope domain.Scope, id int64) (*view.StockView, error) {
	var b condBuilder
	b.scope("s.project_id", scope)
	b.conds = append(b.conds, fmt.Sprintf("s.id = $%d", b.next()))
	b.args = append(b.args, id)
	query := stockViewSelect + b.where()

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("get stock by id: %w", err)
	}
	defer rows.Close()
	views, err := scanStockViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil
}

// Filter aplica los criterios tipados ANDeados con el scope; los campos
// descriptivos filtran por el lote de almacén origen.
func (r *StockRepo) Filter(scope domain.Scope, criteria view.StockFilter) ([]*view.StockView, error) {
	var b condBuilder
	b.scope("s.project_id", scope)
	b.text("w.material_name", criteria.MaterialName)
	b.eqDecimal("s.quantity", criteria.Quantity)
	b.text("w.unit", criteria.Unit)
	b.eqDecimal("w.price", criteria.Price)
	b.text("w.currency", criteria.Currency)
	b.eqInt("w.category_id", criteria.CategoryID)
	b.text("w.po_num", criteria.PONum)
	b.text("w.doc_num", criteria.DocNum)
	b.eqInt("w.material_code_id", criteria.MaterialCodeID)
	b.eqInt("s.project_id", criteria.ProjectID)
	b.eqInt("w.ordered_id", criteria.OrderedID)
	b.eqInt("w.company_id", criteria.CompanyID)
	b.text("s.serial_number", criteria.SerialNumber)
	b.text("s.material_id", criteria.MaterialID)
	b.day("s.created_at", criteria.CreatedAt)
	query := stockViewSelect + b.where() + " ORDER BY s.id DESC"

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("filter stock: %w", err)
	}
	defer rows.Close()
	return scanStockViews(rows)
}

func scanStockViews(rows pgx.Rows) ([]*view.StockView, error) {
	var views []*view.StockView
	for rows.Next() {
		var v view.StockView
		err := rows.Scan(
			&v.ID, &v.Quantity, &v.LeftOver, &v.SerialNumber, &v.MaterialID,
			&v.MaterialName, &v.Unit, &v.MaterialCode, &v.Category,
			&v.Ordered, &v.Company, &v.Project, &v.WarehouseID, &v.ProjectID,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stock view: %w", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}
