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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL
// (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// warehouseViewSelect proyección del lote con sus lookups por nombre; las
// relaciones opcionales ausentes salen como el centinela "N/A".
const warehouseViewSelect = `
	SELECT w.id, w.material_name, w.qty, w.left_over, w.unit, w.price,
	       w.currency, w.po_num, w.doc_num,
	       COALESCE(mc.code_num, 'N/A') AS material_code,
	       COALESCE(cat.category_name, 'N/A') AS category,
	       COALESCE(p.project_name, 'N/A') AS project,
	       COALESCE(NULLIF(CONCAT_WS(' ', o.f_name, o.m_name, o.l_name), ''), 'N/A') AS ordered,
	       COALESCE(co.company_name, 'N/A') AS company,
	       w.project_id, w.created_at
	FROM warehouse w
	LEFT JOIN material_codes mc ON mc.id = w.material_code_id
	LEFT JOIN categories cat ON cat.id = w.category_id
	LEFT JOIN projects p ON p.id = w.project_id
	LEFT JOIN ordered o ON o.id = w.ordered_id
	LEFT JOIN companies co ON co.id = w.company_id`

// CreateBatch inserta las líneas del lote en una sola sentencia multi-fila:
// o entran todas o ninguna.
func (r *WarehouseRepo) CreateBatch(lots []*entity.Warehouse) error {
	if len(lots) == 0 {
		return nil
	}
	query := `
		INSERT INTO warehouse (material_name, qty, left_over, unit, price,
		                       currency, po_num, doc_num, project_id,
		                       material_code_id, category_id, ordered_id,
		                       company_id, created_by_id)
		VALUES `
	args := make([]any, 0, len(lots)*14)
	for i, w := range lots {
		if i > 0 {
			query += ", "
		}
		base := i * 14
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			base+8, base+9, base+10, base+11, base+12, base+13, base+14)
		args = append(args, w.MaterialName, w.Qty, w.LeftOver, w.Unit, w.Price,
			w.Currency, w.PONum, w.DocNum, w.ProjectID,
			w.MaterialCodeID, w.CategoryID, w.OrderedID, w.CompanyID, w.CreatedByID)
	}
	query += " RETURNING id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("create warehouse batch: %w", err)
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&lots[i].ID); err != nil {
			return fmt.Errorf("scan warehouse id: %w", err)
		}
	}
	return rows.Err()
}

// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
func (r *WarehouseRepo) GetForUpdate(id int64) (*entity.Warehouse, error) {
	query := `
		SELECT id, material_name, qty, left_over, unit, price, currency,
		       po_num, doc_num, project_id, material_code_id, category_id,
		       ordered_id, company_id, created_by_id, created_at
		FROM warehouse WHERE id = $1
		FOR UPDATE`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.MaterialName, &w.Qty, &w.LeftOver, &w.Unit, &w.Price,
		&w.Currency, &w.PONum, &w.DocNum, &w.ProjectID, &w.MaterialCodeID,
		&w.CategoryID, &w.OrderedID, &w.CompanyID, &w.CreatedByID, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse for update: %w", err)
	}
	return &w, nil
}

// AdjustLeftOver suma delta (negativo para retirar) al left_over de la fila.
func (r *WarehouseRepo) AdjustLeftOver(id int64, delta decimal.Decimal) error {
	query := `UPDATE warehouse SET left_over = left_over + $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust warehouse left_over: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update reemplaza los campos editables del lote.
func (r *WarehouseRepo) Update(lot *entity.Warehouse) error {
	query := `
		UPDATE warehouse
		SET material_name = $2, qty = $3, left_over = $4, unit = $5,
		    price = $6, currency = $7, po_num = $8, doc_num = $9,
		    project_id = $10, material_code_id = $11, category_id = $12,
		    ordered_id = $13, company_id = $14
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.MaterialName, lot.Qty, lot.LeftOver, lot.Unit,
		lot.Price, lot.Currency, lot.PONum, lot.DocNum,
		lot.ProjectID, lot.MaterialCodeID, lot.CategoryID,
		lot.OrderedID, lot.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Fetch lista los lotes visibles para el scope, más recientes primero.
func (r *WarehouseRepo) Fetch(scope domain.Scope, limit int) ([]*view.WarehouseView, error) {
	var b condBuilder
	b.scope("w.project_id", scope)
	query := fmt.Sprintf("%s%s ORDER BY w.id DESC LIMIT $%d",
		warehouseViewSelect, b.where(), b.next())
	args := append(b.args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch warehouse: %w", err)
	}
	defer rows.Close()
	return scanWarehouseViews(rows)
}

// FetchByIDs lista los lotes pedidos que el scope puede ver.
func (r *WarehouseRepo) FetchByIDs(scope domain.Scope, ids []int64) ([]*view.WarehouseView, error) {
	var b condBuilder
	b.scope("w.project_id", scope)
	b.conds = append(b.conds, fmt.Sprintf("w.id = ANY($%d)", b.next()))
	b.args = append(b.args, ids)
	query := warehouseViewSelect + b.where() + " ORDER BY w.id"

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("fetch warehouse by ids: %w", err)
	}
	defer rows.Close()
	return scanWarehouseViews(rows)
}

// GetByID devuelve el lote si el scope lo admite; nil si no existe o no es
// visible.
func (r *WarehouseRepo) GetByID(scope domain.Scope, id int64) (*view.WarehouseView, error) {
	var b condBuilder
	b.scope("w.project_id", scope)
	b.conds = append(b.conds, fmt.Sprintf("w.id = $%d", b.next()))
	b.args = append(b.args, id)
	query := warehouseViewSelect + b.where()

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("get warehouse by id: %w", err)
	}
	defer rows.Close()
	views, err := scanWarehouseViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil
}

// Filter aplica los criterios tipados ANDeados con el scope.
func (r *WarehouseRepo) Filter(scope domain.Scope, criteria view.WarehouseFilter) ([]*view.WarehouseView, error) {
	var b condBuilder
	b.scope("w.project_id", scope)
	b.text("w.material_name", criteria.MaterialName)
	b.eqDecimal("w.qty", criteria.Qty)
	b.text("w.unit", criteria.Unit)
	b.eqDecimal("w.price", criteria.Price)
	b.text("w.currency", criteria.Currency)
	b.eqInt("w.category_id", criteria.CategoryID)
	b.text("w.po_num", criteria.PONum)
	b.text("w.doc_num", criteria.DocNum)
	b.eqInt("w.material_code_id", criteria.MaterialCodeID)
	b.eqInt("w.project_id", criteria.ProjectID)
	b.eqInt("w.ordered_id", criteria.OrderedID)
	b.eqInt("w.company_id", criteria.CompanyID)
	b.day("w.created_at", criteria.CreatedAt)
	query := warehouseViewSelect + b.where() + " ORDER BY w.id DESC"

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("filter warehouse: %w", err)
	}
	defer rows.Close()
	return scanWarehouseViews(rows)
}

func scanWarehouseViews(rows pgx.Rows) ([]*view.WarehouseView, error) {
	var views []*view.WarehouseView
	for rows.Next() {
		var v view.WarehouseView
		err := rows.Scan(
			&v.ID, &v.MaterialName, &v.Qty, &v.LeftOver, &v.Unit, &v.Price,
			&v.Currency, &v.PONum, &v.DocNum, &v.MaterialCode, &v.Category,
			&v.Project, &v.Ordered, &v.Company, &v.ProjectID, &v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse view: %w", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}
