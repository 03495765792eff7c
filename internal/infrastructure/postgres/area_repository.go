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

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación de AreaRepository sobre PostgreSQL (usable con
// pool o tx).
type AreaRepo struct {
	q Querier
}

// NewAreaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAreaRepository(q Querier) *AreaRepo {
	return &AreaRepo{q: q}
}

// areaViewSelect proyección del registro de área con el material de su lote
// de stock origen.
const areaViewSelect = `
	SELECT a.id, w.material_name, a.quantity, a.serial_number, a.material_id,
	       a.username, a.provide_type, a.card_number,
	       COALESCE(g.group_name, 'N/A') AS group_name,
	       COALESCE(p.project_name, 'N/A') AS project_name,
	       a.stock_id, a.project_id, a.created_at
	FROM area a
	JOIN stock s ON s.id = a.stock_id
	JOIN warehouse w ON w.id = s.warehouse_id
	LEFT JOIN groups g ON g.id = a.group_id
	LEFT JOIN projects p ON p.id = a.project_id`

// CreateBatch inserta los registros del reparto y rellena sus IDs.
func (r *AreaRepo) CreateBatch(records []*entity.Area) error {
	if len(records) == 0 {
		return nil
	}
	query := `
		INSERT INTO area (quantity, serial_number, material_id, provide_type,
		                  card_number, username, stock_id, project_id,
		                  group_id, created_by_id)
		VALUES `
	args := make([]any, 0, len(records)*10)
	for i, a := range records {
		if i > 0 {
			query += ", "
		}
		base := i * 10
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5,
			base+6, base+7, base+8, base+9, base+10)
		args = append(args, a.Quantity, a.SerialNumber, a.MaterialID, a.ProvideType,
			a.CardNumber, a.Username, a.StockID, a.ProjectID, a.GroupID, a.CreatedByID)
	}
	query += " RETURNING id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("create area batch: %w", err)
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&records[i].ID); err != nil {
			return fmt.Errorf("scan area id: %w", err)
		}
	}
	return rows.Err()
}

// GetForUpdate bloquea la fila bajo el scope del caller: un registro fuera de
// su proyecto es indistinguible de inexistente. Devuelve nil si no hay fila.
func (r *AreaRepo) GetForUpdate(scope domain.Scope, id int64) (*entity.Area, error) {
	var b condBuilder
	b.scope("project_id", scope)
	b.conds = append(b.conds, fmt.Sprintf("id = $%d", b.next()))
	b.args = append(b.args, id)
	query := `
		SELECT id, quantity, serial_number, material_id, provide_type,
		       card_number, username, stock_id, project_id, group_id,
		       created_by_id, created_at
		FROM area` + b.where() + `
		FOR UPDATE`

	var a entity.Area
	err := r.q.QueryRow(context.Background(), query, b.args...).Scan(
		&a.ID, &a.Quantity, &a.SerialNumber, &a.MaterialID, &a.ProvideType,
		&a.CardNumber, &a.Username, &a.StockID, &a.ProjectID, &a.GroupID,
		&a.CreatedByID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area for update: %w", err)
	}
	return &a, nil
}

// AdjustQuantity suma delta (negativo para devolver) a la cantidad de la fila.
func (r *AreaRepo) AdjustQuantity(id int64, delta decimal.Decimal) error {
	query := `UPDATE area SET quantity = quantity + $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust area quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Fetch lista los registros visibles para el scope, más recientes primero.
func (r *AreaRepo) Fetch(scope domain.Scope, limit int) ([]*view.AreaView, error) {
	var b condBuilder
	b.scope("a.project_id", scope)
	query := fmt.Sprintf("%s%s ORDER BY a.id DESC LIMIT $%d",
		areaViewSelect, b.where(), b.next())
	args := append(b.args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch area: %w", err)
	}
	defer rows.Close()
	return scanAreaViews(rows)
}

// GetByID devuelve el registro si el scope lo admite; nil si no existe o no
// es visible.
func (r *AreaRepo) GetByID(scope domain.Scope, id int64) (*view.AreaView, error) {
	var b condBuilder
	b.scope("a.project_id", scope)
	b.conds = append(b.conds, fmt.Sprintf("a.id = $%d", b.next()))
	b.args = append(b.args, id)
	query := areaViewSelect + b.where()

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("get area by id: %w", err)
	}
	defer rows.Close()
	views, err := scanAreaViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil
}

// Filter aplica los criterios tipados ANDeados con el scope.
func (r *AreaRepo) Filter(scope domain.Scope, criteria view.AreaFilter) ([]*view.AreaView, error) {
	var b condBuilder
	b.scope("a.project_id", scope)
	b.text("w.material_name", criteria.MaterialName)
	b.eqDecimal("a.quantity", criteria.Quantity)
	b.text("a.serial_number", criteria.SerialNumber)
	b.text("a.material_id", criteria.MaterialID)
	b.text("a.username", criteria.Username)
	b.text("a.provide_type", criteria.ProvideType)
	b.text("a.card_number", criteria.CardNumber)
	b.eqInt("a.group_id", criteria.GroupID)
	b.eqInt("a.stock_id", criteria.StockID)
	b.eqInt("a.project_id", criteria.ProjectID)
	b.eqInt("w.category_id", criteria.CategoryID)
	b.day("a.created_at", criteria.CreatedAt)
	query := areaViewSelect + b.where() + " ORDER BY a.id DESC"

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("filter area: %w", err)
	}
	defer rows.Close()
	return scanAreaViews(rows)
}

func scanAreaViews(rows pgx.Rows) ([]*view.AreaView, error) {
	var views []*view.AreaView
	for rows.Next() {
		var v view.AreaView
		err := rows.Scan(
			&v.ID, &v.MaterialName, &v.Quantity, &v.SerialNumber, &v.MaterialID,
			&v.Username, &v.ProvideType, &v.CardNumber, &v.GroupName,
			&v.ProjectName, &v.StockID, &v.ProjectID, &v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan area view: %w", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}
