package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// condBuilder acumula predicados WHERE con argumentos posicionales. Los
// criterios nil no agregan nada; el scope del proyecto se agrega siempre que
// no sea global, y ningún criterio puede quitarlo.
type condBuilder struct {
	conds []string
	args  []any
}

func (b *condBuilder) next() int { return len(b.args) + 1 }

// scope agrega el predicado de visibilidad del proyecto sobre la columna dada.
func (b *condBuilder) scope(column string, s domain.Scope) {
	if s.All {
		return
	}
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, b.next()))
	b.args = append(b.args, s.ProjectID)
}

// text casa por subcadena sin distinguir mayúsculas (ILIKE %v%).
func (b *condBuilder) text(column string, v *string) {
	if v == nil {
		return
	}
	b.conds = append(b.conds, fmt.Sprintf("%s ILIKE $%d", column, b.next()))
	b.args = append(b.args, "%"+*v+"%")
}

// eqDecimal igualdad numérica exacta.
func (b *condBuilder) eqDecimal(column string, v *decimal.Decimal) {
	if v == nil {
		return
	}
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, b.next()))
	b.args = append(b.args, *v)
}

// eqInt igualdad para FKs e ids.
func (b *condBuilder) eqInt(column string, v *int64) {
	if v == nil {
		return
	}
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, b.next()))
	b.args = append(b.args, *v)
}

// day igualdad de fecha truncada al día.
func (b *condBuilder) day(column string, v *time.Time) {
	if v == nil {
		return
	}
	b.conds = append(b.conds, fmt.Sprintf("date_trunc('day', %s) = $%d", column, b.next()))
	b.args = append(b.args, v.Truncate(24*time.Hour))
}

// where devuelve la cláusula WHERE armada, o cadena vacía sin predicados.
func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}
