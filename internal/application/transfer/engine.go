package transfer

import (
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Engine es el motor de movimientos de inventario: emisión almacén->stock,
// reparto stock->área, devoluciones inversas y corrección de cantidad.
// Único escritor de left_over/quantity en todo el sistema; cada operación es
// una transacción con bloqueo pesimista de filas, todo-o-nada.
type Engine struct {
	tx     TxRunner
	policy LogPolicy
	log    *logger.Logger
}

// NewEngine construye el motor. El TxRunner llega inyectado: el motor nunca
// posee una conexión global.
func NewEngine(tx TxRunner, policy LogPolicy, log *logger.Logger) *Engine {
	return &Engine{tx: tx, policy: policy, log: log}
}
