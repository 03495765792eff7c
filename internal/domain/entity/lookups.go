package entity

import "time"

// Tablas de consulta (lookup): categorías, códigos de material, empresas,
// solicitantes y grupos. CRUD fuera del núcleo de movimientos; las lecturas
// del libro las proyectan por nombre.

// Category clasifica materiales de almacén.
type Category struct {
	ID           int64
	CategoryName string
	CreatedAt    time.Time
}

// MaterialCode identifica el material por código interno.
type MaterialCode struct {
	ID          int64
	CodeNum     string
	Description string
	CreatedByID int64
	CreatedAt   time.Time
}

// Company es el proveedor/empresa asociada a un lote.
type Company struct {
	ID          int64
	CompanyName string
	Country     *string
	Email       *string
	PhoneNumber *string
	CreatedByID int64
	CreatedAt   time.Time
}

// Ordered es la parte solicitante del pedido.
type Ordered struct {
	ID        int64
	FName     string
	MName     *string
	LName     string
	GroupID   int64
	CreatedAt time.Time
}

// FullName arma el nombre completo del solicitante.
func (o *Ordered) FullName() string {
	if o.MName != nil && *o.MName != "" {
		return o.FName + " " + *o.MName + " " + o.LName
	}
	return o.FName + " " + o.LName
}

// Group agrupa registros de área y solicitantes.
type Group struct {
	ID        int64
	GroupName string
	CreatedAt time.Time
}
