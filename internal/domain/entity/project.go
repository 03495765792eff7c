package entity

import "time"

// Project es la frontera de tenant: todo registro del libro de inventario
// pertenece a un proyecto. El id 1 está reservado como proyecto global/admin.
type Project struct {
	ID          int64
	ProjectName string
	ProjectCode string
	CreatedAt   time.Time
}
