package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Puertos de persistencia para las tablas de consulta. CRUD plano, sin scope:
// los lookups se comparten entre proyectos.

type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id int64) (*entity.Project, error)
	Fetch() ([]*entity.Project, error)
}

type CategoryRepository interface {
	Create(category *entity.Category) error
	Fetch() ([]*entity.Category, error)
}

type MaterialCodeRepository interface {
	Create(code *entity.MaterialCode) error
	Fetch() ([]*entity.MaterialCode, error)
	// NextCodeNum genera el siguiente código secuencial (último id + 100000).
	NextCodeNum() (string, error)
}

type CompanyRepository interface {
	Create(company *entity.Company) error
	Fetch() ([]*entity.Company, error)
}

type OrderedRepository interface {
	Create(ordered *entity.Ordered) error
	Fetch() ([]*entity.Ordered, error)
}

type GroupRepository interface {
	Create(group *entity.Group) error
	Fetch() ([]*entity.Group, error)
}
