package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Adaptadores de las tablas de consulta. Nombres duplicados se traducen a
// ErrDuplicate vía el constraint único de cada tabla.

var (
	_ repository.ProjectRepository      = (*ProjectRepo)(nil)
	_ repository.CategoryRepository     = (*CategoryRepo)(nil)
	_ repository.MaterialCodeRepository = (*MaterialCodeRepo)(nil)
	_ repository.CompanyRepository      = (*CompanyRepo)(nil)
	_ repository.OrderedRepository      = (*OrderedRepo)(nil)
	_ repository.GroupRepository        = (*GroupRepo)(nil)
)

// ProjectRepo proyectos.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (project_name, project_code)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, project.ProjectName, project.ProjectCode).
		Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) GetByID(id int64) (*entity.Project, error) {
	query := `SELECT id, project_name, project_code, created_at FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProjectName, &p.ProjectCode, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepo) Fetch() ([]*entity.Project, error) {
	query := `SELECT id, project_name, project_code, created_at FROM projects ORDER BY project_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	defer rows.Close()
	var projects []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.ProjectName, &p.ProjectCode, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// CategoryRepo categorías de material.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `INSERT INTO categories (category_name) VALUES ($1) RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, category.CategoryName).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Fetch() ([]*entity.Category, error) {
	query := `SELECT id, category_name, created_at FROM categories ORDER BY category_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	defer rows.Close()
	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// MaterialCodeRepo códigos de material.
type MaterialCodeRepo struct {
	q Querier
}

// NewMaterialCodeRepository construye el adaptador.
func NewMaterialCodeRepository(q Querier) *MaterialCodeRepo {
	return &MaterialCodeRepo{q: q}
}

func (r *MaterialCodeRepo) Create(code *entity.MaterialCode) error {
	query := `
		INSERT INTO material_codes (code_num, description, created_by_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, code.CodeNum, code.Description, code.CreatedByID).
		Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("create material code: %w", err)
	}
	return nil
}

func (r *MaterialCodeRepo) Fetch() ([]*entity.MaterialCode, error) {
	query := `SELECT id, code_num, description, created_by_id, created_at FROM material_codes ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("fetch material codes: %w", err)
	}
	defer rows.Close()
	var codes []*entity.MaterialCode
	for rows.Next() {
		var c entity.MaterialCode
		if err := rows.Scan(&c.ID, &c.CodeNum, &c.Description, &c.CreatedByID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material code: %w", err)
		}
		codes = append(codes, &c)
	}
	return codes, rows.Err()
}

// NextCodeNum genera el siguiente código: último id + 100000, o 100000 si la
// tabla está vacía.
func (r *MaterialCodeRepo) NextCodeNum() (string, error) {
	var lastID int64
	query := `SELECT COALESCE(MAX(id), 0) FROM material_codes`
	if err := r.q.QueryRow(context.Background(), query).Scan(&lastID); err != nil {
		return "", fmt.Errorf("next code num: %w", err)
	}
	return strconv.FormatInt(lastID+100000, 10), nil
}

// CompanyRepo empresas.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (company_name, country, email, phone_number, created_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		company.CompanyName, company.Country, company.Email, company.PhoneNumber, company.CreatedByID,
	).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) Fetch() ([]*entity.Company, error) {
	query := `
		SELECT id, company_name, country, email, phone_number, created_by_id, created_at
		FROM companies ORDER BY company_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("fetch companies: %w", err)
	}
	defer rows.Close()
	var companies []*entity.Company
	for rows.Next() {
		var c entity.Company
		err := rows.Scan(&c.ID, &c.CompanyName, &c.Country, &c.Email, &c.PhoneNumber, &c.CreatedByID, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, &c)
	}
	return companies, rows.Err()
}

// OrderedRepo solicitantes.
type OrderedRepo struct {
	q Querier
}

// NewOrderedRepository construye el adaptador.
func NewOrderedRepository(q Querier) *OrderedRepo {
	return &OrderedRepo{q: q}
}

func (r *OrderedRepo) Create(ordered *entity.Ordered) error {
	query := `
		INSERT INTO ordered (f_name, m_name, l_name, group_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		ordered.FName, ordered.MName, ordered.LName, ordered.GroupID,
	).Scan(&ordered.ID, &ordered.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("create ordered: %w", err)
	}
	return nil
}

func (r *OrderedRepo) Fetch() ([]*entity.Ordered, error) {
	query := `SELECT id, f_name, m_name, l_name, group_id, created_at FROM ordered ORDER BY f_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("fetch ordered: %w", err)
	}
	defer rows.Close()
	var ordered []*entity.Ordered
	for rows.Next() {
		var o entity.Ordered
		if err := rows.Scan(&o.ID, &o.FName, &o.MName, &o.LName, &o.GroupID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ordered: %w", err)
		}
		ordered = append(ordered, &o)
	}
	return ordered, rows.Err()
}

// GroupRepo grupos.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador.
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

func (r *GroupRepo) Create(group *entity.Group) error {
	query := `INSERT INTO groups (group_name) VALUES ($1) RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, group.GroupName).
		Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (r *GroupRepo) Fetch() ([]*entity.Group, error) {
	query := `SELECT id, group_name, created_at FROM groups ORDER BY group_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("fetch groups: %w", err)
	}
	defer rows.Close()
	var groups []*entity.Group
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.GroupName, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}
