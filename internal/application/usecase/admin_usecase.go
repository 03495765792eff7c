package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AdminUseCase operaciones reservadas a administradores: alta de usuarios,
// proyectos, grupos y categorías.
type AdminUseCase struct {
	userRepo     repository.UserRepository
	projectRepo  repository.ProjectRepository
	groupRepo    repository.GroupRepository
	categoryRepo repository.CategoryRepository
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	groupRepo repository.GroupRepository,
	categoryRepo repository.CategoryRepository,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:     userRepo,
		projectRepo:  projectRepo,
		groupRepo:    groupRepo,
		categoryRepo: categoryRepo,
	}
}

// normalizeName valida un nombre de persona: sin espacios internos, entre 3 y
// 30 caracteres, guardado en minúsculas.
func normalizeName(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if strings.Contains(v, " ") {
		return "", fmt.Errorf("%s no puede contener espacios: %w", field, domain.ErrInvalidInput)
	}
	if len(v) < 3 || len(v) > 30 {
		return "", fmt.Errorf("%s debe tener entre 3 y 30 caracteres: %w", field, domain.ErrInvalidInput)
	}
	return strings.ToLower(v), nil
}

func validatePassword(v string) error {
	if len(strings.TrimSpace(v)) < 8 {
		return fmt.Errorf("contraseña demasiado corta (mínimo 8): %w", domain.ErrInvalidInput)
	}
	if strings.Contains(v, " ") {
		return fmt.Errorf("la contraseña no puede contener espacios: %w", domain.ErrInvalidInput)
	}
	switch strings.ToLower(v) {
	case "password", "12345678":
		return fmt.Errorf("contraseña demasiado común: %w", domain.ErrInvalidInput)
	}
	return nil
}

// RegisterUser da de alta un usuario: normaliza nombres y email, valida la
// contraseña, la hashea con bcrypt y persiste. ErrEmailAlreadyExists si el
// email ya está registrado.
func (uc *AdminUseCase) RegisterUser(in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	firstName, err := normalizeName("first_name", in.FirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := normalizeName("last_name", in.LastName)
	if err != nil {
		return nil, err
	}
	var middleName *string
	if in.MiddleName != nil && strings.TrimSpace(*in.MiddleName) != "" {
		m, err := normalizeName("middle_name", *in.MiddleName)
		if err != nil {
			return nil, err
		}
		middleName = &m
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if _, err := domain.ScopeForProject(in.ProjectID); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := uc.userRepo.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("verificando email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hasheando contraseña: %w", err)
	}

	role := strings.ToUpper(strings.TrimSpace(in.Role))
	if role == "" {
		role = entity.RoleOperator
	}
	switch role {
	case entity.RoleManager, entity.RoleHead, entity.RoleStaff, entity.RoleOperator:
	default:
		return nil, fmt.Errorf("rol %q no reconocido: %w", role, domain.ErrInvalidInput)
	}

	user := &entity.User{
		FirstName:    firstName,
		MiddleName:   middleName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      in.IsAdmin,
		Role:         role,
		ProjectID:    in.ProjectID,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}, nil
}

// CreateProject crea un proyecto; nombre y código se guardan en mayúsculas.
// El nombre debe contener al menos un espacio (nombre compuesto).
func (uc *AdminUseCase) CreateProject(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.ProjectName))
	code := strings.ToUpper(strings.TrimSpace(in.ProjectCode))
	if len(name) < 2 || len(name) > 40 {
		return nil, fmt.Errorf("project_name debe tener entre 2 y 40 caracteres: %w", domain.ErrInvalidInput)
	}
	if !strings.Contains(name, " ") {
		return nil, fmt.Errorf("project_name debe ser un nombre compuesto (con espacio): %w", domain.ErrInvalidInput)
	}
	if len(code) < 2 || len(code) > 20 {
		return nil, fmt.Errorf("project_code debe tener entre 2 y 20 caracteres: %w", domain.ErrInvalidInput)
	}

	project := &entity.Project{ProjectName: name, ProjectCode: code}
	if err := uc.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{ID: project.ID, ProjectName: project.ProjectName, ProjectCode: project.ProjectCode}, nil
}

// CreateGroup crea un grupo; el nombre se guarda en minúsculas.
func (uc *AdminUseCase) CreateGroup(in dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	name := strings.ToLower(strings.TrimSpace(in.GroupName))
	if len(name) < 2 || len(name) > 30 {
		return nil, fmt.Errorf("group_name debe tener entre 2 y 30 caracteres: %w", domain.ErrInvalidInput)
	}
	group := &entity.Group{GroupName: name}
	if err := uc.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return &dto.GroupResponse{ID: group.ID, GroupName: group.GroupName}, nil
}

// CreateCategory crea una categoría; el nombre se guarda en mayúsculas.
func (uc *AdminUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.CategoryName))
	if len(name) < 2 || len(name) > 30 {
		return nil, fmt.Errorf("category_name debe tener entre 2 y 30 caracteres: %w", domain.ErrInvalidInput)
	}
	category := &entity.Category{CategoryName: name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, CategoryName: category.CategoryName}, nil
}
