package dto

// RegisterUserRequest body para POST /admin/register. La contraseña llega en
// texto y se hashea en el use case; los nombres se normalizan a minúsculas.
type RegisterUserRequest struct {
	FirstName  string  `json:"first_name" validate:"required,min=3,max=30"`
	MiddleName *string `json:"middle_name,omitempty" validate:"omitempty,min=3,max=30"`
	LastName   string  `json:"last_name" validate:"required,min=3,max=30"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8,max=50"`
	ProjectID  int64   `json:"project_id" validate:"required"`
	IsAdmin    bool    `json:"is_admin"`
	Role       string  `json:"role,omitempty"`
}

// CreateProjectRequest body para POST /admin/create-project.
type CreateProjectRequest struct {
	ProjectName string `json:"project_name" validate:"required,min=2,max=40"`
	ProjectCode string `json:"project_code" validate:"required,min=2,max=20"`
}

// ProjectResponse proyecto en respuestas.
type ProjectResponse struct {
	ID          int64  `json:"id"`
	ProjectName string `json:"project_name"`
	ProjectCode string `json:"project_code"`
}

// CreateGroupRequest body para POST /admin/create-group.
type CreateGroupRequest struct {
	GroupName string `json:"group_name" validate:"required,min=2,max=30"`
}

// GroupResponse grupo en respuestas.
type GroupResponse struct {
	ID        int64  `json:"id"`
	GroupName string `json:"group_name"`
}

// CreateCategoryRequest body para POST /admin/create-category.
type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,min=2,max=30"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
}
