package dto

// DTOs de los catálogos de /common: empresas, solicitantes y códigos de
// material. Los de grupos/categorías/proyectos están en admin_dto.go.

// CreateCompanyRequest body para POST /common/create-company.
type CreateCompanyRequest struct {
	CompanyName string  `json:"company_name" validate:"required,min=2,max=100"`
	Country     *string `json:"country,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
}

// CreateOrderedRequest body para POST /common/create-ordered.
type CreateOrderedRequest struct {
	FName     string  `json:"f_name" validate:"required,min=2,max=30"`
	MName     *string `json:"m_name,omitempty" validate:"omitempty,min=2,max=30"`
	LName     string  `json:"l_name" validate:"required,min=2,max=30"`
	GroupID   int64   `json:"group_id" validate:"required"`
	ProjectID int64   `json:"project_id" validate:"required"`
}

// OrderedResponse solicitante en respuestas de creación.
type OrderedResponse struct {
	ID    int64  `json:"id"`
	FName string `json:"f_name"`
	LName string `json:"l_name"`
}

// OrderedFetchResponse solicitante con el nombre de su grupo en listados.
type OrderedFetchResponse struct {
	ID        int64  `json:"id"`
	FName     string `json:"f_name"`
	LName     string `json:"l_name"`
	GroupName string `json:"group_name"`
}

// CreateMaterialCodeRequest body para POST /common/create-material_code.
// El code_num lo genera el sistema; el cliente solo describe el material.
type CreateMaterialCodeRequest struct {
	Description string `json:"description" validate:"required,min=2,max=30"`
}

// MaterialCodeResponse código de material en respuestas.
type MaterialCodeResponse struct {
	ID          int64  `json:"id"`
	CodeNum     string `json:"code_num"`
	Description string `json:"description"`
}
