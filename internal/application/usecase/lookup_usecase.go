package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LookupUseCase catálogos de /common: listados y altas de empresas,
// solicitantes y códigos de material, más los listados de grupos y categorías.
type LookupUseCase struct {
	groupRepo        repository.GroupRepository
	categoryRepo     repository.CategoryRepository
	companyRepo      repository.CompanyRepository
	orderedRepo      repository.OrderedRepository
	materialCodeRepo repository.MaterialCodeRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(
	groupRepo repository.GroupRepository,
	categoryRepo repository.CategoryRepository,
	companyRepo repository.CompanyRepository,
	orderedRepo repository.OrderedRepository,
	materialCodeRepo repository.MaterialCodeRepository,
) *LookupUseCase {
	return &LookupUseCase{
		groupRepo:        groupRepo,
		categoryRepo:     categoryRepo,
		companyRepo:      companyRepo,
		orderedRepo:      orderedRepo,
		materialCodeRepo: materialCodeRepo,
	}
}

// FetchGroups lista todos los grupos.
func (uc *LookupUseCase) FetchGroups() ([]*dto.GroupResponse, error) {
	groups, err := uc.groupRepo.Fetch()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, &dto.GroupResponse{ID: g.ID, GroupName: g.GroupName})
	}
	return out, nil
}

// FetchCategories lista todas las categorías.
func (uc *LookupUseCase) FetchCategories() ([]*dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.Fetch()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, &dto.CategoryResponse{ID: c.ID, CategoryName: c.CategoryName})
	}
	return out, nil
}

// FetchCompanies lista todas las empresas.
func (uc *LookupUseCase) FetchCompanies() ([]*dto.CompanyResponse, error) {
	companies, err := uc.companyRepo.Fetch()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, &dto.CompanyResponse{ID: c.ID, CompanyName: c.CompanyName})
	}
	return out, nil
}

// FetchOrdered lista los solicitantes con el nombre de su grupo.
func (uc *LookupUseCase) FetchOrdered() ([]*dto.OrderedFetchResponse, error) {
	ordered, err := uc.orderedRepo.Fetch()
	if err != nil {
		return nil, err
	}
	groups, err := uc.groupRepo.Fetch()
	if err != nil {
		return nil, err
	}
	groupNames := make(map[int64]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.GroupName
	}
	out := make([]*dto.OrderedFetchResponse, 0, len(ordered))
	for _, o := range ordered {
		out = append(out, &dto.OrderedFetchResponse{
			ID:        o.ID,
			FName:     o.FName,
			LName:     o.LName,
			GroupName: groupNames[o.GroupID],
		})
	}
	return out, nil
}

// FetchMaterialCodes lista todos los códigos de material.
func (uc *LookupUseCase) FetchMaterialCodes() ([]*dto.MaterialCodeResponse, error) {
	codes, err := uc.materialCodeRepo.Fetch()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialCodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, &dto.MaterialCodeResponse{ID: c.ID, CodeNum: c.CodeNum, Description: c.Description})
	}
	return out, nil
}

// CreateCompany da de alta una empresa; el nombre, país y teléfono se guardan
// en mayúsculas. Nombre duplicado es ErrDuplicate.
func (uc *LookupUseCase) CreateCompany(callerID int64, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.CompanyName))
	if len(name) < 2 || len(name) > 100 {
		return nil, fmt.Errorf("company_name debe tener entre 2 y 100 caracteres: %w", domain.ErrInvalidInput)
	}
	company := &entity.Company{
		CompanyName: name,
		Country:     upperTrimmed(in.Country),
		Email:       lowerTrimmed(in.Email),
		PhoneNumber: upperTrimmed(in.PhoneNumber),
		CreatedByID: callerID,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{ID: company.ID, CompanyName: company.CompanyName}, nil
}

// CreateOrdered da de alta un solicitante; los nombres se normalizan como los
// de usuario (sin espacios internos, minúsculas).
func (uc *LookupUseCase) CreateOrdered(in dto.CreateOrderedRequest) (*dto.OrderedResponse, error) {
	fName, err := normalizeLookupName("f_name", in.FName)
	if err != nil {
		return nil, err
	}
	lName, err := normalizeLookupName("l_name", in.LName)
	if err != nil {
		return nil, err
	}
	var mName *string
	if in.MName != nil && strings.TrimSpace(*in.MName) != "" {
		m, err := normalizeLookupName("m_name", *in.MName)
		if err != nil {
			return nil, err
		}
		mName = &m
	}
	ordered := &entity.Ordered{FName: fName, MName: mName, LName: lName, GroupID: in.GroupID}
	if err := uc.orderedRepo.Create(ordered); err != nil {
		return nil, err
	}
	return &dto.OrderedResponse{ID: ordered.ID, FName: ordered.FName, LName: ordered.LName}, nil
}

// CreateMaterialCode da de alta un código de material: la descripción se
// guarda en mayúsculas y el code_num lo genera la secuencia interna.
// Descripción duplicada es ErrDuplicate.
func (uc *LookupUseCase) CreateMaterialCode(callerID int64, in dto.CreateMaterialCodeRequest) (*dto.MaterialCodeResponse, error) {
	description := strings.ToUpper(strings.TrimSpace(in.Description))
	if len(description) < 2 || len(description) > 30 {
		return nil, fmt.Errorf("description debe tener entre 2 y 30 caracteres: %w", domain.ErrInvalidInput)
	}
	codeNum, err := uc.materialCodeRepo.NextCodeNum()
	if err != nil {
		return nil, fmt.Errorf("generando code_num: %w", err)
	}
	code := &entity.MaterialCode{
		CodeNum:     codeNum,
		Description: description,
		CreatedByID: callerID,
	}
	if err := uc.materialCodeRepo.Create(code); err != nil {
		return nil, err
	}
	return &dto.MaterialCodeResponse{ID: code.ID, CodeNum: code.CodeNum, Description: code.Description}, nil
}

// normalizeLookupName nombres de solicitante: sin espacios internos, entre 2
// y 30 caracteres, minúsculas.
func normalizeLookupName(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if strings.Contains(v, " ") {
		return "", fmt.Errorf("%s no puede contener espacios: %w", field, domain.ErrInvalidInput)
	}
	if len(v) < 2 || len(v) > 30 {
		return "", fmt.Errorf("%s debe tener entre 2 y 30 caracteres: %w", field, domain.ErrInvalidInput)
	}
	return strings.ToLower(v), nil
}

func upperTrimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToUpper(strings.TrimSpace(*v))
	if s == "" {
		return nil
	}
	return &s
}

func lowerTrimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(*v))
	if s == "" {
		return nil
	}
	return &s
}
