package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens. El refresh usa un
// secreto distinto al de acceso: un refresh robado nunca valida como access.
type JWTConfig struct {
	Secret        string
	RefreshSecret string
	ExpMinutes    int
	RefreshDays   int
	Issuer        string
}

// UseCase casos de uso de autenticación: login con par access/refresh.
type UseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	jwtCfg    JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// LoginResult par de tokens más el usuario autenticado. El refresh no viaja
// en el body JSON: el handler lo entrega como cookie httponly.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         dto.UserResponse
}

// Login verifica email/password, genera el par de tokens y reemplaza el
// refresh vigente del usuario (uno activo por usuario: iniciar sesión en un
// dispositivo invalida el refresh del anterior).
func (uc *UseCase) Login(in dto.LoginRequest) (*LoginResult, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.ProjectID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generando access token: %w", err)
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.RefreshSecret, user.ID, user.Email, user.ProjectID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshDays)
	if err != nil {
		return nil, fmt.Errorf("generando refresh token: %w", err)
	}
	if err := uc.tokenRepo.Replace(user.ID, refresh); err != nil {
		return nil, fmt.Errorf("guardando refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
