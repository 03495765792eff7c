package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject lleva el user id; ProjectID permite calcular el scope de visibilidad
// sin consultar la base de datos.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	ProjectID int64  `json:"project_id"`
}

// Generate genera un access token firmado con sub, email y project_id.
func Generate(secret string, userID int64, email string, projectID int64, issuer string, expMinutes int) (string, error) {
	return sign(secret, userID, email, projectID, issuer, time.Duration(expMinutes)*time.Minute)
}

// GenerateRefresh genera el refresh token de larga vida con los mismos claims
// pero firmado con el secreto de refresh.
func GenerateRefresh(refreshSecret string, userID int64, email string, projectID int64, issuer string, expDays int) (string, error) {
	return sign(refreshSecret, userID, email, projectID, issuer, time.Duration(expDays)*24*time.Hour)
}

func sign(secret string, userID int64, email string, projectID int64, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:     email,
		ProjectID: projectID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID, email y projectID.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (userID int64, email string, projectID int64, err error) {
	if secret == "" {
		return 0, "", 0, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", 0, fmt.Errorf("claims inválidos")
	}
	userID, err = strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("sub inválido: %w", err)
	}
	return userID, claims.Email, claims.ProjectID, nil
}
