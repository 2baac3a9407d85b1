package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret se devuelve al firmar o verificar sin secreto configurado.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims incluye los claims estándar más la identidad del principal.
// Role viaja en el token para que RequireRole decida sin consultar el store.
type Claims struct {
	jwt.RegisteredClaims
	PrincipalID string `json:"principal_id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Role        string `json:"role"` // "admin" | "super-admin"
}

// Subject datos del principal que se firman en el token.
type Subject struct {
	ID       string
	Username string
	Name     string
	Role     string
}

// Generate firma un token HS256 para el principal con expiración en minutos.
func Generate(secret string, sub Subject, issuer string, expMinutes int, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		PrincipalID: sub.ID,
		Username:    sub.Username,
		Name:        sub.Name,
		Role:        sub.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("claims inválidos")
	}
	if claims.PrincipalID == "" {
		claims.PrincipalID = claims.Subject
	}
	return claims, nil
}
