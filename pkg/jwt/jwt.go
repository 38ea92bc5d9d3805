package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos da aplicação. Os tokens
// são emitidos pelo serviço de autenticação externo; aqui apenas validamos a
// assinatura e extraímos a identidade do tenant.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	EmpresaID string `json:"empresa_id"`
	Role      string `json:"role"` // "admin" | "costureira" | "atendente"
}

// Parse valida o token e devolve userID, empresaID e role.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (userID, empresaID, role string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("jwt: claims inválidos")
	}
	return claims.UserID, claims.EmpresaID, claims.Role, nil
}

// Generate emite um token HS256 com os claims da aplicação. Existe para os
// testes e para ambientes de desenvolvimento sem o serviço de auth externo.
func Generate(secret, userID, empresaID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		EmpresaID: empresaID,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
