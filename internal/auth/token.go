package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso (RBAC simples: IsAdmin).
type Claims struct {
	UserID  uint `json:"userId"`
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token.
const AccessTTL = 8 * time.Hour

const issuer = "api-admin"

func segredo() ([]byte, error) {
	s := os.Getenv("AUTH_JWT_SECRET")
	if s == "" {
		return nil, errors.New("AUTH_JWT_SECRET não configurado")
	}
	return []byte(s), nil
}

// GerarToken emite um JWT HS256 para o usuário.
func GerarToken(userID uint, isAdmin bool) (string, error) {
	chave, err := segredo()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(chave)
}

// ParseAndValidate valida assinatura, issuer e expiração.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	chave, err := segredo()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return chave, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.Issuer != issuer {
		return nil, errors.New("issuer inválido")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}
	return c, nil
}
