// Package session extrai a identidade do token emitido pelo backend.
// O agente não verifica assinatura: quem assina e valida é o backend;
// aqui o token só preenche campos que o payload do login não trouxe.
package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/uturns/booking-agent/internal/models"
)

var ErrMalformedToken = errors.New("malformed session token")

// Identity lê as claims do token sem validar assinatura.
func Identity(token string) (models.User, error) {
	parser := jwt.NewParser()

	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return models.User{}, ErrMalformedToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, ErrMalformedToken
	}

	var user models.User
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if companyID, ok := claims["companyId"].(string); ok {
		user.CompanyID = companyID
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}

	if user.ID == "" {
		return models.User{}, ErrMalformedToken
	}
	return user, nil
}

// Merge completa os campos vazios de base com o que o token trouxe.
func Merge(base models.User, token string) models.User {
	fromToken, err := Identity(token)
	if err != nil {
		return base
	}

	if base.ID == "" {
		base.ID = fromToken.ID
	}
	if base.CompanyID == "" {
		base.CompanyID = fromToken.CompanyID
	}
	if base.Role == "" {
		base.Role = fromToken.Role
	}
	if base.Email == "" {
		base.Email = fromToken.Email
	}
	if base.Name == "" {
		base.Name = fromToken.Name
	}
	return base
}
