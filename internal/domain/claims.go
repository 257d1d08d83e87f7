package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis de clientes de serviço da API
const (
	RoleAdmin   = 1
	RoleService = 2
)

// Claims são as claims do token de serviço emitido para clientes internos
type Claims struct {
	ClientID     string
	ClientRoleID int
	jwt.RegisteredClaims
}
