package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de autenticação
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")

	// Erros de validação
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	ClientID string // Identificação do cliente envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewClientAuthError cria um novo erro de autenticação com contexto do cliente
func NewClientAuthError(baseErr error, code string, clientID string, details string) *AuthError {
	return &AuthError{
		Err:      baseErr,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}
