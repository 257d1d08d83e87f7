package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-stop-service/pkg/apiErrors"
)

type TokenRequest struct {
	ClientID   string `json:"client_id"`
	ServiceKey string `json:"service_key"`
}

// IssueToken troca a chave de serviço por um token JWT de curta duração
func IssueToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.IssueToken(req.ClientID, req.ServiceKey)
		if err != nil {
			handleTokenError(w, err)
			return
		}

		// Sucesso: retornar o token
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// handleTokenError trata erros específicos da emissão de token e retorna a
// resposta apropriada
func handleTokenError(w http.ResponseWriter, err error) {
	// Tentar fazer cast para AuthError para obter mais detalhes
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes", nil)

	default:
		// Erro genérico se não conseguirmos identificar especificamente
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao emitir token", nil)
	}
}
