package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis
// allowedRoles é um array de IDs de papéis que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Obter claims do cliente do contexto
			clientClaims, ok := r.Context().Value(ContextKeyClient).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
				return
			}

			// Verificar se o papel do cliente está na lista de papéis permitidos
			isAllowed := false
			for _, role := range allowedRoles {
				if clientClaims.ClientRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para cliente ID=%s, Role=%d", clientClaims.ClientID, clientClaims.ClientRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			// Se tiver permissão, continua para o próximo handler
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

// AllRoles é um middleware que permite acesso para qualquer cliente autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleService})
}
