package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig(t *testing.T) *config.Config {
	t.Helper()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("chave-admin"), bcrypt.MinCost)
	assert.NoError(t, err)

	serviceHash, err := bcrypt.GenerateFromPassword([]byte("chave-servico"), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:          "segredo-de-teste",
			AdminKeyHash:    string(adminHash),
			ServiceKeyHash:  string(serviceHash),
			TokenTTLMinutes: 60,
		},
	}
}

func TestService_IssueToken(t *testing.T) {
	service := NewService(testAuthConfig(t))

	tests := []struct {
		name       string
		clientID   string
		serviceKey string
		expectRole int
		expectErr  error
	}{
		{
			name:       "Chave de administrador resolve o papel mais privilegiado",
			clientID:   "console",
			serviceKey: "chave-admin",
			expectRole: domain.RoleAdmin,
		},
		{
			name:       "Chave de serviço resolve o papel de serviço",
			clientID:   "faturamento",
			serviceKey: "chave-servico",
			expectRole: domain.RoleService,
		},
		{
			name:       "Chave incorreta é rejeitada",
			clientID:   "faturamento",
			serviceKey: "chave-errada",
			expectErr:  ErrInvalidCredentials,
		},
		{
			name:      "Sem identificação do cliente nada é emitido",
			clientID:  "",
			expectErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.IssueToken(tt.clientID, tt.serviceKey)

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectErr))
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, tt.clientID, claims.ClientID)
			assert.Equal(t, tt.expectRole, claims.ClientRoleID)
		})
	}
}

func TestService_ValidateToken_Expirado(t *testing.T) {
	cfg := testAuthConfig(t)
	cfg.Auth.TokenTTLMinutes = -1

	service := NewService(cfg)

	token, err := service.IssueToken("faturamento", "chave-servico")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestService_ValidateToken_Malformado(t *testing.T) {
	service := NewService(testAuthConfig(t))

	_, err := service.ValidateToken("nem-de-longe-um-jwt")

	assert.Error(t, err)
}

func TestService_ValidateToken_AssinaturaErrada(t *testing.T) {
	cfg := testAuthConfig(t)
	service := NewService(cfg)

	token, err := service.IssueToken("faturamento", "chave-servico")
	assert.NoError(t, err)

	otherCfg := testAuthConfig(t)
	otherCfg.Auth.Secret = "outro-segredo"
	otherService := NewService(otherCfg)

	_, err = otherService.ValidateToken(token)

	assert.Error(t, err)
}
