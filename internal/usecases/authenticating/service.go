package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator emite e valida tokens de serviço para os sistemas internos
// que consomem a API
type Authenticator interface {
	// IssueToken troca a chave de serviço por um token JWT de curta duração
	IssueToken(clientID, serviceKey string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) IssueToken(clientID, serviceKey string) (string, error) {
	if clientID == "" || serviceKey == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Identificação do cliente e chave de serviço são obrigatórias")
	}

	roleID, err := s.resolveRole(serviceKey)
	if err != nil {
		return "", NewClientAuthError(err, apiErrors.ErrInvalidCredentials, clientID, "Chave de serviço incorreta")
	}

	token, err := generateJWT(clientID, roleID, s.cfg.Auth)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{
		"client_id": clientID,
		"role_id":   roleID,
	}).Info("authenticating: token de serviço emitido")

	return token, nil
}

// resolveRole compara a chave apresentada com os hashes configurados, do
// papel mais privilegiado para o menos
func (s *Service) resolveRole(serviceKey string) (int, error) {
	if s.cfg.Auth.AdminKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminKeyHash), []byte(serviceKey)); err == nil {
			return domain.RoleAdmin, nil
		}
	}

	if s.cfg.Auth.ServiceKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.ServiceKeyHash), []byte(serviceKey)); err == nil {
			return domain.RoleService, nil
		}
	}

	return 0, ErrInvalidCredentials
}

func generateJWT(clientID string, roleID int, authConfig config.Auth) (string, error) {
	ttl := time.Duration(authConfig.TokenTTLMinutes) * time.Minute

	claims := domain.Claims{
		ClientID:     clientID,
		ClientRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authConfig.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
