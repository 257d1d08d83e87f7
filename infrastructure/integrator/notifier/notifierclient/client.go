package notifierclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/internal/config"
)

// NotificationPayload é o corpo enviado à camada de veiculação e aos alertas
type NotificationPayload struct {
	IdempotencyKey string `json:"idempotency_key"`
	CampaignID     string `json:"campaign_id"`
	ChangeKind     string `json:"change_kind,omitempty"`
	Urgent         bool   `json:"urgent,omitempty"`
}

type Client interface {
	PostNotification(payload *NotificationPayload) error
	PostAlert(payload *NotificationPayload) error
}

type NotifierClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &NotifierClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *NotifierClient) PostNotification(payload *NotificationPayload) error {
	return c.post("/notifications", payload)
}

func (c *NotifierClient) PostAlert(payload *NotificationPayload) error {
	return c.post("/alerts", payload)
}

func (c *NotifierClient) post(path string, payload *NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar notificação: %w", err)
	}

	endpoint := c.Cfg.Notifier.URL + path

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.Notifier.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("notificador respondeu com status inesperado: %s", resp.Status)
	}

	return nil
}
