package notifier

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/notifier/notifierclient"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/pkg/utils"
)

// NotifierIntegrator entrega notificações de mudança à camada de veiculação
// e alertas pontuais aos interessados
type NotifierIntegrator interface {
	NotifyStateChange(campaignID string, kind domain.ChangeKind, urgent bool) error
	SendDepletionAlert(campaignID string) error
}

type NotifierService struct {
	cfg    *config.Config
	Client notifierclient.Client
}

func New(cfg *config.Config, client notifierclient.Client) *NotifierService {
	return &NotifierService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *NotifierService) NotifyStateChange(campaignID string, kind domain.ChangeKind, urgent bool) error {
	idempotencyKey, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar chave de idempotência")
	}

	payload := &notifierclient.NotificationPayload{
		IdempotencyKey: idempotencyKey,
		CampaignID:     campaignID,
		ChangeKind:     string(kind),
		Urgent:         urgent,
	}

	if err := s.Client.PostNotification(payload); err != nil {
		return errors.Wrap(err, "erro ao notificar camada de veiculação")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"change_kind": string(kind),
		"urgent":      urgent,
	}).Debug("notifier: mudança notificada à camada de veiculação")

	return nil
}

func (s *NotifierService) SendDepletionAlert(campaignID string) error {
	idempotencyKey, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar chave de idempotência")
	}

	payload := &notifierclient.NotificationPayload{
		IdempotencyKey: idempotencyKey,
		CampaignID:     campaignID,
	}

	if err := s.Client.PostAlert(payload); err != nil {
		return errors.Wrap(err, "erro ao enviar alerta de quase-esgotamento")
	}

	logrus.WithField("campaign_id", campaignID).Info("notifier: alerta de quase-esgotamento enviado")

	return nil
}
