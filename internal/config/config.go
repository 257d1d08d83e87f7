package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Ledger             Ledger             `mapstructure:",squash"`
	Telemetry          Telemetry          `mapstructure:",squash"`
	Notifier           Notifier           `mapstructure:",squash"`
	CampaignStop       CampaignStop       `mapstructure:",squash"`
	DepletionCheckSync DepletionCheckSync `mapstructure:",squash"`
	AlmostDepletedSync AlmostDepletedSync `mapstructure:",squash"`
	UpdateHandlerSync  UpdateHandlerSync  `mapstructure:",squash"`
	HousekeepingSync   HousekeepingSync   `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	ServiceKeyHash  string `mapstructure:"auth_service_key_hash"`
	AdminKeyHash    string `mapstructure:"auth_admin_key_hash"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

type Ledger struct {
	URL         string `mapstructure:"ledger_url"`
	AccessToken string `mapstructure:"ledger_access_token"`
}

type Telemetry struct {
	URL         string `mapstructure:"telemetry_url"`
	AccessToken string `mapstructure:"telemetry_access_token"`
}

type Notifier struct {
	URL         string `mapstructure:"notifier_url"`
	AccessToken string `mapstructure:"notifier_access_token"`
}

// CampaignStop reúne os parâmetros das rotinas de controle de parada de
// campanha. Injetado explicitamente em cada serviço para permitir
// sobrescrita por teste.
type CampaignStop struct {
	// Limiar base de orçamento restante previsto (moeda local). Campanhas
	// paradas só reiniciam acima de RestartFactor x o limiar.
	BaseThresholdLocal float64 `mapstructure:"campaignstop_base_threshold_local"`
	RestartFactor      float64 `mapstructure:"campaignstop_restart_factor"`

	// Limiar do marcador de quase-esgotado (moeda local)
	AlmostDepletedThresholdLocal float64 `mapstructure:"campaignstop_almost_depleted_threshold_local"`

	// Limiar de orçamento restante para a data mínima de início (moeda local)
	MinStartThresholdLocal float64 `mapstructure:"campaignstop_min_start_threshold_local"`

	// Janela de horas críticas: dados do ledger de ontem ainda não são
	// definitivos dentro dela
	CriticalHourStart int `mapstructure:"campaignstop_critical_hour_start"`
	CriticalHourEnd   int `mapstructure:"campaignstop_critical_hour_end"`

	// Extrapolação da taxa de gasto
	MinSampleGapSeconds   int `mapstructure:"campaignstop_min_sample_gap_seconds"`
	CheckFrequencySeconds int `mapstructure:"campaignstop_check_frequency_seconds"`
	SampleMaxAgeSeconds   int `mapstructure:"campaignstop_sample_max_age_seconds"`

	// Janela de frescor do agregado usada pelo refresh condicional
	AggregateStalenessSeconds int `mapstructure:"campaignstop_aggregate_staleness_seconds"`

	// Processamento em lote do tratador de atualizações
	MaxEventsPerRun    int `mapstructure:"campaignstop_max_events_per_run"`
	BatchSize          int `mapstructure:"campaignstop_batch_size"`
	RunDeadlineSeconds int `mapstructure:"campaignstop_run_deadline_seconds"`

	// Pool de workers do refresh de telemetria do marcador de quase-esgotado
	RefreshWorkers int `mapstructure:"campaignstop_refresh_workers"`

	// Retenção da trilha de auditoria e das séries temporais
	AuditRetentionDays  int `mapstructure:"campaignstop_audit_retention_days"`
	SampleRetentionDays int `mapstructure:"campaignstop_sample_retention_days"`
}

// InCriticalHours indica se o instante está na janela em que os dados de
// ontem do ledger ainda não são definitivos
func (c CampaignStop) InCriticalHours(t time.Time) bool {
	hour := t.UTC().Hour()
	return hour >= c.CriticalHourStart && hour < c.CriticalHourEnd
}

type DepletionCheckSync struct {
	CronSchedule string `mapstructure:"depletion_check_cron"`
	Enabled      bool   `mapstructure:"depletion_check_enabled"`
}

type AlmostDepletedSync struct {
	CronSchedule string `mapstructure:"almost_depleted_cron"`
	Enabled      bool   `mapstructure:"almost_depleted_enabled"`
}

type UpdateHandlerSync struct {
	CronSchedule string `mapstructure:"update_handler_cron"`
	Enabled      bool   `mapstructure:"update_handler_enabled"`
}

type HousekeepingSync struct {
	CronSchedule string `mapstructure:"housekeeping_cron"`
	Enabled      bool   `mapstructure:"housekeeping_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaignstop")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_SERVICE_KEY_HASH", "")
	viper.SetDefault("AUTH_ADMIN_KEY_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 60)

	viper.SetDefault("LEDGER_URL", "http://localhost:8081/api/v1")
	viper.SetDefault("LEDGER_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("TELEMETRY_URL", "http://localhost:8082/api/v1")
	viper.SetDefault("TELEMETRY_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("NOTIFIER_URL", "http://localhost:8083/api/v1")
	viper.SetDefault("NOTIFIER_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("CAMPAIGNSTOP_BASE_THRESHOLD_LOCAL", 10.0)
	viper.SetDefault("CAMPAIGNSTOP_RESTART_FACTOR", 1.5)
	viper.SetDefault("CAMPAIGNSTOP_ALMOST_DEPLETED_THRESHOLD_LOCAL", 10.0)
	viper.SetDefault("CAMPAIGNSTOP_MIN_START_THRESHOLD_LOCAL", 10.0)
	viper.SetDefault("CAMPAIGNSTOP_CRITICAL_HOUR_START", 0)
	viper.SetDefault("CAMPAIGNSTOP_CRITICAL_HOUR_END", 4)
	viper.SetDefault("CAMPAIGNSTOP_MIN_SAMPLE_GAP_SECONDS", 90)
	viper.SetDefault("CAMPAIGNSTOP_CHECK_FREQUENCY_SECONDS", 300)
	viper.SetDefault("CAMPAIGNSTOP_SAMPLE_MAX_AGE_SECONDS", 900)
	viper.SetDefault("CAMPAIGNSTOP_AGGREGATE_STALENESS_SECONDS", 300)
	viper.SetDefault("CAMPAIGNSTOP_MAX_EVENTS_PER_RUN", 500)
	viper.SetDefault("CAMPAIGNSTOP_BATCH_SIZE", 50)
	viper.SetDefault("CAMPAIGNSTOP_RUN_DEADLINE_SECONDS", 240)
	viper.SetDefault("CAMPAIGNSTOP_REFRESH_WORKERS", 8)
	viper.SetDefault("CAMPAIGNSTOP_AUDIT_RETENTION_DAYS", 90)
	viper.SetDefault("CAMPAIGNSTOP_SAMPLE_RETENTION_DAYS", 30)

	viper.SetDefault("DEPLETION_CHECK_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("DEPLETION_CHECK_ENABLED", false)
	viper.SetDefault("ALMOST_DEPLETED_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("ALMOST_DEPLETED_ENABLED", false)
	viper.SetDefault("UPDATE_HANDLER_CRON", "* * * * *") // A cada minuto
	viper.SetDefault("UPDATE_HANDLER_ENABLED", false)
	viper.SetDefault("HOUSEKEEPING_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("HOUSEKEEPING_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
