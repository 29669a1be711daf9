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
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Meta                Meta                `mapstructure:",squash"`
	Decision            Decision            `mapstructure:",squash"`
	Campaign            Campaign            `mapstructure:",squash"`
	CreativeMetricsSync CreativeMetricsSync `mapstructure:",squash"`
	SecretKey           string              `mapstructure:"secret_key"`
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

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	PageID         string    `mapstructure:"meta_page_id"`
	WhatsAppNumber string    `mapstructure:"meta_whatsapp_number"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

// Decision configura o motor de decisão (Gemini)
type Decision struct {
	GeminiAPIKey   string  `mapstructure:"decision_gemini_api_key"`
	GeminiModel    string  `mapstructure:"decision_gemini_model"`
	Temperature    float64 `mapstructure:"decision_temperature"`
	TimeoutSeconds int     `mapstructure:"decision_timeout_seconds"`
}

// Campaign configura a montagem de campanhas. MinAdSetBudgetCents é o
// orçamento mínimo aceito por ad set, em centavos
type Campaign struct {
	MinAdSetBudgetCents     int    `mapstructure:"campaign_min_adset_budget_cents"`
	ContextLimit            int    `mapstructure:"campaign_context_limit"`
	LiveFetchMaxConcurrency int    `mapstructure:"campaign_live_fetch_max_concurrency"`
	InsightsLookbackDays    int    `mapstructure:"campaign_insights_lookback_days"`
	DefaultCountry          string `mapstructure:"campaign_default_country"`
	DefaultAgeMin           int    `mapstructure:"campaign_default_age_min"`
	DefaultAgeMax           int    `mapstructure:"campaign_default_age_max"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type CreativeMetricsSync struct {
	CronSchedule        string `mapstructure:"creative_metrics_sync_cron"`
	LookbackDays        int    `mapstructure:"creative_metrics_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"creative_metrics_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"creative_metrics_sync_max_concurrent_jobs"`
	RetentionDays       int    `mapstructure:"creative_metrics_sync_retention_days"`
	Enabled             bool   `mapstructure:"creative_metrics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_PAGE_ID", "")
	viper.SetDefault("META_WHATSAPP_NUMBER", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("DECISION_GEMINI_API_KEY", "")
	viper.SetDefault("DECISION_GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("DECISION_TEMPERATURE", 0.2)
	viper.SetDefault("DECISION_TIMEOUT_SECONDS", 90)

	viper.SetDefault("CAMPAIGN_MIN_ADSET_BUDGET_CENTS", 1000) // mínimo único por ad set
	viper.SetDefault("CAMPAIGN_CONTEXT_LIMIT", 20)            // criativos no contexto de decisão
	viper.SetDefault("CAMPAIGN_LIVE_FETCH_MAX_CONCURRENCY", 5)
	viper.SetDefault("CAMPAIGN_INSIGHTS_LOOKBACK_DAYS", 30)
	viper.SetDefault("CAMPAIGN_DEFAULT_COUNTRY", "BR")
	viper.SetDefault("CAMPAIGN_DEFAULT_AGE_MIN", 25)
	viper.SetDefault("CAMPAIGN_DEFAULT_AGE_MAX", 65)

	// Defaults para sincronização do cache de métricas de criativos
	viper.SetDefault("CREATIVE_METRICS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("CREATIVE_METRICS_SYNC_LOOKBACK_DAYS", 2)  // Ontem e anteontem
	viper.SetDefault("CREATIVE_METRICS_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("CREATIVE_METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("CREATIVE_METRICS_SYNC_RETENTION_DAYS", 90)
	viper.SetDefault("CREATIVE_METRICS_SYNC_ENABLED", false)

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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
