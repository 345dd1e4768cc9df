package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Attribution Attribution `mapstructure:",squash"`
	Aggregation Aggregation `mapstructure:",squash"`
	AdsSync     AdsSync     `mapstructure:",squash"`
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
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Attribution aponta para o arquivo JSON com o mapa de atribuição versionado.
// O mapa é carregado uma vez na subida e injetado nos serviços; não existe
// configuração de atribuição embutida no código.
type Attribution struct {
	MapPath string `mapstructure:"attribution_map_path"`
}

// Aggregation controla o fan-out do agregador mensal.
type Aggregation struct {
	MaxConcurrentCustomers int `mapstructure:"aggregation_max_concurrent_customers"`
}

// AdsSync controla o job mensal que sincroniza insights de campanhas do Meta
// para o cache de anúncios.
type AdsSync struct {
	CronSchedule        string `mapstructure:"ads_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"ads_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"ads_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"ads_sync_enabled"`
	MonthLookBack       int    `mapstructure:"ads_sync_month_lookback"`
	RetentionMonths     int    `mapstructure:"ads_sync_retention_months"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/social_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("ATTRIBUTION_MAP_PATH", "attribution_map.json")

	viper.SetDefault("AGGREGATION_MAX_CONCURRENT_CUSTOMERS", 8)

	// Defaults para sincronização do cache de anúncios
	viper.SetDefault("ADS_SYNC_CRON", "0 5 1 * *")        // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("ADS_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("ADS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("ADS_SYNC_ENABLED", false)           // Habilitar sincronização do cache
	viper.SetDefault("ADS_SYNC_MONTH_LOOKBACK", 1)        // 1 mês para buscar dados
	viper.SetDefault("ADS_SYNC_RETENTION_MONTHS", 24)     // Reter 24 meses de cache

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
