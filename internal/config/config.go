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

// Tipos de fonte de vendas aceitos em SALES_SOURCE_KIND
const (
	SourceKindRepository = "repository"
	SourceKindHTTP       = "http"
	SourceKindFile       = "file"
)

// Tipos de repositório aceitos em SALES_REPOSITORY
const (
	RepositoryMemory   = "memory"
	RepositoryPostgres = "postgres"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	SalesSource      SalesSource      `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel   string `mapstructure:"log_level"`
	Repository string `mapstructure:"sales_repository"`
}

type SalesSource struct {
	Kind               string        `mapstructure:"sales_source_kind"`
	URL                string        `mapstructure:"sales_source_url"`
	FilePath           string        `mapstructure:"sales_source_file"`
	Timeout            time.Duration `mapstructure:"sales_source_timeout"`
	BreakerMaxFailures uint32        `mapstructure:"sales_source_breaker_max_failures"`
	BreakerOpenTimeout time.Duration `mapstructure:"sales_source_breaker_open_timeout"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALES_REPOSITORY", RepositoryMemory)

	viper.SetDefault("SALES_SOURCE_KIND", SourceKindRepository)
	viper.SetDefault("SALES_SOURCE_URL", "http://localhost:3000/sales.json")
	viper.SetDefault("SALES_SOURCE_FILE", "sales.json")
	viper.SetDefault("SALES_SOURCE_TIMEOUT", "10s")
	viper.SetDefault("SALES_SOURCE_BREAKER_MAX_FAILURES", 5)    // falhas seguidas até abrir o circuito
	viper.SetDefault("SALES_SOURCE_BREAKER_OPEN_TIMEOUT", "30s") // tempo aberto antes de meio-aberto

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Validate(); err != nil {
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

// Validate confere as combinações de fonte e repositório
func (c *Config) Validate() error {
	switch c.SalesSource.Kind {
	case SourceKindRepository, SourceKindFile:
	case SourceKindHTTP:
		if c.SalesSource.URL == "" {
			return fmt.Errorf("SALES_SOURCE_URL é obrigatório para a fonte %q", SourceKindHTTP)
		}
	default:
		return fmt.Errorf("SALES_SOURCE_KIND inválido: %q", c.SalesSource.Kind)
	}

	switch c.App.Repository {
	case RepositoryMemory, RepositoryPostgres:
	default:
		return fmt.Errorf("SALES_REPOSITORY inválido: %q", c.App.Repository)
	}

	if c.SalesSource.Timeout <= 0 {
		return fmt.Errorf("SALES_SOURCE_TIMEOUT deve ser positivo")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
