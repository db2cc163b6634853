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
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	AuditAPI    AuditAPI    `mapstructure:",squash"`
	Polling     Polling     `mapstructure:",squash"`
	Projection  Projection  `mapstructure:",squash"`
	Commission  Commission  `mapstructure:",squash"`
	CatalogSync CatalogSync `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN               string `mapstructure:"-"`
	Driver            string `mapstructure:"database_driver"`
	Password          string `mapstructure:"database_password"`
	URL               string `mapstructure:"database_url"`
	User              string `mapstructure:"database_user"`
	MigrationsEnabled bool   `mapstructure:"migrations_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// AuditAPI é o backend que executa as auditorias e expõe catálogo e parceiros
type AuditAPI struct {
	URL            string `mapstructure:"audit_api_url"`
	Token          string `mapstructure:"audit_api_token"`
	TimeoutSeconds int    `mapstructure:"audit_api_timeout_seconds"`
}

type Polling struct {
	IntervalSeconds int `mapstructure:"audit_poll_interval_seconds"`
	MaxWaitMinutes  int `mapstructure:"audit_poll_max_wait_minutes"`
}

type Projection struct {
	CostPerAudit           float64 `mapstructure:"cost_per_audit"`
	CostPerScan            float64 `mapstructure:"cost_per_scan"`
	CostPerLeadBatch       float64 `mapstructure:"cost_per_lead_batch"`
	CostPerFix             float64 `mapstructure:"cost_per_fix"`
	AvgRevenuePerCompany   float64 `mapstructure:"avg_revenue_per_company"`
	ScanAdoptionRatio      float64 `mapstructure:"scan_adoption_ratio"`
	LeadBatchAdoptionRatio float64 `mapstructure:"lead_batch_adoption_ratio"`
	FixesPerCompany        float64 `mapstructure:"fixes_per_company"`
	DefaultCompanyCount    int     `mapstructure:"default_company_count"`
}

type Commission struct {
	AvgRevenuePerUser    float64 `mapstructure:"avg_revenue_per_user"`
	DefaultRatePercent   float64 `mapstructure:"default_commission_rate"`
	ReferralWindowMonths int     `mapstructure:"referral_window_months"`
}

type CatalogSync struct {
	CronSchedule string `mapstructure:"catalog_sync_cron"`
	Enabled      bool   `mapstructure:"catalog_sync_enabled"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/visibility?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("MIGRATIONS_ENABLED", true)

	viper.SetDefault("AUDIT_API_URL", "http://localhost:3000/api")
	viper.SetDefault("AUDIT_API_TOKEN", "")
	viper.SetDefault("AUDIT_API_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUDIT_POLL_INTERVAL_SECONDS", 3)  // Intervalo fixo entre consultas de status
	viper.SetDefault("AUDIT_POLL_MAX_WAIT_MINUTES", 15) // Desiste de acompanhar depois disso

	// Premissas de custo unitário (USD)
	viper.SetDefault("COST_PER_AUDIT", 0.32)
	viper.SetDefault("COST_PER_SCAN", 0.08)
	viper.SetDefault("COST_PER_LEAD_BATCH", 0.30)
	viper.SetDefault("COST_PER_FIX", 0.15)
	viper.SetDefault("AVG_REVENUE_PER_COMPANY", 800)
	viper.SetDefault("SCAN_ADOPTION_RATIO", 0.5)
	viper.SetDefault("LEAD_BATCH_ADOPTION_RATIO", 0.3)
	viper.SetDefault("FIXES_PER_COMPANY", 1.5)
	viper.SetDefault("DEFAULT_COMPANY_COUNT", 10)

	viper.SetDefault("AVG_REVENUE_PER_USER", 800)
	viper.SetDefault("DEFAULT_COMMISSION_RATE", 20)
	viper.SetDefault("REFERRAL_WINDOW_MONTHS", 12)

	viper.SetDefault("CATALOG_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// CostAssumptions monta as premissas da projeção de custos a partir da configuração
func (c *Config) CostAssumptions() domain.CostAssumptions {
	return domain.CostAssumptions{
		CostPerAudit:           c.Projection.CostPerAudit,
		CostPerScan:            c.Projection.CostPerScan,
		CostPerLeadBatch:       c.Projection.CostPerLeadBatch,
		CostPerFix:             c.Projection.CostPerFix,
		AvgRevenuePerCompany:   c.Projection.AvgRevenuePerCompany,
		ScanAdoptionRatio:      c.Projection.ScanAdoptionRatio,
		LeadBatchAdoptionRatio: c.Projection.LeadBatchAdoptionRatio,
		FixesPerCompany:        c.Projection.FixesPerCompany,
	}
}

func (c *Config) CommissionAssumptions() domain.CommissionAssumptions {
	return domain.CommissionAssumptions{
		AvgRevenuePerUser:     c.Commission.AvgRevenuePerUser,
		CommissionRatePercent: c.Commission.DefaultRatePercent,
		ReferralWindowMonths:  c.Commission.ReferralWindowMonths,
	}
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Polling.IntervalSeconds) * time.Second
}

func (c *Config) PollMaxWait() time.Duration {
	return time.Duration(c.Polling.MaxWaitMinutes) * time.Minute
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
