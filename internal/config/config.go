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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Assistant Assistant `mapstructure:",squash"`
	AlertSync AlertSync `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

// Assistant configura el gateway de generación de texto del asistente.
type Assistant struct {
	APIKey    string `mapstructure:"assistant_api_key"`
	Model     string `mapstructure:"assistant_model"`
	MaxTokens int    `mapstructure:"assistant_max_tokens"`
}

// AlertSync configura el detector programado de alertas comerciales.
type AlertSync struct {
	CronSchedule  string `mapstructure:"alert_sync_cron"`
	LookbackDays  int    `mapstructure:"alert_sync_lookback_days"`
	RetentionDays int    `mapstructure:"alert_sync_retention_days"`
	Enabled       bool   `mapstructure:"alert_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/perfectstore")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("ASSISTANT_API_KEY", "") // ONLY LOCAL
	viper.SetDefault("ASSISTANT_MODEL", "gpt-4o")
	viper.SetDefault("ASSISTANT_MAX_TOKENS", 1024)

	// Defaults del detector de alertas
	viper.SetDefault("ALERT_SYNC_CRON", "0 7 * * *")  // Todos los días a las 7h
	viper.SetDefault("ALERT_SYNC_LOOKBACK_DAYS", 30)  // Ventana de análisis
	viper.SetDefault("ALERT_SYNC_RETENTION_DAYS", 90) // Limpieza de alertas viejas
	viper.SetDefault("ALERT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores por defecto
	SetDefaults()

	// Configurar Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que Viper lea variables de entorno

	// Intentar leer el archivo .env con Viper (opcional, ya usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por Viper con éxito")
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

// loadEnvFile carga el archivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	// Probar varias ubicaciones posibles para el archivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env desde ninguna ubicación conocida")
}
