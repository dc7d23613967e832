package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento admitidos por STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	HTTP  HTTPConfig
	Token TokenConfig
	Share ShareConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env          string // development, production
	Name         string
	LogLevel     string
	BusinessName string // encabezado de catálogos exportados
}

// StoreConfig selección del backend clave-valor.
type StoreConfig struct {
	Driver string // sqlite, postgres, memory
	Path   string // archivo sqlite
}

// DBConfig configuración de PostgreSQL (solo con STORE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TokenConfig token opcional para proteger la API. Secret vacío = API abierta.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// Enabled indica si la API exige Bearer Token.
func (c TokenConfig) Enabled() bool { return c.Secret != "" }

// ShareConfig esquema de la app de mensajería usada para compartir.
type ShareConfig struct {
	Scheme string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:          getString(v, "APP_ENV", "development"),
			Name:         getString(v, "APP_NAME", "spares-manager"),
			LogLevel:     getString(v, "LOG_LEVEL", "info"),
			BusinessName: getString(v, "BUSINESS_NAME", "RKM LOOM SPARES"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", DriverSQLite)),
			Path:   getString(v, "STORE_PATH", "./data/spares.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "spares"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Token: TokenConfig{
			Secret:     getString(v, "API_TOKEN_SECRET", ""),
			Issuer:     getString(v, "API_TOKEN_ISSUER", "spares-manager"),
			Expiration: getInt(v, "API_TOKEN_EXPIRATION_MINUTES", 60*24*30),
		},
		Share: ShareConfig{
			Scheme: getString(v, "SHARE_SCHEME", "whatsapp"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("config: STORE_PATH requerido con driver sqlite")
		}
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("config: STORE_DRIVER desconocido %q", c.Store.Driver)
	}
	if c.Share.Scheme == "" {
		return fmt.Errorf("config: SHARE_SCHEME vacío")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}
