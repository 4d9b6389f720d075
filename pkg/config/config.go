package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	Metrics       MetricsConfig
	Listing       ListingConfig
	Idempotency   IdempotencyConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BACHELORHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"BACHELORHUB_APP_PORT" default:"3001"`
	LogLevel     string `envconfig:"BACHELORHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BACHELORHUB_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"BACHELORHUB_LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	DSN    string `envconfig:"BACHELORHUB_DB_DSN"`
	Driver string `envconfig:"BACHELORHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BACHELORHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"BACHELORHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BACHELORHUB_DB_USER"`
	LegacyPassword string `envconfig:"BACHELORHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"BACHELORHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"BACHELORHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BACHELORHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BACHELORHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BACHELORHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BACHELORHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver is the embedded sqlite one.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"BACHELORHUB_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BACHELORHUB_REDIS_ADDR"`
	Password     string        `envconfig:"BACHELORHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"BACHELORHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BACHELORHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BACHELORHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BACHELORHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BACHELORHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BACHELORHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"BACHELORHUB_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"BACHELORHUB_JWT_ISSUER" default:"bachelorhub"`
	ExpirationMinutes      int    `envconfig:"BACHELORHUB_JWT_EXPIRATION_MINUTES" default:"10080"`
	RefreshTokenTTLMinutes int    `envconfig:"BACHELORHUB_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BACHELORHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BACHELORHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BACHELORHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BACHELORHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BACHELORHUB_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"BACHELORHUB_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"BACHELORHUB_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"BACHELORHUB_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"BACHELORHUB_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"BACHELORHUB_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"BACHELORHUB_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BACHELORHUB_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	MaxAgeSeconds  int      `envconfig:"BACHELORHUB_CORS_MAX_AGE" default:"300"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"BACHELORHUB_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"BACHELORHUB_METRICS_PATH" default:"/metrics"`
}

// ListingConfig bounds the page window of listing queries.
type ListingConfig struct {
	DefaultLimit int `envconfig:"BACHELORHUB_LISTING_DEFAULT_LIMIT" default:"10"`
	MaxLimit     int `envconfig:"BACHELORHUB_LISTING_MAX_LIMIT" default:"100"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"BACHELORHUB_IDEMPOTENCY_TTL" default:"24h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BACHELORHUB_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BACHELORHUB_AUTO_MIGRATE" default:"false"`
	SeedOnBoot  bool `envconfig:"BACHELORHUB_SEED_ON_BOOT" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = "file:bachelorhub.db?_foreign_keys=on"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
