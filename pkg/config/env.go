package config

// EnvPrefix namespaces every variable read by Load.
const EnvPrefix = "BACHELORHUB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "BACHELORHUB_APP_ENV"
	EnvPort     = "BACHELORHUB_APP_PORT"
	EnvLogLevel = "BACHELORHUB_LOG_LEVEL"

	EnvDBDSN    = "BACHELORHUB_DB_DSN"
	EnvDBDriver = "BACHELORHUB_DB_DRIVER"
	EnvDBHost   = "BACHELORHUB_DB_HOST"
	EnvDBPort   = "BACHELORHUB_DB_PORT"
	EnvDBUser   = "BACHELORHUB_DB_USER"
	EnvDBPass   = "BACHELORHUB_DB_PASSWORD"
	EnvDBName   = "BACHELORHUB_DB_NAME"

	EnvRedisURL = "BACHELORHUB_REDIS_URL"

	EnvJWTSecret              = "BACHELORHUB_JWT_SECRET"
	EnvJWTIssuer              = "BACHELORHUB_JWT_ISSUER"
	EnvJWTExpMins             = "BACHELORHUB_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "BACHELORHUB_REFRESH_TOKEN_TTL_MINUTES"

	EnvCORSAllowedOrigins = "BACHELORHUB_CORS_ALLOWED_ORIGINS"
	EnvListingMaxLimit    = "BACHELORHUB_LISTING_MAX_LIMIT"
	EnvUseSQLite          = "BACHELORHUB_USE_SQLITE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
