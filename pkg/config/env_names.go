package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "SEWAKITA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv                 = "SEWAKITA_APP_ENV"
	EnvPort                   = "SEWAKITA_APP_PORT"
	EnvDBDSN                  = "SEWAKITA_DB_DSN"
	EnvDBHost                 = "SEWAKITA_DB_HOST"
	EnvDBUser                 = "SEWAKITA_DB_USER"
	EnvDBName                 = "SEWAKITA_DB_NAME"
	EnvRedisURL               = "SEWAKITA_REDIS_URL"
	EnvJWTSecret              = "SEWAKITA_JWT_SECRET"
	EnvJWTIssuer              = "SEWAKITA_JWT_ISSUER"
	EnvJWTExpMins             = "SEWAKITA_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "SEWAKITA_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
