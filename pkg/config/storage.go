package config

// StorageBackend selects which record store implementation backs the services.
type StorageBackend string

const (
	StoragePostgres StorageBackend = "postgres"
	StorageMemory   StorageBackend = "memory"
	StorageFile     StorageBackend = "file"
)

// StorageConfig holds record store configuration
type StorageConfig struct {
	Backend string `env:"BKP_STORAGE" env-default:"postgres"`
	DataDir string `env:"BKP_DATA_DIR" env-default:"./data"`
}

// BackendType returns the configured backend, defaulting to Postgres for
// unrecognized values
func (s StorageConfig) BackendType() StorageBackend {
	switch s.Backend {
	case string(StorageMemory):
		return StorageMemory
	case string(StorageFile):
		return StorageFile
	default:
		return StoragePostgres
	}
}

// RateLimitConfig holds per-client request budgets for the API surface
type RateLimitConfig struct {
	Enabled    bool    `env:"BKP_RATELIMIT_ENABLED" env-default:"true"`
	Capacity   int     `env:"BKP_RATELIMIT_CAPACITY" env-default:"100"`
	RefillRate float64 `env:"BKP_RATELIMIT_REFILL_RATE" env-default:"1.67"`
}

// AuthConfig holds authentication configuration for the HTTP surface.
// The identity provider is external; when enabled the server only verifies
// bearer tokens it issued for development or received from the provider.
type AuthConfig struct {
	Enabled   bool   `env:"BKP_AUTH_ENABLED" env-default:"false"`
	JwtSecret string `env:"BKP_JWT_SECRET" env-default:"very-secure-jwt-secret"`
	Issuer    string `env:"BKP_JWT_ISSUER" env-default:"bookkeep"`
}
