// Package config provides common configuration utilities for bookkeep.
//
// Configuration is loaded from environment variables (optionally via a .env
// file) using cleanenv struct tags. This package holds the shared pieces:
// database connection settings, record store backend selection, auth and
// rate-limit settings.
//
//	var cfg struct {
//		DbConfig      config.DatabaseConfig
//		StorageConfig config.StorageConfig
//	}
//	cleanenv.ReadEnv(&cfg)
//	pool, err := dbutils.NewDbPool(ctx, cfg.DbConfig.ToDbConfig())
package config
