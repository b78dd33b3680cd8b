// Package config loads typed settings from environment variables.
//
// Every package that needs settings declares a Config struct tagged for
// github.com/caarlos0/env/v11, for example showroom.Config or pg.Config.
// Load parses it once per type and caches the result:
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// A .env file in the working directory is read on first use through
// github.com/joho/godotenv. Use LoadEnv for other files. Real environment
// variables always take precedence over file values.
package config
