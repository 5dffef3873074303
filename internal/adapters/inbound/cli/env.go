package cli

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// envConfig carries environment-variable defaults for flags that users
// set once per machine rather than per invocation.
type envConfig struct {
	Catalog string `env:"CCWKIT_CATALOG"`
	TopK    int    `env:"CCWKIT_TOP_K"`
}

// loadEnvConfig reads defaults from the environment (and a .env file when
// present). Parsing problems are ignored; flags always win anyway.
func loadEnvConfig() envConfig {
	_ = godotenv.Load()
	var cfg envConfig
	_ = env.Parse(&cfg)
	return cfg
}
