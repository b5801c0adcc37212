// Package config populates configuration structs from the process
// environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once per
//     process if it exists. Variables already set in the environment win.
//   - LoadEnv loads additional files explicitly and reports missing ones.
//   - Load parses env tags into a struct and, when the struct implements
//     Validator, runs its Validate method so that a misconfigured service
//     refuses to start.
//
// Usage:
//
//	type Config struct {
//	    Port   int    `env:"SERVER_PORT" envDefault:"8081"`
//	    Region string `env:"REGION,required"`
//	}
//
//	func (c Config) Validate() error { ... }
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// The struct is filled once at startup and passed by value afterwards.
// Nothing is cached globally and nothing is re-read from the environment
// at request time.
package config
