package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	// EnvSerperAPIKey is the conventional Serper API key variable.
	EnvSerperAPIKey = "SERPER_API_KEY"

	// EnvSearchAPIKey is the Veritas-specific API key variable. It takes
	// precedence over EnvSerperAPIKey.
	EnvSearchAPIKey = "VERITAS_SEARCH_API_KEY"

	// EnvStrategy overrides the configured strategy.
	EnvStrategy = "VERITAS_STRATEGY"

	// EnvModelDir overrides the classifier model directory.
	EnvModelDir = "VERITAS_MODEL_DIR"

	// EnvListenAddress overrides the HTTP listen address.
	EnvListenAddress = "VERITAS_LISTEN"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// With no arguments it loads ".env" from the current directory.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overlays environment variables onto cfg.
func (c *Config) ApplyEnv() {
	if key := lookupNonEmpty(EnvSearchAPIKey); key != "" {
		c.SearchAPIKey = key
	} else if key := lookupNonEmpty(EnvSerperAPIKey); key != "" {
		c.SearchAPIKey = key
	}
	if s := lookupNonEmpty(EnvStrategy); s != "" {
		c.Strategy = strings.ToLower(s)
	}
	if dir := lookupNonEmpty(EnvModelDir); dir != "" {
		c.ModelDir = dir
	}
	if addr := lookupNonEmpty(EnvListenAddress); addr != "" {
		c.ListenAddress = addr
	}
}

func lookupNonEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
