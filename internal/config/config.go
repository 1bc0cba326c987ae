package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbPathEnvKey        = "DB_PATH"
	sessionSecretEnvKey = "SESSION_SECRET"
	sessionTTLEnvKey    = "SESSION_TTL"
)

const defaultSessionTTL = 24 * time.Hour

type App struct {
	Port          string
	DBPath        string
	SessionSecret string
	SessionTTL    time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbPath, ok := os.LookupEnv(dbPathEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbPathEnvKey)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	sessionTTL := defaultSessionTTL
	if ttlStr, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", sessionTTLEnvKey, err)
		}
		sessionTTL = ttl
	}

	return App{
		Port:          port,
		DBPath:        dbPath,
		SessionSecret: sessionSecret,
		SessionTTL:    sessionTTL,
	}, nil
}
