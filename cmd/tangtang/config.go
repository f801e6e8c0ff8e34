package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"tangtang/pkg/types"
)

func loadConfig(prefix string) (*types.Config, error) {
	// A missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.APIBaseURL == "" {
		return nil, fmt.Errorf("set %s_API_BASE_URL", prefix)
	}

	if c.ChatPollIntervalSec == 0 {
		c.ChatPollIntervalSec = 5
	}

	if c.RequestTimeoutSec == 0 {
		c.RequestTimeoutSec = 15
	}

	return c, nil
}
