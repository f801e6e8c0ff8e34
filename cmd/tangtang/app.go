package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"tangtang/internal/api"
	"tangtang/internal/session"
	"tangtang/pkg/types"
)

// app bundles the runtime pieces every command needs: config, logger, the
// session object and the API client built around it.
type app struct {
	config  *types.Config
	logger  *logrus.Logger
	session *session.Session
	client  *api.Client
	debug   bool
}

func buildApp(cCtx *cli.Context) (*app, error) {
	config, err := loadConfig(cCtx.String("env-prefix"))
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	sess := session.New(config.Token, session.WithSignOutHook(func() {
		logger.Warn("session invalidated by the server, signed out")
	}))

	if sess.Active() && sess.Expired(time.Now()) {
		logger.Warn("bearer token is expired, requests will be anonymous-only")
	}

	client := api.New(config.APIBaseURL, sess, logger,
		api.WithTimeout(time.Duration(config.RequestTimeoutSec)*time.Second),
		api.WithRateLimit(config.RateLimitRPS, config.RateLimitBurst),
	)

	return &app{
		config:  config,
		logger:  logger,
		session: sess,
		client:  client,
		debug:   cCtx.Bool("debug"),
	}, nil
}

// viewer derives the chat identity from the session token; nil when browsing
// anonymously.
func (a *app) viewer() *types.User {
	if !a.session.Active() {
		return nil
	}

	claims, err := a.session.Claims()
	if err != nil {
		a.logger.WithError(err).Debug("could not parse token claims")
		return nil
	}

	return &types.User{
		ID:      claims.Subject,
		Name:    claims.Name,
		IsAdmin: claims.IsAdmin,
	}
}
