package middleware

import (
	"tecnofit-assistant/config"
	"tecnofit-assistant/pkg/log"
)

type Middleware struct {
	l        log.Logger
	config   *config.Config
	limiters *limiterCache
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:        l,
		config:   cfg,
		limiters: newLimiterCache(cfg.RateLimit),
	}
}
