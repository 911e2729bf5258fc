package app

import (
	"fmt"
	"io"

	"github.com/yungbote/studytrack-backend/internal/platform/inflight"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
	"github.com/yungbote/studytrack-backend/internal/platform/openai"
)

type Clients struct {
	// OpenAI is nil when OPENAI_API_KEY is unset; the smart routine then fails.
	OpenAI       openai.Client
	RoutineGuard inflight.Guard
	closeRedis   func() error
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	var out Clients
	if cfg.RedisAddr != "" {
		guard, err := inflight.NewRedisGuard(log, inflight.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return Clients{}, fmt.Errorf("init redis guard: %w", err)
		}
		out.RoutineGuard = guard
		if closer, ok := guard.(io.Closer); ok {
			out.closeRedis = closer.Close
		}
	} else {
		out.RoutineGuard = inflight.NewMemoryGuard()
	}

	if cfg.OpenAI.APIKey != "" {
		client, err := openai.NewClient(log, cfg.OpenAI)
		if err != nil {
			out.Close()
			return Clients{}, fmt.Errorf("init openai client: %w", err)
		}
		out.OpenAI = client
	} else {
		log.Warn("OPENAI_API_KEY not set; smart routine disabled")
	}
	return out, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.closeRedis != nil {
		_ = c.closeRedis()
		c.closeRedis = nil
	}
}
