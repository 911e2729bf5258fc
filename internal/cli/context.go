// Package cli implements the studyadmin operator commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/studytrack-backend/internal/app"
	dbpkg "github.com/yungbote/studytrack-backend/internal/data/db"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

// Context is handed to every command's Run method.
type Context struct {
	Log    *logger.Logger
	Cfg    app.Config
	Domain app.Domain
	Out    io.Writer

	db        *gorm.DB
	dbService *dbpkg.Service
}

func NewContext(log *logger.Logger, cfg app.Config, dom app.Domain, out io.Writer) *Context {
	return &Context{Log: log, Cfg: cfg, Domain: dom, Out: out}
}

// WithDB uses an already-open database instead of connecting from config.
func (c *Context) WithDB(db *gorm.DB) *Context {
	c.db = db
	return c
}

// DB connects on first use.
func (c *Context) DB() (*gorm.DB, error) {
	if c.db != nil {
		return c.db, nil
	}
	svc, err := dbpkg.NewService(c.Log, c.Cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	c.dbService = svc
	c.db = svc.DB()
	return c.db, nil
}

func (c *Context) Close() {
	if c.dbService != nil {
		_ = c.dbService.Close()
		c.dbService = nil
	}
}

func (c *Context) timeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
