package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/yungbote/studytrack-backend/internal/app"
	"github.com/yungbote/studytrack-backend/internal/cli"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

var CLI struct {
	LogMode string `help:"Logger mode (development, production, test)." env:"LOG_MODE" default:"test"`

	Migrate   cli.MigrateCmd   `cmd:"" help:"Create or update the database tables."`
	Weekly    cli.WeeklyCmd    `cmd:"" help:"Print a user's trailing seven-day report."`
	Routine   cli.RoutineCmd   `cmd:"" help:"Print the rule-based routine for a weekday."`
	Timetable cli.TimetableCmd `cmd:"" help:"Print subjects and the weekly timetable."`
	AICalls   cli.AICallsCmd   `cmd:"" name:"ai-calls" help:"List a user's recent routine generation attempts."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("studyadmin"),
		kong.Description("Operator tools for the study tracker"),
		kong.UsageOnError(),
	)
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx *kong.Context) error {
	log, err := logger.New(CLI.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	cfg := app.LoadConfig(log)
	dom, err := app.LoadDomain(cfg)
	if err != nil {
		return err
	}

	appCtx := cli.NewContext(log, cfg, dom, os.Stdout)
	defer appCtx.Close()
	return ctx.Run(appCtx)
}
