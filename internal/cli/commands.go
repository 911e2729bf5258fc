package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	dbpkg "github.com/yungbote/studytrack-backend/internal/data/db"
	"github.com/yungbote/studytrack-backend/internal/data/repos"
	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
	"github.com/yungbote/studytrack-backend/internal/modules/study/routine"
	"github.com/yungbote/studytrack-backend/internal/platform/clock"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/services"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	db, err := ctx.DB()
	if err != nil {
		return err
	}
	if err := dbpkg.AutoMigrateAll(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(ctx.Out, "Migrations applied.")
	return nil
}

type WeeklyCmd struct {
	User  string `help:"User id (uuid)." required:""`
	Today string `help:"Anchor day (YYYY-MM-DD); defaults to today in STUDY_TIMEZONE."`
	JSON  bool   `help:"Print JSON instead of a table." name:"json"`
}

func (c *WeeklyCmd) Run(ctx *Context) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.User))
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}
	today := ctx.Domain.Clock.Today()
	if c.Today != "" {
		if today, err = clock.ParseDate(c.Today); err != nil {
			return fmt.Errorf("invalid --today, use YYYY-MM-DD: %w", err)
		}
	}
	db, err := ctx.DB()
	if err != nil {
		return err
	}
	cctx, cancel := ctx.timeout()
	defer cancel()

	svc := services.NewAnalyticsService(ctx.Log, ctx.Domain.Clock, repos.NewStudyLogRepo(db, ctx.Log))
	rep, err := svc.WeeklyFor(dbctx.New(cctx), userID, today)
	if err != nil {
		return err
	}
	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDAY\tHOURS")
	for _, d := range rep.Days {
		fmt.Fprintf(w, "%s\t%s\t%.1f\n", d.DateKey, d.Label, d.Hours)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "\nTotal: %.1fh  Average: %.1fh/day  Best: %s (%.1fh)\n",
		rep.Stats.TotalHours, rep.Stats.AverageHours, rep.Stats.BestDay.DateKey, rep.Stats.BestDay.Hours)
	return nil
}

type RoutineCmd struct {
	Day string `help:"Weekday (MONDAY..SUNDAY); defaults to today in STUDY_TIMEZONE."`
}

func (c *RoutineCmd) Run(ctx *Context) error {
	day := c.Day
	if day == "" {
		day = ctx.Domain.Clock.Weekday()
	}
	r, err := routine.ForDay(day, ctx.Domain.Catalog)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s\n\n", r.Weekday)
	printBlock(ctx, "Morning", r.Morning)
	printBlock(ctx, "Evening", r.Evening)
	if len(r.Classes) > 0 {
		fmt.Fprintln(ctx.Out, "Classes:")
		for _, cl := range r.Classes {
			fmt.Fprintf(ctx.Out, "  %s  %s\n", cl.Time, cl.Subject)
		}
	}
	return nil
}

func printBlock(ctx *Context, label string, b routine.Block) {
	fmt.Fprintf(ctx.Out, "%s: %s (%s)\n  %s\n\n", label, b.Title, b.Duration, b.Detail)
}

type TimetableCmd struct{}

func (c *TimetableCmd) Run(ctx *Context) error {
	cat := ctx.Domain.Catalog
	fmt.Fprintf(ctx.Out, "Current subjects: %s\n", strings.Join(cat.CurrentSubjects, ", "))
	fmt.Fprintf(ctx.Out, "Backlog subjects: %s\n\n", strings.Join(cat.BacklogSubjects, ", "))
	for _, day := range catalog.Weekdays {
		entries := cat.Day(day)
		if len(entries) == 0 {
			fmt.Fprintf(ctx.Out, "%s: no classes\n", day)
			continue
		}
		fmt.Fprintf(ctx.Out, "%s:\n", day)
		for _, cl := range cat.Classes(day) {
			fmt.Fprintf(ctx.Out, "  %s  %s\n", cl.Time, cl.Subject)
		}
	}
	return nil
}

type AICallsCmd struct {
	User  string `help:"User id (uuid)." required:""`
	Limit int    `help:"Maximum rows." default:"20"`
}

func (c *AICallsCmd) Run(ctx *Context) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.User))
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}
	db, err := ctx.DB()
	if err != nil {
		return err
	}
	cctx, cancel := ctx.timeout()
	defer cancel()

	svc := services.NewRoutineService(ctx.Log, ctx.Domain.Clock, ctx.Domain.Catalog,
		repos.NewStudyLogRepo(db, ctx.Log), repos.NewBacklogItemRepo(db, ctx.Log), repos.NewAICallLogRepo(db, ctx.Log),
		nil, nil, services.RoutineConfig{})
	rows, err := svc.RecentCalls(dbctx.New(cctx), userID, c.Limit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(ctx.Out, "No calls recorded.")
		return nil
	}
	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tSTATUS\tMODEL\tLATENCY\tERROR")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dms\t%s\n",
			r.CreatedAt.UTC().Format(time.RFC3339), r.Status, r.Model, r.LatencyMS, r.Error)
	}
	return w.Flush()
}
