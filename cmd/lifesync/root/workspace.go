package root

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/analytics"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
	"github.com/comitanigiacomo/lifesync-engine/internal/ui"
)

// localUser owns everything imported from the export file.
const localUser = domain.ID("local")

type exportFile struct {
	Categories []domain.Category `json:"categories"`
	Activities []domain.Activity `json:"activities"`
	Logs       domain.LogBook    `json:"logs"`
}

type workspace struct {
	stats *services.StatsService
	user  domain.ID
}

func resolveToday(flag string) (time.Time, error) {
	if flag == "" {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := domain.ParseDate(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("--today: %w", err)
	}
	return t, nil
}

func readExport(path string) (*exportFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	var data exportFile
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode export %s: %w", path, err)
	}
	return &data, nil
}

// openWorkspace imports the export into an in-memory store. Dangling
// references and bad dates are reported on warn.
func openWorkspace(ctx context.Context, path string, warn io.Writer) (*workspace, error) {
	data, err := readExport(path)
	if err != nil {
		return nil, err
	}

	// orphans are kept so hours and compliance match the analytics over the
	// raw export
	store := repository.NewInMemoryStore(repository.WithOrphanActivities())
	warnf := func(format string, args ...any) {
		fmt.Fprintln(warn, ui.Warn.Render(ui.IconWarn+" "+fmt.Sprintf(format, args...)))
	}

	categories := make(map[domain.ID]bool, len(data.Categories))
	for i := range data.Categories {
		c := data.Categories[i]
		if c.ID.IsZero() {
			c.ID = domain.NewID()
		}
		c.UserID = localUser
		if c.Color == "" {
			c.Color = domain.DefaultCategoryColor
		}
		if err := store.Categories().Create(ctx, &c); err != nil {
			return nil, fmt.Errorf("import category %s: %w", c.ID, err)
		}
		categories[c.ID] = true
	}

	known := make(map[domain.ID]bool, len(data.Activities))
	for i := range data.Activities {
		a := data.Activities[i]
		if a.ID.IsZero() {
			a.ID = domain.NewID()
		}
		a.UserID = localUser
		if a.Kind == "" {
			a.Kind = domain.ActivityKindFree
		}

		if err := store.Activities().Create(ctx, &a); err != nil {
			return nil, fmt.Errorf("import activity %s: %w", a.ID, err)
		}
		if !categories[a.CategoryID] {
			warnf("activity %q: category %s not found, counted in hours and compliance only", a.Name, a.CategoryID)
		}
		known[a.ID] = true
	}

	for _, date := range data.Logs.Dates() {
		if _, err := domain.ParseDate(date); err != nil {
			warnf("skipping log entry with bad date %q", date)
			continue
		}

		ids := make([]domain.ID, 0, len(data.Logs[date]))
		for _, id := range data.Logs[date] {
			if known[id] {
				ids = append(ids, id)
			}
		}
		if err := store.Logs().ReplaceDay(ctx, localUser, date, ids); err != nil {
			return nil, fmt.Errorf("import logs for %s: %w", date, err)
		}
	}

	stats := services.NewStatsService(store.Categories(), store.Activities(), store.Logs(), nil, analytics.DefaultProjector())
	return &workspace{stats: stats, user: localUser}, nil
}
