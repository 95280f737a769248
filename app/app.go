package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/checkmotor/checkmotor/checklist"
	"github.com/checkmotor/checkmotor/log"
	"github.com/checkmotor/checkmotor/model"
	"github.com/checkmotor/checkmotor/store"
)

var (
	ErrUnnamedTemplate  = errors.New("template name is required")
	ErrTemplateNotFound = errors.New("template not found")
)

// App is the application root: it owns the in-memory template and submission
// collections, loads them from the store at startup, and writes the affected
// collection back after every mutation. All state mutation is driven by a
// single logical thread of user actions.
type App struct {
	store    store.Store
	analyzer checklist.Analyzer

	templates   []model.Template
	submissions []model.Submission
}

func New(st store.Store, analyzer checklist.Analyzer) *App {
	return &App{
		store:    st,
		analyzer: analyzer,
	}
}

// Load pulls both collections from the store. Called once at startup.
func (a *App) Load(ctx context.Context) error {
	templates, err := a.store.LoadTemplates(ctx)
	if err != nil {
		return err
	}
	submissions, err := a.store.LoadSubmissions(ctx)
	if err != nil {
		return err
	}

	a.templates = templates
	a.submissions = submissions
	log.Infof("app.load: %d templates, %d submissions", len(templates), len(submissions))
	return nil
}

// SaveTemplate creates or replaces a template by id and persists the
// collection. Past submissions keep their own snapshots and are not touched.
func (a *App) SaveTemplate(ctx context.Context, t model.Template) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrUnnamedTemplate
	}

	replaced := false
	for i := range a.templates {
		if a.templates[i].ID == t.ID {
			a.templates[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		a.templates = append(a.templates, t)
	}

	return a.store.SaveTemplates(ctx, a.templates)
}

// DeleteTemplate removes a template; submissions produced from it stay in
// the history.
func (a *App) DeleteTemplate(ctx context.Context, id string) error {
	kept := a.templates[:0]
	found := false
	for _, t := range a.templates {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrTemplateNotFound
	}

	a.templates = kept
	return a.store.SaveTemplates(ctx, a.templates)
}

func (a *App) Templates() []model.Template {
	return append([]model.Template(nil), a.templates...)
}

func (a *App) Template(id string) (model.Template, bool) {
	for _, t := range a.templates {
		if t.ID == id {
			return t, true
		}
	}
	return model.Template{}, false
}

// StartRun opens a fresh run of the given template.
func (a *App) StartRun(templateID string) (*checklist.Run, error) {
	t, ok := a.Template(templateID)
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return checklist.NewRun(t, a.analyzer), nil
}

// CompleteRun finalizes the run and appends the submission to the history.
// Validation failures and in-flight scans surface as the run's own errors and
// leave the history untouched.
func (a *App) CompleteRun(ctx context.Context, run *checklist.Run) (model.Submission, error) {
	sub, err := run.Finalize()
	if err != nil {
		return model.Submission{}, err
	}

	a.submissions = append(a.submissions, sub)
	if err := a.store.SaveSubmissions(ctx, a.submissions); err != nil {
		return model.Submission{}, err
	}

	log.Infof("app.complete_run: %s total=%s", sub.TemplateName, sub.TotalValue)
	return sub, nil
}

// Submissions returns the history, most recent first.
func (a *App) Submissions() []model.Submission {
	out := make([]model.Submission, len(a.submissions))
	for i, s := range a.submissions {
		out[len(out)-1-i] = s
	}
	return out
}

// Recent returns up to n of the latest submissions, most recent first.
func (a *App) Recent(n int) []model.Submission {
	all := a.Submissions()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// TotalRevenue sums the totals of every submission in the history.
func (a *App) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, s := range a.submissions {
		total = total.Add(s.TotalValue)
	}
	return total
}

// SubmissionsThisMonth counts submissions dated in the current month.
func (a *App) SubmissionsThisMonth() int {
	now := time.Now()
	n := 0
	for _, s := range a.submissions {
		if s.Date.Year() == now.Year() && s.Date.Month() == now.Month() {
			n++
		}
	}
	return n
}
