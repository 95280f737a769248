package store

import (
	"context"

	"github.com/checkmotor/checkmotor/model"
)

// Fixed namespace keys, one per collection. The two collections are
// independent: nothing requires them to be updated atomically together.
const (
	templatesKey   = "cm_templates"
	submissionsKey = "cm_submissions"
)

// Store persists the template and submission collections as whole-document
// JSON snapshots: every save overwrites the full collection under its key,
// every load round-trips it back. A collection never written loads as empty.
type Store interface {
	LoadTemplates(ctx context.Context) ([]model.Template, error)
	SaveTemplates(ctx context.Context, templates []model.Template) error
	LoadSubmissions(ctx context.Context) ([]model.Submission, error)
	SaveSubmissions(ctx context.Context, submissions []model.Submission) error
	Close() error
}
