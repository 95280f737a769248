package checklist

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/checkmotor/checkmotor/model"
)

// ErrScanInFlight is returned while an image analysis request is
// outstanding: captures and submission are held off until it settles.
var ErrScanInFlight = errors.New("image analysis in progress")

// ValidationError carries every required-field violation of a run, in field
// declaration order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Analyzer extracts vehicle data from a captured image. A (nil, nil) return
// means no usable extraction; an error is a transport or parse fault, fatal
// to the attempt but never to the run.
type Analyzer interface {
	Analyze(ctx context.Context, imageDataURI string) (*model.AIResult, error)
}

// Run is the live state of one checklist being filled out: the template, the
// answer map, and the single-slot scanning guard. Total and validation errors
// are derived from the answers on demand, never stored.
type Run struct {
	mu       sync.Mutex
	template model.Template
	answers  model.AnswerMap
	scanning bool
	analyzer Analyzer
}

func NewRun(template model.Template, analyzer Analyzer) *Run {
	return &Run{
		template: template,
		answers:  model.AnswerMap{},
		analyzer: analyzer,
	}
}

func (r *Run) Template() model.Template {
	return r.template
}

// Answers returns a snapshot of the live answer map.
func (r *Run) Answers() model.AnswerMap {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.answers.Clone()
}

// Set records an answer for a field.
func (r *Run) Set(fieldID string, v model.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[fieldID] = v
}

// Toggle flips a checkbox: an unanswered or unchecked box becomes checked.
func (r *Run) Toggle(fieldID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[fieldID] = model.Bool(!r.answers[fieldID].Present())
}

// Select replaces the chosen option of a single-select field.
func (r *Run) Select(fieldID, optionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[fieldID] = model.Text(optionID)
}

// ToggleOption adds the option to a multi-select answer, or removes it when
// already selected.
func (r *Run) ToggleOption(fieldID, optionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.answers[fieldID].List()
	next := make([]string, 0, len(current)+1)
	found := false
	for _, id := range current {
		if id == optionID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, optionID)
	}
	r.answers[fieldID] = model.List(next...)
}

// ClearImage discards a captured image, leaving an explicit null.
func (r *Run) ClearImage(fieldID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[fieldID] = model.Null()
}

func (r *Run) Total() decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ComputeTotal(r.template.Fields, r.answers)
}

func (r *Run) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Validate(r.template.Fields, r.answers)
}

func (r *Run) Scanning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scanning
}

// Capture sends one image through the analyzer and merges the extraction
// back into the answers. At most one request is in flight per run; a second
// capture while scanning fails with ErrScanInFlight. The first captured
// image also becomes the submission thumbnail, whatever field triggered it.
// Analyzer failures leave every answer as it was; an empty extraction is a
// silent no-op. There is one attempt per call, no retry.
func (r *Run) Capture(ctx context.Context, imageDataURI string) error {
	r.mu.Lock()
	if r.scanning {
		r.mu.Unlock()
		return ErrScanInFlight
	}
	r.scanning = true
	if !r.answers[model.ThumbnailKey].Present() {
		r.answers[model.ThumbnailKey] = model.Text(imageDataURI)
	}
	r.mu.Unlock()

	result, err := r.analyzer.Analyze(ctx, imageDataURI)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanning = false
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	r.answers = ApplyExtraction(r.template.Fields, r.answers, *result)
	return nil
}

// Finalize validates the run and assembles the immutable submission. It
// refuses while a scan is outstanding and returns a *ValidationError listing
// every unanswered required field; no partial submission is ever produced.
func (r *Run) Finalize() (model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scanning {
		return model.Submission{}, ErrScanInFlight
	}
	if errs := Validate(r.template.Fields, r.answers); len(errs) > 0 {
		return model.Submission{}, &ValidationError{Errors: errs}
	}

	total := ComputeTotal(r.template.Fields, r.answers)
	return Assemble(r.template, r.answers, total), nil
}
