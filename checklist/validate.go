package checklist

import (
	"fmt"

	"github.com/checkmotor/checkmotor/model"
)

// Validate returns one message per required field left unanswered, in field
// declaration order. All violations are collected so the caller can surface
// them together; a non-empty result blocks submission.
func Validate(fields []model.Field, answers model.AnswerMap) []string {
	var errs []string
	for _, f := range fields {
		if f.Required && !answers[f.ID].Present() {
			errs = append(errs, fmt.Sprintf("%s is required.", f.Label))
		}
	}
	return errs
}
