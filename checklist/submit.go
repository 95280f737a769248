package checklist

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/checkmotor/checkmotor/model"
)

// Assemble commits a run into an immutable submission: fresh id, template
// name snapshot, a deep copy of the answers (later edits to the live map must
// not reach the stored record) and the current timestamp. Callers are
// expected to have run Validate with zero errors first.
func Assemble(template model.Template, answers model.AnswerMap, total decimal.Decimal) model.Submission {
	data := answers.Clone()

	sub := model.Submission{
		ID:           uuid.NewString(),
		TemplateID:   template.ID,
		TemplateName: template.Name,
		Data:         data,
		TotalValue:   total,
		Date:         time.Now(),
	}
	if thumb := data[model.ThumbnailKey]; thumb.Present() {
		sub.Thumbnail = thumb.Text()
	}
	return sub
}
