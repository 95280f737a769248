package checklist

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/checkmotor/checkmotor/model"
)

// ComputeTotal derives the monetary total of a run from the field schema and
// the current answers. It is recomputed on every change and never stored
// before submission. Fields without a present answer contribute nothing.
func ComputeTotal(fields []model.Field, answers model.AnswerMap) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fields {
		v := answers[f.ID]
		if !v.Present() {
			continue
		}

		switch f.Type {
		case model.FieldCheckbox:
			total = total.Add(f.Price)
		case model.FieldPriceManual:
			total = total.Add(parseAmount(v.Text()))
		case model.FieldSingleSelect:
			if opt, ok := f.Option(v.Text()); ok {
				total = total.Add(opt.Price)
			}
		case model.FieldMultiSelect:
			for _, id := range v.List() {
				if opt, ok := f.Option(id); ok {
					total = total.Add(opt.Price)
				}
			}
		case model.FieldText, model.FieldNumber, model.FieldDate,
			model.FieldPlateScan, model.FieldIMEIScan,
			model.FieldVehicleInfoScan, model.FieldImage:
			// never priced
		}
	}
	return total
}

// parseAmount reads a manual price entry. Unparsable input counts as zero;
// negative amounts are not clamped.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
