package checklist

import (
	"regexp"
	"strings"

	"github.com/checkmotor/checkmotor/model"
)

var rePlateJunk = regexp.MustCompile(`[^A-Z0-9]`)

// ApplyExtraction maps an AI extraction onto the matching fields of the
// template and returns a new answer map; the input map is left untouched.
// Extraction results overwrite whatever the user typed first.
func ApplyExtraction(fields []model.Field, answers model.AnswerMap, result model.AIResult) model.AnswerMap {
	merged := answers.Clone()
	for _, f := range fields {
		switch f.Type {
		case model.FieldPlateScan:
			if result.Placa != "" {
				merged[f.ID] = model.Text(normalizePlate(result.Placa))
			}
		case model.FieldVehicleInfoScan:
			merged[f.ID] = model.Text(strings.TrimSpace(result.Marca + " " + result.Modelo))
		case model.FieldIMEIScan:
			// first detected IMEI wins, the rest of the payload is dropped
			if len(result.IMEI) > 0 {
				merged[f.ID] = model.Text(result.IMEI[0])
			}
		case model.FieldText, model.FieldNumber, model.FieldDate,
			model.FieldCheckbox, model.FieldSingleSelect,
			model.FieldMultiSelect, model.FieldImage,
			model.FieldPriceManual:
			// not fed by extraction
		}
	}
	return merged
}

// normalizePlate reduces both legacy and Mercosul plate spellings to a bare
// uppercase alphanumeric string.
func normalizePlate(plate string) string {
	return rePlateJunk.ReplaceAllLiteralString(strings.ToUpper(plate), "")
}
