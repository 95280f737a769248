package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldType is the closed set of field kinds a template can hold. The type
// drives both the editor widget and the pricing rule applied by the runner.
type FieldType string

const (
	FieldText            FieldType = "TEXT"
	FieldNumber          FieldType = "NUMBER"
	FieldDate            FieldType = "DATE"
	FieldCheckbox        FieldType = "CHECKBOX"
	FieldPlateScan       FieldType = "PLATE_SCAN"
	FieldIMEIScan        FieldType = "IMEI_SCAN"
	FieldSingleSelect    FieldType = "SINGLE_SELECT"
	FieldMultiSelect     FieldType = "MULTI_SELECT"
	FieldVehicleInfoScan FieldType = "VEHICLE_INFO_SCAN"
	FieldImage           FieldType = "IMAGE"
	FieldPriceManual     FieldType = "PRICE_MANUAL"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldNumber, FieldDate, FieldCheckbox,
		FieldPlateScan, FieldIMEIScan, FieldSingleSelect, FieldMultiSelect,
		FieldVehicleInfoScan, FieldImage, FieldPriceManual:
		return true
	}
	return false
}

// HasOptions reports whether fields of this type carry an option list.
func (t FieldType) HasOptions() bool {
	return t == FieldSingleSelect || t == FieldMultiSelect
}

// Scannable reports whether fields of this type are filled by image analysis.
func (t FieldType) Scannable() bool {
	return t == FieldPlateScan || t == FieldIMEIScan || t == FieldVehicleInfoScan
}

type Option struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

func NewOption(label string, price decimal.Decimal) Option {
	return Option{
		ID:    uuid.NewString(),
		Label: label,
		Price: price,
	}
}

type Field struct {
	ID       string          `json:"id"`
	Type     FieldType       `json:"type"`
	Label    string          `json:"label"`
	Required bool            `json:"required"`
	Price    decimal.Decimal `json:"price"`
	Options  []Option        `json:"options,omitempty"`
}

// NewField assigns the field id once; it stays the join key into the answer
// map for the lifetime of the template, across any later edits.
// Select fields get an empty option list so "has options" means "is select".
func NewField(t FieldType, label string) Field {
	f := Field{
		ID:    uuid.NewString(),
		Type:  t,
		Label: label,
	}
	if t.HasOptions() {
		f.Options = []Option{}
	}
	return f
}

// Option finds an owned option by id.
func (f Field) Option(id string) (Option, bool) {
	for _, o := range f.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Fields      []Field   `json:"fields"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewTemplate(name, description string) Template {
	return Template{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Fields:      []Field{},
		CreatedAt:   time.Now(),
	}
}

func (t Template) Field(id string) (Field, bool) {
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Normalize restores invariants that JSON decoding loses: select fields with
// no options come back with a nil slice instead of an empty one.
func (t *Template) Normalize() {
	for i := range t.Fields {
		if t.Fields[i].Type.HasOptions() && t.Fields[i].Options == nil {
			t.Fields[i].Options = []Option{}
		}
	}
}

// Submission is one completed, priced run of a template. It snapshots the
// template name and the answer data, so later template edits never touch it.
type Submission struct {
	ID           string          `json:"id"`
	TemplateID   string          `json:"templateId"`
	TemplateName string          `json:"templateName"`
	Data         AnswerMap       `json:"data"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	Date         time.Time       `json:"date"`
	Thumbnail    string          `json:"thumbnail,omitempty"`
}

// AIResult is the untrusted, partial payload of the image analysis service.
type AIResult struct {
	Placa  string   `json:"placa"`
	Marca  string   `json:"marca"`
	Modelo string   `json:"modelo"`
	IMEI   []string `json:"imei"`
}
