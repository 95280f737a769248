package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmotor/checkmotor/model"
)

func TestValidateRequiredText(t *testing.T) {
	plate := model.NewField(model.FieldText, "Placa")
	plate.Required = true
	fields := []model.Field{plate}

	errs := Validate(fields, model.AnswerMap{})
	require.Len(t, errs, 1)
	assert.Equal(t, "Placa is required.", errs[0])

	errs = Validate(fields, model.AnswerMap{plate.ID: model.Text("")})
	assert.Len(t, errs, 1, "empty string does not satisfy a required field")

	errs = Validate(fields, model.AnswerMap{plate.ID: model.Text("ABC1234")})
	assert.Empty(t, errs)
}

func TestValidateCollectsAllInDeclarationOrder(t *testing.T) {
	a := model.NewField(model.FieldText, "Primeiro")
	a.Required = true
	b := model.NewField(model.FieldDate, "Segundo")
	c := model.NewField(model.FieldNumber, "Terceiro")
	c.Required = true
	fields := []model.Field{a, b, c}

	errs := Validate(fields, model.AnswerMap{})
	require.Len(t, errs, 2)
	assert.Equal(t, "Primeiro is required.", errs[0])
	assert.Equal(t, "Terceiro is required.", errs[1])
}

func TestValidateRequiredCheckbox(t *testing.T) {
	box := model.NewField(model.FieldCheckbox, "Vistoria aprovada")
	box.Required = true
	fields := []model.Field{box}

	// an explicitly unchecked box reads the same as an unanswered one
	errs := Validate(fields, model.AnswerMap{box.ID: model.Bool(false)})
	require.Len(t, errs, 1)

	errs = Validate(fields, model.AnswerMap{box.ID: model.Bool(true)})
	assert.Empty(t, errs)
}

func TestValidateMultiSelectEmptyListCounts(t *testing.T) {
	damages := model.NewField(model.FieldMultiSelect, "Avarias")
	damages.Required = true
	fields := []model.Field{damages}

	require.Len(t, Validate(fields, model.AnswerMap{}), 1)

	// selecting and then deselecting leaves an empty list, which passes
	errs := Validate(fields, model.AnswerMap{damages.ID: model.List()})
	assert.Empty(t, errs)
}

func TestValidateOptionalFieldsNeverComplain(t *testing.T) {
	fields := []model.Field{
		model.NewField(model.FieldText, "Notas"),
		model.NewField(model.FieldImage, "Foto"),
	}
	assert.Empty(t, Validate(fields, model.AnswerMap{}))
}
