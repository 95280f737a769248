package checklist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/checkmotor/checkmotor/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertTotal(t *testing.T, want string, fields []model.Field, answers model.AnswerMap) {
	t.Helper()
	got := ComputeTotal(fields, answers)
	assert.True(t, got.Equal(dec(want)), "total = %s, want %s", got, want)
}

func TestComputeTotalCheckboxToggle(t *testing.T) {
	alarm := model.NewField(model.FieldCheckbox, "Alarme")
	alarm.Price = dec("50")
	other := model.NewField(model.FieldText, "Observações")
	fields := []model.Field{alarm, other}

	answers := model.AnswerMap{other.ID: model.Text("ok")}
	assertTotal(t, "0", fields, answers)

	answers[alarm.ID] = model.Bool(true)
	assertTotal(t, "50", fields, answers)

	answers[alarm.ID] = model.Bool(false)
	assertTotal(t, "0", fields, answers)
}

func TestComputeTotalManualPrice(t *testing.T) {
	price := model.NewField(model.FieldPriceManual, "Mão de obra")
	fields := []model.Field{price}

	assertTotal(t, "0", fields, model.AnswerMap{})
	assertTotal(t, "30", fields, model.AnswerMap{price.ID: model.Text("30")})
	assertTotal(t, "19.90", fields, model.AnswerMap{price.ID: model.Text("19.90")})
	assertTotal(t, "0", fields, model.AnswerMap{price.ID: model.Text("abc")})
	// negative input is not clamped
	assertTotal(t, "-10", fields, model.AnswerMap{price.ID: model.Text("-10")})
}

func TestComputeTotalSingleSelectReplaces(t *testing.T) {
	state := model.NewField(model.FieldSingleSelect, "Estado geral")
	good := model.NewOption("Bom", dec("100"))
	bad := model.NewOption("Ruim", dec("250"))
	state.Options = []model.Option{good, bad}
	fields := []model.Field{state}

	answers := model.AnswerMap{state.ID: model.Text(good.ID)}
	assertTotal(t, "100", fields, answers)

	// switching options replaces the contribution, it does not add
	answers[state.ID] = model.Text(bad.ID)
	assertTotal(t, "250", fields, answers)

	answers[state.ID] = model.Text("no-such-option")
	assertTotal(t, "0", fields, answers)
}

func TestComputeTotalMultiSelectSumsSelected(t *testing.T) {
	damages := model.NewField(model.FieldMultiSelect, "Avarias")
	scratch := model.NewOption("Risco", dec("150"))
	glass := model.NewOption("Vidro", dec("320.50"))
	free := model.NewOption("Sem custo", decimal.Zero)
	damages.Options = []model.Option{scratch, glass, free}
	fields := []model.Field{damages}

	assertTotal(t, "150", fields, model.AnswerMap{damages.ID: model.List(scratch.ID)})
	assertTotal(t, "470.50", fields, model.AnswerMap{damages.ID: model.List(scratch.ID, glass.ID)})
	assertTotal(t, "470.50", fields, model.AnswerMap{damages.ID: model.List(scratch.ID, glass.ID, free.ID)})
	assertTotal(t, "0", fields, model.AnswerMap{damages.ID: model.List("unknown")})
	assertTotal(t, "0", fields, model.AnswerMap{damages.ID: model.List()})
}

func TestComputeTotalUnpricedTypesContributeNothing(t *testing.T) {
	fields := []model.Field{
		model.NewField(model.FieldText, "Texto"),
		model.NewField(model.FieldNumber, "Km"),
		model.NewField(model.FieldDate, "Data"),
		model.NewField(model.FieldPlateScan, "Placa"),
		model.NewField(model.FieldIMEIScan, "IMEI"),
		model.NewField(model.FieldVehicleInfoScan, "Veículo"),
		model.NewField(model.FieldImage, "Foto"),
	}

	answers := model.AnswerMap{}
	for _, f := range fields {
		answers[f.ID] = model.Text("999")
	}
	assertTotal(t, "0", fields, answers)
}

func TestComputeTotalIndependentFields(t *testing.T) {
	alarm := model.NewField(model.FieldCheckbox, "Alarme")
	alarm.Price = dec("50")
	price := model.NewField(model.FieldPriceManual, "Extra")
	fields := []model.Field{price, alarm}

	answers := model.AnswerMap{price.ID: model.Text("30")}
	assertTotal(t, "30", fields, answers)

	answers[alarm.ID] = model.Bool(true)
	assertTotal(t, "80", fields, answers)

	answers[alarm.ID] = model.Bool(false)
	assertTotal(t, "30", fields, answers)
}
