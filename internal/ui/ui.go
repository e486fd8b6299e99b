package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// fieldView groups the widgets of one input column.
type fieldView struct {
	title     *widget.Label
	entry     *NumericalEntry
	errorText *widget.Label
}

// counterView is one line of the result: a number and its unit.
type counterView struct {
	value    *widget.Label
	unit     *widget.Label
	unitKey  string
	fallback string
}

// AgeApp owns the form state and the widgets that render it.
// State is only read and replaced from widget callbacks, which fyne runs on
// its UI goroutine.
type AgeApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Clock      engine.Clock // Injected clock for testability

	State engine.FormState

	fields       map[engine.Field]*fieldView
	SubmitButton *widget.Button
	years        *counterView
	months       *counterView
	days         *counterView
}

// NewAgeApp constructs the application with an empty form.
func NewAgeApp(a fyne.App) *AgeApp {
	return &AgeApp{
		App:    a,
		Clock:  engine.RealClock{}, // Default to real clock in production
		State:  engine.NewFormState(),
		fields: make(map[engine.Field]*fieldView, len(engine.Fields)),
	}
}

// Run builds the main window, pre-fills it with initial and blocks until the
// window is closed.
func (app *AgeApp) Run(initial engine.DateInput) {
	app.SetupI18n()

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w
	w.SetContent(app.BuildContent())
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	app.Prefill(initial)

	slog.Info(config.MsgAppStarting, config.LogKeyComponent, config.CompUI)
	w.ShowAndRun()
}

// BuildContent creates the form widgets and wires them to the state
// transitions.
func (app *AgeApp) BuildContent() fyne.CanvasObject {
	inputs := []struct {
		field     engine.Field
		titleKey  string
		hintKey   string
		maxLength int
	}{
		{engine.FieldDay, config.TKeyLblDay, config.TKeyHintDay, config.DayMaxDigits},
		{engine.FieldMonth, config.TKeyLblMonth, config.TKeyHintMonth, config.MonthMaxDigits},
		{engine.FieldYear, config.TKeyLblYear, config.TKeyHintYear, config.YearMaxDigits},
	}

	columns := make([]fyne.CanvasObject, 0, len(inputs))
	for _, in := range inputs {
		f := in.field
		view := &fieldView{
			title:     widget.NewLabel(app.GetMsg(in.titleKey)),
			entry:     NewNumericalEntry(),
			errorText: widget.NewLabel(""),
		}
		view.title.TextStyle = fyne.TextStyle{Bold: true}
		view.entry.MaxLength = in.maxLength
		view.entry.PlaceHolder = app.GetMsg(in.hintKey)
		view.entry.OnChanged = func(text string) { app.onFieldChanged(f, text) }
		view.entry.OnSubmitted = func(string) { app.Submit() }
		view.errorText.TextStyle = fyne.TextStyle{Italic: true}
		view.errorText.Importance = widget.DangerImportance
		view.errorText.Wrapping = fyne.TextWrapWord
		view.errorText.Hide()

		app.fields[f] = view
		columns = append(columns, container.NewVBox(view.title, view.entry, view.errorText))
	}

	app.SubmitButton = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSubmit), theme.MoveDownIcon(), app.Submit)
	app.SubmitButton.Importance = widget.HighImportance

	app.years = newCounterView(config.TKeyUnitYears, config.FallbackUnitYears)
	app.months = newCounterView(config.TKeyUnitMonths, config.FallbackUnitMonths)
	app.days = newCounterView(config.TKeyUnitDays, config.FallbackUnitDays)

	footer := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Italic: true}

	app.renderResult()

	return container.NewPadded(container.NewVBox(
		container.NewGridWithColumns(config.LayoutColumnsFields, columns...),
		container.NewBorder(nil, nil, nil, app.SubmitButton, widget.NewSeparator()),
		app.years.row(),
		app.months.row(),
		app.days.row(),
		footer,
	))
}

// Prefill writes values into the entries as if they had been typed.
func (app *AgeApp) Prefill(in engine.DateInput) {
	for _, f := range engine.Fields {
		v := in.Get(f)
		if v == "" {
			continue
		}
		app.fields[f].entry.SetText(v)
		// SetText does not always fire OnChanged; Edit is idempotent.
		app.State = app.State.Edit(f, v)
	}
}

// Submit runs the validate-then-compute pipeline and refreshes the view.
func (app *AgeApp) Submit() {
	app.State = app.State.Submit(app.Clock.Now())
	for _, f := range engine.Fields {
		app.renderField(f)
	}
	app.renderResult()
}

// onFieldChanged records a keystroke and clears that field's error.
func (app *AgeApp) onFieldChanged(f engine.Field, text string) {
	app.State = app.State.Edit(f, text)
	slog.Debug(config.MsgFieldEdited,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyField, f.String(),
	)
	app.renderField(f)
}

func (app *AgeApp) renderField(f engine.Field) {
	view, ok := app.fields[f]
	if !ok {
		return
	}

	fe := app.State.Errors.Get(f)
	if !fe.IsError {
		view.title.Importance = widget.MediumImportance
		view.title.Refresh()
		view.errorText.SetText("")
		view.errorText.Hide()
		return
	}

	view.title.Importance = widget.DangerImportance
	view.title.Refresh()
	view.errorText.SetText(app.ErrorMessage(fe))
	view.errorText.Show()
}

// ErrorMessage localizes a field error, falling back to its canonical text.
func (app *AgeApp) ErrorMessage(fe engine.FieldError) string {
	if !fe.IsError {
		return ""
	}
	return app.localizeOr(&i18n.LocalizeConfig{MessageID: config.TKeyErrPrefix + fe.Code}, fe.Message)
}

func (app *AgeApp) renderResult() {
	display := app.State.Display()
	app.renderCounter(app.years, display.Years, app.State.Result.Years)
	app.renderCounter(app.months, display.Months, app.State.Result.Months)
	app.renderCounter(app.days, display.Days, app.State.Result.Days)
}

func (app *AgeApp) renderCounter(c *counterView, text string, count int) {
	if c == nil {
		return
	}
	c.value.SetText(text)
	c.unit.SetText(app.GetPlural(c.unitKey, count, c.fallback))
}

func newCounterView(unitKey, fallback string) *counterView {
	c := &counterView{
		value:    widget.NewLabel(config.ResultPlaceholder),
		unit:     widget.NewLabel(fallback),
		unitKey:  unitKey,
		fallback: fallback,
	}
	c.value.TextStyle = fyne.TextStyle{Bold: true, Italic: true}
	c.value.Importance = widget.HighImportance
	c.unit.TextStyle = fyne.TextStyle{Bold: true, Italic: true}
	return c
}

func (c *counterView) row() fyne.CanvasObject {
	return container.NewHBox(c.value, c.unit)
}
