package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupTestApp initializes a headless Fyne app with the form built and the
// clock pinned to 18 October 2026.
func setupTestApp(t *testing.T) *AgeApp {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	app := NewAgeApp(a)
	app.Clock = MockClock{CurrentTime: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}

	// Manually load I18n as Run() is skipped
	app.SetupI18n()

	w := test.NewWindow(app.BuildContent())
	t.Cleanup(w.Close)
	app.Window = w

	return app
}

// typeDate fills the three entries the way a user would.
func typeDate(app *AgeApp, day, month, year string) {
	test.Type(app.fields[engine.FieldDay].entry, day)
	test.Type(app.fields[engine.FieldMonth].entry, month)
	test.Type(app.fields[engine.FieldYear].entry, year)
}

func counters(app *AgeApp) []string {
	return []string{app.years.value.Text, app.months.value.Text, app.days.value.Text}
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Labels(t *testing.T) {
	app := setupTestApp(t)

	assert.Equal(t, "DAY", app.fields[engine.FieldDay].title.Text)
	assert.Equal(t, "MONTH", app.fields[engine.FieldMonth].title.Text)
	assert.Equal(t, "YEAR", app.fields[engine.FieldYear].title.Text)
	assert.Equal(t, "YYYY", app.fields[engine.FieldYear].entry.PlaceHolder)
	assert.Equal(t, "Calculate", app.SubmitButton.Text)
}

func TestLocalization_Fallback(t *testing.T) {
	app := NewAgeApp(test.NewApp())

	// No localizer loaded: keys and canonical messages are returned as-is.
	assert.Equal(t, config.TKeyLblDay, app.GetMsg(config.TKeyLblDay))
	assert.Equal(t, config.FallbackUnitDays, app.GetPlural(config.TKeyUnitDays, 3, config.FallbackUnitDays))

	fe := engine.FieldError{IsError: true, Code: config.CodeRequired, Message: config.MsgFieldRequired}
	assert.Equal(t, config.MsgFieldRequired, app.ErrorMessage(fe))
}

func TestLocalization_PluralUnits(t *testing.T) {
	app := setupTestApp(t)

	assert.Equal(t, "year", app.GetPlural(config.TKeyUnitYears, 1, config.FallbackUnitYears))
	assert.Equal(t, "years", app.GetPlural(config.TKeyUnitYears, 2, config.FallbackUnitYears))
	assert.Equal(t, "days", app.GetPlural(config.TKeyUnitDays, 0, config.FallbackUnitDays))
}

func TestErrorMessage_AllCodes(t *testing.T) {
	app := setupTestApp(t)

	expected := map[string]string{
		config.CodeRequired:     config.MsgFieldRequired,
		config.CodeInvalidDay:   config.MsgInvalidDay,
		config.CodeInvalidMonth: config.MsgInvalidMonth,
		config.CodeFutureYear:   config.MsgFutureYear,
		config.CodeInvalidYear:  config.MsgInvalidYear,
		config.CodeInvalidDate:  config.MsgInvalidDate,
	}
	for code, msg := range expected {
		fe := engine.FieldError{IsError: true, Code: code, Message: "canonical"}
		assert.Equal(t, msg, app.ErrorMessage(fe), "code %s", code)
	}
	assert.Empty(t, app.ErrorMessage(engine.FieldError{}))
}

// -----------------------------------------------------------------------------
// Form Flow Tests
// -----------------------------------------------------------------------------

func TestInitialView(t *testing.T) {
	app := setupTestApp(t)

	assert.Equal(t, []string{"--", "--", "--"}, counters(app))
	for _, f := range engine.Fields {
		assert.False(t, app.fields[f].errorText.Visible(), "no error shown for %s before submit", f)
	}
}

func TestSubmit_EmptyForm(t *testing.T) {
	app := setupTestApp(t)

	test.Tap(app.SubmitButton)

	for _, f := range engine.Fields {
		view := app.fields[f]
		assert.True(t, view.errorText.Visible(), "%s should show its error", f)
		assert.Equal(t, "This field is required", view.errorText.Text)
	}
	assert.Equal(t, []string{"--", "--", "--"}, counters(app))
}

func TestSubmit_ValidDate(t *testing.T) {
	app := setupTestApp(t)

	typeDate(app, "15", "05", "1990")
	test.Tap(app.SubmitButton)

	assert.Equal(t, []string{"36", "5", "3"}, counters(app))
	assert.Equal(t, "years", app.years.unit.Text)
	assert.Equal(t, "months", app.months.unit.Text)
	assert.Equal(t, "days", app.days.unit.Text)
	assert.True(t, app.State.Computed)
}

func TestSubmit_SingularUnit(t *testing.T) {
	app := setupTestApp(t)

	// 17/09/2025 is exactly 1 year, 1 month and 1 day before the clock.
	typeDate(app, "17", "09", "2025")
	test.Tap(app.SubmitButton)

	assert.Equal(t, []string{"1", "1", "1"}, counters(app))
	assert.Equal(t, "year", app.years.unit.Text)
	assert.Equal(t, "month", app.months.unit.Text)
	assert.Equal(t, "day", app.days.unit.Text)
}

func TestSubmit_InvalidCalendarDate(t *testing.T) {
	app := setupTestApp(t)

	typeDate(app, "31", "02", "2000")
	test.Tap(app.SubmitButton)

	day := app.fields[engine.FieldDay]
	assert.True(t, day.errorText.Visible())
	assert.Equal(t, "Must be a valid date", day.errorText.Text)
	assert.False(t, app.fields[engine.FieldMonth].errorText.Visible())
	assert.Equal(t, []string{"--", "--", "--"}, counters(app))
}

func TestSubmit_ClearsPreviousResult(t *testing.T) {
	app := setupTestApp(t)

	typeDate(app, "15", "05", "1990")
	test.Tap(app.SubmitButton)
	require.Equal(t, "36", app.years.value.Text)

	// Turn the year into a future one and resubmit.
	yearEntry := app.fields[engine.FieldYear].entry
	yearEntry.SetText("")
	test.Type(yearEntry, "2099")
	test.Tap(app.SubmitButton)

	assert.Equal(t, "Must be in the past", app.fields[engine.FieldYear].errorText.Text)
	assert.Equal(t, []string{"--", "--", "--"}, counters(app))
}

func TestEdit_ClearsOnlyItsField(t *testing.T) {
	app := setupTestApp(t)

	test.Tap(app.SubmitButton)
	test.Type(app.fields[engine.FieldMonth].entry, "5")

	assert.False(t, app.fields[engine.FieldMonth].errorText.Visible())
	assert.True(t, app.fields[engine.FieldDay].errorText.Visible())
	assert.True(t, app.fields[engine.FieldYear].errorText.Visible())
	assert.Equal(t, "5", app.State.Input.Month)
}

func TestEntry_EnterSubmits(t *testing.T) {
	app := setupTestApp(t)

	typeDate(app, "15", "05", "1990")
	app.fields[engine.FieldYear].entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	assert.Equal(t, []string{"36", "5", "3"}, counters(app))
}

func TestPrefill(t *testing.T) {
	app := setupTestApp(t)

	app.Prefill(engine.DateInput{Day: "15", Month: "05", Year: "1990"})

	assert.Equal(t, "15", app.fields[engine.FieldDay].entry.Text)
	assert.Equal(t, engine.DateInput{Day: "15", Month: "05", Year: "1990"}, app.State.Input)

	app.Submit()
	assert.Equal(t, []string{"36", "5", "3"}, counters(app))
}
