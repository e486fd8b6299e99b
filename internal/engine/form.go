package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// Field identifies one of the three inputs of the form.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldDay, FieldMonth, FieldYear}

func (f Field) String() string {
	switch f {
	case FieldDay:
		return config.FieldNameDay
	case FieldMonth:
		return config.FieldNameMonth
	case FieldYear:
		return config.FieldNameYear
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// DateInput holds the raw text of the three inputs, exactly as typed.
type DateInput struct {
	Day   string
	Month string
	Year  string
}

// Get returns the raw text of f.
func (in DateInput) Get(f Field) string {
	switch f {
	case FieldDay:
		return in.Day
	case FieldMonth:
		return in.Month
	default:
		return in.Year
	}
}

func (in *DateInput) set(f Field, value string) {
	switch f {
	case FieldDay:
		in.Day = value
	case FieldMonth:
		in.Month = value
	case FieldYear:
		in.Year = value
	}
}

// FieldError is the error state of a single input. The zero value means
// the field is fine.
type FieldError struct {
	IsError bool
	// Code is the stable identifier of the failed check (config.Code*).
	Code string
	// Message is the canonical English text for Code.
	Message string
}

var messages = map[string]string{
	config.CodeRequired:     config.MsgFieldRequired,
	config.CodeInvalidDay:   config.MsgInvalidDay,
	config.CodeInvalidMonth: config.MsgInvalidMonth,
	config.CodeFutureYear:   config.MsgFutureYear,
	config.CodeInvalidYear:  config.MsgInvalidYear,
	config.CodeInvalidDate:  config.MsgInvalidDate,
}

func newFieldError(code string) FieldError {
	return FieldError{IsError: true, Code: code, Message: messages[code]}
}

// FieldErrors is the error state of the whole form.
type FieldErrors struct {
	Day   FieldError
	Month FieldError
	Year  FieldError
}

// Get returns the error state of f.
func (e FieldErrors) Get(f Field) FieldError {
	switch f {
	case FieldDay:
		return e.Day
	case FieldMonth:
		return e.Month
	default:
		return e.Year
	}
}

func (e *FieldErrors) reset(f Field) {
	switch f {
	case FieldDay:
		e.Day = FieldError{}
	case FieldMonth:
		e.Month = FieldError{}
	case FieldYear:
		e.Year = FieldError{}
	}
}

// Any reports whether at least one field is in error.
func (e FieldErrors) Any() bool {
	return e.Day.IsError || e.Month.IsError || e.Year.IsError
}

// LogValue renders only the failing fields.
func (e FieldErrors) LogValue() slog.Value {
	var attrs []slog.Attr
	for _, f := range Fields {
		if fe := e.Get(f); fe.IsError {
			attrs = append(attrs, slog.String(f.String(), fe.Code))
		}
	}
	return slog.GroupValue(attrs...)
}

// FormState is the complete state of the widget. It is a value: transitions
// return a new state and never touch the receiver.
type FormState struct {
	Input  DateInput
	Errors FieldErrors
	Result AgeResult

	// Birth is the date behind Result. Only meaningful when Computed is true.
	Birth    Date
	Computed bool
}

// NewFormState returns the initial state: empty inputs, no errors and a
// zeroed result.
func NewFormState() FormState {
	return FormState{}
}

// Edit records a new raw value for f and clears f's error. The other
// fields and the result are left untouched.
func (s FormState) Edit(f Field, value string) FormState {
	s.Input.set(f, value)
	s.Errors.reset(f)
	return s
}

// Submit runs the validate-then-compute pipeline. The result is zeroed
// first; it is only filled when the whole form is valid.
func (s FormState) Submit(now time.Time) FormState {
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	log.Debug(config.MsgSubmit)

	s.Result = AgeResult{}
	s.Birth = Date{}
	s.Computed = false

	errs, birth, ok := Validate(s.Input, now)
	s.Errors = errs
	if !ok {
		log.Info(config.MsgValidationErr, config.LogKeyErrors, errs)
		return s
	}

	s.Result = Calculate(birth, now)
	s.Birth = birth
	s.Computed = true

	log.Info(config.MsgAgeComputed,
		slog.Group(config.LogKeyResult,
			slog.Int(config.LogKeyYears, s.Result.Years),
			slog.Int(config.LogKeyMonths, s.Result.Months),
			slog.Int(config.LogKeyDays, s.Result.Days),
		),
	)
	return s
}

// ResultDisplay holds the text shown by the three counters.
type ResultDisplay struct {
	Years  string
	Months string
	Days   string
}

// Display formats the result for the counters. A counter that is zero shows
// the placeholder instead of a number.
func (s FormState) Display() ResultDisplay {
	return ResultDisplay{
		Years:  formatCounter(s.Result.Years),
		Months: formatCounter(s.Result.Months),
		Days:   formatCounter(s.Result.Days),
	}
}

func formatCounter(v int) string {
	if v > 0 {
		return strconv.Itoa(v)
	}
	return config.ResultPlaceholder
}
