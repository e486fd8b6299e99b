package ui

import (
	"unicode/utf8"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is a custom Entry widget that only accepts digits typed
// one at a time, up to MaxLength characters.
// It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry

	// MaxLength caps the number of characters accepted from the keyboard.
	// Zero means unlimited.
	MaxLength int
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9) and enforces MaxLength.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	// A selection is replaced by the typed rune, so the length does not grow.
	if e.MaxLength > 0 && utf8.RuneCountInString(e.Text) >= e.MaxLength && e.SelectedText() == "" {
		return
	}
	e.Entry.TypedRune(r)
	// Note: pasted text and SetText bypass this filter, the form validation
	// reports whatever ends up in the field.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
