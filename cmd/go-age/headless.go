package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// headlessOptions carries the flags that run the form without a window.
type headlessOptions struct {
	Input     engine.DateInput
	VCardPath string
	ICS       bool
}

func (o headlessOptions) requested() bool {
	return o.hasDate() || o.VCardPath != ""
}

func (o headlessOptions) hasDate() bool {
	return o.Input != (engine.DateInput{})
}

// runHeadless fills the form from the flags (or a vCard file), submits it
// once and prints either the field errors or the three counters to w.
// A form with field errors yields config.ExitCodeInvalid and no error.
func runHeadless(ctx context.Context, w io.Writer, clock engine.Clock, opts headlessOptions) (int, error) {
	if opts.VCardPath != "" && opts.hasDate() {
		return config.ExitCodeError, errors.New(config.ErrFlagsExclusive)
	}

	input := opts.Input
	name := config.FallbackName

	if opts.VCardPath != "" {
		f, err := os.Open(opts.VCardPath)
		if err != nil {
			return config.ExitCodeError, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
		}
		defer f.Close()

		input, name, err = engine.ImportVCard(ctx, f)
		if err != nil {
			return config.ExitCodeError, err
		}
		if _, err := fmt.Fprintf(w, config.MsgContactOutput, name); err != nil {
			return config.ExitCodeError, fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
		}
	}

	state := engine.NewFormState()
	for _, f := range engine.Fields {
		state = state.Edit(f, input.Get(f))
	}
	now := clock.Now()
	state = state.Submit(now)

	if state.Errors.Any() {
		for _, f := range engine.Fields {
			fe := state.Errors.Get(f)
			if !fe.IsError {
				continue
			}
			if _, err := fmt.Fprintf(w, config.MsgFieldOutput, f, fe.Message); err != nil {
				return config.ExitCodeError, fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
			}
		}
		return config.ExitCodeInvalid, nil
	}

	d := state.Display()
	if _, err := fmt.Fprintf(w, config.MsgResultOutput, d.Years, d.Months, d.Days); err != nil {
		return config.ExitCodeError, fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}

	if !opts.ICS {
		return config.ExitCodeSuccess, nil
	}
	if !state.Computed {
		return config.ExitCodeError, errors.New(config.ErrNoBirthDate)
	}

	data, err := engine.BirthdayCalendar(name, state.Birth, now)
	if err != nil {
		return config.ExitCodeError, err
	}
	if _, err := w.Write(data); err != nil {
		return config.ExitCodeError, fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return config.ExitCodeSuccess, nil
}
