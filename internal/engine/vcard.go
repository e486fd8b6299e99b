package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-age/internal/config"
)

// ImportVCard reads a vCard stream and returns the date of birth of the
// first contact that has a complete one, formatted as the form expects
// (DD, MM, YYYY), along with the contact's display name.
// Contacts without a BDAY, or with a BDAY lacking the year, are skipped.
func ImportVCard(ctx context.Context, r io.Reader) (DateInput, string, error) {
	log := slog.With(config.LogKeyComponent, config.CompVCard)
	decoder := vcard.NewDecoder(r)

	for {
		if err := ctx.Err(); err != nil {
			return DateInput{}, "", err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return DateInput{}, "", fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseDate(bday.Value)
		if err != nil || !yearKnown {
			log.Debug(config.MsgSkippedDate, config.LogKeyValue, bday.Value)
			continue
		}

		name := contactName(card)
		log.Info(config.MsgContactFound,
			config.LogKeyName, name,
			config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash),
		)

		return DateInput{
			Day:   fmt.Sprintf(config.FormatTwoDigit, birthDate.Day()),
			Month: fmt.Sprintf(config.FormatTwoDigit, int(birthDate.Month())),
			Year:  fmt.Sprintf(config.FormatFourDigit, birthDate.Year()),
		}, name, nil
	}

	return DateInput{}, "", errors.New(config.ErrVCardNoBday)
}

// contactName picks FN, then the structured N, then a fallback.
func contactName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Name(); n != nil {
		if full := strings.TrimSpace(n.GivenName + " " + n.FamilyName); full != "" {
			return full
		}
	}
	return config.FallbackName
}

// parseDate handles the vCard date formats. yearKnown is false for the
// truncated --MM-DD forms.
func parseDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
