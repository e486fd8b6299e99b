package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-age/internal/config"
)

// BirthdayCalendar renders an iCalendar document holding all-day events for
// the next config.ICalOccurrences birthdays of a person born on birth,
// starting with the next one (today included). Each summary carries the age
// reached on that day. A 29 February birthday falls on 1 March in common years.
func BirthdayCalendar(name string, birth Date, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	hash := sha256.Sum256([]byte(name))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	first := nextBirthdayYear(birth, Today(now))
	for i := 0; i < config.ICalOccurrences; i++ {
		year := first + i
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, year, int(birth.Month), birth.Day, uidBase, config.ICalDomain))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, name, year-birth.Year))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(occurrence(birth, year))
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompICal,
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// occurrence is the birthday in year. time.Date normalizes 29 February to
// 1 March when year is not a leap year.
func occurrence(birth Date, year int) time.Time {
	return time.Date(year, birth.Month, birth.Day, 0, 0, 0, 0, time.UTC)
}

// nextBirthdayYear returns the year of the first birthday on or after today.
func nextBirthdayYear(birth Date, today Date) int {
	year := today.Year
	if occurrence(birth, year).Before(occurrence(today, year)) {
		year++
	}
	return year
}
