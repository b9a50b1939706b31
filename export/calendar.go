package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"contactbook/contact"
)

const (
	icalVersion = "2.0"
	icalProdID  = "-//contactbook//assistant bot//EN"
	icalScale   = "GREGORIAN"
)

// ErrEmptyCalendar is returned when there are no birthdays to put in a
// calendar. An iCalendar object needs at least one component.
var ErrEmptyCalendar = errors.New("export: no upcoming birthdays")

// Calendar writes an iCalendar with one all-day event per upcoming birthday.
// now is stamped on every event.
func Calendar(w io.Writer, upcoming []contact.UpcomingBirthday, now time.Time) error {
	if len(upcoming) == 0 {
		return ErrEmptyCalendar
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProdID)
	cal.Props.SetText(ical.PropCalendarScale, icalScale)

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(now.UTC())

	for _, u := range upcoming {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uidFor(u.Name, u.Date.Format(contact.DateLayout)))
		event.Props.SetText(ical.PropSummary, fmt.Sprintf("Congratulate %s", u.Name))
		event.Props.Set(stamp)

		start := ical.NewProp(ical.PropDateTimeStart)
		start.SetDate(u.Date)
		event.Props.Set(start)

		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("export: encode calendar: %w", err)
	}
	return nil
}
