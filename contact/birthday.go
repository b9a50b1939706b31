package contact

import "time"

// UpcomingWindowDays is the number of days, today included, that the
// upcoming birthday query looks ahead.
const UpcomingWindowDays = 7

// UpcomingBirthday is a contact to congratulate and the weekday to do it on.
type UpcomingBirthday struct {
	Name string
	Date time.Time
}

// Clock abstracts time.Now() so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// UpcomingBirthdays returns the contacts whose next birthday, moved off the
// weekend onto Monday, falls within UpcomingWindowDays of today.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	return upcomingBirthdays(b.Records(), today)
}

func upcomingBirthdays(records []*Record, today time.Time) []UpcomingBirthday {
	start := dateOf(today)
	var result []UpcomingBirthday
	for _, r := range records {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}
		date := congratulationDate(nextOccurrence(bday.Date(), start))
		days := int(date.Sub(start).Hours() / 24)
		if days < 0 || days >= UpcomingWindowDays {
			continue
		}
		result = append(result, UpcomingBirthday{
			Name: r.Name().String(),
			Date: date,
		})
	}
	return result
}

// nextOccurrence projects the birthday's month and day onto today's year, or
// the following one when it has already passed. time.Date turns Feb 29 into
// Mar 1 in non-leap years.
func nextOccurrence(birthday, today time.Time) time.Time {
	candidate := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

func congratulationDate(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}

// dateOf drops the clock time and zone, keeping the calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
