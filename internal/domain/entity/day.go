package entity

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DayTimeZone is the fixed time zone every day key is derived in. The
// rotation has always been anchored to US Pacific standard time and must not
// follow the server's local zone or DST, otherwise profiles, auctions and
// participation records created around a DST switch would disagree on which
// calendar day they belong to.
var DayTimeZone = time.FixedZone("PST", -8*60*60)

// DayKey identifies one rotation cycle. It binds a profile, an auction and
// their sub-records together, formatted as "M-D-YYYY" without zero padding
// (e.g. "2-24-2020").
type DayKey string

// DayKeyFromTime derives the day key for the given instant.
func DayKeyFromTime(t time.Time) DayKey {
	local := t.In(DayTimeZone)

	return DayKey(fmt.Sprintf("%d-%d-%d", int(local.Month()), local.Day(), local.Year()))
}

// ParseDayKey validates a day key string and returns it as a DayKey.
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.ParseInLocation("1-2-2006", s, DayTimeZone)
	if err != nil {
		return "", errors.Wrapf(err, "invalid day key %q", s)
	}

	// Round-trip to reject zero-padded or otherwise non-canonical spellings,
	// which would break equality joins across entities.
	canonical := DayKeyFromTime(t)
	if string(canonical) != s {
		return "", errors.Errorf("non-canonical day key %q (want %q)", s, canonical)
	}

	return canonical, nil
}

func (d DayKey) String() string {
	return string(d)
}

// Time returns midnight of the day in the fixed zone.
func (d DayKey) Time() (time.Time, error) {
	t, err := time.ParseInLocation("1-2-2006", string(d), DayTimeZone)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "corrupt day key %q", d)
	}

	return t, nil
}

// Next returns the following calendar day. The receiver must be a valid day
// key; an invalid key returns an error instead of a guessed neighbour.
func (d DayKey) Next() (DayKey, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}

	return DayKeyFromTime(t.AddDate(0, 0, 1)), nil
}

// Prev returns the preceding calendar day.
func (d DayKey) Prev() (DayKey, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}

	return DayKeyFromTime(t.AddDate(0, 0, -1)), nil
}
