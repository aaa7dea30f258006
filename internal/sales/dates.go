package sales

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ErrBadDate is returned for date strings ParseDate cannot read.
var ErrBadDate = errors.New("sales: bad date")

var datePattern = regexp.MustCompile(`^\s*(\d{1,4})(\D+)(\d{1,2})(\D+)(\d{1,4})\s*$`)

// ParseDate reads year-first ("2024/05/01") and day-first ("01.05.2024")
// dates with any non-digit delimiter, used consistently. Two-digit years are
// placed in the current century.
func ParseDate(s string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return time.Time{}, errors.Wrapf(ErrBadDate, "%q", s)
	}

	var ys, ms, ds string
	if len(m[1]) >= 3 {
		ys, ms, ds = m[1], m[3], m[5]
	} else {
		ds, ms, ys = m[1], m[3], m[5]
	}
	if len(ys) != 2 && len(ys) != 4 {
		return time.Time{}, errors.Wrapf(ErrBadDate, "%q: year %q", s, ys)
	}
	if len(ds) > 2 {
		return time.Time{}, errors.Wrapf(ErrBadDate, "%q: day %q", s, ds)
	}

	year, _ := strconv.Atoi(ys)
	month, _ := strconv.Atoi(ms)
	day, _ := strconv.Atoi(ds)
	if len(ys) == 2 {
		year += time.Now().Year() / 100 * 100
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, errors.Wrapf(ErrBadDate, "%q: no such day", s)
	}
	return t, nil
}

// MonthShort returns the three-letter month name.
func MonthShort(m time.Month) string { return m.String()[:3] }

// DayMonth formats t as "1 May".
func DayMonth(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), MonthShort(t.Month()))
}
