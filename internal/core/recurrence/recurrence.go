// Package recurrence evaluates the recurrence rule grammar: daily,
// weekdays, weekly[:days], monthly[:day], and recur:<n><unit> interval
// rules. All evaluation is pure; "today" is always an explicit
// argument.
package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/colonyops/paratrooper/internal/core/task"
)

// Kind classifies a parsed rule.
type Kind int

const (
	KindDaily Kind = iota
	KindWeekdays
	KindWeekly
	KindMonthly
	KindInterval
)

// Rule is a parsed recurrence rule.
type Rule struct {
	Kind Kind
	// Weekdays holds the firing days for weekly rules.
	Weekdays map[time.Weekday]bool
	// MonthDay is the firing day-of-month for monthly rules.
	MonthDay int
	// Days is the summed interval length for recur: rules.
	Days int
}

var dayNames = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Parse parses a rule string without surrounding parentheses.
func Parse(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "daily":
		return Rule{Kind: KindDaily}, nil
	case s == "weekdays":
		return Rule{Kind: KindWeekdays}, nil
	case s == "weekly":
		return Rule{Kind: KindWeekly, Weekdays: map[time.Weekday]bool{time.Sunday: true}}, nil
	case strings.HasPrefix(s, "weekly:"):
		return parseWeekly(strings.TrimPrefix(s, "weekly:"))
	case s == "monthly":
		return Rule{Kind: KindMonthly, MonthDay: 1}, nil
	case strings.HasPrefix(s, "monthly:"):
		return parseMonthly(strings.TrimPrefix(s, "monthly:"))
	case strings.HasPrefix(s, "recur:"):
		return parseInterval(strings.TrimPrefix(s, "recur:"))
	}
	return Rule{}, fmt.Errorf("unknown recurrence rule %q", s)
}

func parseWeekly(spec string) (Rule, error) {
	days := map[time.Weekday]bool{}
	for _, name := range strings.Split(spec, ",") {
		wd, ok := dayNames[strings.TrimSpace(name)]
		if !ok {
			return Rule{}, fmt.Errorf("unknown weekday %q in weekly rule", strings.TrimSpace(name))
		}
		days[wd] = true
	}
	if len(days) == 0 {
		return Rule{}, fmt.Errorf("weekly rule names no days")
	}
	return Rule{Kind: KindWeekly, Weekdays: days}, nil
}

func parseMonthly(spec string) (Rule, error) {
	spec = strings.TrimSpace(spec)
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(spec, suffix) {
			spec = strings.TrimSuffix(spec, suffix)
			break
		}
	}
	day, err := strconv.Atoi(spec)
	if err != nil || day < 1 || day > 31 {
		return Rule{}, fmt.Errorf("invalid day-of-month %q in monthly rule", spec)
	}
	return Rule{Kind: KindMonthly, MonthDay: day}, nil
}

func parseInterval(spec string) (Rule, error) {
	total := 0
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if len(part) < 2 {
			return Rule{}, fmt.Errorf("invalid interval %q in recur rule", part)
		}
		n, err := strconv.Atoi(part[:len(part)-1])
		if err != nil || n < 1 {
			return Rule{}, fmt.Errorf("invalid interval %q in recur rule", part)
		}
		switch part[len(part)-1] {
		case 'd':
			total += n
		case 'w':
			total += n * 7
		case 'm':
			total += n * 30
		case 'y':
			total += n * 365
		default:
			return Rule{}, fmt.Errorf("unknown interval unit in %q", part)
		}
	}
	return Rule{Kind: KindInterval, Days: total}, nil
}

// IsDue reports whether a task with the given rule and last-occurrence
// date is due today. Unparseable rules are never due.
func IsDue(rule string, last, today task.Date) bool {
	r, err := Parse(rule)
	if err != nil {
		return false
	}
	return r.DueOn(last, today)
}

// DueOn reports whether the rule fires on the given day.
func (r Rule) DueOn(last, today task.Date) bool {
	switch r.Kind {
	case KindDaily:
		return true
	case KindWeekdays:
		wd := today.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case KindWeekly:
		return r.Weekdays[today.Weekday()]
	case KindMonthly:
		return today.Day == r.MonthDay
	case KindInterval:
		// A task that has never occurred is due immediately.
		if last.IsZero() {
			return true
		}
		return today.DaysSince(last) >= r.Days
	}
	return false
}

// Next computes the next expected occurrence after the last one. It
// returns false for unparseable rules or a missing last date. The
// result drives staleness display, not scheduling.
func Next(rule string, last task.Date) (task.Date, bool) {
	r, err := Parse(rule)
	if err != nil || last.IsZero() {
		return task.Date{}, false
	}
	return r.NextAfter(last), true
}

// NextAfter returns the first date strictly after last on which the
// rule fires.
func (r Rule) NextAfter(last task.Date) task.Date {
	switch r.Kind {
	case KindDaily:
		return last.AddDays(1)

	case KindWeekdays:
		d := last.AddDays(1)
		for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			d = d.AddDays(1)
		}
		return d

	case KindWeekly:
		d := last.AddDays(1)
		for !r.Weekdays[d.Weekday()] {
			d = d.AddDays(1)
		}
		return d

	case KindMonthly:
		year, month := last.Year, last.Month+1
		if month > time.December {
			year, month = year+1, time.January
		}
		return clampToMonth(year, month, r.MonthDay)

	case KindInterval:
		return last.AddDays(r.Days)
	}
	return task.Date{}
}

// clampToMonth resolves a target day that overflows the month (e.g.
// monthly:31 in a 30-day month) to the month's last day.
func clampToMonth(year int, month time.Month, day int) task.Date {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return task.Date{Year: year, Month: month, Day: day}
}
