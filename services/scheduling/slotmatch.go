package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"frontdesk/models"
)

// clockTimeRE matches a clock time mention: an hour:minute pair with an
// optional meridiem, or a bare hour with an explicit meridiem.
var clockTimeRE = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b|\b(\d{1,2})\s*(am|pm)\b`)

// clockTime is one parsed time mention from an utterance.
type clockTime struct {
	hour        int
	minute      int
	hasMeridiem bool
}

// MatchSlot identifies which of the offered slots, if any, the utterance
// refers to. Each candidate slot is rendered into several canonical textual
// forms and tested against the utterance, from most to least specific; ties
// are broken by presentation order. Returns nil when nothing matches
// confidently.
func MatchSlot(utterance string, offered []models.Slot) *models.Slot {
	normalized := normalizeUtterance(utterance)
	if normalized == "" || len(offered) == 0 {
		return nil
	}
	padded := " " + normalized + " "

	// Day-specific phrases first: weekday+time, date+time, weekday+date.
	for i := range offered {
		for _, phrase := range dayPhrases(offered[i].Start) {
			if strings.Contains(padded, " "+phrase+" ") {
				return &offered[i]
			}
		}
	}

	// Time-alone phrases, e.g. "9am" or "9:00 am".
	for i := range offered {
		for _, phrase := range timePhrases(offered[i].Start) {
			if strings.Contains(padded, " "+phrase+" ") {
				return &offered[i]
			}
		}
	}

	times := parseClockTimes(normalized)

	// No time mentioned at all: a weekday name on its own is enough.
	if len(times) == 0 {
		for i := range offered {
			if strings.Contains(padded, " "+weekdayName(offered[i].Start)+" ") {
				return &offered[i]
			}
		}
		return nil
	}

	// A weekday name plus a time mention that lines up with the slot.
	for i := range offered {
		if !strings.Contains(padded, " "+weekdayName(offered[i].Start)+" ") {
			continue
		}
		if matchesAnyClockTime(offered[i].Start, times) {
			return &offered[i]
		}
	}

	// A very short utterance carrying only a time is assumed unambiguous.
	if len(strings.Fields(normalized)) <= 3 {
		for i := range offered {
			if matchesAnyClockTime(offered[i].Start, times) {
				return &offered[i]
			}
		}
	}

	return nil
}

func weekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// dayPhrases renders the slot into canonical day-bearing forms: weekday name
// with the time, calendar date with the time (with and without ordinal day
// suffix), and weekday with the date.
func dayPhrases(t time.Time) []string {
	weekday := weekdayName(t)
	dateForms := []string{
		fmt.Sprintf("%s %d", strings.ToLower(t.Month().String()), t.Day()),
		fmt.Sprintf("%s %s", strings.ToLower(t.Month().String()), ordinalDay(t.Day())),
	}
	times := append(timePhrases(t), bareTimePhrase(t))

	var phrases []string
	for _, tf := range times {
		phrases = append(phrases,
			weekday+" at "+tf,
			weekday+" "+tf,
		)
		for _, df := range dateForms {
			phrases = append(phrases,
				df+" at "+tf,
				df+" "+tf,
				weekday+" "+df+" at "+tf,
			)
		}
	}
	for _, df := range dateForms {
		phrases = append(phrases, weekday+" "+df)
	}
	return phrases
}

// timePhrases renders the slot's time of day with an explicit meridiem.
func timePhrases(t time.Time) []string {
	hour, meridiem := hour12(t)
	forms := []string{
		fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem),
		fmt.Sprintf("%d:%02d%s", hour, t.Minute(), meridiem),
	}
	if t.Minute() == 0 {
		forms = append(forms,
			fmt.Sprintf("%d %s", hour, meridiem),
			fmt.Sprintf("%d%s", hour, meridiem),
		)
	}
	return forms
}

// bareTimePhrase is the hour:minute rendering without a meridiem, safe to use
// only inside a day-bearing phrase.
func bareTimePhrase(t time.Time) string {
	hour, _ := hour12(t)
	return fmt.Sprintf("%d:%02d", hour, t.Minute())
}

func hour12(t time.Time) (int, string) {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "am"
	if t.Hour() >= 12 {
		meridiem = "pm"
	}
	return hour, meridiem
}

func ordinalDay(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix
}

func parseClockTimes(normalized string) []clockTime {
	var times []clockTime
	for _, m := range clockTimeRE.FindAllStringSubmatch(normalized, -1) {
		var ct clockTime
		if m[1] != "" {
			ct.hour, _ = strconv.Atoi(m[1])
			ct.minute, _ = strconv.Atoi(m[2])
			ct.hasMeridiem = m[3] != ""
			if m[3] == "pm" && ct.hour != 12 {
				ct.hour += 12
			} else if m[3] == "am" && ct.hour == 12 {
				ct.hour = 0
			}
		} else {
			ct.hour, _ = strconv.Atoi(m[4])
			ct.hasMeridiem = true
			if m[5] == "pm" && ct.hour != 12 {
				ct.hour += 12
			} else if m[5] == "am" && ct.hour == 12 {
				ct.hour = 0
			}
		}
		if ct.hour > 23 || ct.minute > 59 {
			continue
		}
		times = append(times, ct)
	}
	return times
}

// matchesAnyClockTime reports whether the slot's time of day lines up with
// one of the parsed mentions. Mentions without a meridiem match either half
// of the day.
func matchesAnyClockTime(slot time.Time, times []clockTime) bool {
	for _, ct := range times {
		if ct.minute != slot.Minute() {
			continue
		}
		if ct.hasMeridiem {
			if ct.hour == slot.Hour() {
				return true
			}
			continue
		}
		if ct.hour == slot.Hour() || (ct.hour+12)%24 == slot.Hour() {
			return true
		}
	}
	return false
}
