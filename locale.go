package datefmt

import "time"

// Locale holds names used by textual pattern fields.
//
// Zero value fields are filled with English names.
type Locale struct {
	// Months are full month names, January first.
	Months [12]string

	// MonthsAbbrev are abbreviated month names, Jan first.
	MonthsAbbrev [12]string

	// Weekdays are full day names, Sunday first.
	Weekdays [7]string

	// WeekdaysAbbrev are abbreviated day names, Sun first.
	WeekdaysAbbrev [7]string

	// AM and PM are day period markers.
	AM, PM string
}

// EnglishLocale returns names of the default locale.
func EnglishLocale() Locale {
	l := Locale{}
	l.applyDefaults()

	return l
}

func (l *Locale) applyDefaults() {
	for i := 0; i < 12; i++ {
		m := time.Month(i + 1)

		if l.Months[i] == "" {
			l.Months[i] = m.String()
		}

		if l.MonthsAbbrev[i] == "" {
			l.MonthsAbbrev[i] = m.String()[:3]
		}
	}

	for i := 0; i < 7; i++ {
		d := time.Weekday(i)

		if l.Weekdays[i] == "" {
			l.Weekdays[i] = d.String()
		}

		if l.WeekdaysAbbrev[i] == "" {
			l.WeekdaysAbbrev[i] = d.String()[:3]
		}
	}

	if l.AM == "" {
		l.AM = "AM"
	}

	if l.PM == "" {
		l.PM = "PM"
	}
}
