package chat

import (
	"slices"
	"strings"
	"time"
)

const (
	phraseNextMonday = "next monday"
	phraseTomorrow   = "tomorrow"
	phraseToday      = "today"
	phraseMorning    = "morning"
	phraseAfternoon  = "afternoon"
)

var fullDayPhrases = []string{"full slots", "all day", "full day"}

// Resolver turns free text into halls, dates, slots and purposes using a
// Vocabulary. It never mutates the vocabulary and hands out copies of its
// slot lists.
type Resolver struct {
	vocab Vocabulary
}

func NewResolver(vocab Vocabulary) *Resolver {
	return &Resolver{vocab: vocab}
}

// Date resolves a date phrase relative to now. Dates are returned as
// midnight UTC of the calendar day observed in now's location.
func (r *Resolver) Date(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	today := civilDate(now)

	switch {
	case strings.Contains(lower, phraseNextMonday):
		days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return today.AddDate(0, 0, days), true
	case strings.Contains(lower, phraseTomorrow):
		return today.AddDate(0, 0, 1), true
	}

	for _, d := range r.vocab.LiteralDates {
		if containsAny(lower, d.Phrases) {
			return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC), true
		}
	}

	if strings.Contains(lower, phraseToday) {
		return today, true
	}

	return time.Time{}, false
}

// Slots resolves a time phrase to slot labels. An empty result means the
// phrase named no time the assistant knows.
func (r *Resolver) Slots(text string) []string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, fullDayPhrases):
		return r.vocab.AllSlots()
	case strings.Contains(lower, phraseMorning):
		return r.vocab.Morning()
	case strings.Contains(lower, phraseAfternoon):
		return r.vocab.Afternoon()
	}

	for _, p := range r.vocab.TimePhrases {
		if containsAny(lower, p.Phrases) {
			return slices.Clone(p.Slots)
		}
	}

	return nil
}

// Hall finds the hall named in text, trying full names before aliases. It
// also returns the lowercase phrase that matched so callers can cut it out.
func (r *Resolver) Hall(text string) (hall, phrase string) {
	lower := strings.ToLower(text)

	for _, h := range r.vocab.Halls {
		if name := strings.ToLower(h); strings.Contains(lower, name) {
			return h, name
		}
	}

	for _, alias := range r.vocab.HallAliases {
		for _, p := range alias.Phrases {
			if strings.Contains(lower, p) {
				return alias.Hall, p
			}
		}
	}

	return "", ""
}

// Purpose returns the label of the first purpose keyword found in text, or
// the default purpose for any other non-blank text.
func (r *Resolver) Purpose(text string) string {
	lower := strings.ToLower(text)

	for _, p := range r.vocab.Purposes {
		if strings.Contains(lower, p.Keyword) {
			return p.Label
		}
	}

	if strings.TrimSpace(lower) == "" {
		return ""
	}

	return r.vocab.DefaultPurpose
}

// Extraction is everything a booking message said, possibly partial.
type Extraction struct {
	Hall    string
	Date    time.Time
	HasDate bool
	Slots   []string
	Purpose string
}

type MissingInfo struct {
	Hall    bool `json:"hall"`
	Date    bool `json:"date"`
	Time    bool `json:"time"`
	Purpose bool `json:"purpose"`
}

func (m MissingInfo) Any() bool {
	return m.Hall || m.Date || m.Time || m.Purpose
}

func (e Extraction) Missing() MissingInfo {
	return MissingInfo{
		Hall:    e.Hall == "",
		Date:    !e.HasDate,
		Time:    len(e.Slots) == 0,
		Purpose: e.Purpose == "",
	}
}

// Extract runs every resolver over message. The hall phrase is removed
// before the purpose is resolved so "SF Seminar Hall" does not read as a
// seminar.
func (r *Resolver) Extract(message string, now time.Time) Extraction {
	var e Extraction

	hall, phrase := r.Hall(message)
	e.Hall = hall
	e.Date, e.HasDate = r.Date(message, now)
	e.Slots = r.Slots(message)

	rest := strings.ToLower(message)
	if phrase != "" {
		rest = strings.Replace(rest, phrase, " ", 1)
	}
	e.Purpose = r.Purpose(rest)

	return e
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
