package chat

import (
	"hallBooker/internal/catalog"
	"time"
)

// Vocabulary is the fixed phrase tables the assistant understands. Rules in
// every list are tried in order and the first match wins.
type Vocabulary struct {
	catalog.Catalog

	HallAliases    []HallAlias
	TimePhrases    []TimePhrase
	LiteralDates   []LiteralDate
	Purposes       []PurposeKeyword
	DefaultPurpose string
}

// HallAlias maps shortened hall names to a catalog hall.
type HallAlias struct {
	Phrases []string
	Hall    string
}

type TimePhrase struct {
	Phrases []string
	Slots   []string
}

type LiteralDate struct {
	Phrases []string
	Year    int
	Month   time.Month
	Day     int
}

type PurposeKeyword struct {
	Keyword string
	Label   string
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Catalog: catalog.Default(),
		HallAliases: []HallAlias{
			{Phrases: []string{"main auditorium", "main hall"}, Hall: "Main Auditorium Hall"},
			{Phrases: []string{"vedhanayagam"}, Hall: "Vedhanayagam Hall"},
			{Phrases: []string{"ece seminar"}, Hall: "ECE Seminar Hall"},
			{Phrases: []string{"sf seminar"}, Hall: "SF Seminar Hall"},
		},
		TimePhrases: []TimePhrase{
			{
				Phrases: []string{"10.00", "10:00", "10 am", "10:00am"},
				Slots:   []string{"10:00 - 10:30", "10:30 - 11:00"},
			},
			{
				Phrases: []string{"11.30", "11:30", "11:30am"},
				Slots:   []string{"11:30 - 12:00"},
			},
		},
		LiteralDates: []LiteralDate{
			{
				Phrases: []string{"december 11", "dec 11", "12/11", "12-11"},
				Year:    2025,
				Month:   time.December,
				Day:     11,
			},
		},
		Purposes: []PurposeKeyword{
			{Keyword: "training", Label: "training"},
			{Keyword: "meeting", Label: "meeting"},
			{Keyword: "seminar", Label: "seminar"},
			{Keyword: "event", Label: "event"},
			{Keyword: "inauguration", Label: "inauguration"},
			{Keyword: "gd", Label: "Group Discussion"},
			{Keyword: "lunch", Label: "Lunch Meeting"},
			{Keyword: "workshop", Label: "Workshop"},
		},
		DefaultPurpose: "General Purpose",
	}
}
