package chat

import (
	"regexp"
	"strings"
)

type Intent string

const (
	IntentGreeting          Intent = "greeting"
	IntentThanks            Intent = "thanks"
	IntentViewBookings      Intent = "view_bookings"
	IntentCheckAvailability Intent = "check_availability"
	IntentCreateBooking     Intent = "create_booking"
	IntentHelp              Intent = "help"
	IntentFallback          Intent = "fallback"
)

var (
	thanksRe   = regexp.MustCompile(`^(thanks|thank you|thankyou|thx)`)
	greetingRe = regexp.MustCompile(`^(hi|hello|hey|greetings)`)
)

type intentRule struct {
	intent Intent
	match  func(msg string) bool
}

// intentRules is evaluated top to bottom on the lowercased, trimmed message.
// Order is the tie-break: "is the hall available to book" is an
// availability question because availability is tested before booking.
var intentRules = []intentRule{
	{IntentThanks, thanksRe.MatchString},
	{IntentViewBookings, func(msg string) bool {
		return containsAny(msg, []string{"my bookings", "show my bookings", "view bookings", "are you booked"}) ||
			(strings.Contains(msg, "show") && strings.Contains(msg, "booking"))
	}},
	{IntentCheckAvailability, keywords("check availability", "available", "is available", "availability", "check avail")},
	{IntentCreateBooking, keywords("book", "booking", "reserve", "schedule")},
	{IntentGreeting, greetingRe.MatchString},
	{IntentHelp, keywords("what can you do", "help", "what help")},
}

// Classify returns the first intent whose rule matches message. Blank
// messages are greetings; anything unmatched falls back.
func Classify(message string) Intent {
	msg := normalize(message)
	if msg == "" {
		return IntentGreeting
	}

	for _, rule := range intentRules {
		if rule.match(msg) {
			return rule.intent
		}
	}

	return IntentFallback
}

func keywords(phrases ...string) func(string) bool {
	return func(msg string) bool {
		return containsAny(msg, phrases)
	}
}

func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}
