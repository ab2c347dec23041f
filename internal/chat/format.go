package chat

import (
	"fmt"
	"hallBooker/internal/catalog"
	"hallBooker/internal/models"
	"slices"
	"strings"
	"time"
)

const longDateLayout = "Monday, January 2, 2006"

const (
	summaryFullDay   = "Full day (all slots)"
	summaryMorning   = "All morning slots"
	summaryAfternoon = "All afternoon slots"
)

// Formatter renders assistant replies. Its methods are pure.
type Formatter struct {
	catalog catalog.Catalog
}

func NewFormatter(c catalog.Catalog) *Formatter {
	return &Formatter{catalog: c}
}

func FormatDate(date time.Time) string {
	return date.Format(longDateLayout)
}

// SlotSummary collapses whole slot groups to their name and otherwise lists
// the slots in catalog order.
func (f *Formatter) SlotSummary(slots []string) string {
	switch {
	case catalog.Equal(slots, f.catalog.AllSlots()):
		return summaryFullDay
	case catalog.Equal(slots, f.catalog.MorningSlots):
		return summaryMorning
	case catalog.Equal(slots, f.catalog.AfternoonSlots):
		return summaryAfternoon
	}

	return strings.Join(f.catalog.Order(slots), ", ")
}

func (f *Formatter) Welcome(name string) string {
	return fmt.Sprintf("👋 Hello %s! I'm your AI booking assistant. How can I help you today?", name)
}

func (f *Formatter) Thanks(name string) string {
	return fmt.Sprintf("You're welcome, %s! 😊\n\nIs there anything else I can help you with today?", name)
}

func (f *Formatter) Greeting(name string) string {
	return fmt.Sprintf("👋 **Hello %s!** I'm your AI booking assistant.\n\n"+
		"I can help you:\n"+
		"• Book halls 🏛️\n"+
		"• Check availability 📅\n"+
		"• View your bookings 📋\n\n"+
		"What would you like to do?", name)
}

func (f *Formatter) Help() string {
	return "🤖 **I can help you with:**\n\n" +
		"• **Book a hall** - \"Book Main Auditorium tomorrow at 10 AM for training\"\n" +
		"• **Check availability** - \"Is SF Seminar Hall available tomorrow?\"\n" +
		"• **View bookings** - \"Show my bookings\"\n" +
		"• **Cancel booking** - Use the \"My Bookings\" page\n\n" +
		"What would you like to do?"
}

func (f *Formatter) Fallback(name string) string {
	return fmt.Sprintf("👋 **Hello %s!** I'm your AI booking assistant.\n\n"+
		"Try one of these:\n\n"+
		"• \"Book SF Seminar Hall on next Monday at 10:00 AM for GD\"\n"+
		"• \"Check availability for Main Auditorium Hall tomorrow\"\n"+
		"• \"Show my bookings\"\n\n"+
		"How can I help you today?", name)
}

func (f *Formatter) Bookings(bookings []models.Booking) string {
	if len(bookings) == 0 {
		return "📋 **Your Bookings**\n\nYou have no upcoming bookings."
	}

	var b strings.Builder
	b.WriteString("📋 **YOUR UPCOMING BOOKINGS**\n\n")

	for i, booking := range bookings {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, booking.Hall)
		fmt.Fprintf(&b, "   📅 Date: %s\n", FormatDate(booking.Date))
		fmt.Fprintf(&b, "   ⏰ Time: %s\n", strings.Join(booking.Slots, ", "))
		fmt.Fprintf(&b, "   📝 Purpose: %s\n\n", booking.Purpose)
	}

	fmt.Fprintf(&b, "Total: %d booking(s)", len(bookings))

	return b.String()
}

func (f *Formatter) Availability(hall string, date time.Time, available, booked []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 **Availability for %s on %s**\n\n", hall, FormatDate(date))

	if len(available) == 0 {
		b.WriteString("❌ **NO SLOTS AVAILABLE** (All booked)\n")
	} else {
		b.WriteString("✅ **AVAILABLE SLOTS:**\n")

		morning, afternoon := f.groups(available)
		if len(morning) > 0 {
			fmt.Fprintf(&b, "🌅 **Morning Slots:**\n%s\n\n", bulletList(morning))
		}
		if len(afternoon) > 0 {
			fmt.Fprintf(&b, "🌇 **Afternoon Slots:**\n%s\n", bulletList(afternoon))
		}
	}

	if len(booked) > 0 {
		fmt.Fprintf(&b, "\n📋 **Already booked:** %s", strings.Join(booked, ", "))
	}

	b.WriteString("\n\nWould you like to book any of these slots?")

	return b.String()
}

func (f *Formatter) AvailabilityNeedsInfo() string {
	return fmt.Sprintf("📅 **To check availability, I need to know:**\n\n"+
		"• Which hall? (%s)\n"+
		"• Which date? (e.g., \"December 11\", \"tomorrow\", \"next Monday\")\n\n"+
		"**Example:** \"Check availability for Main Auditorium Hall tomorrow\"",
		strings.Join(f.catalog.Halls, ", "))
}

// NeedMoreInfo asks only for the fields flagged in missing.
func (f *Formatter) NeedMoreInfo(missing MissingInfo) string {
	var b strings.Builder
	b.WriteString("📝 **I need more information to book a hall:**\n\n")

	if missing.Hall {
		b.WriteString("• Which hall? Available halls:\n")
		for _, h := range f.catalog.Halls {
			fmt.Fprintf(&b, "   - %s\n", h)
		}
	}
	if missing.Date {
		b.WriteString("• What date? (e.g., \"December 11, 2025\", \"tomorrow\", \"next Monday\")\n")
	}
	if missing.Time {
		b.WriteString("• What time? You can specify:\n")
		b.WriteString("   - Specific time: \"10:00 AM\"\n")
		b.WriteString("   - Slot group: \"morning slots\", \"afternoon slots\"\n")
		b.WriteString("   - Full day: \"full slots\" or \"all day\"\n")
	}
	if missing.Purpose {
		b.WriteString("• What is the purpose? (e.g., \"training\", \"meeting\", \"GD\", \"lunch\")\n")
	}

	b.WriteString("\n**Examples:**\n")
	b.WriteString("• \"Book Main Auditorium Hall tomorrow at 10:00 AM for training\"\n")
	b.WriteString("• \"Book SF Seminar Hall on next Monday at morning slots for GD\"\n")
	b.WriteString("• \"Book ECE Seminar Hall on December 11 at full slots for workshop\"")

	return b.String()
}

func (f *Formatter) Confirmation(booking models.Booking) string {
	var b strings.Builder
	b.WriteString("✅ **BOOKING CONFIRMED!** 🎉\n\n")
	fmt.Fprintf(&b, "🏛️ **Hall:** %s\n", booking.Hall)
	fmt.Fprintf(&b, "📅 **Date:** %s\n", FormatDate(booking.Date))
	fmt.Fprintf(&b, "⏰ **Time:** %s\n", f.SlotSummary(booking.Slots))
	fmt.Fprintf(&b, "📝 **Purpose:** %s\n\n", booking.Purpose)
	b.WriteString("Your booking has been successfully created!")

	return b.String()
}

func (f *Formatter) Conflict(hall string, conflict Conflict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ **BOOKING CONFLICT!**\n\nSome of your requested slots are already booked for %s.\n\n", hall)
	fmt.Fprintf(&b, "📋 **Already booked:** %s\n\n", strings.Join(conflict.Overlap, ", "))

	if conflict.FullyBooked() {
		b.WriteString("All requested slots are booked. Please choose different slots or time.")
	} else {
		fmt.Fprintf(&b, "✅ **Still available from your request:** %s\n\n", strings.Join(conflict.Free, ", "))
		b.WriteString("Would you like to book only the available slots?")
	}

	return b.String()
}

func (f *Formatter) BookingFailure() string {
	return "❌ **ERROR CREATING BOOKING**\n\n" +
		"There was an error processing your booking. Please try again or use the manual booking system."
}

func (f *Formatter) Failure() string {
	return "❌ Sorry, I encountered an error. Please try again or use the manual booking system.\n\n" +
		"You can try:\n" +
		"• \"Book Main Auditorium Hall\"\n" +
		"• \"Show my bookings\"\n" +
		"• \"Check availability\""
}

func (f *Formatter) groups(slots []string) (morning, afternoon []string) {
	for _, s := range f.catalog.Order(slots) {
		switch {
		case slices.Contains(f.catalog.MorningSlots, s):
			morning = append(morning, s)
		case slices.Contains(f.catalog.AfternoonSlots, s):
			afternoon = append(afternoon, s)
		}
	}
	return morning, afternoon
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "   • " + item
	}
	return strings.Join(lines, "\n")
}
