package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"hallBooker/internal/models"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	defaultUpcomingLimit = 10
)

// Action is the outcome tag the frontend branches on. The zero value is
// encoded as JSON null.
type Action string

const (
	ActionNone                    Action = ""
	ActionViewBookings            Action = "view_bookings"
	ActionAvailabilityChecked     Action = "availability_checked"
	ActionNeedInfoForAvailability Action = "need_info_for_availability"
	ActionBooked                  Action = "booked"
	ActionConflict                Action = "conflict"
	ActionNeedMoreInfo            Action = "need_more_info"
	ActionError                   Action = "error"
)

func (a Action) MarshalJSON() ([]byte, error) {
	if a == ActionNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// Identity is the authenticated caller as decoded from the bearer token.
type Identity struct {
	UserID int64
	Name   string
	Role   string
}

// Store is the reservation store the assistant reads and writes.
type Store interface {
	BookingStore
	UpcomingBookings(ctx context.Context, userID int64, from time.Time, limit int) ([]models.Booking, error)
}

type Reply struct {
	Response       string           `json:"response"`
	Intent         Intent           `json:"intent"`
	Action         Action           `json:"action"`
	Hall           string           `json:"hall,omitempty"`
	Date           string           `json:"date,omitempty"`
	Slots          []string         `json:"slots,omitempty"`
	Bookings       []models.Booking `json:"bookings,omitempty"`
	AvailableSlots []string         `json:"availableSlots,omitempty"`
	BookedSlots    []string         `json:"bookedSlots,omitempty"`
	ConflictSlots  []string         `json:"conflictSlots,omitempty"`
	Booking        *models.Booking  `json:"booking,omitempty"`
	MissingInfo    *MissingInfo     `json:"missingInfo,omitempty"`
	Error          bool             `json:"error,omitempty"`
}

// MarshalJSON always writes the lists owned by the reply's action, as []
// when empty. Lists of other actions are omitted unless set.
func (r Reply) MarshalJSON() ([]byte, error) {
	type plain Reply

	out := struct {
		plain
		Bookings       *[]models.Booking `json:"bookings,omitempty"`
		AvailableSlots *[]string         `json:"availableSlots,omitempty"`
		BookedSlots    *[]string         `json:"bookedSlots,omitempty"`
	}{plain: plain(r)}

	switch r.Action {
	case ActionViewBookings:
		out.Bookings = nonNil(r.Bookings)
	case ActionAvailabilityChecked:
		out.AvailableSlots = nonNil(r.AvailableSlots)
		out.BookedSlots = nonNil(r.BookedSlots)
	case ActionConflict:
		out.AvailableSlots = nonNil(r.AvailableSlots)
	default:
		if len(r.Bookings) > 0 {
			out.Bookings = &r.Bookings
		}
		if len(r.AvailableSlots) > 0 {
			out.AvailableSlots = &r.AvailableSlots
		}
		if len(r.BookedSlots) > 0 {
			out.BookedSlots = &r.BookedSlots
		}
	}

	return json.Marshal(out)
}

func nonNil[T any](items []T) *[]T {
	if items == nil {
		items = []T{}
	}
	return &items
}

type Assistant struct {
	vocab    Vocabulary
	resolver *Resolver
	format   *Formatter
	checker  *ConflictChecker
	store    Store
	now      func() time.Time
	limit    int
}

type Option func(*Assistant)

// WithClock replaces time.Now. The clock's location decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
	}
}

// WithUpcomingLimit caps how many bookings a "show my bookings" reply lists.
func WithUpcomingLimit(limit int) Option {
	return func(a *Assistant) {
		if limit > 0 {
			a.limit = limit
		}
	}
}

func New(vocab Vocabulary, store Store, opts ...Option) *Assistant {
	a := &Assistant{
		vocab:    vocab,
		resolver: NewResolver(vocab),
		format:   NewFormatter(vocab.Catalog),
		checker:  NewConflictChecker(vocab.Catalog, store),
		store:    store,
		now:      time.Now,
		limit:    defaultUpcomingLimit,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Reply answers one chat message. It always returns a reply fit to send to
// the user; a non-nil error means the store failed and the reply carries
// Error set.
func (a *Assistant) Reply(ctx context.Context, id Identity, message string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{Response: a.format.Welcome(id.Name), Intent: IntentGreeting}, nil
	}

	intent := Classify(message)

	switch intent {
	case IntentThanks:
		return Reply{Response: a.format.Thanks(id.Name), Intent: intent}, nil
	case IntentGreeting:
		return Reply{Response: a.format.Greeting(id.Name), Intent: intent}, nil
	case IntentHelp:
		return Reply{Response: a.format.Help(), Intent: intent}, nil
	case IntentViewBookings:
		return a.viewBookings(ctx, id)
	case IntentCheckAvailability:
		return a.checkAvailability(ctx, message)
	case IntentCreateBooking:
		return a.createBooking(ctx, id, message)
	}

	return Reply{Response: a.format.Fallback(id.Name), Intent: IntentFallback}, nil
}

func (a *Assistant) viewBookings(ctx context.Context, id Identity) (Reply, error) {
	const op = "chat.Assistant.viewBookings"

	bookings, err := a.store.UpcomingBookings(ctx, id.UserID, civilDate(a.now()), a.limit)
	if err != nil {
		return a.failure(IntentViewBookings, a.format.Failure()), fmt.Errorf("%s: %w", op, err)
	}

	return Reply{
		Response: a.format.Bookings(bookings),
		Intent:   IntentViewBookings,
		Action:   ActionViewBookings,
		Bookings: bookings,
	}, nil
}

func (a *Assistant) checkAvailability(ctx context.Context, message string) (Reply, error) {
	const op = "chat.Assistant.checkAvailability"

	hall, _ := a.resolver.Hall(message)
	date, ok := a.resolver.Date(message, a.now())

	if hall == "" || !ok {
		return Reply{
			Response: a.format.AvailabilityNeedsInfo(),
			Intent:   IntentCheckAvailability,
			Action:   ActionNeedInfoForAvailability,
			Hall:     hall,
			Date:     formatOptionalDate(date, ok),
			MissingInfo: &MissingInfo{
				Hall: hall == "",
				Date: !ok,
			},
		}, nil
	}

	existing, err := a.store.BookingsByHallDate(ctx, hall, date)
	if err != nil {
		return a.failure(IntentCheckAvailability, a.format.Failure()), fmt.Errorf("%s: %w", op, err)
	}

	booked := a.vocab.Order(bookedSlots(existing))
	available := a.vocab.Available(booked)

	return Reply{
		Response:       a.format.Availability(hall, date, available, booked),
		Intent:         IntentCheckAvailability,
		Action:         ActionAvailabilityChecked,
		Hall:           hall,
		Date:           date.Format(dateLayout),
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}

func (a *Assistant) createBooking(ctx context.Context, id Identity, message string) (Reply, error) {
	const op = "chat.Assistant.createBooking"

	e := a.resolver.Extract(message, a.now())

	reply := Reply{
		Intent: IntentCreateBooking,
		Hall:   e.Hall,
		Date:   formatOptionalDate(e.Date, e.HasDate),
		Slots:  e.Slots,
	}

	if missing := e.Missing(); missing.Any() {
		reply.Response = a.format.NeedMoreInfo(missing)
		reply.Action = ActionNeedMoreInfo
		reply.MissingInfo = &missing
		return reply, nil
	}

	outcome, err := a.checker.Book(ctx, models.Booking{
		UserID:  id.UserID,
		Hall:    e.Hall,
		Date:    e.Date,
		Slots:   e.Slots,
		Purpose: e.Purpose,
	})
	if err != nil {
		failed := a.failure(IntentCreateBooking, a.format.BookingFailure())
		failed.Hall, failed.Date, failed.Slots = reply.Hall, reply.Date, reply.Slots
		return failed, fmt.Errorf("%s: %w", op, err)
	}

	if outcome.Conflict != nil {
		reply.Response = a.format.Conflict(e.Hall, *outcome.Conflict)
		reply.Action = ActionConflict
		reply.ConflictSlots = outcome.Conflict.Overlap
		reply.AvailableSlots = outcome.Conflict.Free
		return reply, nil
	}

	reply.Response = a.format.Confirmation(*outcome.Booking)
	reply.Action = ActionBooked
	reply.Booking = outcome.Booking
	return reply, nil
}

func (a *Assistant) failure(intent Intent, text string) Reply {
	return Reply{
		Response: text,
		Intent:   intent,
		Action:   ActionError,
		Error:    true,
	}
}

func formatOptionalDate(date time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return date.Format(dateLayout)
}
