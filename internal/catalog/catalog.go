// Package catalog holds the fixed set of bookable halls and the daily slot
// catalog, and the set arithmetic done over slot labels.
package catalog

import "slices"

type Catalog struct {
	Halls          []string
	MorningSlots   []string
	AfternoonSlots []string
}

func Default() Catalog {
	return Catalog{
		Halls: []string{
			"Main Auditorium Hall",
			"Vedhanayagam Hall",
			"ECE Seminar Hall",
			"SF Seminar Hall",
		},
		MorningSlots: []string{
			"8:30 - 9:00",
			"9:00 - 9:30",
			"9:30 - 10:00",
			"10:00 - 10:30",
			"10:30 - 11:00",
			"11:00 - 11:30",
			"11:30 - 12:00",
			"12:00 - 12:30",
		},
		AfternoonSlots: []string{
			"1:00 - 1:30",
			"1:30 - 2:00",
			"2:00 - 2:30",
			"2:30 - 3:00",
			"3:00 - 3:30",
			"3:30 - 4:00",
			"4:00 - 4:30",
			"After 4:30",
		},
	}
}

// AllSlots returns morning then afternoon slots as a fresh slice.
func (c Catalog) AllSlots() []string {
	all := make([]string, 0, len(c.MorningSlots)+len(c.AfternoonSlots))
	all = append(all, c.MorningSlots...)
	return append(all, c.AfternoonSlots...)
}

func (c Catalog) Morning() []string {
	return slices.Clone(c.MorningSlots)
}

func (c Catalog) Afternoon() []string {
	return slices.Clone(c.AfternoonSlots)
}

func (c Catalog) IsHall(name string) bool {
	return slices.Contains(c.Halls, name)
}

func (c Catalog) IsSlot(label string) bool {
	return slices.Contains(c.MorningSlots, label) || slices.Contains(c.AfternoonSlots, label)
}

// Order deduplicates slots and sorts them in catalog order. Labels unknown to
// the catalog keep their relative order after the known ones.
func (c Catalog) Order(slots []string) []string {
	want := make(map[string]bool, len(slots))
	for _, s := range slots {
		want[s] = true
	}

	ordered := make([]string, 0, len(want))
	for _, s := range c.AllSlots() {
		if want[s] {
			ordered = append(ordered, s)
			delete(want, s)
		}
	}

	for _, s := range slots {
		if want[s] {
			ordered = append(ordered, s)
			delete(want, s)
		}
	}

	return ordered
}

// Split partitions requested slots into those already in booked and those
// still free. Both results are in catalog order.
func (c Catalog) Split(requested, booked []string) (taken, free []string) {
	isBooked := make(map[string]bool, len(booked))
	for _, s := range booked {
		isBooked[s] = true
	}

	for _, s := range c.Order(requested) {
		if isBooked[s] {
			taken = append(taken, s)
		} else {
			free = append(free, s)
		}
	}

	return taken, free
}

// Available returns the catalog slots not present in booked.
func (c Catalog) Available(booked []string) []string {
	_, free := c.Split(c.AllSlots(), booked)
	return free
}

// Equal reports whether slots hold exactly the labels of group, ignoring order.
func Equal(slots, group []string) bool {
	if len(slots) != len(group) {
		return false
	}

	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		seen[s] = true
	}

	if len(seen) != len(group) {
		return false
	}

	for _, s := range group {
		if !seen[s] {
			return false
		}
	}

	return true
}
