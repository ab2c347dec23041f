package postgres

import (
	"errors"
	"fmt"
	"hallBooker/internal/storage"
	"testing"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSerializationFailure(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "Serialization failure", err: &pq.Error{Code: "40001"}, expected: true},
		{name: "Wrapped", err: fmt.Errorf("failed to commit booking: %w", &pq.Error{Code: "40001"}), expected: true},
		{name: "Unique violation", err: &pq.Error{Code: "23505"}, expected: false},
		{name: "Slots taken", err: storage.ErrSlotsTaken, expected: false},
		{name: "Plain error", err: errors.New("connection reset"), expected: false},
		{name: "Nil", err: nil, expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, isSerializationFailure(tc.err))
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	goose.SetBaseFS(migrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	collected, err := goose.CollectMigrations("migrations", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.NotEmpty(t, collected)

	assert.Equal(t, int64(1), collected[0].Version)

	body, err := migrations.ReadFile("migrations/00001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "-- +goose Down")
	assert.Contains(t, string(body), "TEXT[]")
}
