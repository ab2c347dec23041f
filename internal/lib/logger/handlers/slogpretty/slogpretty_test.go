package slogpretty

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyHandlerKeepsAttrsAcrossGroups(t *testing.T) {
	var buf bytes.Buffer

	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf))

	log.With(slog.String("op", "handlers.chat.aiChat.New")).
		WithGroup("request").
		Info("chat message handled", slog.Int64("user_id", 42))

	out := buf.String()
	assert.Contains(t, out, "chat message handled")
	assert.Contains(t, out, `"op": "handlers.chat.aiChat.New"`)
	assert.Contains(t, out, `"user_id": 42`)
}

func TestPrettyHandlerWithoutAttrs(t *testing.T) {
	var buf bytes.Buffer

	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}
	log := slog.New(opts.NewPrettyHandler(&buf))

	log.Debug("hidden")
	log.Warn("application stopping")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "application stopping")
	assert.NotContains(t, out, "{")
}
