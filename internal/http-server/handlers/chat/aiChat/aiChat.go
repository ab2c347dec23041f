package aiChat

import (
	"context"
	"hallBooker/internal/chat"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Request struct {
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Assistant
type Assistant interface {
	Reply(ctx context.Context, id chat.Identity, message string) (chat.Reply, error)
}

// New answers chat messages. The reply is always sent with 200: a malformed
// body gets the greeting, and store failures are logged and surface as a
// reply with the error flag set.
func New(log *slog.Logger, assistant Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.aiChat.New"

		log := log.With(slog.String("op", op))

		claims, ok := mwauth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no claims in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied"))
			return
		}

		var req Request

		// An unreadable body is answered like an empty message.
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Warn("failed to decode request body, replying to empty message", sl.Err(err))
			req.Message = ""
		}

		id := chat.Identity{
			UserID: claims.UserID,
			Name:   claims.Name,
			Role:   claims.Role,
		}

		reply, err := assistant.Reply(r.Context(), id, req.Message)
		if err != nil {
			log.Error("chat reply failed", slog.Int64("user_id", id.UserID), sl.Err(err))
		}

		log.Info("chat message handled",
			slog.Int64("user_id", id.UserID),
			slog.String("intent", string(reply.Intent)),
			slog.String("action", string(reply.Action)),
		)

		render.JSON(w, r, reply)
	}
}
