package listFeedback

import (
	"context"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type FeedbackResponse struct {
	response.Response
	Feedback []models.Feedback `json:"feedback"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeedbackProvider
type FeedbackProvider interface {
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
}

func New(log *slog.Logger, provider FeedbackProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.feedback.listFeedback.New"

		log := log.With(slog.String("op", op))

		feedback, err := provider.ListFeedback(r.Context())
		if err != nil {
			log.Error("failed to get feedback", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get feedback"))
			return
		}

		if feedback == nil {
			feedback = []models.Feedback{}
		}

		log.Info("feedback retrieved", slog.Int("count", len(feedback)))

		render.JSON(w, r, FeedbackResponse{
			Response: response.OK(),
			Feedback: feedback,
		})
	}
}
