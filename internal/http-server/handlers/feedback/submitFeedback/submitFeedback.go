package submitFeedback

import (
	"context"
	"errors"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Feedback string `json:"feedback" validate:"required"`
}

type Response struct {
	response.Response
	Feedback *models.Feedback `json:"feedback"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeedbackSaver
type FeedbackSaver interface {
	CreateFeedback(ctx context.Context, userID int64, name, text string) (*models.Feedback, error)
}

func New(log *slog.Logger, saver FeedbackSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.feedback.submitFeedback.New"

		log := log.With(slog.String("op", op))

		claims, ok := mwauth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no claims in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		req.Feedback = strings.TrimSpace(req.Feedback)

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		feedback, err := saver.CreateFeedback(r.Context(), claims.UserID, claims.Name, req.Feedback)
		if err != nil {
			log.Error("failed to save feedback", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to submit feedback"))
			return
		}

		log.Info("feedback submitted", slog.Int64("feedback_id", feedback.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Feedback: feedback,
		})
	}
}
