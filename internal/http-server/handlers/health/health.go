package health

import (
	"net/http"

	"github.com/go-chi/render"
)

type Response struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{
			Message: "Hall Booking API is running",
			Status:  "healthy",
		})
	}
}
