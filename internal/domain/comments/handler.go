package comments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"pet-memorial/internal/domain/users"
	"pet-memorial/internal/middleware"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/comment", createCommentHandler(svc))
}

type createCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
	PetID   string `json:"petId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type OwnerResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type Response struct {
	ID        string        `json:"id"`
	Comment   string        `json:"comment"`
	Pet       string        `json:"pet"`
	Owner     OwnerResponse `json:"owner"`
	CreatedAt time.Time     `json:"created_at"`
}

// createCommentHandler crea un comentario sobre una mascota existente.
// @Summary Comentar una mascota
// @Router /comment [post]
func createCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "comment, petId and userId are required")
			return
		}

		out, err := svc.Create(r.Context(), CreateInput{
			Text:   req.Comment,
			PetID:  req.PetID,
			UserID: req.UserID,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrPetNotFound), errors.Is(err, users.ErrNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(out))
	}
}

// ToResponse lo usa también el handler de pets para expandir comentarios.
func ToResponse(e Expanded) Response {
	return Response{
		ID:      e.Comment.ID,
		Comment: e.Comment.Text,
		Pet:     e.Comment.PetID,
		Owner: OwnerResponse{
			ID:       e.Owner.ID,
			Email:    e.Owner.Email,
			Username: e.Owner.Username,
		},
		CreatedAt: e.Comment.CreatedAt,
	}
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{OK: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
