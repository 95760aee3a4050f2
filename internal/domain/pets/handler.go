package pets

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-memorial/internal/domain/comments"
	"pet-memorial/internal/domain/users"
	"pet-memorial/internal/middleware"
)

// ImageStore guarda la imagen subida y devuelve su URL pública.
type ImageStore interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
}

const maxUploadBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service, images ImageStore) {
	// El {id} del POST es el id del dueño; el del GET es el id de
	// la mascota. Contrato que los clientes existentes ya consumen.
	r.Post("/pet/{id}", createPetHandler(svc, images))
	r.Get("/pet/{id}", getPetHandler(svc))
	r.Get("/pets", listPetsHandler(svc))
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DeathDate time.Time `json:"deathDate"`
	Favorites []string  `json:"favorites"`
	Owner     string    `json:"owner"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type expandedPetResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	DeathDate time.Time              `json:"deathDate"`
	Favorites []string               `json:"favorites"`
	Owner     comments.OwnerResponse `json:"owner"`
	Image     string                 `json:"image"`
	Comments  []comments.Response    `json:"comments"`
	CreatedAt time.Time              `json:"created_at"`
}

type createPetResponse struct {
	OK  bool        `json:"ok"`
	Pet petResponse `json:"pet"`
}

type getPetResponse struct {
	Pet expandedPetResponse `json:"pet"`
}

type listPetsResponse struct {
	Pets []expandedPetResponse `json:"pets"`
}

// createPetHandler recibe multipart/form-data: petName, deathDate,
// favorite1..favorite3 y el archivo animal-img.
// @Summary Registrar mascota
// @Accept mpfd
// @Router /pet/{id} [post]
func createPetHandler(svc *Service, images ImageStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		name := r.FormValue("petName")
		if strings.TrimSpace(name) == "" {
			writeError(w, http.StatusBadRequest, "petName is required")
			return
		}

		deathDate, err := time.Parse("2006-01-02", strings.TrimSpace(r.FormValue("deathDate")))
		if err != nil {
			writeError(w, http.StatusBadRequest, "deathDate must be YYYY-MM-DD")
			return
		}

		file, header, err := r.FormFile("animal-img")
		if err != nil {
			writeError(w, http.StatusBadRequest, "animal-img file is required")
			return
		}
		defer file.Close()

		imageURL, err := images.Save(file, header)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not store image")
			return
		}

		favorites := []string{
			r.FormValue("favorite1"),
			r.FormValue("favorite2"),
			r.FormValue("favorite3"),
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "id"), CreateInput{
			Name:      name,
			DeathDate: deathDate,
			Favorites: favorites,
			ImageURL:  imageURL,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, createPetResponse{OK: true, Pet: toPetResponse(p)})
	}
}

// getPetHandler devuelve la mascota con dueño y comentarios expandidos.
// @Summary Detalle de mascota
// @Router /pet/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, getPetResponse{Pet: toExpandedResponse(e)})
	}
}

// listPetsHandler: colección vacía responde 404, no lista vacía.
// @Summary Listado de mascotas
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]expandedPetResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toExpandedResponse(e))
		}

		writeJSON(w, http.StatusOK, listPetsResponse{Pets: out})
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		DeathDate: p.DeathDate,
		Favorites: p.Favorites,
		Owner:     p.OwnerID,
		Image:     p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}

func toExpandedResponse(e Expanded) expandedPetResponse {
	cs := make([]comments.Response, 0, len(e.Comments))
	for _, c := range e.Comments {
		cs = append(cs, comments.ToResponse(c))
	}

	return expandedPetResponse{
		ID:        e.Pet.ID,
		Name:      e.Pet.Name,
		DeathDate: e.Pet.DeathDate,
		Favorites: e.Pet.Favorites,
		Owner: comments.OwnerResponse{
			ID:       e.Owner.ID,
			Email:    e.Owner.Email,
			Username: e.Owner.Username,
		},
		Image:     e.Pet.ImageURL,
		Comments:  cs,
		CreatedAt: e.Pet.CreatedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoPets), errors.Is(err, users.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
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
