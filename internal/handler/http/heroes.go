package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/service"
	"github.com/MKhiriev/go-hero-registry/internal/utils"
	"github.com/MKhiriev/go-hero-registry/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSuperheroes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoUserIDInContext).Str("func", "*Handler.listSuperheroes").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	heroes, err := h.services.HeroService.ListSuperheroes(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSuperheroes").Msg("error listing superheroes")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	listing := models.SuperheroesResponse{Superheroes: make([]models.SuperheroResponse, 0, len(heroes))}
	for _, hero := range heroes {
		listing.Superheroes = append(listing.Superheroes, models.NewSuperheroResponse(hero))
	}

	if _, err = utils.WriteJSON(w, listing, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listSuperheroes").Msg("error writing response")
	}
}

func (h *Handler) registerSuperhero(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoUserIDInContext).Str("func", "*Handler.registerSuperhero").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.RegisterSuperheroRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.registerSuperhero").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.HeroService.RegisterSuperhero(r.Context(), userID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerSuperhero").Msg("error registering superhero")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	response := models.RegisteredSuperheroResponse{Superhero: models.NewSuperheroResponse(registered)}
	if _, err = utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.registerSuperhero").Msg("error writing response")
	}
}

func (h *Handler) updateSuperhero(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoUserIDInContext).Str("func", "*Handler.updateSuperhero").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	superheroID := chi.URLParam(r, "superheroId")

	var request models.UpdateSuperheroRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateSuperhero").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.HeroService.UpdateSuperhero(r.Context(), userID, superheroID, request); err != nil {
		h.writeHeroError(w, r, "*Handler.updateSuperhero", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSuperhero(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoUserIDInContext).Str("func", "*Handler.deleteSuperhero").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	superheroID := chi.URLParam(r, "superheroId")

	if err := h.services.HeroService.DeleteSuperhero(r.Context(), userID, superheroID); err != nil {
		h.writeHeroError(w, r, "*Handler.deleteSuperhero", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createImageUploadURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoUserIDInContext).Str("func", "*Handler.createImageUploadURL").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	superheroID := chi.URLParam(r, "superheroId")

	uploadURL, err := h.services.HeroService.CreateImageUploadURL(r.Context(), userID, superheroID)
	if err != nil {
		h.writeHeroError(w, r, "*Handler.createImageUploadURL", err)
		return
	}

	response := models.ImageUploadURLResponse{ImageUploadURL: uploadURL}
	if _, err = utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createImageUploadURL").Msg("error writing response")
	}
}

// writeHeroError renders a service failure for the record-scoped endpoints.
// A missing or foreign record gets the fixed 404 message as a JSON error
// body; anything else maps through the status table with no body detail.
func (h *Handler) writeHeroError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("func", funcName).Msg("superhero operation failed")

	if errors.Is(err, service.ErrHeroNotFound) {
		if _, werr := utils.WriteJSON(w, models.ErrorResponse{Error: heroNotFoundMessage}, http.StatusNotFound); werr != nil {
			log.Err(werr).Str("func", funcName).Msg("error writing response")
		}
		return
	}

	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
