package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-model-viewer/internal/app"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listModels(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	summaries, err := h.services.ModelService.List(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listModels").Msg("error listing models")
		utils.WriteError(w, app.MsgListModelsFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) createModel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.CreateModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createModel").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	model, err := h.services.ModelService.Create(r.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Str("func", "*Handler.createModel").Msg("missing required fields")
			utils.WriteError(w, app.MsgMissingRequiredFields, http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.createModel").Msg("error creating model")
		utils.WriteError(w, app.MsgCreateModelFailed, statusFromError(err))
		return
	}

	h.metrics.IncModelsCreated()
	utils.WriteJSON(w, model, http.StatusCreated)
}

func (h *Handler) getModel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	model, err := h.services.ModelService.Get(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrModelNotFound) {
			utils.WriteError(w, app.MsgModelNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getModel").Msg("error fetching model")
		utils.WriteError(w, app.MsgGetModelFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, model, http.StatusOK)
}

func (h *Handler) updateModel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	var patch models.ModelPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateModel").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err := h.services.ModelService.Update(r.Context(), ownerID, chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrModelNotFound) {
			utils.WriteError(w, app.MsgModelNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.updateModel").Msg("error updating model")
		utils.WriteError(w, app.MsgUpdateModelFailed, statusFromError(err))
		return
	}

	utils.WriteMessage(w, app.MsgModelUpdated, http.StatusOK)
}

func (h *Handler) deleteModel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	err := h.services.ModelService.Delete(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrModelNotFound) {
			utils.WriteError(w, app.MsgModelNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteModel").Msg("error deleting model")
		utils.WriteError(w, app.MsgDeleteModelFailed, statusFromError(err))
		return
	}

	utils.WriteMessage(w, app.MsgModelDeleted, http.StatusOK)
}

func (h *Handler) addView(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.AddViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addView").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgViewPayloadRequired, http.StatusBadRequest)
		return
	}

	view, err := h.services.ModelService.AddView(r.Context(), ownerID, chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, app.MsgViewPayloadRequired, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidModelID):
			utils.WriteError(w, app.MsgInvalidModelID, http.StatusBadRequest)
		case errors.Is(err, store.ErrModelNotFound):
			utils.WriteError(w, app.MsgModelNotFoundOrUnauthorized, http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.addView").Msg("error saving view")
			utils.WriteError(w, app.MsgSaveViewFailed, statusFromError(err))
		}
		return
	}

	h.metrics.IncViewsSaved()
	utils.WriteJSON(w, view, http.StatusCreated)
}
