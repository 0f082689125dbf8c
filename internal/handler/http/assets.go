package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-model-viewer/internal/app"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/go-chi/chi/v5"
)

const (
	assetFormField = "file"

	// multipartMemory is the part of a multipart body kept in memory; the
	// rest spills to temporary files.
	multipartMemory = 8 << 20
)

// assetsEnabled answers 503 on every asset route when no object storage is
// configured.
func (h *Handler) assetsEnabled(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.AssetService.Enabled() {
			utils.WriteError(w, app.MsgAssetStorageDisabled, http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) uploadAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	if limit := h.maxUploadSize; limit > 0 {
		// room for the multipart envelope around the file itself
		r.Body = http.MaxBytesReader(w, r.Body, limit+multipartMemory)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Err(err).Str("func", "*Handler.uploadAsset").Msg("invalid multipart body")
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteError(w, app.MsgAssetTooLarge, http.StatusBadRequest)
			return
		}
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(assetFormField)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadAsset").Msg("no file in multipart body")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	fileURL, err := h.services.AssetService.Upload(r.Context(), ownerID, models.AssetUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrUnsupportedFormat):
			utils.WriteError(w, app.MsgUnsupportedFormat, http.StatusBadRequest)
		case errors.Is(err, service.ErrAssetTooLarge):
			utils.WriteError(w, app.MsgAssetTooLarge, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		default:
			log.Err(err).Str("func", "*Handler.uploadAsset").Msg("error storing asset")
			utils.WriteError(w, app.MsgUploadAssetFailed, statusFromError(err))
		}
		return
	}

	h.metrics.AddUploadedBytes(header.Size)
	utils.WriteJSON(w, models.AssetResponse{FileURL: fileURL}, http.StatusCreated)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	key := chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "name")

	asset, err := h.services.AssetService.Open(r.Context(), ownerID, key)
	if err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			utils.WriteError(w, app.MsgAssetNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getAsset").Msg("error opening asset")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), statusFromError(err))
		return
	}
	defer asset.Body.Close()

	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, asset.Body); err != nil {
		log.Err(err).Str("func", "*Handler.getAsset").Msg("error streaming asset")
	}
}
