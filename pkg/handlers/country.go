package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"countryhub/pkg/apperrors"
	"countryhub/pkg/country"
)

type CountryHandler struct {
	Directory country.Lookuper
	Logger    *slog.Logger
}

func NewCountryHandler(directory country.Lookuper, logger *slog.Logger) *CountryHandler {
	return &CountryHandler{
		Directory: directory,
		Logger:    logger,
	}
}

func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)[muxVarCountry]
	if name == "" {
		writeError(w, http.StatusBadRequest, typeError, "country name is required")
		return
	}

	details, err := h.Directory.Lookup(r.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeError, "Country not found")
			return
		}
		h.Logger.Error("country lookup", "error", err, "country", name)
		writeError(w, http.StatusInternalServerError, typeError, "Failed to fetch country details")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, details)
}
