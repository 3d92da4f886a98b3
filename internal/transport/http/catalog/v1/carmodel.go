package http

import (
	"fmt"
	"net/http"

	"github.com/Leonardostavares/Catalogo-Carro/internal/converter"
	catalogv1 "github.com/Leonardostavares/Catalogo-Carro/pkg/api/catalog/v1"
)

func (h *handler) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.models.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ModelsToResponse(models))
}

func (h *handler) ModelByID(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	m, err := h.models.ModelByID(r.Context(), id)
	if err != nil {
		mapErrorToGetRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ModelToResponse(m))
}

func (h *handler) ModelsByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, ok := int64Param(r, "marcaId")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID da marca inválido")
		return
	}

	models, err := h.models.ListByBrand(r.Context(), brandID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ModelsToResponse(models))
}

func (h *handler) SearchModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.models.SearchByName(r.Context(), r.URL.Query().Get("nome"))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ModelsToResponse(models))
}

func (h *handler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.ModelRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	params := converter.ModelRequestToParams(req)
	m, err := h.models.Create(r.Context(), params)
	if err != nil {
		mapErrorToCreateModelRes(w, r, err, params)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.ModelToResponse(m))
}

func (h *handler) UpdateModel(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var req catalogv1.ModelRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.models.Update(r.Context(), id, converter.ModelRequestToParams(req))
	if err != nil {
		mapErrorToUpdateRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ModelToResponse(m))
}

func (h *handler) DeleteModel(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.models.Delete(r.Context(), id); err != nil {
		mapErrorToDeleteRes(w, r, err, fmt.Sprintf("Modelo %d possui carros vinculados", id))
		return
	}

	writeStatus(w, http.StatusNoContent)
}
