package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Leonardostavares/Catalogo-Carro/internal/converter"
	catalogv1 "github.com/Leonardostavares/Catalogo-Carro/pkg/api/catalog/v1"
)

func (h *handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BrandsToResponse(brands))
}

func (h *handler) BrandByID(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	b, err := h.brands.BrandByID(r.Context(), id)
	if err != nil {
		mapErrorToGetRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BrandToResponse(b))
}

func (h *handler) BrandByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("nome")
	if strings.TrimSpace(name) == "" {
		writeError(w, r, http.StatusBadRequest, "Parâmetro 'nome' é obrigatório")
		return
	}

	b, err := h.brands.BrandByName(r.Context(), name)
	if err != nil {
		mapErrorToGetRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BrandToResponse(b))
}

func (h *handler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.BrandRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.brands.Create(r.Context(), converter.BrandRequestToParams(req))
	if err != nil {
		mapErrorToCreateBrandRes(w, r, err, req.NomeMarca)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.BrandToResponse(b))
}

func (h *handler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var req catalogv1.BrandRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.brands.Update(r.Context(), id, converter.BrandRequestToParams(req))
	if err != nil {
		mapErrorToUpdateRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BrandToResponse(b))
}

func (h *handler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.brands.Delete(r.Context(), id); err != nil {
		mapErrorToDeleteRes(w, r, err, fmt.Sprintf("Marca %d possui modelos vinculados", id))
		return
	}

	writeStatus(w, http.StatusNoContent)
}
