package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

// decodeAndValidate writes the 400 response itself and reports whether the handler may continue.
func (h *handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := decode(r, req); err != nil {
		writeError(w, r, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	if err := h.validate.Struct(req); err != nil {
		if fields := validationFields(err); fields != nil {
			writeJSON(w, r, http.StatusBadRequest, fields)
			return false
		}
		writeError(w, r, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	return true
}

func writeValidation(w http.ResponseWriter, r *http.Request, err error) bool {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, r, http.StatusBadRequest, vErr.Fields)
		return true
	}
	return false
}

func mapErrorToGetRes(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeStatus(w, http.StatusNotFound) // 404
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal) // 500
	}
}

func mapErrorToCreateBrandRes(w http.ResponseWriter, r *http.Request, err error, name string) {
	switch {
	case writeValidation(w, r, err): // 400
	case errors.Is(err, model.ErrBrandConflict):
		writeError(w, r, http.StatusBadRequest, "Já existe uma marca com o nome: "+name) // 400
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal) // 500
	}
}

func mapErrorToCreateModelRes(w http.ResponseWriter, r *http.Request, err error, params model.CarModelParams) {
	switch {
	case writeValidation(w, r, err): // 400
	case errors.Is(err, model.ErrBrandNotFound):
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("Marca não encontrada com ID: %d", params.BrandID)) // 400
	case errors.Is(err, model.ErrModelConflict):
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("Já existe um modelo com o nome '%s' na marca selecionada", params.Name)) // 400
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal) // 500
	}
}

// mapErrorToCreateCarRes keeps the public contract: every failure on car
// registration is a 400 with an error message.
func mapErrorToCreateCarRes(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case writeValidation(w, r, err): // 400
	case errors.Is(err, model.ErrModelNotFound):
		writeError(w, r, http.StatusBadRequest, "Modelo não encontrado") // 400
	case errors.Is(err, model.ErrBrandNotFound):
		writeError(w, r, http.StatusBadRequest, "Marca não encontrada") // 400
	default:
		writeError(w, r, http.StatusBadRequest, "Não foi possível cadastrar o carro") // 400
	}
}

// mapErrorToUpdateRes reports conflicts on update as 404, like missing records.
func mapErrorToUpdateRes(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case writeValidation(w, r, err): // 400
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrConflict):
		writeStatus(w, http.StatusNotFound) // 404
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal) // 500
	}
}

func mapErrorToDeleteRes(w http.ResponseWriter, r *http.Request, err error, dependentsMsg string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeStatus(w, http.StatusNotFound) // 404
	case errors.Is(err, model.ErrHasDependents):
		writeError(w, r, http.StatusConflict, dependentsMsg) // 409
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal) // 500
	}
}
