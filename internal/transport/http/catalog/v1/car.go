package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Leonardostavares/Catalogo-Carro/internal/converter"
	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
	catalogv1 "github.com/Leonardostavares/Catalogo-Carro/pkg/api/catalog/v1"
)

func (h *handler) ListCars(w http.ResponseWriter, r *http.Request) {
	h.listCars(w, r, model.CarsFilter{})
}

func (h *handler) CarByID(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	car, err := h.cars.CarByID(r.Context(), id)
	if err != nil {
		mapErrorToGetRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CarToResponse(car))
}

func (h *handler) CarsByModel(w http.ResponseWriter, r *http.Request) {
	modelID, ok := int64Param(r, "modeloId")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID do modelo inválido")
		return
	}

	h.listCars(w, r, model.CarsFilter{ModelID: &modelID})
}

func (h *handler) CarsByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, ok := int64Param(r, "marcaId")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID da marca inválido")
		return
	}

	h.listCars(w, r, model.CarsFilter{BrandID: &brandID})
}

func (h *handler) CarsByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "ano"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Ano inválido")
		return
	}

	h.listCars(w, r, model.CarsFilter{Year: &year})
}

func (h *handler) CarsByFuel(w http.ResponseWriter, r *http.Request) {
	fuel := chi.URLParam(r, "combustivel")
	h.listCars(w, r, model.CarsFilter{Fuel: &fuel})
}

func (h *handler) CarsByColor(w http.ResponseWriter, r *http.Request) {
	color := chi.URLParam(r, "cor")
	h.listCars(w, r, model.CarsFilter{Color: &color})
}

// CarsByPriceRange lists cars whose value lies in [min, max].
func (h *handler) CarsByPriceRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minValue, err := decimal.NewFromString(q.Get("min"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Parâmetro 'min' inválido")
		return
	}
	maxValue, err := decimal.NewFromString(q.Get("max"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Parâmetro 'max' inválido")
		return
	}
	if minValue.GreaterThan(maxValue) {
		writeError(w, r, http.StatusBadRequest, "Parâmetro 'min' deve ser menor ou igual a 'max'")
		return
	}

	h.listCars(w, r, model.CarsFilter{MinValue: &minValue, MaxValue: &maxValue})
}

func (h *handler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.CarRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	car, err := h.cars.Create(r.Context(), converter.CarRequestToCreateParams(req))
	if err != nil {
		mapErrorToCreateCarRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.CarToResponse(car))
}

func (h *handler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var req catalogv1.CarRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	car, err := h.cars.Update(r.Context(), id, converter.CarRequestToUpdateParams(req))
	if err != nil {
		mapErrorToUpdateRes(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CarToResponse(car))
}

func (h *handler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.cars.Delete(r.Context(), id); err != nil {
		mapErrorToDeleteRes(w, r, err, msgInternal)
		return
	}

	writeStatus(w, http.StatusNoContent)
}

func (h *handler) ExportCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.List(r.Context(), model.CarsFilter{})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CarsToExport(cars))
}

// ExportCarsFile serves the same document as ExportCars, indented.
func (h *handler) ExportCarsFile(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.List(r.Context(), model.CarsFilter{})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	body, err := json.MarshalIndent(converter.CarsToExport(cars), "", "  ")
	if err != nil {
		logger.Error(r.Context(), "marshal cars export", logger.ErrorF(err))
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Error(r.Context(), "write cars export", logger.ErrorF(err))
	}
}

func (h *handler) listCars(w http.ResponseWriter, r *http.Request, filter model.CarsFilter) {
	cars, err := h.cars.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CarsToResponse(cars))
}
