package http

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type BrandService interface {
	List(ctx context.Context) ([]model.Brand, error)
	BrandByID(ctx context.Context, id int64) (model.Brand, error)
	BrandByName(ctx context.Context, name string) (model.Brand, error)
	Create(ctx context.Context, params model.BrandParams) (model.Brand, error)
	Update(ctx context.Context, id int64, params model.BrandParams) (model.Brand, error)
	Delete(ctx context.Context, id int64) error
}

type ModelService interface {
	List(ctx context.Context) ([]model.CarModel, error)
	ModelByID(ctx context.Context, id int64) (model.CarModel, error)
	ListByBrand(ctx context.Context, brandID int64) ([]model.CarModel, error)
	SearchByName(ctx context.Context, fragment string) ([]model.CarModel, error)
	Create(ctx context.Context, params model.CarModelParams) (model.CarModel, error)
	Update(ctx context.Context, id int64, params model.CarModelParams) (model.CarModel, error)
	Delete(ctx context.Context, id int64) error
}

type CarService interface {
	List(ctx context.Context, filter model.CarsFilter) ([]model.CarView, error)
	CarByID(ctx context.Context, id int64) (model.CarView, error)
	Create(ctx context.Context, params model.CreateCarParams) (model.CarView, error)
	Update(ctx context.Context, id int64, params model.UpdateCarParams) (model.CarView, error)
	Delete(ctx context.Context, id int64) error
}

type handler struct {
	brands   BrandService
	models   ModelService
	cars     CarService
	validate *validator.Validate
}

func NewCatalogHandler(brands BrandService, models ModelService, cars CarService) *handler {
	return &handler{
		brands:   brands,
		models:   models,
		cars:     cars,
		validate: newValidator(),
	}
}

// Register mounts every catalog route on r.
func (h *handler) Register(r chi.Router) {
	r.Route("/api/marcas", func(r chi.Router) {
		r.Get("/", h.ListBrands)
		r.Post("/", h.CreateBrand)
		r.Get("/buscar", h.BrandByName)
		r.Get("/{id}", h.BrandByID)
		r.Put("/{id}", h.UpdateBrand)
		r.Delete("/{id}", h.DeleteBrand)
	})

	r.Route("/api/modelos", func(r chi.Router) {
		r.Get("/", h.ListModels)
		r.Post("/", h.CreateModel)
		r.Get("/buscar", h.SearchModels)
		r.Get("/marca/{marcaId}", h.ModelsByBrand)
		r.Get("/{id}", h.ModelByID)
		r.Put("/{id}", h.UpdateModel)
		r.Delete("/{id}", h.DeleteModel)
	})

	r.Route("/api/carros", func(r chi.Router) {
		r.Get("/", h.ListCars)
		r.Post("/", h.CreateCar)
		r.Get("/modelos/formatado", h.ExportCars)
		r.Get("/modelo/{modeloId}", h.CarsByModel)
		r.Get("/ano/{ano}", h.CarsByYear)
		r.Get("/combustivel/{combustivel}", h.CarsByFuel)
		r.Get("/cor/{cor}", h.CarsByColor)
		r.Get("/marca/{marcaId}", h.CarsByBrand)
		r.Get("/preco", h.CarsByPriceRange)
		r.Get("/{id}", h.CarByID)
		r.Put("/{id}", h.UpdateCar)
		r.Delete("/{id}", h.DeleteCar)
	})

	r.Get("/cars.json", h.ExportCarsFile)
}
