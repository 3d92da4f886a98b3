package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

const (
	minYear    = 1900
	maxYear    = 2030
	minDoors   = 2
	maxDoors   = 5
	minNameLen = 2
	maxNameLen = 100
)

type BrandRepository interface {
	BrandByName(ctx context.Context, name string) (model.Brand, error)
	CreateIfAbsent(ctx context.Context, name string) (model.Brand, error)
}

type CarModelRepository interface {
	ModelByID(ctx context.Context, id int64) (model.CarModel, error)
	ModelByBrandAndName(ctx context.Context, brandID int64, name string) (model.CarModel, error)
	CreateIfAbsent(ctx context.Context, brandID int64, name string) (model.CarModel, error)
}

type CarRepository interface {
	Create(ctx context.Context, car model.Car) (int64, error)
	CarByID(ctx context.Context, id int64) (model.CarView, error)
	List(ctx context.Context, filter model.CarsFilter) ([]model.CarView, error)
	Update(ctx context.Context, car model.Car) error
	Delete(ctx context.Context, id int64) error
}

type TxManager interface {
	ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventSender interface {
	SendCatalogEvent(ctx context.Context, event model.CatalogEvent) error
}

type service struct {
	brands         BrandRepository
	models         CarModelRepository
	cars           CarRepository
	tx             TxManager
	events         EventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewCarService(
	brands BrandRepository,
	models CarModelRepository,
	cars CarRepository,
	tx TxManager,
	events EventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		brands:         brands,
		models:         models,
		cars:           cars,
		tx:             tx,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

// ResolveBrand returns the brand with the given name, creating it when absent.
func (svc *service) ResolveBrand(ctx context.Context, name string) (model.Brand, model.Outcome, error) {
	const op string = "car.service.ResolveBrand"

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var (
		brand   model.Brand
		outcome model.Outcome
	)
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		var err error
		brand, outcome, err = svc.resolveBrand(ctx, name)
		return err
	})
	if err != nil {
		logger.Error(ctx, "resolve brand", logger.String("op", op), logger.ErrorF(err))
		return model.Brand{}, "", fmt.Errorf("%s: %w", op, err)
	}

	if outcome.Created() {
		svc.publish(ctx, []model.CatalogEvent{svc.event(model.EventBrandCreated, brand.ID, brand.Name)})
	}

	return brand, outcome, nil
}

// ResolveModel returns the model of brand with the given name, creating it
// without reference price when absent.
func (svc *service) ResolveModel(ctx context.Context, brand model.Brand, name string) (model.CarModel, model.Outcome, error) {
	const op string = "car.service.ResolveModel"

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var (
		carModel model.CarModel
		outcome  model.Outcome
	)
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		var err error
		carModel, outcome, err = svc.resolveModel(ctx, brand, name)
		return err
	})
	if err != nil {
		logger.Error(ctx, "resolve model",
			logger.String("op", op),
			logger.Int64("brand_id", brand.ID),
			logger.ErrorF(err),
		)
		return model.CarModel{}, "", fmt.Errorf("%s: %w", op, err)
	}

	if outcome.Created() {
		svc.publish(ctx, []model.CatalogEvent{svc.event(model.EventModelCreated, carModel.ID, carModel.Name)})
	}

	return carModel, outcome, nil
}

func (svc *service) Create(ctx context.Context, params model.CreateCarParams) (model.CarView, error) {
	const op string = "car.service.Create"
	log := logger.With(
		logger.String("op", op),
		logger.String("brand_name", params.BrandName),
		logger.String("model_name", params.ModelName),
	)

	if err := validateCar(params.Year, params.Doors, params.Fuel, params.Color, params.Value); err != nil {
		return model.CarView{}, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var (
		view    model.CarView
		pending []model.CatalogEvent
	)
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		pending = pending[:0]

		brand, brandOutcome, err := svc.resolveBrand(ctx, params.BrandName)
		if err != nil {
			return err
		}
		if brandOutcome.Created() {
			pending = append(pending, svc.event(model.EventBrandCreated, brand.ID, brand.Name))
		}

		carModel, modelOutcome, err := svc.resolveModel(ctx, brand, params.ModelName)
		if err != nil {
			return err
		}
		if modelOutcome.Created() {
			pending = append(pending, svc.event(model.EventModelCreated, carModel.ID, carModel.Name))
		}

		id, err := svc.cars.Create(ctx, model.Car{
			ModelID:      carModel.ID,
			Year:         params.Year,
			Fuel:         strings.TrimSpace(params.Fuel),
			Doors:        params.Doors,
			Color:        strings.TrimSpace(params.Color),
			Value:        params.Value.Round(2),
			RegisteredAt: svc.now().Unix(),
		})
		if err != nil {
			return err
		}

		view, err = svc.cars.CarByID(ctx, id)
		if err != nil {
			return err
		}
		pending = append(pending, svc.event(model.EventCarCreated, view.ID, view.ModelName))

		return nil
	})
	if err != nil {
		log.Error(ctx, "create car", logger.ErrorF(err))
		return model.CarView{}, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, pending)

	return view, nil
}

func (svc *service) Update(ctx context.Context, id int64, params model.UpdateCarParams) (model.CarView, error) {
	const op string = "car.service.Update"
	log := logger.With(logger.String("op", op), logger.Int64("car_id", id))

	if err := validateCar(params.Year, params.Doors, params.Fuel, params.Color, params.Value); err != nil {
		return model.CarView{}, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var (
		view    model.CarView
		pending []model.CatalogEvent
	)
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		pending = pending[:0]

		current, err := svc.cars.CarByID(ctx, id)
		if err != nil {
			return err
		}

		modelID := current.ModelID
		switch {
		case strings.TrimSpace(params.ModelName) != "":
			brandName := strings.TrimSpace(params.BrandName)
			if brandName == "" {
				brandName = current.BrandName
			}

			brand, brandOutcome, err := svc.resolveBrand(ctx, brandName)
			if err != nil {
				return err
			}
			if brandOutcome.Created() {
				pending = append(pending, svc.event(model.EventBrandCreated, brand.ID, brand.Name))
			}

			carModel, modelOutcome, err := svc.resolveModel(ctx, brand, params.ModelName)
			if err != nil {
				return err
			}
			if modelOutcome.Created() {
				pending = append(pending, svc.event(model.EventModelCreated, carModel.ID, carModel.Name))
			}
			modelID = carModel.ID

		case params.ModelID != nil:
			carModel, err := svc.models.ModelByID(ctx, *params.ModelID)
			if err != nil {
				return err
			}
			modelID = carModel.ID
		}

		err = svc.cars.Update(ctx, model.Car{
			ID:      id,
			ModelID: modelID,
			Year:    params.Year,
			Fuel:    strings.TrimSpace(params.Fuel),
			Doors:   params.Doors,
			Color:   strings.TrimSpace(params.Color),
			Value:   params.Value.Round(2),
		})
		if err != nil {
			return err
		}

		view, err = svc.cars.CarByID(ctx, id)
		if err != nil {
			return err
		}
		pending = append(pending, svc.event(model.EventCarUpdated, view.ID, view.ModelName))

		return nil
	})
	if err != nil {
		log.Error(ctx, "update car", logger.ErrorF(err))
		return model.CarView{}, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, pending)

	return view, nil
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	const op string = "car.service.Delete"

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.cars.Delete(wctx, id); err != nil {
		logger.Error(ctx, "delete car",
			logger.String("op", op),
			logger.Int64("car_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, []model.CatalogEvent{svc.event(model.EventCarDeleted, id, "")})

	return nil
}

func (svc *service) CarByID(ctx context.Context, id int64) (model.CarView, error) {
	const op string = "car.service.CarByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	car, err := svc.cars.CarByID(ctx, id)
	if err != nil {
		return model.CarView{}, fmt.Errorf("%s: %w", op, err)
	}

	return car, nil
}

func (svc *service) List(ctx context.Context, filter model.CarsFilter) ([]model.CarView, error) {
	const op string = "car.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	cars, err := svc.cars.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list cars", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cars, nil
}

func (svc *service) resolveBrand(ctx context.Context, name string) (model.Brand, model.Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Brand{}, "", model.NewValidationError("nomeMarca", "Nome da marca é obrigatório")
	}
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return model.Brand{}, "", model.NewValidationError("nomeMarca", "Nome da marca deve ter entre 2 e 100 caracteres")
	}

	brand, err := svc.brands.BrandByName(ctx, name)
	if err == nil {
		return brand, model.OutcomeReused, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Brand{}, "", err
	}

	brand, err = svc.brands.CreateIfAbsent(ctx, name)
	if err == nil {
		return brand, model.OutcomeCreated, nil
	}
	if !errors.Is(err, model.ErrBrandConflict) {
		return model.Brand{}, "", err
	}

	// Lost the insert race to a concurrent writer.
	brand, err = svc.brands.BrandByName(ctx, name)
	if err != nil {
		return model.Brand{}, "", err
	}

	return brand, model.OutcomeReused, nil
}

func (svc *service) resolveModel(ctx context.Context, brand model.Brand, name string) (model.CarModel, model.Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.CarModel{}, "", model.NewValidationError("nomeModelo", "Nome do modelo é obrigatório")
	}
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return model.CarModel{}, "", model.NewValidationError("nomeModelo", "Nome do modelo deve ter entre 2 e 100 caracteres")
	}

	carModel, err := svc.models.ModelByBrandAndName(ctx, brand.ID, name)
	if err == nil {
		return carModel, model.OutcomeReused, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.CarModel{}, "", err
	}

	carModel, err = svc.models.CreateIfAbsent(ctx, brand.ID, name)
	if err == nil {
		return carModel, model.OutcomeCreated, nil
	}
	if !errors.Is(err, model.ErrModelConflict) {
		return model.CarModel{}, "", err
	}

	carModel, err = svc.models.ModelByBrandAndName(ctx, brand.ID, name)
	if err != nil {
		return model.CarModel{}, "", err
	}

	return carModel, model.OutcomeReused, nil
}

func (svc *service) event(typ model.EventType, id int64, name string) model.CatalogEvent {
	return model.CatalogEvent{
		ID:         uuid.New(),
		Type:       typ,
		EntityID:   id,
		Name:       name,
		OccurredAt: svc.now(),
	}
}

func (svc *service) publish(ctx context.Context, events []model.CatalogEvent) {
	for _, e := range events {
		if err := svc.events.SendCatalogEvent(ctx, e); err != nil {
			logger.Warn(ctx, "send catalog event",
				logger.String("event_type", string(e.Type)),
				logger.Int64("entity_id", e.EntityID),
				logger.ErrorF(err),
			)
		}
	}
}

func validateCar(year, doors int, fuel, color string, value decimal.Decimal) error {
	fields := make(map[string]string)

	if year < minYear {
		fields["ano"] = "Ano deve ser maior ou igual a 1900"
	} else if year > maxYear {
		fields["ano"] = "Ano deve ser menor ou igual a 2030"
	}
	if doors < minDoors {
		fields["numPortas"] = "Número de portas deve ser maior ou igual a 2"
	} else if doors > maxDoors {
		fields["numPortas"] = "Número de portas deve ser menor ou igual a 5"
	}
	if strings.TrimSpace(fuel) == "" {
		fields["combustivel"] = "Combustível é obrigatório"
	}
	if strings.TrimSpace(color) == "" {
		fields["cor"] = "Cor é obrigatória"
	}
	if value.LessThan(model.MinMoney) {
		fields["valor"] = "Valor deve ser maior que zero"
	} else if value.GreaterThan(model.MaxMoney) {
		fields["valor"] = "Valor deve ser menor ou igual a 999999999999.99"
	}

	if len(fields) > 0 {
		return &model.ValidationError{Fields: fields}
	}
	return nil
}
