package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

type CarModelRepository interface {
	List(ctx context.Context) ([]model.CarModel, error)
	ListByBrand(ctx context.Context, brandID int64) ([]model.CarModel, error)
	SearchByName(ctx context.Context, fragment string) ([]model.CarModel, error)
	ModelByID(ctx context.Context, id int64) (model.CarModel, error)
	ModelByBrandAndName(ctx context.Context, brandID int64, name string) (model.CarModel, error)
	Create(ctx context.Context, params model.CarModelParams) (model.CarModel, error)
	Update(ctx context.Context, id int64, params model.CarModelParams) (model.CarModel, error)
	Delete(ctx context.Context, id int64) error
	HasCars(ctx context.Context, id int64) (bool, error)
}

type BrandRepository interface {
	BrandByID(ctx context.Context, id int64) (model.Brand, error)
}

type TxManager interface {
	ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventSender interface {
	SendCatalogEvent(ctx context.Context, event model.CatalogEvent) error
}

type service struct {
	models         CarModelRepository
	brands         BrandRepository
	tx             TxManager
	events         EventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewCarModelService(
	models CarModelRepository,
	brands BrandRepository,
	tx TxManager,
	events EventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		models:         models,
		brands:         brands,
		tx:             tx,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

func (svc *service) List(ctx context.Context) ([]model.CarModel, error) {
	const op string = "carmodel.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	models, err := svc.models.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list models", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return models, nil
}

func (svc *service) ModelByID(ctx context.Context, id int64) (model.CarModel, error) {
	const op string = "carmodel.service.ModelByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	m, err := svc.models.ModelByID(ctx, id)
	if err != nil {
		return model.CarModel{}, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (svc *service) ListByBrand(ctx context.Context, brandID int64) ([]model.CarModel, error) {
	const op string = "carmodel.service.ListByBrand"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	models, err := svc.models.ListByBrand(ctx, brandID)
	if err != nil {
		logger.Error(ctx, "repository list models by brand",
			logger.String("op", op),
			logger.Int64("brand_id", brandID),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return models, nil
}

func (svc *service) SearchByName(ctx context.Context, fragment string) ([]model.CarModel, error) {
	const op string = "carmodel.service.SearchByName"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	models, err := svc.models.SearchByName(ctx, strings.TrimSpace(fragment))
	if err != nil {
		logger.Error(ctx, "repository search models", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return models, nil
}

func (svc *service) Create(ctx context.Context, params model.CarModelParams) (model.CarModel, error) {
	const op string = "carmodel.service.Create"

	params.Name = strings.TrimSpace(params.Name)
	log := logger.With(
		logger.String("op", op),
		logger.Int64("brand_id", params.BrandID),
		logger.String("model_name", params.Name),
	)

	if err := validateParams(params); err != nil {
		return model.CarModel{}, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var created model.CarModel
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		if _, err := svc.brands.BrandByID(ctx, params.BrandID); err != nil {
			return err
		}

		if _, err := svc.models.ModelByBrandAndName(ctx, params.BrandID, params.Name); err == nil {
			return model.ErrModelConflict
		} else if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		m, err := svc.models.Create(ctx, params)
		if err != nil {
			return err
		}
		created = m

		return nil
	})
	if err != nil {
		log.Error(ctx, "create model", logger.ErrorF(err))
		return model.CarModel{}, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, model.EventModelCreated, created.ID, created.Name)

	return created, nil
}

func (svc *service) Update(ctx context.Context, id int64, params model.CarModelParams) (model.CarModel, error) {
	const op string = "carmodel.service.Update"

	params.Name = strings.TrimSpace(params.Name)
	log := logger.With(
		logger.String("op", op),
		logger.Int64("model_id", id),
		logger.Int64("brand_id", params.BrandID),
	)

	if err := validateParams(params); err != nil {
		return model.CarModel{}, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var updated model.CarModel
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		if _, err := svc.models.ModelByID(ctx, id); err != nil {
			return err
		}

		if _, err := svc.brands.BrandByID(ctx, params.BrandID); err != nil {
			return err
		}

		other, err := svc.models.ModelByBrandAndName(ctx, params.BrandID, params.Name)
		switch {
		case err == nil && other.ID != id:
			return model.ErrModelConflict
		case err != nil && !errors.Is(err, model.ErrNotFound):
			return err
		}

		updated, err = svc.models.Update(ctx, id, params)
		return err
	})
	if err != nil {
		log.Error(ctx, "update model", logger.ErrorF(err))
		return model.CarModel{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	const op string = "carmodel.service.Delete"
	log := logger.With(logger.String("op", op), logger.Int64("model_id", id))

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		hasCars, err := svc.models.HasCars(ctx, id)
		if err != nil {
			return err
		}
		if hasCars {
			return model.ErrHasDependents
		}

		return svc.models.Delete(ctx, id)
	})
	if err != nil {
		log.Error(ctx, "delete model", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) publish(ctx context.Context, typ model.EventType, id int64, name string) {
	err := svc.events.SendCatalogEvent(ctx, model.CatalogEvent{
		ID:         uuid.New(),
		Type:       typ,
		EntityID:   id,
		Name:       name,
		OccurredAt: svc.now(),
	})
	if err != nil {
		logger.Warn(ctx, "send catalog event",
			logger.String("event_type", string(typ)),
			logger.Int64("entity_id", id),
			logger.ErrorF(err),
		)
	}
}

func validateParams(params model.CarModelParams) error {
	if params.Name == "" {
		return model.NewValidationError("nome", "Nome do modelo é obrigatório")
	}
	if params.ReferencePrice.LessThan(model.MinMoney) {
		return model.NewValidationError("valorFipe", "Valor FIPE deve ser maior que zero")
	}
	if params.ReferencePrice.GreaterThan(model.MaxMoney) {
		return model.NewValidationError("valorFipe", "Valor FIPE deve ser menor ou igual a 999999999999.99")
	}
	return nil
}
