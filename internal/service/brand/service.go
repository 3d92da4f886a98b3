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

type BrandRepository interface {
	List(ctx context.Context) ([]model.Brand, error)
	BrandByID(ctx context.Context, id int64) (model.Brand, error)
	BrandByName(ctx context.Context, name string) (model.Brand, error)
	Create(ctx context.Context, params model.BrandParams) (model.Brand, error)
	Update(ctx context.Context, id int64, params model.BrandParams) (model.Brand, error)
	Delete(ctx context.Context, id int64) error
	HasModels(ctx context.Context, id int64) (bool, error)
}

type TxManager interface {
	ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventSender interface {
	SendCatalogEvent(ctx context.Context, event model.CatalogEvent) error
}

type service struct {
	repo           BrandRepository
	tx             TxManager
	events         EventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewBrandService(
	repository BrandRepository,
	tx TxManager,
	events EventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		tx:             tx,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

func (svc *service) List(ctx context.Context) ([]model.Brand, error) {
	const op string = "brand.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	brands, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list brands", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return brands, nil
}

func (svc *service) BrandByID(ctx context.Context, id int64) (model.Brand, error) {
	const op string = "brand.service.BrandByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	b, err := svc.repo.BrandByID(ctx, id)
	if err != nil {
		return model.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) BrandByName(ctx context.Context, name string) (model.Brand, error) {
	const op string = "brand.service.BrandByName"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	b, err := svc.repo.BrandByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return model.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) Create(ctx context.Context, params model.BrandParams) (model.Brand, error) {
	const op string = "brand.service.Create"

	name := strings.TrimSpace(params.Name)
	log := logger.With(logger.String("op", op), logger.String("brand_name", name))

	if name == "" {
		return model.Brand{}, fmt.Errorf("%s: %w", op, model.NewValidationError("nomeMarca", "Nome da marca é obrigatório"))
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var created model.Brand
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		if _, err := svc.repo.BrandByName(ctx, name); err == nil {
			return model.ErrBrandConflict
		} else if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		b, err := svc.repo.Create(ctx, model.BrandParams{Name: name})
		if err != nil {
			return err
		}
		created = b

		return nil
	})
	if err != nil {
		log.Error(ctx, "create brand", logger.ErrorF(err))
		return model.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, model.EventBrandCreated, created.ID, created.Name)

	return created, nil
}

func (svc *service) Update(ctx context.Context, id int64, params model.BrandParams) (model.Brand, error) {
	const op string = "brand.service.Update"

	name := strings.TrimSpace(params.Name)
	log := logger.With(
		logger.String("op", op),
		logger.Int64("brand_id", id),
		logger.String("brand_name", name),
	)

	if name == "" {
		return model.Brand{}, fmt.Errorf("%s: %w", op, model.NewValidationError("nomeMarca", "Nome da marca é obrigatório"))
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var updated model.Brand
	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		if _, err := svc.repo.BrandByID(ctx, id); err != nil {
			return err
		}

		other, err := svc.repo.BrandByName(ctx, name)
		switch {
		case err == nil && other.ID != id:
			return model.ErrBrandConflict
		case err != nil && !errors.Is(err, model.ErrNotFound):
			return err
		}

		updated, err = svc.repo.Update(ctx, id, model.BrandParams{Name: name})
		return err
	})
	if err != nil {
		log.Error(ctx, "update brand", logger.ErrorF(err))
		return model.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	const op string = "brand.service.Delete"
	log := logger.With(logger.String("op", op), logger.Int64("brand_id", id))

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	err := svc.tx.ReadCommitted(wctx, func(ctx context.Context) error {
		hasModels, err := svc.repo.HasModels(ctx, id)
		if err != nil {
			return err
		}
		if hasModels {
			return model.ErrHasDependents
		}

		return svc.repo.Delete(ctx, id)
	})
	if err != nil {
		log.Error(ctx, "delete brand", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// publish runs after commit. A failed send is logged and never fails the request.
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
