package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Leonardostavares/Catalogo-Carro/internal/config"
	"github.com/Leonardostavares/Catalogo-Carro/internal/converter"
	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	brandrepo "github.com/Leonardostavares/Catalogo-Carro/internal/repository/brand"
	carrepo "github.com/Leonardostavares/Catalogo-Carro/internal/repository/car"
	modelrepo "github.com/Leonardostavares/Catalogo-Carro/internal/repository/carmodel"
	brandsvc "github.com/Leonardostavares/Catalogo-Carro/internal/service/brand"
	carsvc "github.com/Leonardostavares/Catalogo-Carro/internal/service/car"
	modelsvc "github.com/Leonardostavares/Catalogo-Carro/internal/service/carmodel"
	ctconsumer "github.com/Leonardostavares/Catalogo-Carro/internal/service/consumer/catalog"
	ctproducer "github.com/Leonardostavares/Catalogo-Carro/internal/service/producer/catalog"
	thttp "github.com/Leonardostavares/Catalogo-Carro/internal/transport/http/catalog/v1"
	"github.com/Leonardostavares/Catalogo-Carro/platform/closer"
	"github.com/Leonardostavares/Catalogo-Carro/platform/db/migrator"
	"github.com/Leonardostavares/Catalogo-Carro/platform/db/txmanager"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka/consumer"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka/middleware"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka/producer"
	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

type Converter interface {
	CatalogEventToPayload(e model.CatalogEvent) ([]byte, error)
	PayloadToCatalogEvent(data []byte) (model.CatalogEvent, error)
}

type CatalogConsumer interface {
	RunCatalogEventsConsume(ctx context.Context) error
}

// EventSender is satisfied by every service's event port.
type EventSender interface {
	brandsvc.EventSender
	modelsvc.EventSender
	carsvc.EventSender
}

type CatalogHandler interface {
	Register(r chi.Router)
}

// BrandRepository and ModelRepository are shared by the CRUD services and car registration.
type BrandRepository interface {
	brandsvc.BrandRepository
	modelsvc.BrandRepository
	carsvc.BrandRepository
}

type ModelRepository interface {
	modelsvc.CarModelRepository
	carsvc.CarModelRepository
}

type TxManager interface {
	brandsvc.TxManager
	modelsvc.TxManager
	carsvc.TxManager
}

type di struct {
	dbPool    *pgxpool.Pool
	migrator  *migrator.Migrator
	txManager TxManager

	brandRepository BrandRepository
	modelRepository ModelRepository
	carRepository   carsvc.CarRepository

	syncProducer         sarama.SyncProducer
	catalogEventProducer kafka.Producer
	eventSender          EventSender

	consumerGroup        sarama.ConsumerGroup
	catalogEventConsumer kafka.Consumer
	catalogConsumer      CatalogConsumer

	conv Converter

	brandService thttp.BrandService
	modelService thttp.ModelService
	carService   thttp.CarService
	handler      CatalogHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) TxManager(ctx context.Context) TxManager {
	if d.txManager == nil {
		d.txManager = txmanager.NewManager(d.DBPool(ctx))
	}

	return d.txManager
}

func (d *di) BrandRepository(ctx context.Context) BrandRepository {
	if d.brandRepository == nil {
		d.brandRepository = brandrepo.NewBrandRepository(d.DBPool(ctx))
	}

	return d.brandRepository
}

func (d *di) ModelRepository(ctx context.Context) ModelRepository {
	if d.modelRepository == nil {
		d.modelRepository = modelrepo.NewCarModelRepository(d.DBPool(ctx))
	}

	return d.modelRepository
}

func (d *di) CarRepository(ctx context.Context) carsvc.CarRepository {
	if d.carRepository == nil {
		d.carRepository = carrepo.NewCarRepository(d.DBPool(ctx))
	}

	return d.carRepository
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.CatalogEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) CatalogEventProducer(ctx context.Context) kafka.Producer {
	if d.catalogEventProducer == nil {
		d.catalogEventProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.CatalogEventsTopic(),
			logger.L(),
		)
	}

	return d.catalogEventProducer
}

// EventSender publishes to Kafka when it is enabled and drops events otherwise.
func (d *di) EventSender(ctx context.Context) EventSender {
	if d.eventSender == nil {
		if !config.C().Kafka.Enabled() {
			d.eventSender = ctproducer.NewNopSender()
			return d.eventSender
		}

		d.eventSender = ctproducer.NewCatalogProducer(
			d.CatalogEventProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.eventSender
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.CatalogEventsConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) CatalogEventConsumer(ctx context.Context) kafka.Consumer {
	if d.catalogEventConsumer == nil {
		d.catalogEventConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.CatalogEventsTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.catalogEventConsumer
}

func (d *di) CatalogConsumer(ctx context.Context) CatalogConsumer {
	if d.catalogConsumer == nil {
		d.catalogConsumer = ctconsumer.NewCatalogConsumer(
			d.CatalogEventConsumer(ctx),
			d.KafkaConverter(ctx),
			ctconsumer.LogRecorder{},
		)
	}

	return d.catalogConsumer
}

func (d *di) BrandService(ctx context.Context) thttp.BrandService {
	if d.brandService == nil {
		d.brandService = brandsvc.NewBrandService(
			d.BrandRepository(ctx),
			d.TxManager(ctx),
			d.EventSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.brandService
}

func (d *di) ModelService(ctx context.Context) thttp.ModelService {
	if d.modelService == nil {
		d.modelService = modelsvc.NewCarModelService(
			d.ModelRepository(ctx),
			d.BrandRepository(ctx),
			d.TxManager(ctx),
			d.EventSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.modelService
}

func (d *di) CarService(ctx context.Context) thttp.CarService {
	if d.carService == nil {
		d.carService = carsvc.NewCarService(
			d.BrandRepository(ctx),
			d.ModelRepository(ctx),
			d.CarRepository(ctx),
			d.TxManager(ctx),
			d.EventSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.carService
}

func (d *di) CatalogHandler(ctx context.Context) CatalogHandler {
	if d.handler == nil {
		d.handler = thttp.NewCatalogHandler(
			d.BrandService(ctx),
			d.ModelService(ctx),
			d.CarService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
