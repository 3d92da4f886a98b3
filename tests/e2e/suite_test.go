//go:build integration

package e2e

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	kafkaTc "github.com/testcontainers/testcontainers-go/modules/kafka"

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
	"github.com/Leonardostavares/Catalogo-Carro/platform/db/migrator"
	"github.com/Leonardostavares/Catalogo-Carro/platform/db/txmanager"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka/consumer"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka/middleware"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka/producer"
	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
	pgtc "github.com/Leonardostavares/Catalogo-Carro/platform/testcontainers/postgres"
)

const (
	migrationDir = "../../migrations"

	kafkaImage = "confluentinc/cp-kafka:7.6.1"

	topicCatalogEvents = "catalog.events"
	consumerGroupID    = "catalog-events-it"
)

type carService interface {
	thttp.CarService
	ResolveBrand(ctx context.Context, name string) (model.Brand, model.Outcome, error)
	ResolveModel(ctx context.Context, brand model.Brand, name string) (model.CarModel, model.Outcome, error)
}

var (
	ctx    context.Context
	cancel context.CancelFunc

	pgC  *pgtc.Container
	pool *pgxpool.Pool

	kafkaC       tc.Container
	kafkaBrokers []string

	brands thttp.BrandService
	models thttp.ModelService
	cars   carService

	server *httptest.Server
	events *eventRecorder
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Catalog Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx, cancel = context.WithCancel(context.Background())
	logger.SetNopLogger()

	By("starting postgres container")
	var err error
	pgC, err = pgtc.NewContainer(ctx)
	Expect(err).NotTo(HaveOccurred())
	pool = pgC.Pool()

	By("running migrations")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pool), migrationDir)
	Expect(m.Up()).To(Succeed())
	defer m.Close()

	By("starting kafka container (cp-kafka)")
	kafkaC, kafkaBrokers, err = runKafka(ctx)
	Expect(err).NotTo(HaveOccurred())

	By("creating kafka topics")
	Expect(createTopics(kafkaBrokers, topicCatalogEvents)).To(Succeed())

	producerConfig := sarama.NewConfig()
	producerConfig.Version = sarama.V4_0_0_0
	producerConfig.Producer.Return.Successes = true

	p, err := sarama.NewSyncProducer(kafkaBrokers, producerConfig)
	Expect(err).NotTo(HaveOccurred())

	conv := converter.NewKafkaConverter()
	sender := ctproducer.NewCatalogProducer(
		producer.NewProducer(p, topicCatalogEvents, logger.L()),
		conv,
	)

	By("wiring repositories and services")
	tx := txmanager.NewManager(pool)
	brandRepo := brandrepo.NewBrandRepository(pool)
	modelRepo := modelrepo.NewCarModelRepository(pool)

	brands = brandsvc.NewBrandService(brandRepo, tx, sender, 2*time.Second, 2*time.Second)
	models = modelsvc.NewCarModelService(modelRepo, brandRepo, tx, sender, 2*time.Second, 2*time.Second)
	cars = carsvc.NewCarService(brandRepo, modelRepo, carrepo.NewCarRepository(pool), tx, sender, 2*time.Second, 2*time.Second)

	r := chi.NewRouter()
	thttp.NewCatalogHandler(brands, models, cars).Register(r)
	server = httptest.NewServer(r)

	By("starting catalog events consumer in background")
	consumerConfig := sarama.NewConfig()
	consumerConfig.Version = sarama.V4_0_0_0
	consumerConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	consumerConfig.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(kafkaBrokers, consumerGroupID, consumerConfig)
	Expect(err).NotTo(HaveOccurred())

	events = &eventRecorder{}
	catalogConsumer := ctconsumer.NewCatalogConsumer(
		consumer.NewConsumer(
			group,
			[]string{topicCatalogEvents},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		),
		conv,
		events,
	)

	consumerErrCh := make(chan error, 1)
	go func() {
		consumerErrCh <- catalogConsumer.RunCatalogEventsConsume(ctx)
	}()
	Consistently(consumerErrCh, 2*time.Second).ShouldNot(Receive())
})

var _ = AfterSuite(func() {
	if cancel != nil {
		cancel()
	}
	if server != nil {
		server.Close()
	}
	if pgC != nil {
		_ = pgC.Terminate(context.Background())
	}
	if kafkaC != nil {
		_ = kafkaC.Terminate(context.Background())
	}
})

var _ = BeforeEach(func() {
	By("cleaning catalog tables")
	_, err := pool.Exec(ctx, "TRUNCATE TABLE cars, car_models, brands RESTART IDENTITY CASCADE")
	Expect(err).NotTo(HaveOccurred())
})

type eventRecorder struct {
	mu     sync.Mutex
	events []model.CatalogEvent
}

func (r *eventRecorder) RecordCatalogEvent(_ context.Context, event model.CatalogEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

// Has reports whether an event of typ for entityID was consumed.
func (r *eventRecorder) Has(typ model.EventType, entityID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.Type == typ && e.EntityID == entityID {
			return true
		}
	}
	return false
}

func runKafka(ctx context.Context) (tc.Container, []string, error) {
	c, err := kafkaTc.Run(ctx,
		kafkaImage,
		kafkaTc.WithClusterID("Q2F0YWxvZ0NhcnJvSVQxMg"),
	)
	if err != nil {
		return nil, []string{}, err
	}

	bootstrap, err := c.Brokers(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, []string{}, err
	}

	return c, bootstrap, nil
}

func createTopics(brokers []string, topics ...string) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = 10 * time.Second

	admin, err := sarama.NewClusterAdmin(brokers, cfg)
	if err != nil {
		return err
	}
	defer admin.Close()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return err
		}
	}
	return nil
}
