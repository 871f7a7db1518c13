package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/inventory-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/inventory-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/inventory-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/inventory-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/inventory-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/clients"
	"github.com/DRSN-tech/inventory-backend/pkg/closer"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/DRSN-tech/inventory-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
)

// App собирает все зависимости сервиса и управляет их жизненным циклом.
type App struct {
	cfg          *config.Config
	logger       logger.Logger
	db           *postgres.PgDatabase
	producer     *kafka.Producer
	outboxWorker *kafka.OutboxWorker
	httpSrv      *v1Http.Server
	closer       *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const op = "App.NewApp"

	c := closer.NewCloser(2 * time.Second)

	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	if err := db.RunMigrations(log); err != nil {
		return nil, e.Wrap(op, err)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(op, err)
	}
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(op, err)
	}
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	prConv := pgdbConv.NewProductConverterImpl()
	custConv := pgdbConv.NewCustomerConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	customerRepo := pgdb.NewCustomerRepo(db.Pool, custConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	productUC := usecase.NewProductUC(productRepo, cacheRepo, db.Pool, log)
	customerUC := usecase.NewCustomerUC(customerRepo, db.Pool, log)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, customerRepo, outboxRepo, cacheRepo, db.Pool, log)
	analyticsUC := usecase.NewAnalyticsUC(productRepo, customerRepo, orderRepo, log)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, customerUC, orderUC, analyticsUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:          cfg,
		logger:       log,
		db:           db,
		producer:     producer,
		outboxWorker: outboxWorker,
		httpSrv:      httpSrv,
		closer:       c,
	}, nil
}

// Run запускает outbox-воркер и HTTP-сервер, блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	workerCancel()
	a.outboxWorker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		if appErr == nil {
			appErr = err
		}
	} else {
		a.logger.Infof("All resources released")
	}

	return appErr
}
