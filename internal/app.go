package internal

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	process "github.com/s-larionov/process-manager"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fanbase-labs/relation-storage/internal/config"
	"github.com/fanbase-labs/relation-storage/internal/entitlement"
	"github.com/fanbase-labs/relation-storage/internal/friend"
	"github.com/fanbase-labs/relation-storage/internal/list"
	"github.com/fanbase-labs/relation-storage/internal/promotion"
	"github.com/fanbase-labs/relation-storage/internal/report"
	"github.com/fanbase-labs/relation-storage/internal/subscription"
	"github.com/fanbase-labs/relation-storage/internal/user"
	"github.com/fanbase-labs/relation-storage/pkg/health"
	"github.com/fanbase-labs/relation-storage/pkg/prometheus"
)

type Application struct {
	sigChan <-chan os.Signal
	manager *process.Manager
	cfg     config.App
	db      *gorm.DB
	rdb     *redis.Client
	nc      *nats.Conn

	cache *entitlement.Cache
	lists *list.Catalog
	ent   *entitlement.Service
	promo *promotion.Service
}

func NewApplication(cfg config.App) (*Application, error) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	a := &Application{
		sigChan: sigChan,
		cfg:     cfg,
		manager: process.NewManager(),
	}

	err := a.bootstrap()
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Application) Run() {
	a.manager.StartAll()
	a.registerShutdown()
}

func (a *Application) bootstrap() error {
	initializers := []func() error{
		a.initDB,
		a.initRedis,
		a.initNats,

		// Init Dependencies
		a.initServices,

		// Init Workers: Application
		a.initAPI,
		a.initConsumers,

		// Init Workers: System
		a.initPrometheusWorker,
		a.initHealthWorker,
	}

	for _, initializer := range initializers {
		if err := initializer(); err != nil {
			return err
		}
	}

	return nil
}

func (a *Application) initDB() error {
	db, err := gorm.Open(postgres.Open(a.cfg.DB.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	ps, err := db.DB()
	if err != nil {
		return err
	}
	ps.SetMaxOpenConns(a.cfg.DB.MaxOpenConnections)

	a.db = db
	if a.cfg.DB.Debug {
		a.db = db.Debug()
	}

	return err
}

func (a *Application) initRedis() error {
	a.rdb = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Address,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	return nil
}

func (a *Application) initNats() error {
	nc, err := nats.Connect(
		a.cfg.Nats.URL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(a.cfg.Nats.MaxReconnects),
		nats.ReconnectWait(a.cfg.Nats.ReconnectTimeout),
	)
	if err != nil {
		return err
	}

	a.nc = nc

	return nil
}

func (a *Application) initServices() error {
	a.lists = list.NewCatalog(list.NewRepo(a.db))
	a.cache = entitlement.NewCache(a.rdb, a.cfg.Redis.NotAllowedTTL)

	subRepo := subscription.NewRepo(a.db)

	a.ent = entitlement.NewService(
		a.lists,
		subRepo,
		report.NewRepo(a.db),
		friend.NewRepo(a.db),
		user.NewService(user.NewRepo(a.db)),
		a.cache,
	)

	a.promo = promotion.NewService(promotion.NewRepo(a.db), a.lists, subRepo)

	return nil
}

func (a *Application) initAPI() error {
	router := mux.NewRouter()
	entitlement.NewServer(a.ent).RegisterRoutes(router)
	promotion.NewServer(a.promo).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              a.cfg.API.Bind,
		Handler:           router,
		ReadHeaderTimeout: time.Minute,
	}

	a.manager.AddWorker(process.NewServerWorker("API", srv))

	return nil
}

func (a *Application) initConsumers() error {
	consumer := entitlement.NewConsumer(a.nc, a.cache)

	a.manager.AddWorker(process.NewCallbackWorker("connection-events", consumer.Start))

	return nil
}

func (a *Application) initPrometheusWorker() error {
	srv := prometheus.NewServer(a.cfg.Prometheus.Listen, "/metrics")
	a.manager.AddWorker(process.NewServerWorker("prometheus", srv))

	return nil
}

func (a *Application) initHealthWorker() error {
	srv := health.NewHealthCheckServer(a.cfg.Health.Listen, "/status", health.DefaultHandler(a.manager))
	a.manager.AddWorker(process.NewServerWorker("health", srv))

	return nil
}

func (a *Application) registerShutdown() {
	go func(manager *process.Manager) {
		<-a.sigChan

		manager.StopAll()
	}(a.manager)

	a.manager.AwaitAll()
}
