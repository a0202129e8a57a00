package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/kasir-api/docs"
	config "github.com/DRSN-tech/kasir-api/internal/cfg"
	v1Http "github.com/DRSN-tech/kasir-api/internal/delivery/v1/http"
	"github.com/DRSN-tech/kasir-api/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/kasir-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/kasir-api/internal/repository/redis"
	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/DRSN-tech/kasir-api/pkg/clients"
	"github.com/DRSN-tech/kasir-api/pkg/closer"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
	"github.com/DRSN-tech/kasir-api/pkg/metrics"
	"github.com/DRSN-tech/kasir-api/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	checkDatabase = "database"
	checkRedis    = "redis"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

// NewApp открывает пул соединений и собирает зависимости.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(log, 0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("postgres pool", func(context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl(catConv)

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)

	healthUC := usecase.NewHealthUC().
		Register(checkDatabase, pgdb.NewHealthRepo(db.Pool).PingDatabase)

	if cfg.Redis.Enabled() {
		redisClient := clients.NewRedisClient(cfg.Redis)
		cl.Add("redis client", redisClient.Close)
		healthUC.Register(checkRedis, redis.NewHealthRepo(redisClient).PingRedis)
		log.Infof("redis health check enabled for %s", cfg.Redis.Addr)
	}

	categoryUC := usecase.NewCategoryUC(categoryRepo, log)
	productUC := usecase.NewProductUC(productRepo, log)

	docs.SwaggerInfo.Host = cfg.App.SwaggerHost

	r := chi.NewRouter()
	v1Http.NewRouter(r, log, metrics.New(), cfg.App.SwaggerHost).
		Init(categoryUC, productUC, healthUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add("http server", httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  log,
		closer:  cl,
		httpSrv: httpSrv,
	}, nil
}

// Run обслуживает запросы до сигнала остановки или падения сервера,
// затем закрывает ресурсы в пределах SHUTDOWN_TIMEOUT.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("received %s, stopping gracefully...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		return errors.Join(appErr, err)
	}

	a.logger.Infof("application shutdown complete")
	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	const connectTimeout = 10 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	log.Infof("connected to database (max_conns=%d)", cfg.Db.MaxConns)
	return db, nil
}
