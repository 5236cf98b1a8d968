package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"emostore"
	"emostore/config"
	"emostore/internal/application/usecase"
	"emostore/internal/domain/repository/blob"
	"emostore/internal/domain/repository/broker"
	"emostore/internal/domain/storagepath"
	brokerInfra "emostore/internal/infrastructure/broker"
	"emostore/internal/infrastructure/database"
	"emostore/internal/infrastructure/fsblob"
	"emostore/internal/infrastructure/minioblob"
	"emostore/internal/infrastructure/settings"
	"emostore/internal/presentation/handler"
	"emostore/pkg/logger"
)

// blobStore is the full surface either backend provides.
type blobStore interface {
	blob.Writer
	blob.Reader
	blob.Remover
	blob.UsageMeter
	blob.Walker
}

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running emostore", "version", emostore.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	store, err := newBlobStore(cfg)
	if err != nil {
		ExitOnError(err)
	}

	var publisher broker.Publisher
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := brokerInfra.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}

		publisher = brokerInfra.NewPublisher(brokerClient, cfg.PublisherConfig)
	} else {
		logger.Warn("BROKER_URI not set, capture events will not be published")
	}

	policy := settings.NewProvider(db, cfg.Settings)

	creator := database.NewMediaCreator(db)
	retriever := database.NewMediaRetriever(db)
	lister := database.NewMediaLister(db)
	remover := database.NewMediaRemover(db)
	stats := database.NewMediaStats(db)
	responses := database.NewResponseReader(db)

	capturer := usecase.NewCapturer(storagepath.NewAllocator(), store, store, store,
		creator, publisher, policy)
	sweeper := usecase.NewSweeper(lister, remover, store, store, policy)
	reconciler := usecase.NewReconciler(store, store, retriever, policy)
	exporter := usecase.NewExporter(lister, responses, store)
	fileLister := usecase.NewLister(lister)
	statsReader := usecase.NewStatsReader(stats, policy)
	getter := usecase.NewGetter(retriever, store)

	captureHandler := handler.NewCaptureHandler(capturer)
	getHandler := handler.NewGetHandler(getter)
	listHandler := handler.NewListHandler(fileLister)
	statsHandler := handler.NewStatsHandler(statsReader)
	exportHandler := handler.NewExportHandler(exporter)
	sweepHandler := handler.NewSweepHandler(sweeper, reconciler)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("52M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/captures", captureHandler.HandleCapture)
	e.GET("/files/:id", getHandler.HandleGet)
	e.GET("/sessions/:sessionId/files", listHandler.HandleSessionFiles)
	e.GET("/users/:userId/files", listHandler.HandleUserFiles)
	e.GET("/sessions/:sessionId/export", exportHandler.HandleExport)
	e.GET("/storage/stats", statsHandler.HandleStats)
	e.POST("/storage/sweep", sweepHandler.HandleSweep)
	e.POST("/storage/reconcile", sweepHandler.HandleReconcile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		ExitOnError(err)
	}
}

func newBlobStore(cfg *config.Config) (blobStore, error) {
	if cfg.Default.Backend == config.BackendS3 {
		return minioblob.New(cfg.MinIOBlob)
	}

	return fsblob.New(cfg.FSBlob)
}
