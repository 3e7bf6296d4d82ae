package main

import (
	"context"
	"net/http"

	"github.com/taskora/client-go/application/catalog"
	"github.com/taskora/client-go/application/chat"
	"github.com/taskora/client-go/application/session"
	"github.com/taskora/client-go/cmd/config"
	redisclient "github.com/taskora/client-go/cmd/redis"
	_ "github.com/taskora/client-go/docs"
	cacherepo "github.com/taskora/client-go/repository/cache"
	"github.com/taskora/client-go/repository/store"
	"github.com/taskora/client-go/thirdparty/backendapi"
	"github.com/taskora/client-go/transport"
	"github.com/taskora/client-go/utils/logger"
	"github.com/taskora/client-go/utils/notify"
	validatorx "github.com/taskora/client-go/utils/validator"
	"go.uber.org/zap"
)

// @title TASKORA LOCAL GATEWAY
// @version 1.0
// @description Local gateway hosting the Taskora marketplace client core
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting gateway", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Durable session store: Redis when configured, sealed file otherwise
	var sessionStore store.SessionStore
	if cfg.Redis.Host != "" {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		sessionStore = store.NewRedisStore()
	} else {
		fileStore, err := store.NewFileStore(cfg.Session.FilePath, cfg.Session.FileSecret)
		if err != nil {
			logger.Fatal("err open session file store", zap.Error(err))
		}
		sessionStore = fileStore
	}

	api := backendapi.NewClient(cfg)
	dialer := backendapi.NewEventDialer(cfg.API.WSURL)
	notifier := notify.NewLogNotifier()

	// Initialize application layers
	sessionApp := session.NewSessionApp(api, sessionStore, notifier)
	sessionApp.Restore(context.Background())

	chatApp := chat.NewChatApp(cfg, sessionApp, api, dialer)
	if sessionApp.Snapshot().IsAuthenticated() {
		go chatApp.Connect(context.Background())
	}

	catalogApp := catalog.NewCatalogApp(cfg, api, cacherepo.NewRepository())

	httpTransport := transport.NewTransport(sessionApp, chatApp, catalogApp)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		chatApp.Close()
		logger.Fatal("failed server", zap.Error(err))
	}
}
