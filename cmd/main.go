package main

import (
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	api "github.com/worktrack-io/workforce_service/internal/api/http"
	"github.com/worktrack-io/workforce_service/internal/config"
	"github.com/worktrack-io/workforce_service/internal/controllers"
	"github.com/worktrack-io/workforce_service/internal/database"
	"github.com/worktrack-io/workforce_service/internal/storage"
	logging "github.com/worktrack-io/workforce_service/internal/utils"
)

func main() {
	logger := logging.SetupLogger("server.log", slog.LevelInfo)
	slog.SetDefault(logger)

	// Optional .env overlay for secrets; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.GetConfig(logger)
	if err != nil {
		log.Fatal("Failed to load config:", err)
		return
	}

	rdb, redisErr := database.NewRedisConn(cfg, logger)
	if redisErr != nil {
		log.Fatal("Failed to connect to Redis:", redisErr)
		return
	}

	var store storage.Store
	if cfg.Database.Driver == "memory" {
		logger.Warn("Using in-memory store, data will not survive a restart")
		store = storage.NewMemory()
	} else {
		pool, dbErr := database.NewConnect(cfg, logger)
		if dbErr != nil {
			logger.Error("Failed to connect to database", slog.Any("error", dbErr))
			return
		}
		store = storage.NewPostgres(pool)
	}

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	prometheus.MustRegister(httpRequestsTotal)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)

	r.Use(logging.Middleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)
			httpRequestsTotal.WithLabelValues(req.URL.Path, req.Method, strconv.Itoa(ww.Status())).Inc()
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	server := api.NewServer(&controllers.Dependens{
		Store:  store,
		Redis:  rdb,
		Logger: logger,
		Config: cfg,
	})
	server.Routes(r)

	s := &http.Server{
		Handler:           r,
		Addr:              cfg.Server.Host,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	logger.Info("Server is starting", slog.String("address", cfg.Server.Host))
	log.Fatal(s.ListenAndServe())
}
