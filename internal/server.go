package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/runintel/internal/auth"
	"github.com/2beens/runintel/internal/briefing"
	"github.com/2beens/runintel/internal/config"
	"github.com/2beens/runintel/internal/db"
	"github.com/2beens/runintel/internal/middleware"
	"github.com/2beens/runintel/internal/misc"
	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
	"github.com/2beens/runintel/internal/telemetry/metrics"
	"github.com/2beens/runintel/internal/telemetry/tracing"
	"github.com/2beens/runintel/internal/trends"
	"github.com/2beens/runintel/internal/whoop"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
	"golang.org/x/oauth2"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	runsRepo     *runs.Repo
	recoveryRepo *recovery.Repo

	whoopOAuthConfig *oauth2.Config
	whoopTokens      *whoop.TokenSource
	whoopClient      *whoop.Client
	whoopRefresher   *whoop.Refresher

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	PostgresPassword        string
	WhoopClientID           string
	WhoopClientSecret       string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "runintel-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	whoopOAuthConfig := whoop.NewOAuthConfig(
		params.WhoopClientID,
		params.WhoopClientSecret,
		params.Config.WhoopRedirectURI,
	)
	whoopTokens := whoop.NewTokenSource(
		whoopOAuthConfig,
		whoop.NewTokenRepo(dbPool),
		metricsManager,
	)
	whoopClient := whoop.NewClient(whoop.BaseURL, tracedHttpClient, whoopTokens)

	recoveryRepo := recovery.NewRepo(dbPool)
	whoopRefresher := whoop.NewRefresher(
		recoveryRepo,
		whoopClient,
		time.Duration(params.Config.RecoveryRefreshIntervalMinutes)*time.Minute,
		metricsManager,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		runsRepo:     runs.NewRepo(dbPool),
		recoveryRepo: recoveryRepo,

		whoopOAuthConfig: whoopOAuthConfig,
		whoopTokens:      whoopTokens,
		whoopClient:      whoopClient,
		whoopRefresher:   whoopRefresher,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	runsHandler := runs.NewHandler(s.runsRepo, s.whoopClient, s.whoopRefresher, s.metricsManager)
	r.HandleFunc("/runs", runsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-runs")
	r.HandleFunc("/runs", runsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-run")
	r.HandleFunc("/runs/trends", runsHandler.HandleTrends).Methods("GET", "OPTIONS").Name("run-trends")
	r.HandleFunc("/runs/shoes", runsHandler.HandleShoes).Methods("GET", "OPTIONS").Name("shoe-miles")

	recoveryHandler := recovery.NewHandler(s.recoveryRepo, s.whoopRefresher)
	r.HandleFunc("/recovery/today", recoveryHandler.HandleToday).Methods("GET", "OPTIONS").Name("recovery-today")

	briefingHandler := briefing.NewHandler(s.recoveryRepo, s.runsRepo, s.whoopRefresher, s.metricsManager)
	r.HandleFunc("/briefing", briefingHandler.HandleBriefing).Methods("GET", "OPTIONS").Name("briefing")

	trendsHandler := trends.NewHandler(s.runsRepo, s.recoveryRepo)
	r.HandleFunc("/trends/report", trendsHandler.HandleReport).Methods("GET", "OPTIONS").Name("trends-report")
	r.HandleFunc("/stats/snapshot", trendsHandler.HandleSnapshot).Methods("GET", "OPTIONS").Name("stats-snapshot")

	whoopHandler := whoop.NewHandler(
		s.whoopOAuthConfig,
		s.whoopTokens,
		s.whoopClient,
		s.whoopRefresher,
		whoop.GenerateStateString,
	)
	r.HandleFunc("/whoop/auth", whoopHandler.Authenticate).Methods("GET").Name("whoop-auth")
	r.HandleFunc("/whoop/auth/redirect", whoopHandler.AuthRedirect).Methods("GET").Name("whoop-auth-redirect")
	r.HandleFunc("/whoop/refresher/status", whoopHandler.GetRefresherStatus).Methods("GET", "OPTIONS").Name("refresher-status")
	r.HandleFunc("/whoop/refresher/start", whoopHandler.StartRefresher).Methods("POST", "OPTIONS").Name("refresher-start")
	r.HandleFunc("/whoop/refresher/stop", whoopHandler.StopRefresher).Methods("POST", "OPTIONS").Name("refresher-stop")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.whoopRefresher.Start()
	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.whoopRefresher.Stop()
	log.Trace("whoop refresher stopped ...")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var shutdownErr error

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client conn: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
	}

	if shutdownErr != nil {
		log.Errorf(" >>> graceful shutdown finished with errors: %s", shutdownErr)
		return
	}
	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
