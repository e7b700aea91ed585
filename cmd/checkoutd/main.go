package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/dialects/postgresql"

	"github.com/stelpay/checkout/auth"
	"github.com/stelpay/checkout/engine"
	"github.com/stelpay/checkout/events"
	"github.com/stelpay/checkout/httputils"
	"github.com/stelpay/checkout/ledger"
	checkoutsrv "github.com/stelpay/checkout/services/checkout"
	"github.com/stelpay/checkout/store"
)

var VERSION = "dev"

var (
	addrF               = flag.String("addr", "127.0.0.1:8080", "HTTP API address.")
	metricsAddrF        = flag.String("metrics-addr", "127.0.0.1:8081", "Debug/metrics address.")
	onLoggerDev         = flag.Bool("logger-dev", false, "Enable development logger.")
	onLoggerDebugLevelF = flag.Bool("logger-debug-level", false, "Enable debug level logger.")
)

func main() {
	flag.Parse()
	level := "INFO"
	if *onLoggerDebugLevelF {
		level = "DEBUG"
	}
	if *onLoggerDev {
		developmentLogger(level)
	} else {
		defaultLogger(level)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zap.L().Info("Starting checkout service...", zap.String("version", VERSION))
	defer func() { zap.L().Info("Done.") }()

	sqlDB := setupPostgres(os.Getenv("PG_CONN"), 0, 5, 5)
	db := reform.NewDB(sqlDB, postgresql.Dialect, reform.NewPrintfLogger(zap.L().Named("reform").Sugar().Debugf))

	st := store.NewPostgres(db)
	ld := ledger.NewPostgres()

	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		zap.L().Panic("AUTH_SECRET is required.")
	}
	verifier := auth.NewHMAC([]byte(secret))

	var sink events.Sink = events.NewLog()
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		nc, err := nats.Connect(natsURL)
		if err != nil {
			zap.L().Panic("Failed to connect to NATS.", zap.Error(err))
		}
		defer nc.Drain()
		sink = events.NewNATS(nc)
		zap.L().Info("NATS - Connected!")
	}

	eng := engine.New(st, ld, verifier, sink, engine.WallClock{}, &pgSequencer{st: st})

	e := echo.New()
	e.HideBanner = true
	e.Use(echo_middleware.Recover())
	checkoutsrv.NewServer(eng).Register(e)

	metricsServer := &http.Server{Addr: *metricsAddrF, Handler: httputils.MetricsMux()}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Error("Metrics server error.", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer shutdownCancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Failed graceful shutdown.", zap.Error(err))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Failed metrics shutdown.", zap.Error(err))
		}
	}()

	zap.L().Info("Listening...", zap.String("address", *addrF))
	if err := e.Start(*addrF); err != nil && err != http.ErrServerClosed {
		zap.L().Panic("Server error.", zap.Error(err))
	}
}

// pgSequencer backs the engine's per-call sequence with the persisted
// counter, surviving process restarts.
type pgSequencer struct {
	st *store.Postgres
}

func (s *pgSequencer) Next(ctx context.Context) (int64, error) {
	return s.st.NextSequence(ctx)
}

func defaultLogger(levelSet string) {
	level := zapcore.InfoLevel
	if err := level.Set(levelSet); err != nil {
		panic(err)
	}
	config := zap.NewProductionConfig()
	config.Level.SetLevel(level)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))
}

func developmentLogger(levelSet string) {
	level := zapcore.InfoLevel
	if err := level.Set(levelSet); err != nil {
		panic(err)
	}
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(level)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))
}

func setupPostgres(conn string, maxLifetime time.Duration, maxOpen, maxIdle int) *sql.DB {
	sqlDB, err := sql.Open("postgres", conn)
	if err != nil {
		zap.L().Panic("Failed to connect to PostgreSQL.", zap.Error(err))
	}
	sqlDB.SetConnMaxLifetime(maxLifetime)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if err = sqlDB.Ping(); err != nil {
		zap.L().Panic("Failed to connect ping PostgreSQL.", zap.Error(err))
	}
	zap.L().Info("Postgres - Connected!")

	return sqlDB
}
