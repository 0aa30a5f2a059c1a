// @title         COPSOQ API
// @version       0.1.0
// @description   Psychosocial risk scoring and laudo generation for COPSOQ III assessments

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"copsoq/internal/platform/config"
	"copsoq/internal/platform/logger"
	phttp "copsoq/internal/platform/net/http"
	"copsoq/internal/platform/store"

	"copsoq/internal/services/api"
	laudosrepo "copsoq/internal/services/laudos/repo"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	chOn := chCfg.MayBool("ENABLED", false)
	chURL := ""
	if chOn {
		chURL = chCfg.MustString("DBURL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// postgres is required, clickhouse only backs snapshots
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "copsoq-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    pgCfg.MayInt32("MAX_CONNS", 4),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),

				ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 0),
				PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 0),
			},
			CH: store.CHConfig{
				Enabled:    chOn,
				URL:        chURL,
				ClientName: "copsoq",
				ClientTag:  "api",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := st.Guard(ctx); err != nil {
		l.Panic().Err(err).Msg("store not ready")
	}

	if apiCfg.MayBool("MIGRATE", false) {
		if err := laudosrepo.Migrate(ctx, st.PG); err != nil {
			l.Panic().Err(err).Msg("postgres migration failed")
		}
		if sink := laudosrepo.NewCHSink(st.CH); sink != nil {
			if err := sink.Ensure(ctx); err != nil {
				l.Panic().Err(err).Msg("clickhouse snapshot table failed")
			}
		}
		l.Info().Msg("schema up to date")
	}

	// listens on CORE_API_PORT
	srv := phttp.NewServer(apiCfg)

	reg := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	l.Info().Str("addr", srv.Addr()).Strs("modules", reg.Names()).Msg("listening")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
