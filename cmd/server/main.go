package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"express-hub/internal/clients/pushgw"
	"express-hub/internal/events"
	"express-hub/internal/http/handlers"
	announcementh "express-hub/internal/http/handlers/announcement"
	eventh "express-hub/internal/http/handlers/event"
	feedh "express-hub/internal/http/handlers/feed"
	playerh "express-hub/internal/http/handlers/player"
	pushh "express-hub/internal/http/handlers/push"
	scheduleh "express-hub/internal/http/handlers/schedule"
	teamh "express-hub/internal/http/handlers/team"
	mw "express-hub/internal/http/middleware"
	"express-hub/internal/lib/config"
	"express-hub/internal/lib/sl"
	"express-hub/internal/metrics"
	repo "express-hub/internal/repository"
	"express-hub/internal/service/announcement"
	"express-hub/internal/service/event"
	"express-hub/internal/service/feed"
	"express-hub/internal/service/push"
	"express-hub/internal/service/roster"
	"express-hub/internal/service/schedule"
	"express-hub/internal/service/team"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting express hub", slog.String("env", cfg.Env))

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))
	clock := clockwork.NewRealClock()

	var publisher events.Publisher = events.Noop{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix, log)
		if err != nil {
			log.Error("failed to connect to nats", sl.Err(err))
			os.Exit(1)
		}
		defer natsPub.Close()
		publisher = natsPub
	} else {
		log.Warn("nats url is empty, change notifications are disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	playerRepo := repo.NewPlayerRepo(db, trmsqlx.DefaultCtxGetter)
	scheduleRepo := repo.NewScheduleRepo(db, trmsqlx.DefaultCtxGetter)
	announcementRepo := repo.NewAnnouncementRepo(db, trmsqlx.DefaultCtxGetter)
	eventRepo := repo.NewEventRepo(db, trmsqlx.DefaultCtxGetter)
	dispatchRepo := repo.NewDispatchRepo(db, trmsqlx.DefaultCtxGetter)

	gateway := pushgw.New(cfg.Push.BaseURL, cfg.Push.ServiceKey, cfg.Push.Timeout)

	teamService := team.NewTeamService(trManager, teamRepo, clock, publisher, log,
		announcementRepo, scheduleRepo, playerRepo, eventRepo, dispatchRepo)
	rosterService := roster.NewRosterService(trManager, playerRepo, teamRepo, clock, publisher, log)
	scheduleService := schedule.NewScheduleService(trManager, scheduleRepo, teamRepo, clock, publisher, log)
	eventService := event.NewEventService(trManager, eventRepo, teamRepo, clock, publisher, log)
	announcementService := announcement.NewAnnouncementService(trManager, announcementRepo, teamRepo, clock, publisher, m, log)
	feedService := feed.NewFeedService(trManager, announcementRepo, scheduleRepo, clock, cfg.Feed.ScheduleChangeWindow)
	pushService := push.NewPushService(trManager, gateway, dispatchRepo, announcementRepo, scheduleRepo, teamRepo, clock, m, log)

	teamHandler := teamh.NewTeamHandler(log, teamService)
	playerHandler := playerh.NewPlayerHandler(log, rosterService)
	scheduleHandler := scheduleh.NewScheduleHandler(log, scheduleService)
	eventHandler := eventh.NewEventHandler(log, eventService)
	announcementHandler := announcementh.NewAnnouncementHandler(log, announcementService)
	feedHandler := feedh.NewFeedHandler(log, feedService)
	pushHandler := pushh.NewPushHandler(log, pushService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	// public methods
	router.Get("/health", handlers.Healthcheck(db))
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.Get("/teams/join", teamHandler.Join)

	auth := mw.Auth(cfg.Auth.CoachSecret, cfg.Auth.ParentSecret)

	// coach and parent methods
	router.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/teams", teamHandler.List)
		r.Get("/teams/{teamID}", teamHandler.Get)
		r.Get("/teams/{teamID}/players", playerHandler.List)
		r.Get("/teams/{teamID}/schedules", scheduleHandler.List)
		r.Get("/teams/{teamID}/events", eventHandler.List)
		r.Get("/teams/{teamID}/announcements", announcementHandler.List)
		r.Get("/announcements/{announcementID}", announcementHandler.View)
		r.Get("/feed", feedHandler.Get)
	})

	// coach methods
	router.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(mw.CoachOnly)

		r.Post("/teams", teamHandler.Create)
		r.Delete("/teams/{teamID}", teamHandler.Delete)
		r.Post("/teams/{teamID}/players", playerHandler.Add)
		r.Patch("/players/{playerID}/active", playerHandler.SetActive)
		r.Post("/teams/{teamID}/schedules", scheduleHandler.Create)
		r.Patch("/schedules/{scheduleID}/reschedule", scheduleHandler.Reschedule)
		r.Post("/schedules/{scheduleID}/cancel", scheduleHandler.Cancel)
		r.Post("/schedules/{scheduleID}/result", scheduleHandler.RecordResult)
		r.Post("/teams/{teamID}/events", eventHandler.Create)
		r.Post("/teams/{teamID}/announcements", announcementHandler.Create)
		r.Get("/teams/{teamID}/push/dispatches", pushHandler.History)
		r.Post("/push/send", pushHandler.Send)
		r.Post("/push/announcements/{announcementID}", pushHandler.SendAnnouncement)
		r.Post("/push/schedules/{scheduleID}/{kind}", pushHandler.SendSchedule)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
