package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bookmycut/salon-scheduler/internal/cache"
	"github.com/bookmycut/salon-scheduler/internal/config"
	dbpkg "github.com/bookmycut/salon-scheduler/internal/db"
	"github.com/bookmycut/salon-scheduler/internal/infra/repository"
	"github.com/bookmycut/salon-scheduler/internal/notification"
	"github.com/bookmycut/salon-scheduler/internal/reminder"
	"github.com/bookmycut/salon-scheduler/internal/routes"

	"github.com/bookmycut/salon-scheduler/internal/auth"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var scheduleCache *cache.ScheduleCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		scheduleCache = cache.NewScheduleCache(rdb)
		log.Info().Str("addr", cfg.RedisAddr).Msg("schedule cache enabled")
	}

	store := notification.New(db)
	notifier := notification.NewDispatcher(store)

	repo := repository.NewBookingRepository(db, scheduleCache)
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	sweep := reminder.NewSweep(repo, store)
	scheduler, err := reminder.NewScheduler(sweep, cfg.ReminderCron)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid reminder cron expression")
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, &routes.Deps{
		DB:       db,
		Cache:    scheduleCache,
		Repo:     repo,
		Store:    store,
		Notifier: notifier,
		Tokens:   tokens,
	})

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
