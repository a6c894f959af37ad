package api

import (
	"cometjet/crewdesk/internal/auth"
	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/config"
	"cometjet/crewdesk/internal/db"
	"cometjet/crewdesk/internal/db/repositories"
	"cometjet/crewdesk/internal/logging"
	"cometjet/crewdesk/internal/metrics"
	"cometjet/crewdesk/internal/services"
)

type Repositories struct {
	Applications *repositories.ApplicationRepository
	Pilots       *repositories.PilotRepository
	Posts        *repositories.PostRepository
}

type Services struct {
	Lifecycle *services.LifecycleService
	Auth      *services.AuthService
	Posts     *services.PostService
	Cache     common.CacheInterface
	Mailer    common.NotificationSender
	Tokens    *auth.TokenService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Applications: repositories.NewApplicationRepository(db.DB),
		Pilots:       repositories.NewPilotRepository(db.DB),
		Posts:        repositories.NewPostRepository(db.DB),
	}

	// Redis cache when configured, in-memory fallback otherwise
	var cacheSvc common.CacheInterface
	if cfg.RedisAddr != "" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(60, 600)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(60, 600)
	}

	mailer := common.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := common.NewBcryptHasher()

	svcs := &Services{
		Lifecycle: services.NewLifecycleService(db.PgDB, mailer, hasher, cfg.LoginURL, metricsReg),
		Auth:      services.NewAuthService(db.PgDB, hasher, tokens, mailer),
		Posts:     services.NewPostService(repos.Posts, cacheSvc),
		Cache:     cacheSvc,
		Mailer:    mailer,
		Tokens:    tokens,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
