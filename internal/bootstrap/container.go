package bootstrap

import (
	"context"

	"second-brain-be/internal/config"
	"second-brain-be/internal/controller"
	"second-brain-be/internal/pkg/logger"
	"second-brain-be/internal/pkg/serverutils"
	"second-brain-be/internal/repository/contract"
	"second-brain-be/internal/repository/memory"
	redisrepo "second-brain-be/internal/repository/redis"
	"second-brain-be/internal/repository/unitofwork"
	"second-brain-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	NoteController      controller.INoteController
	TaskController      controller.ITaskController
	TagController       controller.ITagController
	DashboardController controller.IDashboardController

	// Middleware
	AuthMiddleware fiber.Handler

	// Background services, run by main
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	sessionRepo := newSessionRepository(cfg, sysLogger)

	// Capture event bus (in-process)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	publisherService := service.NewPublisherService(cfg.App.CaptureTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.CaptureTopic, sysLogger)

	authService := service.NewAuthService(uowFactory, sessionRepo, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)
	taskService := service.NewTaskService(uowFactory, publisherService, sysLogger)
	tagService := service.NewTagService(uowFactory)
	dashboardService := service.NewDashboardService(uowFactory)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		NoteController:      controller.NewNoteController(noteService),
		TaskController:      controller.NewTaskController(taskService),
		TagController:       controller.NewTagController(tagService),
		DashboardController: controller.NewDashboardController(dashboardService),
		AuthMiddleware:      serverutils.NewAuthMiddleware(cfg.Auth.JWTSecret, sessionRepo),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}

// newSessionRepository prefers redis when configured and reachable, falling
// back to the in-memory store (single-node only: sessions die with the process).
func newSessionRepository(cfg *config.Config, log logger.ILogger) contract.SessionRepository {
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err == nil {
			rdb := redis.NewClient(opt)
			if _, err := rdb.Ping(context.Background()).Result(); err == nil {
				log.Info("bootstrap", "using redis session store", nil)
				return redisrepo.NewSessionRepository(rdb)
			}
			log.Warn("bootstrap", "redis unreachable, falling back to in-memory sessions", map[string]interface{}{
				"redis_url": cfg.App.RedisURL,
			})
		} else {
			log.Warn("bootstrap", "invalid REDIS_URL, falling back to in-memory sessions", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return memory.NewSessionRepository(cfg.Auth.SessionTTL)
}
