package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ratesignal-be/internal/config"
	"ratesignal-be/internal/controller"
	"ratesignal-be/internal/pkg/logger"
	"ratesignal-be/internal/pkg/mailer"
	"ratesignal-be/internal/repository/memory"
	"ratesignal-be/internal/repository/unitofwork"
	"ratesignal-be/internal/service"
	"ratesignal-be/internal/websocket"
	"ratesignal-be/pkg/events"
)

type Container struct {
	// Controllers
	RatingController   controller.IRatingController
	InboxController    controller.IInboxController
	SettingsController controller.ISettingsController

	// Background Services (Exposed for main.go to run)
	ConfigService     service.IConfigService
	ChangeFeedService service.IChangeFeedService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Rating sessions live in memory only; an interrupted session simply
	// expires and the customer starts over from the entry-point link.
	sessionRepo := memory.NewRatingSessionRepository(
		time.Duration(cfg.Rating.SessionTTLMinutes) * time.Minute,
	)

	// 2.5 Infrastructure
	// Redis (optional, for cross-instance dashboard fan-out)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/changefeed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(events.TopicStoreChanged, pubSub, sysLogger)
	changeFeedService := service.NewChangeFeedService(
		pubSub,
		events.TopicStoreChanged,
		wsHub,
		wsLogger,
	)

	configService := service.NewConfigService(uowFactory, publisherService, sysLogger, cfg.App.ClientURL)
	ratingService := service.NewRatingService(
		uowFactory,
		sessionRepo,
		publisherService,
		sysLogger,
		cfg.Rating.RedirectGraceMs,
	)
	feedbackService := service.NewFeedbackService(uowFactory, publisherService, emailService, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory)

	// 4. Controllers
	return &Container{
		RatingController:   controller.NewRatingController(ratingService),
		InboxController:    controller.NewInboxController(feedbackService, dashboardService),
		SettingsController: controller.NewSettingsController(configService),

		ConfigService:     configService,
		ChangeFeedService: changeFeedService,

		WebSocketHub: wsHub,
	}
}
