package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sushihentaime/newsfeed/internal/articleservice"
	"github.com/sushihentaime/newsfeed/internal/commentservice"
	"github.com/sushihentaime/newsfeed/internal/common"
	"github.com/sushihentaime/newsfeed/internal/mailservice"
	"github.com/sushihentaime/newsfeed/internal/topicservice"
	"github.com/sushihentaime/newsfeed/internal/userservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	articleService *articleservice.ArticleService
	commentService *commentservice.CommentService
	topicService   *topicservice.TopicService
	userService    *userservice.UserService
	mailService    *mailservice.MailService
	broker         *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBMaxIdleTime)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	err = common.SetupActivityExchange(broker)
	if err != nil {
		logger.Error("failed to setup the activity exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		articleService: articleservice.NewArticleService(db),
		commentService: commentservice.NewCommentService(db, broker, logger),
		topicService:   topicservice.NewTopicService(db),
		userService:    userservice.NewUserService(db),
		mailService:    mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailPort, cfg.ModeratorEmail, logger),
		broker:         broker,
	}

	if cfg.ModeratorEmail != "" {
		app.mailService.NotifyModerator()
	} else {
		logger.Info("MODERATOR_EMAIL not set, comment notifications disabled")
	}
	defer app.mailService.Close()

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
