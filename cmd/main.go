package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	adminapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/admin"
	authapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/auth"
	chartapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/chart"
	feedbackapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/feedback"
	hotsongapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/hotsong"
	musicapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/music"
	newsapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/news"
	testimonialapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/testimonial"
	userapp "github.com/kishoregurjar/lyrics-web-backend-sub000/application/user"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	redisclient "github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/redis"
	_ "github.com/kishoregurjar/lyrics-web-backend-sub000/docs"
	adminRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/admin"
	artistRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/artist"
	chartRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/chart"
	feedbackRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/feedback"
	hotsongRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/hotsong"
	newsRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/news"
	redisRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/redis"
	testimonialRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/testimonial"
	txRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	userRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/user"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/filestore"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/lyricfind"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/mailer"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/rabbitmq"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/spotify"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/transport"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

// @title LYRICS WEB API
// @version 1.0
// @description REST backend for the lyrics and music content site
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	AdminRepo := adminRepo.NewAdminRepository(db)
	TestimonialRepo := testimonialRepo.NewTestimonialRepository(db)
	NewsRepo := newsRepo.NewNewsRepository(db)
	HotSongRepo := hotsongRepo.NewHotSongRepository(db)
	ChartRepo := chartRepo.NewChartRepository(db)
	FeedbackRepo := feedbackRepo.NewFeedbackRepository(db)
	ArtistRepo := artistRepo.NewArtistRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize external collaborators
	SpotifyClient := spotify.NewClient(cfg, RedisRepo)
	LyricFindClient := lyricfind.NewClient(cfg)
	Mailer := mailer.NewMailer(cfg)
	FileStore := filestore.NewLocal(cfg.Upload.BaseDir)

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, AdminRepo)
	UserApp := userapp.NewUserApp(cfg, TxRepo, UserRepo, Mailer)
	AdminApp := adminapp.NewAdminApp(cfg, TxRepo, AdminRepo, Mailer)
	TestimonialApp := testimonialapp.NewTestimonialApp(TxRepo, TestimonialRepo, FileStore)
	NewsApp := newsapp.NewNewsApp(TxRepo, NewsRepo, FileStore)
	HotSongApp := hotsongapp.NewHotSongApp(cfg, TxRepo, HotSongRepo, SpotifyClient)
	ChartApp := chartapp.NewChartApp(TxRepo, ChartRepo)
	FeedbackApp := feedbackapp.NewFeedbackApp(TxRepo, FeedbackRepo)
	MusicApp := musicapp.NewMusicApp(SpotifyClient, LyricFindClient, ArtistRepo)

	restHandler := transport.NewRestHandler(
		cfg, FileStore,
		AuthApp, UserApp, AdminApp,
		TestimonialApp, NewsApp, HotSongApp,
		ChartApp, FeedbackApp, MusicApp,
	)

	// Start the chart ingest consumer when the queue is configured
	if cfg.RabbitMQ.Enabled {
		consumer, err := rabbitmq.NewConsumer(
			cfg.RabbitMQ.Host, cfg.RabbitMQ.Port,
			cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			cfg.RabbitMQ.APIURL, cfg.Internal.APIKey,
		)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()

		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				logger.Error("chart consumer stopped", zap.Error(err))
			}
		}()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      restHandler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
