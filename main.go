package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kimiqo/TechCrush-individual-project/config"
	"github.com/Kimiqo/TechCrush-individual-project/handlers"
	"github.com/Kimiqo/TechCrush-individual-project/middleware"
	"github.com/Kimiqo/TechCrush-individual-project/models"
	"github.com/Kimiqo/TechCrush-individual-project/repository"
	"github.com/Kimiqo/TechCrush-individual-project/routes"
	"github.com/Kimiqo/TechCrush-individual-project/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.EmailLog{},
	)
	if err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	// Initialize store, notifier and services
	store := repository.NewGormStore(db)
	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, log)
	authService := services.NewAuthService(store, mailer, cfg.JWTSecret, log)
	quizService := services.NewQuizService(store, mailer, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	quizHandler := handlers.NewQuizHandler(quizService, log)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router, authHandler, quizHandler, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.WithFields(logrus.Fields{"port": cfg.Port, "auth_required": cfg.AuthRequired}).Info("Server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("Failed to start server")
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
