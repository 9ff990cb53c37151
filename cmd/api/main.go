package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aldrik-cruze/historical-news/internal/cache"
	"github.com/aldrik-cruze/historical-news/internal/events"
	"github.com/aldrik-cruze/historical-news/internal/handler"
	"github.com/aldrik-cruze/historical-news/internal/quiz"
	"github.com/aldrik-cruze/historical-news/pkg/wiki"
)

const (
	sessionTTL  = 30 * time.Minute
	sweepEvery  = 5 * time.Minute
	dayCacheTTL = 24 * time.Hour
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var store cache.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStore, err := cache.NewRedisStore(redisURL, dayCacheTTL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		slog.Info("using Redis day cache")
	} else {
		store = cache.NewMemoryStore()
	}

	baseURL := os.Getenv("WIKI_BASE_URL")
	service := events.NewService(store, wiki.NewFeedClient(baseURL), wiki.NewSearchClient(baseURL))

	generator := quiz.NewGenerator(quiz.RandFromSeed(os.Getenv("QUIZ_SEED")))
	sessions := quiz.NewStore(sessionTTL)
	go sessions.Janitor(context.Background(), sweepEvery)

	eventHandler := handler.NewEventHandler(service, store)
	quizHandler := handler.NewQuizHandler(generator, sessions)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/events", eventHandler.GetEvents)
	r.GET("/search", eventHandler.SearchEvents)
	r.POST("/quiz", quizHandler.CreateQuiz)
	r.POST("/quiz/:id/answers", quizHandler.AnswerQuiz)
	r.POST("/quiz/:id/reveal", quizHandler.RevealQuiz)
	r.DELETE("/quiz/:id", quizHandler.DismissQuiz)
	r.GET("/health", eventHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

