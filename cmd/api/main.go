package main

import (
	"log"
	"net/http"

	"github.com/gpng/telegram-relay/cmd/api/config"
	"github.com/gpng/telegram-relay/cmd/api/handlers"
	"github.com/gpng/telegram-relay/services/logger"
	"github.com/gpng/telegram-relay/services/telegram"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load env vars: %v", err)
	}

	// initialise services
	l := logger.New()
	defer l.Sync()

	bot := telegram.New(cfg.BotToken, cfg.TelegramHost)

	handlers := handlers.New(l, bot, cfg.AuthToken)

	// initialise main router with basic middlewares, cors settings etc
	router := mainRouter()

	// mount services
	router.Mount("/", handlers.Routes())

	err = http.ListenAndServe(":"+cfg.Port, router)
	if err != nil {
		log.Print(err)
	}
}

func mainRouter() chi.Router {
	router := chi.NewRouter()

	// A good base middleware stack
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// stop crawlers
	router.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /"))
	})

	return router
}
