package handlers

import (
	"github.com/go-chi/chi"
)

// Routes for app
func (h *Handlers) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.handleStatus())

	router.Route("/send", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/message", h.handleSendMessage())
		r.Post("/audio", h.handleSendAudio())
		r.Post("/voice", h.handleSendVoice())
		r.Post("/video", h.handleSendVideo())
		r.Post("/video_note", h.handleSendVideoNote())
		r.Post("/document", h.handleSendDocument())
		r.Post("/photo", h.handleSendPhoto())
		r.Post("/chat_action", h.handleSendChatAction())
	})

	return router
}
