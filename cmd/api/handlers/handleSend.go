package handlers

import (
	"io/ioutil"
	"net/http"

	"github.com/gpng/telegram-relay/services/telegram"
	"go.uber.org/zap"
)

// maxUploadSize limits how much of a client upload is held in memory
const maxUploadSize = 32 << 20

// handleSendMessage relays a text message
func (h *Handlers) handleSendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := formParams(r,
			"chat_id",
			"text",
			"parse_mode",
			"reply_to_message_id",
			"allow_sending_without_reply",
			"reply_markup",
		)
		h.relay(w, r, "sendMessage", params, nil)
	}
}

// handleSendAudio relays an audio file with optional metadata
func (h *Handlers) handleSendAudio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := h.requireFile(w, r, "audio")
		if !ok {
			return
		}
		params := formParams(r,
			"chat_id",
			"caption",
			"performer",
			"title",
			"parse_mode",
			"reply_to_message_id",
			"reply_markup",
		)
		h.relay(w, r, "sendAudio", params, file)
	}
}

// handleSendVoice relays a voice note
func (h *Handlers) handleSendVoice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := h.requireFile(w, r, "voice")
		if !ok {
			return
		}
		params := formParams(r,
			"chat_id",
			"caption",
			"parse_mode",
			"reply_to_message_id",
			"reply_markup",
		)
		h.relay(w, r, "sendVoice", params, file)
	}
}

// handleSendVideo relays a video file
func (h *Handlers) handleSendVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := h.requireFile(w, r, "video")
		if !ok {
			return
		}
		params := formParams(r,
			"chat_id",
			"caption",
			"parse_mode",
			"reply_to_message_id",
			"reply_markup",
		)
		h.relay(w, r, "sendVideo", params, file)
	}
}

// handleSendVideoNote relays a round video note
func (h *Handlers) handleSendVideoNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := h.requireFile(w, r, "video_note")
		if !ok {
			return
		}
		params := formParams(r,
			"chat_id",
			"reply_to_message_id",
		)
		h.relay(w, r, "sendVideoNote", params, file)
	}
}

// handleSendDocument relays an arbitrary document
func (h *Handlers) handleSendDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := h.requireFile(w, r, "document")
		if !ok {
			return
		}
		params := formParams(r,
			"chat_id",
			"caption",
			"parse_mode",
			"reply_to_message_id",
			"reply_markup",
		)
		h.relay(w, r, "sendDocument", params, file)
	}
}

// handleSendPhoto relays a photo
func (h *Handlers) handleSendPhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := h.requireFile(w, r, "photo")
		if !ok {
			return
		}
		params := formParams(r,
			"chat_id",
			"caption",
			"parse_mode",
			"reply_to_message_id",
			"reply_markup",
		)
		h.relay(w, r, "sendPhoto", params, file)
	}
}

// handleSendChatAction relays a typing/uploading indicator
func (h *Handlers) handleSendChatAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := formParams(r,
			"chat_id",
			"action",
		)
		h.relay(w, r, "sendChatAction", params, nil)
	}
}

// formParams collects the named form fields in order, skipping absent ones
func formParams(r *http.Request, names ...string) telegram.Params {
	params := telegram.Params{}
	for _, name := range names {
		params.Set(name, r.PostFormValue(name))
	}
	return params
}

// requireFile extracts the upload under the declared field name, responding
// with a client error when it is missing. Files uploaded under any other
// field name are ignored.
func (h *Handlers) requireFile(w http.ResponseWriter, r *http.Request, field string) (*telegram.File, bool) {
	r.ParseMultipartForm(maxUploadSize)

	f, header, err := r.FormFile(field)
	if err != nil {
		respondWithStatus(w, http.StatusBadRequest, errorMessage(MsgNoFileUploaded(field)))
		return nil, false
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		h.logger.Error("failed to read upload", zap.String("field", field), zap.Error(err))
		respondWithStatus(w, http.StatusBadRequest, errorMessage(MsgNoFileUploaded(field)))
		return nil, false
	}

	name := header.Filename
	if name == "" {
		name = field
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &telegram.File{
		Field:       field,
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}, true
}

// relay performs the single upstream call and proxies the result
func (h *Handlers) relay(w http.ResponseWriter, r *http.Request, method string, params telegram.Params, file *telegram.File) {
	l := h.logger.With(zap.String("method", method))

	result, err := h.bot.Do(r.Context(), method, params, file)
	if err != nil {
		l.Error("failed to call bot api", zap.Error(err))
		respondWithStatus(w, http.StatusInternalServerError, errorMessage(err.Error()))
		return
	}

	respond(w, successMessage(result))
}
