package handlers

import (
	"github.com/gpng/telegram-relay/services/telegram"
	"go.uber.org/zap"
)

// Handlers struct
type Handlers struct {
	logger    *zap.Logger
	bot       *telegram.Client
	authToken string
}

// New service
func New(
	logger *zap.Logger,
	bot *telegram.Client,
	authToken string,
) *Handlers {
	return &Handlers{logger, bot, authToken}
}
