package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/madmanlosangeles/stylist/internal/chat"
	"github.com/madmanlosangeles/stylist/internal/config"
	"github.com/madmanlosangeles/stylist/internal/inventory"
	"github.com/madmanlosangeles/stylist/internal/logging"
)

const maxChatBodyBytes = 64 << 10 // 64 KB

// Handlers provides the HTTP handlers for the chat widget API.
type Handlers struct {
	config      *config.Config
	inventory   *inventory.Service
	chatService *chat.Service
	logger      *slog.Logger
}

type Dependencies struct {
	Config      *config.Config
	Inventory   *inventory.Service
	ChatService *chat.Service
	Logger      *slog.Logger
}

func New(deps Dependencies) (*Handlers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if deps.Config == nil {
		return nil, fmt.Errorf("handlers dependencies: config is required")
	}
	if deps.Inventory == nil {
		return nil, fmt.Errorf("handlers dependencies: inventory service is required")
	}
	if deps.ChatService == nil {
		return nil, fmt.Errorf("handlers dependencies: chat service is required")
	}

	return &Handlers{
		config:      deps.Config,
		inventory:   deps.Inventory,
		chatService: deps.ChatService,
		logger:      logger.With("component", "handlers"),
	}, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerFromContext(r.Context())

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"}, logger)
}

func (h *Handlers) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, h.logger)
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
