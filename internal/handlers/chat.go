package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go/attribute"

	"github.com/madmanlosangeles/stylist/internal/chat"
	"github.com/madmanlosangeles/stylist/internal/inventory"
	"github.com/madmanlosangeles/stylist/internal/observability"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat relays a customer message to the generation API. Upstream failures
// become a generic fallback reply with a server-error status, never a raw
// error payload.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid chat request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	meter := observability.MeterFromContext(ctx)
	meter.SetAttributes(attribute.String("component", "chat"))

	response, err := h.chatService.Reply(ctx, req.Message)
	if err != nil {
		meter.Count("chat.upstream_failures", 1)
		logger.Error("chat relay failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, chat.Response{
			Reply:    chat.FallbackReply,
			Products: []inventory.Product{},
		}, logger)
		return
	}

	meter.Count("chat.replies", 1)
	if len(response.Products) > 0 {
		meter.Count("chat.replies_with_products", 1)
	}

	writeJSON(w, http.StatusOK, response, logger)
}
