package chat

// Package chat relays customer messages to the generation API and attaches
// product records for the markers the model emits.

import (
	"context"
	"log/slog"

	"github.com/madmanlosangeles/stylist/internal/inventory"
	"github.com/madmanlosangeles/stylist/internal/logging"
	"github.com/madmanlosangeles/stylist/internal/prompt"
)

// FallbackReply is served with a 500 when the generation call fails.
const FallbackReply = "Having some issues right now. Try again in a sec."

// SnapshotSource provides the current inventory snapshot.
type SnapshotSource interface {
	Current(ctx context.Context) inventory.Snapshot
}

// Generator produces a reply for a fully assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Response struct {
	Reply    string              `json:"reply"`
	Products []inventory.Product `json:"products"`
}

type Service struct {
	snapshots SnapshotSource
	prompts   *prompt.Builder
	generator Generator
	logger    *slog.Logger
}

func NewService(snapshots SnapshotSource, prompts *prompt.Builder, generator Generator, logger *slog.Logger) *Service {
	return &Service{
		snapshots: snapshots,
		prompts:   prompts,
		generator: generator,
		logger:    logger,
	}
}

func (s *Service) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

// Reply answers a customer message. The snapshot read and the generation call
// are deliberately not transactional: the prompt may describe a snapshot that
// a concurrent refresh has since replaced.
func (s *Service) Reply(ctx context.Context, message string) (Response, error) {
	logger := s.loggerFromContext(ctx)

	snapshot := s.snapshots.Current(ctx)

	raw, err := s.generator.Generate(ctx, s.prompts.Build(snapshot, message))
	if err != nil {
		return Response{}, err
	}

	displayText, products := MatchProducts(Sanitize(raw), snapshot)

	logger.Info("chat reply generated",
		"reply_length", len(displayText),
		"matched_products", len(products),
	)

	return Response{
		Reply:    displayText,
		Products: products,
	}, nil
}
