package interaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoContent means the gateway produced nothing at all for either style.
// Nothing is persisted in that case.
var ErrNoContent = errors.New("interaction: generation produced no content")

// Generator is the completion gateway capability the service composes with.
type Generator interface {
	GeneratePair(ctx context.Context, query string) (casual, formal string)
}

type Service struct {
	repo    *Repo
	gateway Generator
}

func NewService(repo *Repo, gateway Generator) *Service {
	return &Service{repo: repo, gateway: gateway}
}

// Generate runs the gateway for both styles and persists the result as one
// atomic insert. Per-style error strings are persisted like real content;
// only a total failure (both slots empty) aborts without a record.
func (s *Service) Generate(ctx context.Context, userID, query string) (*Interaction, error) {
	if userID == "" {
		userID = DefaultUserID
	}

	casual, formal := s.gateway.GeneratePair(ctx, query)
	if casual == "" && formal == "" {
		return nil, ErrNoContent
	}

	rec := &Interaction{
		UserID:         userID,
		Query:          query,
		CasualResponse: &casual,
		FormalResponse: &formal,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Interaction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]Interaction, error) {
	return s.repo.List(ctx, skip, clampLimit(limit))
}

func (s *Service) ListByUser(ctx context.Context, userID string, skip, limit int) ([]Interaction, error) {
	return s.repo.ListByUser(ctx, userID, skip, clampLimit(limit))
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Interaction, error) {
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Interaction, error) {
	return s.repo.Delete(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 10
	}
	return limit
}
