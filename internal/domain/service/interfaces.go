package service

import (
	"context"

	"TradeLite/internal/domain/models"
)

// TextCompleter produces free-form text from a prompt. Implementations wrap
// external language-model providers; errors mean "tier unavailable" and are
// never surfaced past the feedback chain.
type TextCompleter interface {
	Name() string
	Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error)
}

// Identity is the external auth provider consumed as an opaque pass-through.
type Identity interface {
	Register(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Token, error)
	Logout(ctx context.Context, accessToken string) error
	ResetPassword(ctx context.Context, email string) error
}
