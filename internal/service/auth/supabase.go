package auth

import (
	"context"
	"fmt"
	"time"

	"TradeLite/internal/domain/models"
	domsvc "TradeLite/internal/domain/service"
	xhttp "TradeLite/pkg/http"
)

// SupabaseClient is a pass-through client for the Supabase GoTrue auth API.
// The service never interprets auth state; it only relays requests and maps
// responses.
type SupabaseClient struct {
	baseURL string
	apiKey  string
	client  *xhttp.Client
}

// NewSupabaseClient creates an identity client for the given project URL and
// service key.
func NewSupabaseClient(baseURL, apiKey string, timeout time.Duration) *SupabaseClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SupabaseClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *SupabaseClient) headers(extra map[string]string) map[string]string {
	h := map[string]string{
		"Content-Type": "application/json",
		"apikey":       c.apiKey,
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	User  *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Register signs up a new user.
func (c *SupabaseClient) Register(ctx context.Context, email, password string) (models.User, error) {
	if c.baseURL == "" {
		return models.User{}, fmt.Errorf("supabase not configured")
	}

	var sr signupResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.baseURL + "/auth/v1/signup",
		Headers: c.headers(nil),
		Body:    credentials{Email: email, Password: password},
	}, &sr)
	if err != nil {
		return models.User{}, fmt.Errorf("supabase signup: %w", err)
	}

	// GoTrue returns either the user object directly or nested under "user"
	// depending on whether email confirmation is enabled.
	if sr.User != nil {
		return models.User{ID: sr.User.ID, Email: sr.User.Email}, nil
	}
	return models.User{ID: sr.ID, Email: sr.Email}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token.
func (c *SupabaseClient) Login(ctx context.Context, email, password string) (models.Token, error) {
	if c.baseURL == "" {
		return models.Token{}, fmt.Errorf("supabase not configured")
	}

	var tr tokenResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodPost,
		URL:         c.baseURL + "/auth/v1/token",
		Headers:     c.headers(nil),
		QueryParams: map[string][]string{"grant_type": {"password"}},
		Body:        credentials{Email: email, Password: password},
	}, &tr)
	if err != nil {
		return models.Token{}, fmt.Errorf("supabase token: %w", err)
	}

	if tr.TokenType == "" {
		tr.TokenType = "bearer"
	}
	return models.Token{AccessToken: tr.AccessToken, TokenType: tr.TokenType}, nil
}

// Logout revokes the given access token.
func (c *SupabaseClient) Logout(ctx context.Context, accessToken string) error {
	if c.baseURL == "" {
		return fmt.Errorf("supabase not configured")
	}

	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.baseURL + "/auth/v1/logout",
		Headers: c.headers(map[string]string{"Authorization": "Bearer " + accessToken}),
	}, nil)
	if err != nil {
		return fmt.Errorf("supabase logout: %w", err)
	}
	return nil
}

// ResetPassword sends a password recovery email.
func (c *SupabaseClient) ResetPassword(ctx context.Context, email string) error {
	if c.baseURL == "" {
		return fmt.Errorf("supabase not configured")
	}

	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.baseURL + "/auth/v1/recover",
		Headers: c.headers(nil),
		Body:    map[string]string{"email": email},
	}, nil)
	if err != nil {
		return fmt.Errorf("supabase recover: %w", err)
	}
	return nil
}

var _ domsvc.Identity = (*SupabaseClient)(nil)
