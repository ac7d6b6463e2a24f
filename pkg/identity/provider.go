package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// ErrNoIdentity is returned when neither a static token nor ambient Google
// credentials are available.
var ErrNoIdentity = errors.New("no usable identity: no static token configured and no ambient credentials found")

// Provider supplies a bearer credential for calling the search service.
//
// A statically configured token is passed through unchanged and never
// refreshed. In ambient mode the credential is an identity token minted for
// the configured audience; the underlying token source caches it and
// refreshes it on expiry.
type Provider struct {
	staticToken string
	audience    string

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewStatic creates a Provider that always returns the given token verbatim.
func NewStatic(token string) *Provider {
	return &Provider{staticToken: token}
}

// NewAmbient creates a Provider backed by ambient Google credentials,
// minting identity tokens for the given audience. Fails immediately when no
// ambient identity is configured, so misconfiguration surfaces at startup
// rather than on the first turn.
func NewAmbient(ctx context.Context, audience string) (*Provider, error) {
	p := &Provider{audience: audience}
	source, err := idtoken.NewTokenSource(ctx, audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoIdentity, err)
	}
	p.source = source
	return p, nil
}

// Token returns the current bearer token string.
func (p *Provider) Token(ctx context.Context) (string, error) {
	if p.staticToken != "" {
		return p.staticToken, nil
	}

	p.mu.Lock()
	source := p.source
	p.mu.Unlock()

	tok, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to mint identity token: %w", err)
	}
	return tok.AccessToken, nil
}

// Invalidate discards the cached token source so the next Token call mints a
// fresh credential. Callers use this after an authentication failure; it is
// a no-op for static tokens.
func (p *Provider) Invalidate(ctx context.Context) error {
	if p.staticToken != "" {
		return nil
	}

	source, err := idtoken.NewTokenSource(ctx, p.audience)
	if err != nil {
		return fmt.Errorf("failed to rebuild identity token source: %w", err)
	}

	p.mu.Lock()
	p.source = source
	p.mu.Unlock()
	return nil
}

// Static reports whether the provider uses a caller-supplied token.
func (p *Provider) Static() bool {
	return p.staticToken != ""
}
