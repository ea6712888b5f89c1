// token_source.go
// ---------------
// Adapters from issued tokens to golang.org/x/oauth2 and a helper for
// reading expiry out of JWT-shaped tokens.
package finauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
)

// TokenSource adapts the client to oauth2.TokenSource so issued tokens can
// feed any oauth2-aware HTTP stack. Every Token call performs one
// exchange; wrap the result in oauth2.ReuseTokenSource for caching:
//
//	src := oauth2.ReuseTokenSource(nil, client.TokenSource(ctx))
//	httpc := oauth2.NewClient(ctx, src)
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, client: c}
}

type tokenSource struct {
	ctx    context.Context
	client *Client
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	resp, err := s.client.IssueAccessToken(s.ctx)
	if err != nil {
		return nil, err
	}
	tok := &oauth2.Token{
		AccessToken: resp.Token,
		TokenType:   resp.TokenType,
	}
	if exp, err := resp.Expiry(); err == nil {
		tok.Expiry = exp
	}
	return tok, nil
}

// TokenExpiry reads the exp claim of a JWT-shaped access token without
// verifying its signature. Verification is the issuer's concern; this is
// only for scheduling re-issuance.
func TokenExpiry(token string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("finauth: parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("finauth: token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
