package upload

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	youtube "google.golang.org/api/youtube/v3"
)

// TokenProvider exchanges stored long-lived credentials for a short-lived
// access token. Implementations must be safe for use from concurrent
// requests.
type TokenProvider interface {
	// AccessToken performs the exchange and returns the bearer token.
	// Failures are reported as *AuthError.
	AccessToken(ctx context.Context) (string, error)

	// TokenSource exposes the underlying source for API clients.
	TokenSource() oauth2.TokenSource
}

// RefreshTokenProvider implements TokenProvider with the standard OAuth2
// refresh flow against Google's token endpoint. The refresh credential is
// held for the life of the process and never logged.
type RefreshTokenProvider struct {
	source oauth2.TokenSource
}

// NewRefreshTokenProvider wraps the client identifier, client secret and
// long-lived refresh token. The returned source caches access tokens and
// re-exchanges only when they expire.
func NewRefreshTokenProvider(clientID, clientSecret, refreshToken string) *RefreshTokenProvider {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{youtube.YoutubeUploadScope, youtube.YoutubeScope},
	}
	return &RefreshTokenProvider{
		source: cfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: refreshToken}),
	}
}

// AccessToken exchanges the refresh credential for an access token.
func (p *RefreshTokenProvider) AccessToken(ctx context.Context) (string, error) {
	tok, err := p.source.Token()
	if err != nil {
		return "", &AuthError{Err: err}
	}
	return tok.AccessToken, nil
}

// TokenSource returns the caching token source.
func (p *RefreshTokenProvider) TokenSource() oauth2.TokenSource { return p.source }
