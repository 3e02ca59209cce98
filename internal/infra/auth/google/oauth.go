// Package google implements Google sign-in: the server-side authorization code
// flow and direct ID-token verification.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	stateTTL      = 10 * time.Minute
	clientTimeout = 15 * time.Second
)

// Endpoints are the Google URLs used by the code flow.
type Endpoints struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

// OAuthService handles the Google authorization code flow.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	endpoints    Endpoints
	client       *http.Client

	mu     sync.Mutex
	states map[string]time.Time
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config) service.OAuthService {
	return NewOAuthServiceWithEndpoints(cfg, Endpoints{
		AuthURL:     defaultAuthURL,
		TokenURL:    defaultTokenURL,
		UserInfoURL: defaultUserInfoURL,
	}, &http.Client{Timeout: clientTimeout})
}

// NewOAuthServiceWithEndpoints allows pointing the flow at other endpoints.
func NewOAuthServiceWithEndpoints(cfg *config.Config, endpoints Endpoints, client *http.Client) *OAuthService {
	s := &OAuthService{
		endpoints: endpoints,
		client:    client,
		states:    make(map[string]time.Time),
	}
	if g := cfg.GoogleOAuth; g != nil {
		s.clientID = g.ClientID
		s.clientSecret = g.ClientSecret
		s.redirectURI = g.RedirectURI
		s.scopes = g.Scopes
	}

	return s
}

// NewState returns a random CSRF state value.
func NewState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}

// BuildAuthorizationURL returns the consent URL and remembers state until it is consumed or expires.
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	now := time.Now()

	s.mu.Lock()
	for st, expiry := range s.states {
		if now.After(expiry) {
			delete(s.states, st)
		}
	}
	s.states[state] = now.Add(stateTTL)
	s.mu.Unlock()

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("access_type", "online")
	params.Set("state", state)

	return s.endpoints.AuthURL + "?" + params.Encode()
}

// ValidateState consumes state. A state is accepted at most once.
func (s *OAuthService) ValidateState(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)

	return time.Now().Before(expiry)
}

// ExchangeCodeForToken exchanges an authorization code for an access token
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoints.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := s.doJSON(req, &tokenResponse); err != nil {
		return "", errors.Wrap(err, "token exchange failed")
	}

	if tokenResponse.AccessToken == "" {
		return "", errors.New("token exchange returned no access token")
	}

	return tokenResponse.AccessToken, nil
}

// GetUserInfo retrieves user information using an access token
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoints.UserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := s.doJSON(req, &googleUser); err != nil {
		return nil, errors.Wrap(err, "user info request failed")
	}

	return &service.OAuthUser{
		ID:            googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
	}, nil
}

func (s *OAuthService) doJSON(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "failed to decode response")
}
