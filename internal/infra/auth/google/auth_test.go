package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shop/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newVerifier(validate ValidateFunc) *IDTokenVerifier {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-id"}}

	return NewIDTokenVerifierWithValidator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), validate)
}

func TestIDTokenVerifier_Valid(t *testing.T) {
	v := newVerifier(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "client-id", audience)

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "g-42",
			Claims: map[string]any{
				"email":          "ada@example.com",
				"name":           "Ada Obi",
				"email_verified": true,
			},
		}, nil
	})

	user, err := v.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "g-42", user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestIDTokenVerifier_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{name: "signature", err: errors.New("idtoken: invalid signature")},
		{name: "issuer", payload: &idtoken.Payload{Issuer: "https://evil.example", Claims: map[string]any{"email_verified": true}}},
		{name: "unverified email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			_, err := v.VerifyIDToken(context.Background(), "token")
			assert.Error(t, err)
		})
	}
}
