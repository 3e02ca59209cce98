// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"shop/internal/domain/service"
)

const otpDigits = 4

// generateOTP returns a zero-padded random numeric code.
func generateOTP() (string, error) {
	limit := big.NewInt(1)
	for range otpDigits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func otpMatches(expected, given string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.TrimSpace(given))) == 1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// notify sends an email whose failure must not fail the caller.
func notify(ctx context.Context, sender service.EmailSender, logger *slog.Logger, email *service.Email) {
	if err := sender.Send(ctx, email); err != nil {
		logger.Warn("Failed to send email",
			slog.String("template", string(email.Template)),
			slog.String("to", email.To),
			slog.Any("error", err),
		)
	}
}
