package validator

import (
	"testing"

	domainerrors "shop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&signup{FullName: "Ada", Email: "ada@example.com", Password: "secret1"}))
	})

	t.Run("reports json names", func(t *testing.T) {
		err := v.Validate(&signup{Email: "not-an-email", Password: "123", Role: "root"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr *domainerrors.BaseError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "fullname is required")
		assert.Contains(t, appErr.Details(), "email must be a valid email")
		assert.Contains(t, appErr.Details(), "password must be at least 6")
		assert.Contains(t, appErr.Details(), "role must be one of user admin")
	})

	t.Run("not a struct", func(t *testing.T) {
		err := v.Validate("plain")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
