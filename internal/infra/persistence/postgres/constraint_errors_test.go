package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	wrapped := errors.Wrap(unique, "insert user")

	assert.True(t, isUniqueConstraintViolation(wrapped))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.Equal(t, "users_email_key", constraintName(wrapped))
	assert.False(t, isForeignKeyConstraintViolation(wrapped))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	plain := errors.New("connection reset")
	assert.False(t, isUniqueConstraintViolation(plain))
	assert.False(t, isNotNullConstraintViolation(plain))
	assert.Empty(t, constraintName(plain))
}
