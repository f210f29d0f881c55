package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSearchPattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "", searchPattern(""))
	assert.Equal(t, "%yerba%", searchPattern("yerba"))
	assert.Equal(t, `%50\% off\_x%`, searchPattern("50% off_x"))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	v := nullIfEmpty("caja-1")
	if assert.NotNil(t, v) {
		assert.Equal(t, "caja-1", *v)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(wrapped))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}
