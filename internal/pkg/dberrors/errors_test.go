package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifiers(t *testing.T) {
	canceled := fmt.Errorf("querying: %w", &pgconn.PgError{Code: "57014"})
	missing := &pgconn.PgError{Code: "42P01"}
	refused := &pgconn.PgError{Code: "08006"}
	plain := errors.New("boom")

	assert.True(t, IsQueryCanceled(canceled))
	assert.False(t, IsQueryCanceled(missing))
	assert.True(t, IsUndefinedTable(missing))
	assert.True(t, IsConnectionFailure(refused))
	assert.False(t, IsConnectionFailure(canceled))

	for _, err := range []error{plain, nil} {
		assert.False(t, IsQueryCanceled(err))
		assert.False(t, IsUndefinedTable(err))
		assert.False(t, IsConnectionFailure(err))
	}
}
