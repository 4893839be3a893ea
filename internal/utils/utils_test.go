package utils

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationEnv(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "10s", want: 10 * time.Second},
		{in: "5m", want: 5 * time.Minute},
		{in: "10", want: 10 * time.Second},
		{in: `"10s"`, want: 10 * time.Second},
		{in: "'30'", want: 30 * time.Second},
		{in: " 1h ", want: time.Hour},
		{in: "", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDurationEnv(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPGUniqueViolation(t *testing.T) {
	assert.True(t, IsPGUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsPGUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsPGUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsPGUniqueViolation(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, IsPGUniqueViolation(nil))
}
