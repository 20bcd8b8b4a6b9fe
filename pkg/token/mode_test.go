package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lostoken/pkg/token"
)

func TestParseBigIntMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    token.BigIntMode
		wantErr bool
	}{
		{"never", token.BigIntNever, false},
		{"Never", token.BigIntNever, false},
		{"", token.BigIntNever, false},
		{"always", token.BigIntAlways, false},
		{" ALWAYS ", token.BigIntAlways, false},
		{"sometimes", 0, true},
	}
	for _, tt := range tests {
		got, err := token.ParseBigIntMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, token.ErrInvalidBigIntMode)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBigIntMode_Text(t *testing.T) {
	t.Parallel()

	var m token.BigIntMode
	require.NoError(t, m.UnmarshalText([]byte("always")))
	assert.Equal(t, token.BigIntAlways, m)

	out, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "always", string(out))

	assert.Error(t, m.UnmarshalText([]byte("maybe")))

	_, err = token.BigIntMode(7).MarshalText()
	assert.ErrorIs(t, err, token.ErrInvalidBigIntMode)
	assert.Equal(t, "BigIntMode(7)", token.BigIntMode(7).String())
}
