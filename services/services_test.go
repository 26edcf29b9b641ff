package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("test_Secret!")
	require.NoError(t, err)
	assert.NotEqual(t, "test_Secret!", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("test_Secret!")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestPasswordHasherCostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(99).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}

func TestPasswordHasherTooLong(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'x'
	}
	_, err := NewPasswordHasher(bcrypt.MinCost).Hash(string(long))
	assert.ErrorIs(t, err, ErrFailedToHashPassword)
}

func TestErrorReporterDisabled(t *testing.T) {
	r := NewErrorReporter("", "test", zap.NewNop())
	assert.False(t, r.Enabled())

	r.Capture(errors.New("ignored"), map[string]string{"handler": "x"})
	assert.True(t, r.Flush(time.Millisecond))

	var nilReporter *ErrorReporter
	assert.False(t, nilReporter.Enabled())
	nilReporter.Capture(errors.New("ignored"), nil)
}
