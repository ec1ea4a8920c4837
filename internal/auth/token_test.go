package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	v := NewTokenVerifier("s3cret")

	token, err := v.Issue("admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"bearer prefix", "Bearer " + token, nil},
		{"lowercase prefix", "bearer " + token, nil},
		{"raw token", token, nil},
		{"empty", "", ErrMissingToken},
		{"prefix only", "Bearer ", ErrMissingToken},
		{"garbage", "Bearer not.a.token", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", claims["sub"])
		})
	}
}

func TestVerifyRejectsOtherSecretAndExpiry(t *testing.T) {
	v := NewTokenVerifier("s3cret")

	foreign, err := NewTokenVerifier("other").Issue("admin", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := v.Issue("admin", -time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	v := NewTokenVerifier("s3cret")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWithoutSecret(t *testing.T) {
	token, err := NewTokenVerifier("s3cret").Issue("admin", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenVerifier("").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
