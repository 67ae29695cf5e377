package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "standard scheme", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "uppercase scheme", header: "BEARER abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding whitespace", header: "  Bearer abc.def.ghi  ", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
		{name: "wrong scheme", header: "Basic abc.def.ghi", wantErr: true},
		{name: "extra parts", header: "Bearer abc def", wantErr: true},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestGetTokenKeyID_Success(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"})
	token.Header["kid"] = "key-42"
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	kid, err := GetTokenKeyID(signed)

	require.NoError(t, err)
	assert.Equal(t, "key-42", kid)
}

func TestGetTokenKeyID_NoKid(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, err = GetTokenKeyID(signed)

	assert.ErrorIs(t, err, ErrNoKeyID)
}

func TestGetTokenKeyID_NotAToken(t *testing.T) {
	_, err := GetTokenKeyID("definitely-not-a-jwt")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoKeyID))
}

func TestCertificateToRSAPublicKey_Success(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	x5c := selfSignedCertBase64(t, key)

	publicKey, err := CertificateToRSAPublicKey(x5c)

	require.NoError(t, err)
	assert.Equal(t, &key.PublicKey, publicKey)
}

func TestCertificateToRSAPublicKey_BadBase64(t *testing.T) {
	_, err := CertificateToRSAPublicKey("%%% not base64 %%%")
	assert.Error(t, err)
}

func TestCertificateToRSAPublicKey_NotACertificate(t *testing.T) {
	_, err := CertificateToRSAPublicKey(base64.StdEncoding.EncodeToString([]byte("garbage")))
	assert.Error(t, err)
}

// selfSignedCertBase64 issues a throwaway self-signed certificate for the
// given key and returns it in the x5c entry format (standard base64 DER).
func selfSignedCertBase64(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "test signing key"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(der)
}
