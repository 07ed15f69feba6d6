package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedURLRoundTrip(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Minute)
	token, expiresAt, err := signer.Generate("export-1", "activities/export-1.csv")
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	id, path, _, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "export-1", id)
	assert.Equal(t, "activities/export-1.csv", path)
}

func TestSignedURLRejectsTampering(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Minute)
	token, _, err := signer.Generate("export-1", "activities/export-1.csv")
	require.NoError(t, err)

	_, _, _, err = signer.Parse(token + "x")
	assert.Error(t, err)

	other := NewSignedURLSigner("other-secret", time.Minute)
	_, _, _, err = other.Parse(token)
	assert.Error(t, err)
}

func TestSignedURLRejectsExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", -time.Minute)
	// constructor clamps non-positive TTLs, so build an expired token manually
	signer.ttl = -time.Minute
	token, _, err := signer.Generate("export-1", "file.csv")
	require.NoError(t, err)

	_, _, _, err = signer.Parse(token)
	assert.Error(t, err)
}
