package main

import (
	"bytes"
	"context"
	"encoding/pem"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"toolbox/internal/api/handler/v1handler"
	"toolbox/pkg/domain"
)

func keyPair(t *testing.T) (privatePEM, publicPEM string) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, writeKeyPair(&buf))

	privBlock, rest := pem.Decode(buf.Bytes())
	require.NotNil(t, privBlock)
	require.Equal(t, "PRIVATE KEY", privBlock.Type)
	pubBlock, _ := pem.Decode(rest)
	require.NotNil(t, pubBlock)
	require.Equal(t, "PUBLIC KEY", pubBlock.Type)

	return string(pem.EncodeToMemory(privBlock)), string(pem.EncodeToMemory(pubBlock))
}

func TestSignToken_AcceptedByAPI(t *testing.T) {
	privatePEM, publicPEM := keyPair(t)
	subject := uuid.New()

	token, err := signToken(privatePEM, subject.String(), time.Hour, time.Now())
	require.NoError(t, err)

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: publicPEM})
	require.NoError(t, err)
	ctx, err := sec.HandleBearerAuth(context.Background(), "", v1handler.BearerAuth{Token: token})
	require.NoError(t, err)
	require.Equal(t, domain.UserID(subject), v1handler.GetUserIDFromContext(ctx))
}

func TestSignToken_Expired(t *testing.T) {
	privatePEM, publicPEM := keyPair(t)

	token, err := signToken(privatePEM, uuid.NewString(), time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: publicPEM})
	require.NoError(t, err)
	_, err = sec.HandleBearerAuth(context.Background(), "", v1handler.BearerAuth{Token: token})
	require.Error(t, err)
}

func TestSignToken_InvalidInput(t *testing.T) {
	privatePEM, _ := keyPair(t)

	_, err := signToken(privatePEM, "alice", time.Hour, time.Now())
	require.ErrorContains(t, err, "subject must be a UUID")

	_, err = signToken("not a key", uuid.NewString(), time.Hour, time.Now())
	require.ErrorContains(t, err, "could not parse RSA private key")
}
