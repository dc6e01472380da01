package nats

import (
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_BucketRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	srv, err := Start(dir)
	require.NoError(t, err)

	kv, err := Bucket(ctx, srv.JetStream(), "test_bucket")
	require.NoError(t, err)

	_, err = kv.Put(ctx, "k", []byte("v1"))
	require.NoError(t, err)
	_, err = kv.Put(ctx, "k", []byte("v2"))
	require.NoError(t, err)

	entry, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(entry.Value()))

	_, err = kv.Get(ctx, "missing")
	assert.True(t, errors.Is(err, jetstream.ErrKeyNotFound))

	require.NoError(t, srv.Close())
}

func TestStart_PersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	srv, err := Start(dir)
	require.NoError(t, err)
	kv, err := Bucket(ctx, srv.JetStream(), SecretsBucket)
	require.NoError(t, err)
	_, err = kv.Put(ctx, "token", []byte("abc"))
	require.NoError(t, err)
	require.NoError(t, srv.Close())

	srv, err = Start(dir)
	require.NoError(t, err)
	defer srv.Close()
	kv, err = Bucket(ctx, srv.JetStream(), SecretsBucket)
	require.NoError(t, err)
	entry, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(entry.Value()))
}

func TestClose_Nil(t *testing.T) {
	var s *Server
	assert.NoError(t, s.Close())
}
