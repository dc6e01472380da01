// Package securestore keeps small secrets encrypted at rest in a JetStream
// key/value bucket.
package securestore

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mark3labs/partsync/internal/logger"
	"github.com/mark3labs/partsync/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	keyFileName = "secret.key"
	natsDirName = "nats"
	masterSize  = 32
	hkdfInfo    = "partsync-securestore-v1"
)

var (
	// ErrNotFound is returned by Get for keys that were never stored or have
	// been deleted.
	ErrNotFound = errors.New("secret not found")
	// ErrCorrupt is returned when a stored value fails authentication.
	ErrCorrupt = errors.New("secret could not be decrypted")
)

// Store encrypts values with XChaCha20-Poly1305 before writing them to the
// bucket. The encryption key is derived from a master secret kept in a
// private file.
type Store struct {
	kv     jetstream.KeyValue
	sealer cipherAEAD
	server *nats.Server
}

type cipherAEAD interface {
	NonceSize() int
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}

// New wraps an open bucket. keyFile is created with a fresh master secret if
// it does not exist.
func New(kv jetstream.KeyValue, keyFile string) (*Store, error) {
	master, err := loadOrCreateMaster(keyFile)
	if err != nil {
		return nil, err
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	return &Store{kv: kv, sealer: aead}, nil
}

// Open starts an embedded NATS server under dataDir and returns a store on
// its secrets bucket. Close releases the server.
func Open(ctx context.Context, dataDir string) (*Store, error) {
	srv, err := nats.Start(filepath.Join(dataDir, natsDirName))
	if err != nil {
		return nil, err
	}
	kv, err := nats.Bucket(ctx, srv.JetStream(), nats.SecretsBucket)
	if err != nil {
		_ = srv.Close()
		return nil, err
	}
	s, err := New(kv, filepath.Join(dataDir, keyFileName))
	if err != nil {
		_ = srv.Close()
		return nil, err
	}
	s.server = srv
	return s, nil
}

// Close shuts down the server started by Open.
func (s *Store) Close() error {
	if s.server == nil {
		return nil
	}
	srv := s.server
	s.server = nil
	return srv.Close()
}

// Put encrypts and stores value under key.
func (s *Store) Put(ctx context.Context, key, value string) error {
	nonce := make([]byte, s.sealer.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generating nonce: %w", err)
	}
	// the key is bound as associated data so values cannot be swapped
	blob := s.sealer.Seal(nonce, nonce, []byte(value), []byte(key))
	if _, err := s.kv.Put(ctx, key, blob); err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	logger.Debug("securestore: stored %s", key)
	return nil
}

// Get returns the decrypted value for key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	entry, err := s.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}

	blob := entry.Value()
	n := s.sealer.NonceSize()
	if len(blob) < n {
		return "", fmt.Errorf("%s: %w", key, ErrCorrupt)
	}
	plain, err := s.sealer.Open(nil, blob[:n], blob[n:], []byte(key))
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, ErrCorrupt)
	}
	return string(plain), nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.kv.Delete(ctx, key); err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	logger.Debug("securestore: deleted %s", key)
	return nil
}

func loadOrCreateMaster(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != masterSize {
			return nil, fmt.Errorf("key file %s: want %d bytes, got %d", path, masterSize, len(data))
		}
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating key dir: %w", err)
	}
	master := make([]byte, masterSize)
	if _, err := rand.Read(master); err != nil {
		return nil, fmt.Errorf("generating master secret: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("creating key file: %w", err)
	}
	if _, err := f.Write(master); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing key file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing key file: %w", err)
	}
	logger.Info("securestore: created key file %s", path)
	return master, nil
}
