package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/taskora/client-go/model"
	"golang.org/x/crypto/chacha20poly1305"
)

type fileStore struct {
	mu   sync.Mutex
	path string
	key  []byte
}

type sessionBlob struct {
	Token string          `json:"token"`
	User  *model.Identity `json:"user"`
}

// NewFileStore returns a SessionStore that seals the token/user entries into a
// single local file with ChaCha20-Poly1305. The key is derived from the
// configured secret.
func NewFileStore(path, secret string) (SessionStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is empty")
	}
	key := sha256.Sum256([]byte(secret))
	return &fileStore{path: path, key: key[:]}, nil
}

func (s *fileStore) Save(ctx context.Context, token string, identity *model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plain, err := json.Marshal(sessionBlob{Token: token, User: identity})
	if err != nil {
		return err
	}

	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}

	sealed := aead.Seal(nonce, nonce, plain, nil)
	return os.WriteFile(s.path, sealed, 0o600)
}

func (s *fileStore) Load(ctx context.Context) (string, *model.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return "", nil, err
	}
	if len(sealed) < aead.NonceSize() {
		return "", nil, fmt.Errorf("session file truncated")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", nil, fmt.Errorf("session file unreadable: %w", err)
	}

	var blob sessionBlob
	if err := json.Unmarshal(plain, &blob); err != nil {
		return "", nil, err
	}
	return blob.Token, blob.User, nil
}

func (s *fileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
