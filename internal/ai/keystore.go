package ai

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"filippo.io/age"
	"filippo.io/age/armor"
	"github.com/goccy/go-json"

	"github.com/sakinahapp/sakinah/internal/config"
)

// EnvGeminiKey overrides the stored Gemini key when set.
const EnvGeminiKey = "GEMINI_API_KEY"

// ErrNoKey is returned when no key is stored for a provider.
var ErrNoKey = errors.New("no API key configured")

// keystoreWorkFactor keeps scrypt fast enough for an interactive CLI.
const keystoreWorkFactor = 15

// Keystore stores API keys in an age-encrypted file.
//
// The passphrase is derived from the hostname and data directory. That
// keeps keys out of plaintext on disk without prompting on every chat,
// but it is not a substitute for an OS keychain.
type Keystore struct {
	path       string
	passphrase string
}

// NewKeystore opens the keystore under the XDG data directory.
func NewKeystore() *Keystore {
	paths := config.GetPaths()
	hostname, _ := os.Hostname()
	sum := sha256.Sum256([]byte(hostname + ":" + paths.DataDir))
	return &Keystore{
		path:       filepath.Join(paths.DataDir, "keystore.age"),
		passphrase: hex.EncodeToString(sum[:]),
	}
}

// Set stores an encrypted API key for a provider.
func (k *Keystore) Set(provider, apiKey string) error {
	keys, err := k.load()
	if err != nil {
		return err
	}
	keys[provider] = apiKey
	return k.save(keys)
}

// Get retrieves an API key for a provider.
func (k *Keystore) Get(provider string) (string, error) {
	keys, err := k.load()
	if err != nil {
		return "", err
	}
	key, ok := keys[provider]
	if !ok || key == "" {
		return "", fmt.Errorf("%w for %s", ErrNoKey, provider)
	}
	return key, nil
}

// Resolve returns the key for provider, preferring the environment.
func (k *Keystore) Resolve(provider string) (string, error) {
	if provider == "gemini" {
		if v := os.Getenv(EnvGeminiKey); v != "" {
			return v, nil
		}
	}
	return k.Get(provider)
}

// Delete removes an API key for a provider.
func (k *Keystore) Delete(provider string) error {
	keys, err := k.load()
	if err != nil {
		return err
	}
	if _, ok := keys[provider]; !ok {
		return nil
	}
	delete(keys, provider)
	return k.save(keys)
}

// List returns all providers with stored keys, sorted.
func (k *Keystore) List() ([]string, error) {
	keys, err := k.load()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for p := range keys {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func (k *Keystore) load() (map[string]string, error) {
	raw, err := os.ReadFile(k.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keystore: %w", err)
	}

	identity, err := age.NewScryptIdentity(k.passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age identity: %w", err)
	}
	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(raw)), identity)
	if err != nil {
		return nil, fmt.Errorf("decrypting keystore: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decrypting keystore: %w", err)
	}

	keys := make(map[string]string)
	if err := json.Unmarshal(plaintext, &keys); err != nil {
		return nil, fmt.Errorf("parsing keystore: %w", err)
	}
	return keys, nil
}

func (k *Keystore) save(keys map[string]string) error {
	plaintext, err := json.Marshal(keys)
	if err != nil {
		return err
	}

	recipient, err := age.NewScryptRecipient(k.passphrase)
	if err != nil {
		return fmt.Errorf("creating age recipient: %w", err)
	}
	recipient.SetWorkFactor(keystoreWorkFactor)

	var buf bytes.Buffer
	aw := armor.NewWriter(&buf)
	w, err := age.Encrypt(aw, recipient)
	if err != nil {
		return fmt.Errorf("initializing age encryption: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return fmt.Errorf("encrypting keystore: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := aw.Close(); err != nil {
		return fmt.Errorf("finalizing armor: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return err
	}
	// Write with restricted permissions and ensure they are enforced even if the file already existed.
	if err := os.WriteFile(k.path, buf.Bytes(), 0o600); err != nil {
		return err
	}
	return os.Chmod(k.path, 0o600)
}
