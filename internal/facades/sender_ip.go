package facades

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/kazzanonim/anonlink/internal/logger"
)

const (
	defaultLookupURL     = "https://api.ipify.org?format=json"
	defaultLookupTimeout = 3 * time.Second

	base36Alphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
	fallbackSuffixLen = 9
)

// SenderIPFacade resolves a best-effort identity for an anonymous sender
// via an external IP-lookup endpoint. Lookup failures are absorbed: the
// caller always gets an identity, never an error.
type SenderIPFacade struct {
	client *http.Client
	url    string
}

// NewSenderIPFacade creates a facade with the default lookup endpoint
// and timeout.
func NewSenderIPFacade() *SenderIPFacade {
	return NewSenderIPFacadeWithClient(&http.Client{Timeout: defaultLookupTimeout}, defaultLookupURL)
}

// NewSenderIPFacadeWithClient creates a facade with a custom client and URL.
func NewSenderIPFacadeWithClient(client *http.Client, url string) *SenderIPFacade {
	return &SenderIPFacade{client: client, url: url}
}

type ipResponse struct {
	IP string `json:"ip"`
}

// Resolve returns the sender's public IP, or a fresh pseudo identity of
// the form "user_" plus 9 random base36 chars when the lookup fails.
// The fallback is regenerated on every failed call and is not cached.
func (f *SenderIPFacade) Resolve(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return f.fallback(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return f.fallback(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return f.fallback(fmt.Errorf("ip lookup returned status %d", resp.StatusCode))
	}

	var body ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return f.fallback(err)
	}
	if body.IP == "" {
		return f.fallback(fmt.Errorf("ip lookup returned empty ip"))
	}

	return body.IP
}

func (f *SenderIPFacade) fallback(cause error) string {
	identity := "user_" + randBase36(fallbackSuffixLen)
	logger.Log.Warnw("ip lookup failed, using fallback identity",
		"identity", identity, "error", cause)
	return identity
}

func randBase36(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			b[i] = base36Alphabet[0]
			continue
		}
		b[i] = base36Alphabet[idx.Int64()]
	}
	return string(b)
}
