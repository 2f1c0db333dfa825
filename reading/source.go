package reading

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrBadBound is returned when Intn is called with n < 1.
var ErrBadBound = errors.New("reading: bound must be at least 1")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(ctx context.Context, n int) (int, error)
}

// PseudoSource draws from a local PCG generator. Safe for concurrent use.
type PseudoSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPseudoSource returns a PseudoSource seeded with seed.
func NewPseudoSource(seed uint64) *PseudoSource {
	return &PseudoSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn implements Source. ctx is only checked for cancellation.
func (s *PseudoSource) Intn(ctx context.Context, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadBound, n)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

// DefaultRandomOrgURL is the plain-text integer endpoint of random.org.
const DefaultRandomOrgURL = "https://www.random.org/integers/"

// RandomOrgSource fetches true random integers from random.org's plain-text
// HTTP API, one integer per request, throttled by a token bucket.
type RandomOrgSource struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	log     *zap.Logger
}

// RandomOrgOption configures a RandomOrgSource.
type RandomOrgOption func(*RandomOrgSource)

// WithHTTPClient replaces the HTTP client (default: 10s timeout).
func WithHTTPClient(c *http.Client) RandomOrgOption {
	return func(s *RandomOrgSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithBaseURL points the source at another endpoint.
func WithBaseURL(u string) RandomOrgOption {
	return func(s *RandomOrgSource) {
		if u != "" {
			s.baseURL = u
		}
	}
}

// WithRateLimit caps requests per second with the given burst.
// rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) RandomOrgOption {
	return func(s *RandomOrgSource) {
		if rps <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) RandomOrgOption {
	return func(s *RandomOrgSource) {
		if l != nil {
			s.log = l
		}
	}
}

// NewRandomOrgSource returns a source querying random.org.
func NewRandomOrgSource(opts ...RandomOrgOption) *RandomOrgSource {
	s := &RandomOrgSource{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: DefaultRandomOrgURL,
		limiter: rate.NewLimiter(rate.Limit(4), 4),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Intn implements Source. Transport, status and parse failures are
// reported as ErrSource.
func (s *RandomOrgSource) Intn(ctx context.Context, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadBound, n)
	}
	if n == 1 {
		return 0, nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSource, err)
	}

	q := url.Values{}
	q.Set("num", "1")
	q.Set("min", "0")
	q.Set("max", strconv.Itoa(n-1))
	q.Set("col", "1")
	q.Set("base", "10")
	q.Set("format", "plain")
	q.Set("rnd", "new")
	target := s.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: create request: %w", ErrSource, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512))
	if err != nil {
		return 0, fmt.Errorf("%w: read body: %w", ErrSource, err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d: %s", ErrSource, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %w", ErrSource, body, err)
	}
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: %d outside [0,%d)", ErrSource, v, n)
	}
	s.log.Debug("random.org integer", zap.Int("bound", n), zap.Int("value", v))
	return v, nil
}

// NewSource returns the Source for mode: a PseudoSource seeded with seed,
// or a RandomOrgSource configured by opts.
func NewSource(mode Randomness, seed uint64, opts ...RandomOrgOption) (Source, error) {
	switch mode {
	case Pseudo:
		return NewPseudoSource(seed), nil
	case Random:
		return NewRandomOrgSource(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownRandomness, uint8(mode))
	}
}
