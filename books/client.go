package books

import (
	"context"
	"net/http"
	"sync"

	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// the catalogs we hit are free community services so the limiter backs
//    off hard on failures and only creeps back up on success
const (
	decreaseFactor = 0.8
	increaseFactor = 0.2
	minLimit       = 1 // requests per second floor
)

type RateLimiter interface {
	Succeed()
	Fail()
	Wait(context.Context) error
}

type AdaptiveRateLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	limiter     *rate.Limiter
	maxIncrease rate.Limit
}

func NewAdaptiveRateLimiter(startingLimit rate.Limit, startingBurst int, maxIncrease rate.Limit) *AdaptiveRateLimiter {
	return &AdaptiveRateLimiter{
		limit:       startingLimit,
		limiter:     rate.NewLimiter(startingLimit, startingBurst),
		maxIncrease: maxIncrease,
	}
}

func (a *AdaptiveRateLimiter) Fail() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setLimit(max(rate.Limit(float64(a.limit)*(1-decreaseFactor)), minLimit))
}

func (a *AdaptiveRateLimiter) Succeed() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setLimit(min(rate.Limit(float64(a.limit)*(1+increaseFactor)), a.limit+a.maxIncrease))
}

func (a *AdaptiveRateLimiter) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

func (a *AdaptiveRateLimiter) setLimit(newLimit rate.Limit) {
	a.limit = newLimit
	a.limiter.SetLimit(a.limit)
}

type rateLimitedRoundTripper struct {
	transport http.RoundTripper
	limiter   RateLimiter
}

func (rt *rateLimitedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := rt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	resp, err := rt.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		rt.limiter.Fail()
	} else {
		rt.limiter.Succeed()
	}
	return resp, nil
}

func addRateLimiter(client *http.Client, limiter RateLimiter) {
	rt := &rateLimitedRoundTripper{limiter: limiter}
	if client.Transport == nil {
		rt.transport = http.DefaultTransport
	} else {
		rt.transport = client.Transport
	}
	client.Transport = rt
}

// NewRetryClientWithLimiter builds the http client the catalog
// lookups share: retries with backoff underneath a rate limiter that
// adapts to how the upstream is answering.
func NewRetryClientWithLimiter(logger *log.Entry, limiter RateLimiter) *http.Client {
	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{entry: logger}
	stdClient := client.StandardClient()
	addRateLimiter(stdClient, limiter)
	return stdClient
}

// leveledLogger adapts a logrus entry to retryablehttp.LeveledLogger
type leveledLogger struct {
	entry *log.Entry
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.entry.Errorln(msg, keysAndValues)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.entry.Infoln(msg, keysAndValues)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.entry.Debugln(msg, keysAndValues)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.entry.Warnln(msg, keysAndValues)
}
