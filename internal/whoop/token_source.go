package whoop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/runintel/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// refresh the access token this long before whoop says it expires
const refreshLeeway = 60 * time.Second

type tokenRepo interface {
	Get(ctx context.Context) (*oauth2.Token, error)
	Save(ctx context.Context, token *oauth2.Token) error
}

// TokenSource hands out a valid whoop access token, refreshing it via
// the oauth2 refresh token shortly before expiry. Refreshed tokens are
// persisted, whoop rotates the refresh token on every use.
type TokenSource struct {
	mutex          sync.Mutex
	oauthConfig    *oauth2.Config
	repo           tokenRepo
	metricsManager *metrics.Manager
	token          *oauth2.Token
	now            func() time.Time
}

func NewTokenSource(
	oauthConfig *oauth2.Config,
	repo tokenRepo,
	metricsManager *metrics.Manager,
) *TokenSource {
	return &TokenSource{
		oauthConfig:    oauthConfig,
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// SetToken stores a freshly exchanged token, both in memory and in the repo.
func (ts *TokenSource) SetToken(ctx context.Context, token *oauth2.Token) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ts.token = token
	if err := ts.repo.Save(ctx, token); err != nil {
		return fmt.Errorf("save whoop token: %w", err)
	}
	return nil
}

// AccessToken returns a valid access token, loading the persisted one
// on first use and refreshing when expiry is near.
func (ts *TokenSource) AccessToken(ctx context.Context) (string, error) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	if err := ts.ensureLoaded(ctx); err != nil {
		return "", err
	}

	if ts.now().After(ts.token.Expiry.Add(-refreshLeeway)) {
		if err := ts.refresh(ctx); err != nil {
			return "", err
		}
	}

	return ts.token.AccessToken, nil
}

// ForceRefresh refreshes the token regardless of expiry. Used when the
// API rejects a token whoop considers expired earlier than we do.
func (ts *TokenSource) ForceRefresh(ctx context.Context) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	if err := ts.ensureLoaded(ctx); err != nil {
		return err
	}
	return ts.refresh(ctx)
}

func (ts *TokenSource) ensureLoaded(ctx context.Context) error {
	if ts.token != nil {
		return nil
	}

	token, err := ts.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load whoop token: %w", err)
	}
	ts.token = token
	return nil
}

func (ts *TokenSource) refresh(ctx context.Context) error {
	if ts.token.RefreshToken == "" {
		return fmt.Errorf("whoop token has no refresh token, re-authorization needed")
	}

	// expired copy forces the oauth2 token source to hit the token endpoint
	staleToken := *ts.token
	staleToken.Expiry = ts.now().Add(-time.Minute)

	refreshed, err := ts.oauthConfig.TokenSource(ctx, &staleToken).Token()
	if err != nil {
		return fmt.Errorf("refresh whoop token: %w", err)
	}

	ts.token = refreshed
	if ts.metricsManager != nil {
		ts.metricsManager.CounterWhoopTokenRefreshes.Inc()
	}
	log.Debugf("whoop token refreshed, new expiry: %s", refreshed.Expiry)

	if err := ts.repo.Save(ctx, refreshed); err != nil {
		return fmt.Errorf("save refreshed whoop token: %w", err)
	}
	return nil
}
