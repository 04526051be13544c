package analytics

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const saltKey = "hash_salt"

// Tracker turns requests into stored views.
type Tracker struct {
	store    *Store
	salt     string
	selfHost string
	logger   *zap.Logger
	now      func() time.Time

	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewTracker loads the installation salt from store, creating one on first
// run. selfHost is the site's own host, so internal navigation is not
// counted as a referral.
func NewTracker(ctx context.Context, store *Store, selfHost string, logger *zap.Logger) (*Tracker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	salt, err := store.Setting(ctx, saltKey)
	if err != nil {
		return nil, fmt.Errorf("analytics: read salt: %w", err)
	}
	if salt == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("analytics: generate salt: %w", err)
		}
		salt = hex.EncodeToString(b)
		if err := store.SetSetting(ctx, saltKey, salt); err != nil {
			return nil, fmt.Errorf("analytics: store salt: %w", err)
		}
	}
	return &Tracker{
		store:    store,
		salt:     salt,
		selfHost: selfHost,
		logger:   logger,
		now:      time.Now,
		done:     make(chan struct{}),
	}, nil
}

// Record stores a view for h.
func (t *Tracker) Record(ctx context.Context, h Hit) error {
	now := t.now()
	v := View{
		Path:      h.Path,
		Referrer:  CleanReferrer(h.Referrer, t.selfHost),
		Bot:       BotName(h.UserAgent),
		Timestamp: now,
	}
	v.Browser, v.OS, v.Device = ParseUserAgent(h.UserAgent)
	v.VisitorID = visitorID(t.salt, h.IP, h.UserAgent, now)
	return t.store.SaveView(ctx, v)
}

// Summary aggregates the last days days, with top lists of up to five rows.
func (t *Tracker) Summary(ctx context.Context, days int) (Summary, error) {
	return t.store.Summary(ctx, t.now().AddDate(0, 0, -days), 5)
}

// StartCleanup deletes views older than retentionDays every interval until
// Stop is called.
func (t *Tracker) StartCleanup(retentionDays int, interval time.Duration) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := t.store.DeleteBefore(context.Background(), t.now().AddDate(0, 0, -retentionDays))
				if err != nil {
					t.logger.Warn("analytics cleanup failed", zap.Error(err))
					continue
				}
				if n > 0 {
					t.logger.Debug("analytics cleanup", zap.Int64("deleted", n))
				}
			case <-t.done:
				return
			}
		}
	}()
}

// Stop ends the cleanup loop and waits for it. It is safe to call more than once.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
	t.wg.Wait()
}
