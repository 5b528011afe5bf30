package storage

import (
	"log/slog"
	"sync"
	"time"
)

// TokenTTL matches the validity window of a Discord interaction token.
const TokenTTL = 15 * time.Minute

// DeliveryGuard enforces at-most-one followup per interaction token within a
// worker process. A token that has been claimed stays claimed until its TTL
// expires, by which point Discord would reject a followup against it anyway.
type DeliveryGuard struct {
	seen   sync.Map
	ttl    time.Duration
	logger *slog.Logger
}

// NewDeliveryGuard initializes a DeliveryGuard. A zero ttl falls back to
// TokenTTL.
func NewDeliveryGuard(ttl time.Duration, logger *slog.Logger) *DeliveryGuard {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &DeliveryGuard{ttl: ttl, logger: logger}
}

// Begin claims the token for delivery. It returns false if the token was
// already claimed, in which case the caller must not deliver again.
func (g *DeliveryGuard) Begin(token string) bool {
	if _, loaded := g.seen.LoadOrStore(token, time.Now()); loaded {
		g.logger.Warn("DeliveryGuard: token already claimed")
		return false
	}

	// Auto-expire the claim alongside the token itself.
	time.AfterFunc(g.ttl, func() {
		g.seen.Delete(token)
	})
	return true
}
