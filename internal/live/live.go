package live

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	EventBalanceChanged   = "wallet.balance_changed"
	EventPaymentCollected = "ride.payment_collected"
	EventEarningsReceived = "wallet.earnings_received"
	EventRefundIssued     = "wallet.refund_issued"
)

type Update struct {
	Type   string `json:"type"`
	UserID int    `json:"user_id,omitempty"`
	RideID int    `json:"ride_id,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// Broadcaster pushes best-effort live updates over redis pub/sub. A nil
// client (no REDIS_ADDR configured) turns every publish into a no-op.
type Broadcaster struct {
	rdb *redis.Client
}

func New(addr string) *Broadcaster {
	if addr == "" {
		return &Broadcaster{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Broadcaster{rdb: rdb}
}

func (b *Broadcaster) Publish(ctx context.Context, channel string, update Update) error {
	if b.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal live update: %w", err)
	}
	if err := b.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		zap.L().Warn("failed to publish live update", zap.String("channel", channel), zap.Error(err))
		return err
	}
	return nil
}

func UserChannel(userID int) string {
	return fmt.Sprintf("user:%d", userID)
}

func RideChannel(rideID int) string {
	return fmt.Sprintf("ride:%d", rideID)
}
