package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aldarwish/mishwarpay/internal/config"
	"github.com/aldarwish/mishwarpay/pkg/clients"
)

// EventKind is the closed set of notification kinds. Rendering dispatches on
// the kind through renderEvent, so adding a kind means extending that switch.
type EventKind string

const (
	EventPaymentReceived     EventKind = "payment_received"
	EventPaymentFailed       EventKind = "payment_failed"
	EventRefundProcessed     EventKind = "refund_processed"
	EventEarningsReceived    EventKind = "earnings_received"
	EventTopUpCompleted      EventKind = "top_up_completed"
	EventWithdrawalSubmitted EventKind = "withdrawal_submitted"
)

type Event struct {
	Kind   EventKind
	UserID int
	RideID *int
	Amount decimal.Decimal
}

type message struct {
	UserID int    `json:"user_id"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	RideID *int   `json:"ride_id,omitempty"`
	Amount string `json:"amount"`
}

func renderEvent(e Event) (title, body string, err error) {
	amount := e.Amount.StringFixed(3)
	switch e.Kind {
	case EventPaymentReceived:
		return "Payment received", fmt.Sprintf("Your ride payment of %s was collected.", amount), nil
	case EventPaymentFailed:
		return "Payment failed", fmt.Sprintf("Your ride payment of %s could not be collected.", amount), nil
	case EventRefundProcessed:
		return "Refund processed", fmt.Sprintf("A refund of %s was credited to your wallet.", amount), nil
	case EventEarningsReceived:
		return "Earnings received", fmt.Sprintf("Ride earnings of %s were credited to your wallet.", amount), nil
	case EventTopUpCompleted:
		return "Top-up completed", fmt.Sprintf("Your wallet was topped up with %s.", amount), nil
	case EventWithdrawalSubmitted:
		return "Withdrawal submitted", fmt.Sprintf("Your withdrawal of %s is being processed.", amount), nil
	default:
		return "", "", fmt.Errorf("unknown notification kind: %s", e.Kind)
	}
}

// Service delivers notification events to the external sink. Delivery is
// fire-and-forget: failures are logged and never surface to settlement.
type Service struct {
	sinkURL    string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		sinkURL:    cfg.NotifyAddress,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

func (s *Service) Notify(ctx context.Context, e Event) {
	if s.sinkURL == "" {
		return
	}

	title, body, err := renderEvent(e)
	if err != nil {
		zap.L().Warn("dropping notification", zap.Error(err))
		return
	}

	payload, err := json.Marshal(message{
		UserID: e.UserID,
		Kind:   string(e.Kind),
		Title:  title,
		Body:   body,
		RideID: e.RideID,
		Amount: e.Amount.StringFixed(3),
	})
	if err != nil {
		zap.L().Error("failed to marshal notification", zap.Error(err))
		return
	}

	err = s.workerPool.AddTask(ctx, func() error {
		statusCode, _, err := s.client.Post(s.sinkURL, "application/json", payload)
		if err != nil {
			return fmt.Errorf("failed to deliver notification for user %d: %w", e.UserID, err)
		}
		if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
			return fmt.Errorf("notification sink responded with status %d", statusCode)
		}
		return nil
	})
	if err != nil {
		zap.L().Warn("failed to enqueue notification", zap.Error(err))
	}
}

// NotifyAll fans a batch out to the worker pool.
func (s *Service) NotifyAll(ctx context.Context, events []Event) {
	var g errgroup.Group
	for _, e := range events {
		e := e
		g.Go(func() error {
			s.Notify(ctx, e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching notifications", zap.Error(err))
	}
}

func (s *Service) Close() {
	s.workerPool.Close()
}
