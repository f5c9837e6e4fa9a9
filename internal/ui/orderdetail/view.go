// Package orderdetail implements the order detail view: it fetches one order,
// renders it, and lets the customer cancel it while it is still pending.
package orderdetail

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	gateway "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Condition tells apart the failures that share the message slot.
type Condition int

const (
	ConditionNone Condition = iota
	ConditionFetchFailure
	ConditionNotFound
	ConditionCancelFailure
)

func (c Condition) String() string {
	switch c {
	case ConditionFetchFailure:
		return "fetch_failure"
	case ConditionNotFound:
		return "not_found"
	case ConditionCancelFailure:
		return "cancel_failure"
	default:
		return ""
	}
}

// Confirmer asks the customer a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// CancelledFunc observes a successful cancellation. It receives a copy of the
// order after the local status change and the status it had before.
type CancelledFunc func(ctx context.Context, order entities.Order, previous entities.OrderStatus)

// CancelGuard keeps a single cancel request per order outstanding across
// views. Acquire returns ErrCancelInFlight while another holder has the order.
type CancelGuard interface {
	Acquire(ctx context.Context, orderID string) (release func(), err error)
}

type Option func(*View)

func WithCancelGuard(g CancelGuard) Option {
	return func(v *View) { v.guard = g }
}

func WithOnCancelled(fn CancelledFunc) Option {
	return func(v *View) { v.onCancelled = fn }
}

type View struct {
	api         gateway.OrderAPI
	tr          i18n.Translator
	log         *logrus.Logger
	onCancelled CancelledFunc
	guard       CancelGuard

	mu         sync.Mutex
	gen        uint64
	orderID    string
	phase      Phase
	order      *entities.Order
	condition  Condition
	message    string
	notice     string
	cancelling bool
}

func NewView(api gateway.OrderAPI, tr i18n.Translator, log *logrus.Logger, opts ...Option) *View {
	v := &View{
		api:   api,
		tr:    tr,
		log:   log,
		phase: PhaseLoading,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load fetches orderID and replaces whatever the view showed before. When a
// newer Load (or Unmount) happens before the response arrives, the response is
// dropped and ErrStaleResponse is returned.
func (v *View) Load(ctx context.Context, orderID string) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.orderID = orderID
	v.phase = PhaseLoading
	v.order = nil
	v.condition = ConditionNone
	v.message = ""
	v.notice = ""
	v.cancelling = false
	v.mu.Unlock()

	logger := v.log.WithField("order_id", orderID)
	order, err := v.api.GetOrder(ctx, orderID)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		logger.Debug("Dropping order response for a superseded request")
		return apperrors.ErrStaleResponse
	}

	if err != nil {
		logger.WithError(err).Warn("Failed to fetch order details")
		v.phase = PhaseError
		v.condition = ConditionFetchFailure
		v.message = v.tr.T("fetchOrderDetailsFailed")
		return fmt.Errorf("%w: %s", apperrors.ErrFetchOrderFailed, err.Error())
	}

	v.phase = PhaseReady
	if order == nil {
		logger.Info("Order api returned no order")
		v.condition = ConditionNotFound
		v.message = v.tr.T("orderNotFound")
		return apperrors.ErrOrderNotFound
	}

	v.order = order.Clone()
	return nil
}

// Cancel runs the confirm / PATCH / reconcile flow. Declining the prompt is
// not an error and leaves the view untouched.
func (v *View) Cancel(ctx context.Context, confirmer Confirmer) error {
	v.mu.Lock()
	if err := v.checkCancellable(); err != nil {
		v.mu.Unlock()
		return err
	}
	gen := v.gen
	prompt := v.tr.T("confirmCancelOrder")
	v.mu.Unlock()

	if confirmer == nil || !confirmer.Confirm(ctx, prompt) {
		return nil
	}

	v.mu.Lock()
	if gen != v.gen {
		v.mu.Unlock()
		return apperrors.ErrStaleResponse
	}
	if err := v.checkCancellable(); err != nil {
		v.mu.Unlock()
		return err
	}
	v.cancelling = true
	v.notice = ""
	v.condition = ConditionNone
	orderID := v.orderID
	previous := v.order.Status
	v.mu.Unlock()

	logger := v.log.WithField("order_id", orderID)
	if v.guard != nil {
		release, err := v.guard.Acquire(ctx, orderID)
		if err != nil {
			return v.abortCancel(gen, err, logger)
		}
		defer release()
	}

	logger.Info("Cancelling order")

	err := v.api.CancelOrder(ctx, orderID)

	v.mu.Lock()
	if gen != v.gen {
		v.mu.Unlock()
		logger.Debug("Dropping cancel response for a superseded view")
		return apperrors.ErrStaleResponse
	}

	v.cancelling = false
	if err != nil {
		v.condition = ConditionCancelFailure
		v.notice = v.tr.T("cancelOrderFailed")
		v.mu.Unlock()
		logger.WithError(err).Warn("Failed to cancel order")
		return fmt.Errorf("%w: %s", apperrors.ErrCancelOrderFailed, err.Error())
	}

	updated := v.order.Clone()
	updated.Status = entities.OrderStatusCancelled
	v.order = updated
	snapshot := *updated.Clone()
	v.mu.Unlock()

	logger.Info("Order cancelled")
	if v.onCancelled != nil {
		v.onCancelled(ctx, snapshot, previous)
	}
	return nil
}

// abortCancel undoes the cancelling mark when the guard refused the request.
// A request already outstanding elsewhere leaves the view as it was.
func (v *View) abortCancel(gen uint64, err error, logger *logrus.Entry) error {
	inFlight := errors.Is(err, apperrors.ErrCancelInFlight)

	v.mu.Lock()
	if gen == v.gen {
		v.cancelling = false
		if !inFlight {
			v.condition = ConditionCancelFailure
			v.notice = v.tr.T("cancelOrderFailed")
		}
	}
	v.mu.Unlock()

	if inFlight {
		logger.Info("Cancel request for this order is already outstanding")
		return apperrors.ErrCancelInFlight
	}
	logger.WithError(err).Warn("Failed to guard cancel request")
	return fmt.Errorf("%w: %s", apperrors.ErrCancelOrderFailed, err.Error())
}

// checkCancellable must be called with v.mu held.
func (v *View) checkCancellable() error {
	if v.phase != PhaseReady || v.order == nil || !v.order.Status.Cancellable() {
		return apperrors.ErrOrderNotCancellable
	}
	if v.cancelling {
		return apperrors.ErrCancelInFlight
	}
	return nil
}

// Unmount discards the order and ignores any response still in flight.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.gen++
	v.orderID = ""
	v.phase = PhaseLoading
	v.order = nil
	v.condition = ConditionNone
	v.message = ""
	v.notice = ""
	v.cancelling = false
}

func (v *View) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

func (v *View) Condition() Condition {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.condition
}

func (v *View) Cancelling() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cancelling
}

// Order returns a copy of the order currently shown, or nil.
func (v *View) Order() *entities.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.order.Clone()
}
