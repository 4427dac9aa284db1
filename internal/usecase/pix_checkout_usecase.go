package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"
)

var (
	ErrCopyUnavailable      = errors.New("pix code unavailable, generate a new Pix")
	ErrClipboardUnavailable = errors.New("could not copy the Pix code")
	ErrCheckoutClosed       = errors.New("checkout closed")
)

const (
	pixRoute         = "checkout.pix"
	paymentMethodPix = "pix"
	msgPixGeneric    = "could not create the Pix charge"
)

// Ticker is the 1 Hz source driving the countdown.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) Chan() <-chan time.Time { return t.C }

func newTimeTicker(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} }

// IPixCheckoutUseCase drives one Pix checkout.
//
// Requested behavior:
//   - every Generate opens a new trace and a new charge; the previous countdown is cancelled.
//   - Ready counts down once per second and moves to Expired at zero, which disables Copy.
//   - a clipboard failure never changes the state.

type IPixCheckoutUseCase interface {
	Generate(ctx context.Context, buyer *entities.Buyer) (entities.PixSnapshot, error)
	Snapshot() entities.PixSnapshot
	Copy(ctx context.Context, clipboard interfaces.IClipboard) (string, error)
	Close()
}

type PixCheckoutUseCase struct {
	gateway      interfaces.IPixGateway
	events       interfaces.IEventLogger
	product      entities.Product
	defaultBuyer entities.Buyer
	nowFunc      func() time.Time
	newTicker    func(time.Duration) Ticker

	mu        sync.Mutex
	state     entities.PixState
	charge    entities.PixCharge
	countdown entities.Countdown
	lastErr   *entities.CheckoutError
	copyErr   string
	trace     interfaces.ITrace
	gen       uint64
	closed    bool

	cancelTimer context.CancelFunc
	timerDone   chan struct{}
}

var _ IPixCheckoutUseCase = (*PixCheckoutUseCase)(nil)

type PixOption func(*PixCheckoutUseCase)

func WithPixClock(now func() time.Time) PixOption {
	return func(u *PixCheckoutUseCase) { u.nowFunc = now }
}

func WithPixTicker(newTicker func(time.Duration) Ticker) PixOption {
	return func(u *PixCheckoutUseCase) { u.newTicker = newTicker }
}

func NewPixCheckoutUseCase(gateway interfaces.IPixGateway, events interfaces.IEventLogger, product entities.Product, defaultBuyer entities.Buyer, opts ...PixOption) *PixCheckoutUseCase {
	u := &PixCheckoutUseCase{
		gateway:      gateway,
		events:       events,
		product:      product,
		defaultBuyer: defaultBuyer,
		nowFunc:      time.Now,
		newTicker:    newTimeTicker,
		state:        entities.PixIdle,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Generate requests a brand-new charge. A nil or empty buyer falls back to the configured one.
func (u *PixCheckoutUseCase) Generate(ctx context.Context, buyer *entities.Buyer) (entities.PixSnapshot, error) {
	b := u.defaultBuyer
	if buyer != nil && *buyer != (entities.Buyer{}) {
		b = *buyer
	}

	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return entities.PixSnapshot{State: entities.PixIdle}, ErrCheckoutClosed
	}
	if u.state == entities.PixRequesting {
		snap := u.snapshotLocked()
		u.mu.Unlock()
		return snap, ErrCheckoutInProgress
	}
	wait := u.stopTimerLocked()
	u.gen++
	gen := u.gen
	u.state = entities.PixRequesting
	u.charge = entities.PixCharge{}
	u.countdown = entities.Countdown{}
	u.lastErr = nil
	u.copyErr = ""
	u.mu.Unlock()
	wait()

	tr := u.events.StartTrace(ctx, pixRoute, map[string]any{
		"payment_method": paymentMethodPix,
		"email":          strings.TrimSpace(b.Email),
		"amount_brl":     entities.FormatBRL(u.product.AmountCents),
	})
	defer tr.End()
	u.mu.Lock()
	u.trace = tr
	u.mu.Unlock()

	log.Printf("[checkout][pix] generate start trace_id=%s email=%s", tr.TraceID(), strings.TrimSpace(b.Email))
	tr.Emit("start_click", entities.LogStatusPending, entities.EventDetail{})

	step := tr.StartStep("request_sent")
	step.Emit(entities.LogStatusSending, entities.EventDetail{})
	charge, err := u.gateway.CreatePixCharge(ctx, b)
	step.End()

	if err != nil {
		ce := asCheckoutError(err, func(err error) *entities.CheckoutError {
			return &entities.CheckoutError{Kind: entities.KindProtocol, Code: entities.CodeProtocol, Message: msgPixGeneric, Err: err}
		})
		stage := "response_error"
		if failureStatus(ce) == entities.LogStatusFailed {
			stage = "exception"
		}
		log.Printf("[checkout][pix] charge failed trace_id=%s kind=%s code=%s err=%v", tr.TraceID(), ce.Kind, ce.Code, ce)
		tr.Emit(stage, failureStatus(ce), ce.Detail())

		u.mu.Lock()
		if gen == u.gen {
			u.state = entities.PixIdle
			u.lastErr = ce
		}
		snap := u.snapshotLocked()
		u.mu.Unlock()

		tr.Emit("finish", entities.LogStatusDone, entities.EventDetail{Meta: map[string]any{"state": string(entities.PixIdle)}})
		recordOutcome(paymentMethodPix, "error")
		return snap, nil
	}

	if charge.ExpiresAt.IsZero() {
		log.Printf("[checkout][pix] charge without expires_at trace_id=%s charge_id=%s", tr.TraceID(), charge.ChargeID)
	}
	ex := charge.Exchange
	tr.Emit("response_success", entities.LogStatusOK, entities.EventDetail{
		Exchange: &ex,
		Meta:     map[string]any{"charge_id": charge.ChargeID, "charge_status": charge.Status},
	})
	log.Printf("[checkout][pix] charge created trace_id=%s charge_id=%s expires_at=%s", tr.TraceID(), charge.ChargeID, charge.ExpiresAt.Format(time.RFC3339))

	u.mu.Lock()
	expired := false
	if gen == u.gen && !u.closed {
		u.charge = charge
		u.countdown = entities.NewCountdown(charge.ExpiresAt, u.nowFunc())
		if u.countdown.Expired {
			u.state = entities.PixExpired
			expired = true
		} else {
			u.state = entities.PixReady
			u.startTimerLocked(gen)
		}
	}
	snap := u.snapshotLocked()
	u.mu.Unlock()

	if expired {
		tr.Emit("countdown_expired", entities.LogStatusDone, entities.EventDetail{Meta: map[string]any{"charge_id": charge.ChargeID}})
	}
	tr.Emit("finish", entities.LogStatusDone, entities.EventDetail{Meta: map[string]any{"state": string(snap.State)}})
	recordOutcome(paymentMethodPix, string(snap.State))
	return snap, nil
}

func (u *PixCheckoutUseCase) Snapshot() entities.PixSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

// Copy hands the copy-paste code to the clipboard while the charge is payable.
func (u *PixCheckoutUseCase) Copy(ctx context.Context, clipboard interfaces.IClipboard) (string, error) {
	u.mu.Lock()
	if u.state != entities.PixReady || entities.NewCountdown(u.charge.ExpiresAt, u.nowFunc()).Expired {
		u.mu.Unlock()
		return "", ErrCopyUnavailable
	}
	code := u.charge.CopyPasteCode
	chargeID := u.charge.ChargeID
	tr := u.trace
	u.mu.Unlock()

	if err := clipboard.Write(ctx, code); err != nil {
		log.Printf("[checkout][pix] clipboard write failed charge_id=%s err=%v", chargeID, err)
		u.mu.Lock()
		u.copyErr = ErrClipboardUnavailable.Error()
		u.mu.Unlock()
		if tr != nil {
			tr.Emit("copy", entities.LogStatusError, entities.EventDetail{
				ErrorClass: entities.ErrorClassClient,
				ErrorCode:  entities.CodeClipboard,
				Message:    ErrClipboardUnavailable.Error(),
			})
		}
		return "", fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}

	u.mu.Lock()
	u.copyErr = ""
	u.mu.Unlock()
	if tr != nil {
		tr.Emit("copy", entities.LogStatusOK, entities.EventDetail{Meta: map[string]any{"charge_id": chargeID}})
	}
	return code, nil
}

// Close cancels the countdown and waits for it to exit. Further Generate calls fail.
func (u *PixCheckoutUseCase) Close() {
	u.mu.Lock()
	u.closed = true
	u.gen++
	if u.state == entities.PixRequesting {
		u.state = entities.PixIdle
	}
	wait := u.stopTimerLocked()
	u.mu.Unlock()
	wait()
}

// stopTimerLocked cancels the running countdown and returns a func that blocks
// until its goroutine exited. The returned func must be called without u.mu held.
func (u *PixCheckoutUseCase) stopTimerLocked() func() {
	if u.cancelTimer == nil {
		return func() {}
	}
	u.cancelTimer()
	done := u.timerDone
	u.cancelTimer = nil
	u.timerDone = nil
	return func() { <-done }
}

func (u *PixCheckoutUseCase) startTimerLocked(gen uint64) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	u.cancelTimer = cancel
	u.timerDone = done
	t := u.newTicker(time.Second)
	tr := u.trace

	go func() {
		defer close(done)
		defer t.Stop()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[checkout][pix] countdown panic recovered gen=%d recovered=%v", gen, r)
				u.events.Emit(pixRoute, "countdown", entities.LogStatusFailed, entities.EventDetail{
					ErrorClass: entities.ErrorClassClient,
					ErrorCode:  entities.CodeUnhandledAsync,
					Message:    fmt.Sprint(r),
				})
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.Chan():
				if u.tick(gen, tr) {
					return
				}
			}
		}
	}()
}

// tick recomputes the countdown and reports whether the timer must stop.
func (u *PixCheckoutUseCase) tick(gen uint64, tr interfaces.ITrace) bool {
	u.mu.Lock()
	if gen != u.gen || u.state != entities.PixReady {
		u.mu.Unlock()
		return true
	}
	u.countdown = entities.NewCountdown(u.charge.ExpiresAt, u.nowFunc())
	if !u.countdown.Expired {
		u.mu.Unlock()
		return false
	}
	u.state = entities.PixExpired
	if u.cancelTimer != nil {
		u.cancelTimer()
		u.cancelTimer = nil
		u.timerDone = nil
	}
	chargeID := u.charge.ChargeID
	u.mu.Unlock()

	log.Printf("[checkout][pix] charge expired charge_id=%s", chargeID)
	if tr != nil {
		tr.Emit("countdown_expired", entities.LogStatusDone, entities.EventDetail{Meta: map[string]any{"charge_id": chargeID}})
	}
	recordOutcome(paymentMethodPix, string(entities.PixExpired))
	return true
}

func (u *PixCheckoutUseCase) snapshotLocked() entities.PixSnapshot {
	snap := entities.PixSnapshot{
		State:     u.state,
		Countdown: u.countdown,
		Display:   u.countdown.Display(),
		CopyError: u.copyErr,
	}
	if u.trace != nil {
		snap.TraceID = u.trace.TraceID()
	}
	if u.lastErr != nil {
		snap.Error = u.lastErr.Message
		snap.ErrorCode = u.lastErr.Code
	}
	switch u.state {
	case entities.PixReady, entities.PixExpired:
		exp := u.charge.ExpiresAt
		snap.ChargeID = u.charge.ChargeID
		snap.QRCodeURL = u.charge.QRCodeURL
		snap.ExpiresAt = &exp
	}
	if u.state == entities.PixReady {
		snap.CopyPasteCode = u.charge.CopyPasteCode
		snap.CanCopy = true
	}
	if u.state == entities.PixExpired {
		snap.Prompt = entities.PixExpiredPrompt
	}
	return snap
}
