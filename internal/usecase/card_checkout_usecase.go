package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/domain/validation"
	"arthub_checkout/internal/usecase/interfaces"
)

var (
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

const (
	cardRoute          = "checkout.card"
	paymentMethodCard  = "credit_card"
	msgApproved        = "payment approved"
	msgTokenExpired    = "card token expired, please submit again"
	msgTokenizeGeneric = "tokenization failed"
	msgSubmitGeneric   = "unexpected payment response"
)

// ICardCheckoutUseCase drives one card checkout form.
//
// Requested behavior:
//   - validate, tokenize at the PSP, then submit the token to the backend, strictly in that order.
//   - only one run may be in flight; a second Submit meanwhile returns ErrCheckoutInProgress.
//   - the form is reset only on approval.

type ICardCheckoutUseCase interface {
	Submit(ctx context.Context, form *entities.CheckoutForm) (entities.CardSnapshot, error)
	Snapshot() entities.CardSnapshot
	Form() entities.CheckoutForm
}

type CardCheckoutUseCase struct {
	tokenizer interfaces.ITokenizer
	orders    interfaces.IOrderGateway
	events    interfaces.IEventLogger
	product   entities.Product
	nowFunc   func() time.Time

	mu   sync.Mutex
	form entities.CheckoutForm
	snap entities.CardSnapshot
}

var _ ICardCheckoutUseCase = (*CardCheckoutUseCase)(nil)

func NewCardCheckoutUseCase(tokenizer interfaces.ITokenizer, orders interfaces.IOrderGateway, events interfaces.IEventLogger, product entities.Product) *CardCheckoutUseCase {
	return &CardCheckoutUseCase{
		tokenizer: tokenizer,
		orders:    orders,
		events:    events,
		product:   product,
		nowFunc:   time.Now,
		form:      entities.NewCheckoutForm(),
		snap:      entities.CardSnapshot{State: entities.CardIdle},
	}
}

// Submit runs one checkout. A nil form resubmits the preserved one. Terminal
// outcomes are reported in the snapshot, not as errors.
func (u *CardCheckoutUseCase) Submit(ctx context.Context, form *entities.CheckoutForm) (entities.CardSnapshot, error) {
	u.mu.Lock()
	if u.snap.State.Busy() {
		snap := u.snap
		u.mu.Unlock()
		log.Printf("[checkout][card] submit rejected, run in flight state=%s trace_id=%s", snap.State, snap.TraceID)
		return snap, ErrCheckoutInProgress
	}
	if form != nil {
		u.form = *form
	}
	if u.form.Installments < 1 {
		u.form.Installments = 1
	}
	current := u.form
	prev := u.snap.State
	u.snap = entities.CardSnapshot{State: entities.CardValidating, Busy: true}
	u.mu.Unlock()

	return u.run(ctx, prev, current), nil
}

func (u *CardCheckoutUseCase) Snapshot() entities.CardSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snap
}

func (u *CardCheckoutUseCase) Form() entities.CheckoutForm {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.form
}

func (u *CardCheckoutUseCase) run(ctx context.Context, prev entities.CardState, form entities.CheckoutForm) entities.CardSnapshot {
	tr := u.events.StartTrace(ctx, cardRoute, map[string]any{
		"payment_method": paymentMethodCard,
		"email":          strings.TrimSpace(form.Email),
		"amount_brl":     entities.FormatBRL(u.product.AmountCents),
		"installments":   form.Installments,
	})
	defer tr.End()
	u.setTrace(tr.TraceID())

	log.Printf("[checkout][card] submit start trace_id=%s email=%s installments=%d", tr.TraceID(), strings.TrimSpace(form.Email), form.Installments)
	tr.Emit("start_click", entities.LogStatusPending, entities.EventDetail{})
	u.emitTransition(tr, prev, entities.CardValidating, entities.EventDetail{})

	if verr := validation.Validate(form, u.nowFunc()); verr != nil {
		log.Printf("[checkout][card] validation failed trace_id=%s field=%s", tr.TraceID(), verr.Field)
		return u.fail(tr, entities.CardValidating, entities.CardFailed, verr)
	}

	u.moveTo(tr, entities.CardValidating, entities.CardTokenizing)
	token, ok := u.tokenize(ctx, tr, form)
	if !ok {
		return u.Snapshot()
	}

	u.moveTo(tr, entities.CardTokenizing, entities.CardSubmitting)
	return u.submit(ctx, tr, token, form)
}

func (u *CardCheckoutUseCase) tokenize(ctx context.Context, tr interfaces.ITrace, form entities.CheckoutForm) (entities.OpaqueToken, bool) {
	step := tr.StartStep("tokenize")
	defer step.End()
	step.Emit(entities.LogStatusSending, entities.EventDetail{})

	token, err := u.tokenizer.Tokenize(ctx, form)
	if err != nil {
		ce := asCheckoutError(err, func(err error) *entities.CheckoutError {
			return &entities.CheckoutError{Kind: entities.KindTokenization, Code: entities.CodeTokenizationFailed, Message: msgTokenizeGeneric, Err: err}
		})
		log.Printf("[checkout][card] tokenization failed trace_id=%s kind=%s code=%s err=%v", tr.TraceID(), ce.Kind, ce.Code, ce)
		step.Emit(failureStatus(ce), ce.Detail())
		u.fail(tr, entities.CardTokenizing, entities.CardFailed, ce)
		return entities.OpaqueToken{}, false
	}
	step.Emit(entities.LogStatusOK, entities.EventDetail{})

	if token.Expired(u.nowFunc()) {
		ce := &entities.CheckoutError{Kind: entities.KindTokenization, Code: entities.CodeTokenExpired, Message: msgTokenExpired}
		log.Printf("[checkout][card] token expired before submission trace_id=%s issued_at=%s", tr.TraceID(), token.IssuedAt.Format(time.RFC3339))
		u.fail(tr, entities.CardTokenizing, entities.CardFailed, ce)
		return entities.OpaqueToken{}, false
	}
	return token, true
}

func (u *CardCheckoutUseCase) submit(ctx context.Context, tr interfaces.ITrace, token entities.OpaqueToken, form entities.CheckoutForm) entities.CardSnapshot {
	step := tr.StartStep("submit_order")
	defer step.End()
	step.Emit(entities.LogStatusSending, entities.EventDetail{})

	res, err := u.orders.SubmitCardOrder(ctx, token, form)
	if err != nil {
		ce := asCheckoutError(err, func(err error) *entities.CheckoutError {
			return &entities.CheckoutError{Kind: entities.KindProtocol, Code: entities.CodeProtocol, Message: msgSubmitGeneric, Err: err}
		})
		log.Printf("[checkout][card] submission failed trace_id=%s kind=%s code=%s err=%v", tr.TraceID(), ce.Kind, ce.Code, ce)
		step.Emit(failureStatus(ce), ce.Detail())
		// A gateway answer is a definitive refusal.
		target := entities.CardFailed
		if ce.Kind == entities.KindGateway {
			target = entities.CardDeclined
		}
		return u.fail(tr, entities.CardSubmitting, target, ce)
	}

	ex := res.Exchange
	detail := entities.EventDetail{Exchange: &ex, Meta: map[string]any{"payment_status": res.PaymentStatus}}
	if res.Status != entities.OrderStatusApproved {
		detail.ErrorClass = entities.ErrorClassGateway
		detail.ErrorCode = entities.CodeGatewayRejected
		detail.Message = res.Reason
		step.Emit(entities.LogStatusError, detail)
		log.Printf("[checkout][card] order not approved trace_id=%s status=%s payment_status=%s", tr.TraceID(), res.Status, res.PaymentStatus)
		snap := u.settle(tr, entities.CardSubmitting, entities.CardSnapshot{
			State:         entities.CardDeclined,
			Message:       res.Reason,
			ErrorKind:     entities.KindGateway,
			ErrorCode:     entities.CodeGatewayRejected,
			PaymentStatus: res.PaymentStatus,
		}, detail)
		return snap
	}

	step.Emit(entities.LogStatusOK, detail)
	log.Printf("[checkout][card] order approved trace_id=%s amount_brl=%s", tr.TraceID(), entities.FormatBRL(u.product.AmountCents))
	u.mu.Lock()
	u.form = entities.NewCheckoutForm()
	u.mu.Unlock()
	return u.settle(tr, entities.CardSubmitting, entities.CardSnapshot{
		State:         entities.CardApproved,
		Message:       msgApproved,
		PaymentStatus: res.PaymentStatus,
		FormReset:     true,
	}, entities.EventDetail{Meta: map[string]any{"payment_status": res.PaymentStatus}})
}

func (u *CardCheckoutUseCase) fail(tr interfaces.ITrace, from, to entities.CardState, ce *entities.CheckoutError) entities.CardSnapshot {
	return u.settle(tr, from, entities.CardSnapshot{
		State:     to,
		Message:   ce.Message,
		ErrorKind: ce.Kind,
		ErrorCode: ce.Code,
		Field:     ce.Field,
	}, ce.Detail())
}

// settle stores the terminal snapshot and closes the trace events.
func (u *CardCheckoutUseCase) settle(tr interfaces.ITrace, from entities.CardState, snap entities.CardSnapshot, detail entities.EventDetail) entities.CardSnapshot {
	u.mu.Lock()
	snap.TraceID = u.snap.TraceID
	snap.Busy = false
	u.snap = snap
	u.mu.Unlock()

	u.emitTransition(tr, from, snap.State, detail)
	tr.Emit("finish", entities.LogStatusDone, entities.EventDetail{Meta: map[string]any{"state": string(snap.State)}})
	recordOutcome(paymentMethodCard, string(snap.State))
	return snap
}

func (u *CardCheckoutUseCase) moveTo(tr interfaces.ITrace, from, to entities.CardState) {
	u.mu.Lock()
	u.snap.State = to
	u.snap.Busy = to.Busy()
	u.mu.Unlock()
	u.emitTransition(tr, from, to, entities.EventDetail{})
}

func (u *CardCheckoutUseCase) setTrace(traceID string) {
	u.mu.Lock()
	u.snap.TraceID = traceID
	u.mu.Unlock()
}

func (u *CardCheckoutUseCase) emitTransition(tr interfaces.ITrace, from, to entities.CardState, detail entities.EventDetail) {
	meta := map[string]any{"from": string(from), "to": string(to)}
	for k, v := range detail.Meta {
		meta[k] = v
	}
	detail.Meta = meta
	tr.Emit("state_change", transitionStatus(to), detail)
}

func transitionStatus(to entities.CardState) entities.LogStatus {
	switch to {
	case entities.CardTokenizing, entities.CardSubmitting:
		return entities.LogStatusSending
	case entities.CardApproved:
		return entities.LogStatusOK
	case entities.CardDeclined:
		return entities.LogStatusError
	case entities.CardFailed:
		return entities.LogStatusFailed
	}
	return entities.LogStatusPending
}

// failureStatus is "failed" when no usable answer came back, "error" otherwise.
func failureStatus(ce *entities.CheckoutError) entities.LogStatus {
	switch ce.Kind {
	case entities.KindNetwork, entities.KindProtocol, entities.KindConfiguration:
		return entities.LogStatusFailed
	}
	return entities.LogStatusError
}

func asCheckoutError(err error, fallback func(error) *entities.CheckoutError) *entities.CheckoutError {
	if ce, ok := entities.AsCheckoutError(err); ok {
		return ce
	}
	return fallback(err)
}
