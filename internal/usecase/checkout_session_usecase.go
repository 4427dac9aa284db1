package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("checkout session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// CheckoutComponents wires the card and Pix machines of one session.
// Events returns the event logger bound to a session id.
type CheckoutComponents struct {
	Tokenizer interfaces.ITokenizer
	Orders    interfaces.IOrderGateway
	Pix       interfaces.IPixGateway
	Product   entities.Product
	Buyer     entities.Buyer
	Events    func(sessionID string) interfaces.IEventLogger
}

func (c CheckoutComponents) Build(sessionID string) (ICardCheckoutUseCase, IPixCheckoutUseCase) {
	events := c.Events(sessionID)
	return NewCardCheckoutUseCase(c.Tokenizer, c.Orders, events, c.Product),
		NewPixCheckoutUseCase(c.Pix, events, c.Product, c.Buyer)
}

// ICheckoutSessionUseCase keeps one form, one card machine and one Pix machine
// per checkout session.
//
// Requested behavior:
//   - a session is opened explicitly, optionally with a caller-chosen id.
//   - idle sessions are torn down after the configured TTL; teardown cancels the countdown.

type ICheckoutSessionUseCase interface {
	Open(ctx context.Context, sessionID string) (string, error)
	SubmitCard(ctx context.Context, sessionID string, form *entities.CheckoutForm) (entities.CardSnapshot, error)
	CardState(ctx context.Context, sessionID string) (entities.CardSnapshot, error)
	GeneratePix(ctx context.Context, sessionID string, buyer *entities.Buyer) (entities.PixSnapshot, error)
	PixState(ctx context.Context, sessionID string) (entities.PixSnapshot, error)
	CopyPixCode(ctx context.Context, sessionID string, clipboard interfaces.IClipboard) (string, error)
	Close(ctx context.Context, sessionID string) error
}

type checkoutSession struct {
	card     ICardCheckoutUseCase
	pix      IPixCheckoutUseCase
	lastSeen time.Time
}

type CheckoutSessionUseCase struct {
	build   func(sessionID string) (ICardCheckoutUseCase, IPixCheckoutUseCase)
	idleTTL time.Duration
	nowFunc func() time.Time

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

var _ ICheckoutSessionUseCase = (*CheckoutSessionUseCase)(nil)

func NewCheckoutSessionUseCase(build func(sessionID string) (ICardCheckoutUseCase, IPixCheckoutUseCase), idleTTL time.Duration) *CheckoutSessionUseCase {
	return &CheckoutSessionUseCase{
		build:    build,
		idleTTL:  idleTTL,
		nowFunc:  time.Now,
		sessions: make(map[string]*checkoutSession),
	}
}

// Open returns the id of an existing session or creates one. An empty id gets a fresh uuid.
func (u *CheckoutSessionUseCase) Open(_ context.Context, sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if !sessionIDPattern.MatchString(sessionID) {
		log.Printf("[checkout][session] invalid session id len=%d", len(sessionID))
		return "", ErrInvalidSessionID
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.sessions[sessionID]; ok {
		s.lastSeen = u.nowFunc()
		return sessionID, nil
	}
	card, pix := u.build(sessionID)
	u.sessions[sessionID] = &checkoutSession{card: card, pix: pix, lastSeen: u.nowFunc()}
	log.Printf("[checkout][session] opened session_id=%s active=%d", sessionID, len(u.sessions))
	return sessionID, nil
}

func (u *CheckoutSessionUseCase) SubmitCard(ctx context.Context, sessionID string, form *entities.CheckoutForm) (entities.CardSnapshot, error) {
	s, err := u.get(sessionID)
	if err != nil {
		return entities.CardSnapshot{}, err
	}
	return s.card.Submit(ctx, form)
}

func (u *CheckoutSessionUseCase) CardState(_ context.Context, sessionID string) (entities.CardSnapshot, error) {
	s, err := u.get(sessionID)
	if err != nil {
		return entities.CardSnapshot{}, err
	}
	return s.card.Snapshot(), nil
}

func (u *CheckoutSessionUseCase) GeneratePix(ctx context.Context, sessionID string, buyer *entities.Buyer) (entities.PixSnapshot, error) {
	s, err := u.get(sessionID)
	if err != nil {
		return entities.PixSnapshot{}, err
	}
	return s.pix.Generate(ctx, buyer)
}

func (u *CheckoutSessionUseCase) PixState(_ context.Context, sessionID string) (entities.PixSnapshot, error) {
	s, err := u.get(sessionID)
	if err != nil {
		return entities.PixSnapshot{}, err
	}
	return s.pix.Snapshot(), nil
}

func (u *CheckoutSessionUseCase) CopyPixCode(ctx context.Context, sessionID string, clipboard interfaces.IClipboard) (string, error) {
	s, err := u.get(sessionID)
	if err != nil {
		return "", err
	}
	return s.pix.Copy(ctx, clipboard)
}

func (u *CheckoutSessionUseCase) Close(_ context.Context, sessionID string) error {
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	delete(u.sessions, sessionID)
	u.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.pix.Close()
	log.Printf("[checkout][session] closed session_id=%s", sessionID)
	return nil
}

// SweepIdle tears down sessions not used since idleTTL and returns how many were removed.
func (u *CheckoutSessionUseCase) SweepIdle(now time.Time) int {
	if u.idleTTL <= 0 {
		return 0
	}
	var stale []*checkoutSession
	u.mu.Lock()
	for id, s := range u.sessions {
		if now.Sub(s.lastSeen) >= u.idleTTL && !s.card.Snapshot().Busy {
			stale = append(stale, s)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, s := range stale {
		s.pix.Close()
	}
	if len(stale) > 0 {
		log.Printf("[checkout][session] swept idle sessions count=%d", len(stale))
	}
	return len(stale)
}

// RunSweeper calls SweepIdle every interval until ctx is done.
func (u *CheckoutSessionUseCase) RunSweeper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			u.SweepIdle(now)
		}
	}
}

// Shutdown closes every session.
func (u *CheckoutSessionUseCase) Shutdown() {
	u.mu.Lock()
	all := u.sessions
	u.sessions = make(map[string]*checkoutSession)
	u.mu.Unlock()
	for _, s := range all {
		s.pix.Close()
	}
}

func (u *CheckoutSessionUseCase) get(sessionID string) (*checkoutSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = u.nowFunc()
	return s, nil
}
