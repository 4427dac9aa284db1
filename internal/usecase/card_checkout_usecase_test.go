package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/infrastructure/observability"
	mock_interfaces "arthub_checkout/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"
)

var refNow = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

var testProduct = entities.Product{AmountCents: 1000, Description: "Música personalizada Studio Art Hub", ItemCode: "MUSICA_PERSONALIZADA_001"}

func validCardForm() entities.CheckoutForm {
	return entities.CheckoutForm{
		CardNumber: "4111 1111 1111 1111",
		HolderName: "MARIA SILVA",
		ExpMonth:   "12",
		ExpYear:    "30",
		CVV:        "123",
		Document:   "123.456.789-09",
		Email:      "maria@example.com",
		Phone:      "(11) 98765-4321",
		Address: entities.Address{
			Line1:   "Rua A, 100",
			ZipCode: "01310-100",
			City:    "Sao Paulo",
			State:   "SP",
		},
		Installments: 2,
	}
}

func newCardUseCase(tok *mock_interfaces.MockITokenizer, orders *mock_interfaces.MockIOrderGateway, events *fakeEvents) *CardCheckoutUseCase {
	uc := NewCardCheckoutUseCase(tok, orders, events, testProduct)
	uc.nowFunc = func() time.Time { return refNow }
	return uc
}

func TestCardCheckoutUseCase_Submit_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tok := mock_interfaces.NewMockITokenizer(ctrl)
	orders := mock_interfaces.NewMockIOrderGateway(ctrl)
	events := &fakeEvents{}
	form := validCardForm()
	token := entities.OpaqueToken{ID: "tok_123", IssuedAt: refNow}

	gomock.InOrder(
		tok.EXPECT().Tokenize(gomock.Any(), form).Return(token, nil),
		orders.EXPECT().SubmitCardOrder(gomock.Any(), token, form).Return(entities.OrderResult{
			Status:        entities.OrderStatusApproved,
			Reason:        "payment approved",
			PaymentStatus: "paid",
			Exchange:      entities.HTTPExchange{Method: "POST", URL: "/api/payments/credit-card", Status: 200},
		}, nil),
	)

	uc := newCardUseCase(tok, orders, events)
	snap, err := uc.Submit(context.Background(), &form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State != entities.CardApproved || !snap.FormReset || snap.Busy {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if uc.Form() != entities.NewCheckoutForm() {
		t.Fatalf("expected form reset to defaults, got %#v", uc.Form())
	}
	assert.Equal(t, []string{"idle>validating", "validating>tokenizing", "tokenizing>submitting", "submitting>approved"}, events.transitions())

	stages := events.stages()
	assert.Equal(t, "start_click", stages[0])
	assert.Equal(t, "finish", stages[len(stages)-1])
	for _, ev := range events.all() {
		assert.Equal(t, "trace-1", ev.traceID)
		assert.Equal(t, "credit_card", ev.base["payment_method"])
		assert.Equal(t, "10.00", ev.base["amount_brl"])
	}
	assert.Equal(t, "trace-1", snap.TraceID)
}

func TestCardCheckoutUseCase_Submit_PendingIsDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tok := mock_interfaces.NewMockITokenizer(ctrl)
	orders := mock_interfaces.NewMockIOrderGateway(ctrl)
	form := validCardForm()

	tok.EXPECT().Tokenize(gomock.Any(), form).Return(entities.OpaqueToken{ID: "tok_123", IssuedAt: refNow}, nil)
	orders.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.OrderResult{
		Status:        entities.OrderStatusPending,
		Reason:        "payment pending issuer confirmation",
		PaymentStatus: "pending",
	}, nil)

	uc := newCardUseCase(tok, orders, &fakeEvents{})
	snap, err := uc.Submit(context.Background(), &form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State != entities.CardDeclined || snap.Message != "payment pending issuer confirmation" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.FormReset || uc.Form() != form {
		t.Fatalf("form must be preserved, got %#v", uc.Form())
	}
}

func TestCardCheckoutUseCase_Submit_Failures(t *testing.T) {
	t.Run("validation error makes no network call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := &fakeEvents{}
		uc := newCardUseCase(mock_interfaces.NewMockITokenizer(ctrl), mock_interfaces.NewMockIOrderGateway(ctrl), events)

		form := validCardForm()
		form.CardNumber = "4111 1111 1111 1112"
		snap, _ := uc.Submit(context.Background(), &form)
		if snap.State != entities.CardFailed || snap.ErrorKind != entities.KindValidation || snap.Field != "card_number" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		assert.Equal(t, []string{"idle>validating", "validating>failed"}, events.transitions())
		if uc.Form() != form {
			t.Fatalf("form must be preserved")
		}
	})

	t.Run("tokenization error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tok := mock_interfaces.NewMockITokenizer(ctrl)
		events := &fakeEvents{}
		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.OpaqueToken{}, entities.NewTokenizationError("card refused", entities.HTTPExchange{Status: 400, Body: `{"message":"card refused"}`}))
		uc := newCardUseCase(tok, mock_interfaces.NewMockIOrderGateway(ctrl), events)

		form := validCardForm()
		snap, _ := uc.Submit(context.Background(), &form)
		if snap.State != entities.CardFailed || snap.ErrorKind != entities.KindTokenization || snap.Message != "card refused" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		steps := events.find("tokenize")
		require.Len(t, steps, 2)
		assert.Equal(t, entities.LogStatusError, steps[1].status)
		assert.Equal(t, entities.ErrorClassGateway, steps[1].detail.ErrorClass)
	})

	t.Run("unknown tokenizer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tok := mock_interfaces.NewMockITokenizer(ctrl)
		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.OpaqueToken{}, errors.New("boom"))
		uc := newCardUseCase(tok, mock_interfaces.NewMockIOrderGateway(ctrl), &fakeEvents{})

		snap, _ := uc.Submit(context.Background(), ptr(validCardForm()))
		if snap.State != entities.CardFailed || snap.ErrorKind != entities.KindTokenization || snap.Message != "tokenization failed" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("expired token is never submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tok := mock_interfaces.NewMockITokenizer(ctrl)
		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.OpaqueToken{ID: "tok_old", IssuedAt: refNow.Add(-61 * time.Second)}, nil)
		uc := newCardUseCase(tok, mock_interfaces.NewMockIOrderGateway(ctrl), &fakeEvents{})

		snap, _ := uc.Submit(context.Background(), ptr(validCardForm()))
		if snap.State != entities.CardFailed || snap.ErrorCode != entities.CodeTokenExpired {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	cases := []struct {
		name      string
		err       error
		wantState entities.CardState
		wantCode  string
	}{
		{"gateway rejection is declined", entities.NewGatewayError("insufficient funds", entities.HTTPExchange{Status: 402}), entities.CardDeclined, entities.CodeGateway4xx},
		{"card verification failure is declined", entities.NewGatewayError("card verification failed", entities.HTTPExchange{Status: 412}), entities.CardDeclined, entities.CodeCardVerificationFailed},
		{"network error fails", entities.NewNetworkError("could not reach the payment service", entities.HTTPExchange{}, errors.New("dial tcp")), entities.CardFailed, entities.CodeFetchFailed},
		{"protocol error fails", entities.NewProtocolError("unexpected payment response", entities.HTTPExchange{Status: 200}, nil), entities.CardFailed, entities.CodeProtocol},
		{"unknown error fails", errors.New("boom"), entities.CardFailed, entities.CodeProtocol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			tok := mock_interfaces.NewMockITokenizer(ctrl)
			orders := mock_interfaces.NewMockIOrderGateway(ctrl)
			tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.OpaqueToken{ID: "tok_1", IssuedAt: refNow}, nil)
			orders.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.OrderResult{}, tc.err)
			uc := newCardUseCase(tok, orders, &fakeEvents{})

			form := validCardForm()
			snap, err := uc.Submit(context.Background(), &form)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if snap.State != tc.wantState || snap.ErrorCode != tc.wantCode {
				t.Fatalf("unexpected snapshot: %+v", snap)
			}
			if uc.Form() != form {
				t.Fatalf("form must be preserved")
			}
		})
	}
}

func TestCardCheckoutUseCase_Submit_ResubmitUsesPreservedFormAndFreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tok := mock_interfaces.NewMockITokenizer(ctrl)
	orders := mock_interfaces.NewMockIOrderGateway(ctrl)
	events := &fakeEvents{}
	form := validCardForm()

	first := entities.OpaqueToken{ID: "tok_1", IssuedAt: refNow}
	second := entities.OpaqueToken{ID: "tok_2", IssuedAt: refNow}
	gomock.InOrder(
		tok.EXPECT().Tokenize(gomock.Any(), form).Return(first, nil),
		orders.EXPECT().SubmitCardOrder(gomock.Any(), first, form).Return(entities.OrderResult{}, entities.NewGatewayError("declined", entities.HTTPExchange{Status: 402})),
		tok.EXPECT().Tokenize(gomock.Any(), form).Return(second, nil),
		orders.EXPECT().SubmitCardOrder(gomock.Any(), second, form).Return(entities.OrderResult{Status: entities.OrderStatusApproved, PaymentStatus: "paid"}, nil),
	)

	uc := newCardUseCase(tok, orders, events)
	if snap, _ := uc.Submit(context.Background(), &form); snap.State != entities.CardDeclined {
		t.Fatalf("expected declined, got %+v", snap)
	}
	snap, _ := uc.Submit(context.Background(), nil)
	if snap.State != entities.CardApproved || snap.TraceID != "trace-2" {
		t.Fatalf("expected approved on a new trace, got %+v", snap)
	}
	assert.Equal(t, "declined>validating", events.transitions()[4])
}

func TestCardCheckoutUseCase_Submit_RejectsReentry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tok := mock_interfaces.NewMockITokenizer(ctrl)
	orders := mock_interfaces.NewMockIOrderGateway(ctrl)

	release := make(chan struct{})
	tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ entities.CheckoutForm) (entities.OpaqueToken, error) {
		<-release
		return entities.OpaqueToken{ID: "tok_1", IssuedAt: refNow}, nil
	}).Times(1)
	orders.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.OrderResult{Status: entities.OrderStatusApproved, PaymentStatus: "paid"}, nil).Times(1)

	uc := newCardUseCase(tok, orders, &fakeEvents{})
	form := validCardForm()
	done := make(chan entities.CardSnapshot)
	go func() {
		snap, _ := uc.Submit(context.Background(), &form)
		done <- snap
	}()

	require.Eventually(t, func() bool { return uc.Snapshot().State == entities.CardTokenizing }, time.Second, 5*time.Millisecond)
	snap, err := uc.Submit(context.Background(), &form)
	if !errors.Is(err, ErrCheckoutInProgress) || !snap.Busy {
		t.Fatalf("expected ErrCheckoutInProgress while busy, got %+v %v", snap, err)
	}

	close(release)
	if final := <-done; final.State != entities.CardApproved {
		t.Fatalf("expected approved, got %+v", final)
	}
}

func TestCardCheckoutUseCase_LoggingNeverBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mock_interfaces.NewMockILogSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("dial tcp 127.0.0.1:9: connection refused")).AnyTimes()
	pipeline := observability.NewPipeline(sender, observability.WithMeter(noop.NewMeterProvider().Meter("test")))
	defer pipeline.Close(context.Background())
	logger := observability.NewEventLogger(pipeline, sdktrace.NewTracerProvider(), "sess-1", entities.ModeTest)

	tok := mock_interfaces.NewMockITokenizer(ctrl)
	orders := mock_interfaces.NewMockIOrderGateway(ctrl)
	tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.OpaqueToken{ID: "tok_1", IssuedAt: refNow}, nil).Times(3)
	gomock.InOrder(
		orders.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.OrderResult{Status: entities.OrderStatusApproved, PaymentStatus: "paid"}, nil),
		orders.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.OrderResult{Status: entities.OrderStatusDeclined, Reason: "refused", PaymentStatus: "refused"}, nil),
		orders.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.OrderResult{}, entities.NewNetworkError("could not reach the payment service", entities.HTTPExchange{}, errors.New("timeout"))),
	)

	uc := NewCardCheckoutUseCase(tok, orders, logger, testProduct)
	uc.nowFunc = func() time.Time { return refNow }

	for _, want := range []entities.CardState{entities.CardApproved, entities.CardDeclined, entities.CardFailed} {
		snap, err := uc.Submit(context.Background(), ptr(validCardForm()))
		if err != nil || snap.State != want {
			t.Fatalf("expected %s, got %+v %v", want, snap, err)
		}
	}
	require.NoError(t, pipeline.Flush(context.Background()))
}

func ptr[T any](v T) *T { return &v }
