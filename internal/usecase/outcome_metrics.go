package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// The global meter delegates to whatever provider main installs later.
var checkoutOutcomes, _ = otel.Meter("arthub_checkout/usecase").Int64Counter(
	"checkout.outcomes",
	metric.WithDescription("Terminal checkout states by payment method"),
)

func recordOutcome(method, state string) {
	if checkoutOutcomes == nil {
		return
	}
	checkoutOutcomes.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("payment_method", method),
		attribute.String("state", state),
	))
}
