package interfaces

import (
	"context"

	"arthub_checkout/internal/domain/entities"
)

// ITokenizer exchanges raw card data for a single-use opaque token directly at the PSP.
// It never sees the billing address and never calls the backend.
type ITokenizer interface {
	Tokenize(ctx context.Context, form entities.CheckoutForm) (entities.OpaqueToken, error)
}

// IOrderGateway sends the token plus buyer metadata to the backend order endpoint.
//
// SubmitCardOrder is NOT idempotent: every call consumes the token.

type IOrderGateway interface {
	SubmitCardOrder(ctx context.Context, token entities.OpaqueToken, form entities.CheckoutForm) (entities.OrderResult, error)
}

// IPixGateway creates a Pix charge on the backend.
type IPixGateway interface {
	CreatePixCharge(ctx context.Context, buyer entities.Buyer) (entities.PixCharge, error)
}

// IClipboard receives the Pix copy-paste code.
type IClipboard interface {
	Write(ctx context.Context, text string) error
}
