package backend

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/infrastructure/restclient"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const createOrderPath = "/api/payments/create-order"

type pixOrderRequest struct {
	Amount      int64       `json:"amount"`
	Description string      `json:"description"`
	Customer    customerDTO `json:"customer"`
	Pix         struct {
		ExpiresIn int `json:"expires_in"`
	} `json:"pix"`
	Mode string `json:"mode"`
}

type pixOrderResponse struct {
	OK     *bool  `json:"ok"`
	Mode   string `json:"mode"`
	Charge *struct {
		ID              string `json:"id"`
		Status          string `json:"status"`
		LastTransaction struct {
			QRCode    string `json:"qr_code"`
			QRCodeURL string `json:"qr_code_url"`
			ExpiresAt string `json:"expires_at"`
		} `json:"last_transaction"`
	} `json:"charge"`
}

// PixClient creates Pix charges through the backend.
type PixClient struct {
	http      *resty.Client
	product   entities.Product
	mode      entities.Mode
	expiresIn time.Duration
	nowFunc   func() time.Time
}

var _ interfaces.IPixGateway = (*PixClient)(nil)

func NewPixClient(client *resty.Client, product entities.Product, mode entities.Mode, expiresIn time.Duration) *PixClient {
	return &PixClient{http: client, product: product, mode: mode, expiresIn: expiresIn, nowFunc: time.Now}
}

func (c *PixClient) CreatePixCharge(ctx context.Context, buyer entities.Buyer) (entities.PixCharge, error) {
	req := pixOrderRequest{
		Amount:      c.product.AmountCents,
		Description: c.product.Description,
		Customer:    newPixCustomer(buyer),
		Mode:        string(c.mode),
	}
	req.Pix.ExpiresIn = int(c.expiresIn / time.Second)

	log.Printf("[checkout][backend] create-order start amount_brl=%s expires_in=%d mode=%s", entities.FormatBRL(req.Amount), req.Pix.ExpiresIn, c.mode)
	requestedAt := c.nowFunc()
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Post(createOrderPath)
	ex := restclient.Exchange(resp, http.MethodPost, createOrderPath)
	if err != nil {
		log.Printf("[checkout][backend] create-order transport failed err=%v", err)
		return entities.PixCharge{}, entities.NewNetworkError(unreachableReason, ex, err)
	}
	if !resp.IsSuccess() {
		log.Printf("[checkout][backend] create-order rejected status=%d", ex.Status)
		return entities.PixCharge{}, entities.NewGatewayError(gatewayMessage(resp.Body(), ex.Status), ex)
	}

	var out pixOrderResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		log.Printf("[checkout][backend] create-order response not json status=%d", ex.Status)
		return entities.PixCharge{}, entities.NewProtocolError("unexpected Pix response", ex, err)
	}
	if out.OK == nil || !*out.OK {
		log.Printf("[checkout][backend] create-order ok=false status=%d", ex.Status)
		return entities.PixCharge{}, entities.NewGatewayError(gatewayMessage(resp.Body(), ex.Status), ex)
	}
	if out.Charge == nil || strings.TrimSpace(out.Charge.ID) == "" || strings.TrimSpace(out.Charge.LastTransaction.QRCode) == "" {
		log.Printf("[checkout][backend] create-order response without charge status=%d", ex.Status)
		return entities.PixCharge{}, entities.NewProtocolError("Pix charge not returned by the payment service", ex, nil)
	}

	tx := out.Charge.LastTransaction
	// Without expires_at the requested window is the best local estimate.
	expiresAt := requestedAt.Add(c.expiresIn)
	if raw := strings.TrimSpace(tx.ExpiresAt); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return entities.PixCharge{}, entities.NewProtocolError("invalid Pix expiry timestamp", ex, err)
		}
		expiresAt = parsed
	}

	charge := entities.PixCharge{
		ChargeID:      out.Charge.ID,
		Status:        out.Charge.Status,
		CopyPasteCode: tx.QRCode,
		QRCodeURL:     tx.QRCodeURL,
		ExpiresAt:     expiresAt,
		Exchange:      ex,
	}
	log.Printf("[checkout][backend] create-order success charge_id=%s expires_at=%s latency_ms=%d", charge.ChargeID, charge.ExpiresAt.UTC().Format(time.RFC3339), ex.Latency.Milliseconds())
	return charge, nil
}
