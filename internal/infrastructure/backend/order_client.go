package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/infrastructure/restclient"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const (
	creditCardPath = "/api/payments/credit-card"

	paidStatus        = "paid"
	pendingReason     = "payment pending issuer confirmation"
	approvedReason    = "payment approved"
	unreachableReason = "could not reach the payment service"
)

// negativeStatuses are definitive refusals reported with ok:true.
var negativeStatuses = map[string]bool{
	"failed":         true,
	"declined":       true,
	"refused":        true,
	"canceled":       true,
	"not_authorized": true,
}

type cardOrderRequest struct {
	CardToken    string      `json:"card_token"`
	Amount       int64       `json:"amount"`
	Installments int         `json:"installments"`
	Description  string      `json:"description"`
	ItemCode     string      `json:"item_code"`
	Mode         string      `json:"mode"`
	Customer     customerDTO `json:"customer"`
}

type orderResponse struct {
	OK      *bool  `json:"ok"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OrderClient submits card orders to the backend. It only ever sends the opaque token.
type OrderClient struct {
	http            *resty.Client
	product         entities.Product
	mode            entities.Mode
	maxInstallments int
}

var _ interfaces.IOrderGateway = (*OrderClient)(nil)

func NewOrderClient(client *resty.Client, product entities.Product, mode entities.Mode, maxInstallments int) *OrderClient {
	return &OrderClient{http: client, product: product, mode: mode, maxInstallments: maxInstallments}
}

func (c *OrderClient) SubmitCardOrder(ctx context.Context, token entities.OpaqueToken, form entities.CheckoutForm) (entities.OrderResult, error) {
	req := cardOrderRequest{
		CardToken:    token.ID,
		Amount:       c.product.AmountCents,
		Installments: ClampInstallments(form.Installments, c.maxInstallments),
		Description:  c.product.Description,
		ItemCode:     c.product.ItemCode,
		Mode:         string(c.mode),
		Customer:     newCardCustomer(form),
	}

	log.Printf("[checkout][backend] credit-card start amount_brl=%s installments=%d mode=%s", entities.FormatBRL(req.Amount), req.Installments, c.mode)
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Post(creditCardPath)
	ex := restclient.Exchange(resp, http.MethodPost, creditCardPath)
	if err != nil {
		log.Printf("[checkout][backend] credit-card transport failed err=%v", err)
		return entities.OrderResult{}, entities.NewNetworkError(unreachableReason, ex, err)
	}

	if !resp.IsSuccess() {
		log.Printf("[checkout][backend] credit-card rejected status=%d", ex.Status)
		return entities.OrderResult{}, entities.NewGatewayError(gatewayMessage(resp.Body(), ex.Status), ex)
	}

	var out orderResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		log.Printf("[checkout][backend] credit-card response not json status=%d", ex.Status)
		return entities.OrderResult{}, entities.NewProtocolError("unexpected payment response", ex, err)
	}
	if out.OK == nil || !*out.OK {
		log.Printf("[checkout][backend] credit-card ok=false status=%d", ex.Status)
		return entities.OrderResult{}, entities.NewGatewayError(gatewayMessage(resp.Body(), ex.Status), ex)
	}

	status := strings.ToLower(strings.TrimSpace(out.Status))
	res := entities.OrderResult{PaymentStatus: status, Exchange: ex}
	switch {
	case status == paidStatus:
		res.Status, res.Reason = entities.OrderStatusApproved, approvedReason
	case negativeStatuses[status]:
		res.Status = entities.OrderStatusDeclined
		res.Reason = strings.TrimSpace(out.Message)
		if res.Reason == "" {
			res.Reason = fmt.Sprintf("payment declined (%s)", status)
		}
	default:
		res.Status, res.Reason = entities.OrderStatusPending, pendingReason
	}
	log.Printf("[checkout][backend] credit-card done payment_status=%s result=%s latency_ms=%d", status, res.Status, ex.Latency.Milliseconds())
	return res, nil
}

func gatewayMessage(body []byte, status int) string {
	if msg := restclient.ErrorMessage(body); msg != "" {
		return msg
	}
	return fmt.Sprintf("payment failed: HTTP %d", status)
}
