package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "arthub_checkout/internal/adapter/http/dto/request"
	response "arthub_checkout/internal/adapter/http/dto/response"
	"arthub_checkout/internal/adapter/http/validation"
	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase"
	"arthub_checkout/pkg"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// SessionHeader lets a client reuse its own checkout session id.
const SessionHeader = "X-Session-Id"

// CheckoutHandler exposes checkout sessions: one card flow and one Pix flow per session.
//
// Terminal card outcomes (approved, declined, failed) and Pix request failures are
// part of the returned state, not HTTP errors.

type CheckoutHandler struct {
	usecase  usecase.ICheckoutSessionUseCase
	validate *validatorv10.Validate
}

func NewCheckoutHandler(uc usecase.ICheckoutSessionUseCase, v *validatorv10.Validate) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, validate: v}
}

// OpenSession godoc
// @Summary      Open a checkout session
// @Tags         checkout
// @Produce      json
// @Param        X-Session-Id  header    string  false  "client chosen session id"
// @Success      201           {object}  response.SessionResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions [post]
func (h *CheckoutHandler) OpenSession(c *gin.Context) {
	id, err := h.usecase.Open(c.Request.Context(), c.GetHeader(SessionHeader))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SessionResponse{SessionID: id})
}

// SubmitCard godoc
// @Summary      Run the card checkout
// @Description  An empty body re-submits the form preserved from the previous attempt.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                       true   "session id"
// @Param        form        body      request.CheckoutFormRequest  false  "checkout form"
// @Success      200         {object}  response.CardResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/card [post]
func (h *CheckoutHandler) SubmitCard(c *gin.Context) {
	sessionID := c.Param("session_id")

	var form *entities.CheckoutForm
	if c.Request.ContentLength != 0 {
		var payload request.CheckoutFormRequest
		if err := validation.BindAndValidate(c, &payload, h.validate); err != nil {
			return
		}
		form = payload.ToEntity()
	}

	snap, err := h.usecase.SubmitCard(c.Request.Context(), sessionID, form)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	log.Printf("[checkout][handler] card result session_id=%s state=%s trace_id=%s", sessionID, snap.State, snap.TraceID)
	c.JSON(http.StatusOK, response.FromCardSnapshot(sessionID, snap))
}

// CardState godoc
// @Summary      Current card checkout state
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "session id"
// @Success      200         {object}  response.CardResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/card [get]
func (h *CheckoutHandler) CardState(c *gin.Context) {
	sessionID := c.Param("session_id")
	snap, err := h.usecase.CardState(c.Request.Context(), sessionID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCardSnapshot(sessionID, snap))
}

// GeneratePix godoc
// @Summary      Generate a Pix charge
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                true   "session id"
// @Param        buyer       body      request.BuyerRequest  false  "buyer override"
// @Success      200         {object}  response.PixResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/pix [post]
func (h *CheckoutHandler) GeneratePix(c *gin.Context) {
	sessionID := c.Param("session_id")

	var buyer *entities.Buyer
	if c.Request.ContentLength != 0 {
		var payload request.BuyerRequest
		if err := validation.BindAndValidate(c, &payload, h.validate); err != nil {
			return
		}
		buyer = payload.ToEntity()
	}

	snap, err := h.usecase.GeneratePix(c.Request.Context(), sessionID, buyer)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPixSnapshot(sessionID, snap))
}

// PixState godoc
// @Summary      Current Pix state and countdown
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "session id"
// @Success      200         {object}  response.PixResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/pix [get]
func (h *CheckoutHandler) PixState(c *gin.Context) {
	sessionID := c.Param("session_id")
	snap, err := h.usecase.PixState(c.Request.Context(), sessionID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPixSnapshot(sessionID, snap))
}

// CopyPixCode godoc
// @Summary      Copy the Pix copy-paste code
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "session id"
// @Success      200         {object}  response.CopyResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/pix/copy [post]
func (h *CheckoutHandler) CopyPixCode(c *gin.Context) {
	var clip captureClipboard
	code, err := h.usecase.CopyPixCode(c.Request.Context(), c.Param("session_id"), &clip)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	if clip.text != "" {
		code = clip.text
	}
	c.JSON(http.StatusOK, response.CopyResponse{CopyPasteCode: code})
}

// CloseSession godoc
// @Summary      Tear down a checkout session
// @Tags         checkout
// @Param        session_id  path  string  true  "session id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id} [delete]
func (h *CheckoutHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), c.Param("session_id")); err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// captureClipboard hands the copied code back to the HTTP client.
type captureClipboard struct {
	text string
}

func (c *captureClipboard) Write(_ context.Context, text string) error {
	c.text = text
	return nil
}

func writeCheckoutError(c *gin.Context, err error) {
	appErr := mapCheckoutError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[checkout][handler] request failed path=%s err=%v", c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutInProgress):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_PROGRESS", "A payment is already being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrCopyUnavailable):
		return pkg.NewDomainErrorSimple("PIX_CODE_UNAVAILABLE", "No payable Pix code, "+entities.PixExpiredPrompt, http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutClosed):
		return pkg.NewDomainErrorSimple("SESSION_CLOSED", "Checkout session closed", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
