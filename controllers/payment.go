package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"bistro-boss/middleware"
	"bistro-boss/models"
	"bistro-boss/utils"

	"github.com/rs/zerolog"
)

const receiptTimeout = 15 * time.Second

// PaymentController handles checkout requests
type PaymentController struct {
	Payments PaymentStore
	Gateway  PaymentGateway
	Mailer   utils.Mailer
	logger   zerolog.Logger

	receipts sync.WaitGroup
}

// NewPaymentController creates a PaymentController. mailer may be nil, in
// which case no receipts are sent.
func NewPaymentController(payments PaymentStore, gateway PaymentGateway, mailer utils.Mailer, logger zerolog.Logger) *PaymentController {
	return &PaymentController{
		Payments: payments,
		Gateway:  gateway,
		Mailer:   mailer,
		logger:   logger.With().Str("controller", "payment").Logger(),
	}
}

// CreatePaymentIntent handles POST /create-payment-intent
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount := utils.MinorUnits(req.Price)
	secret, err := pc.Gateway.CreateIntent(r.Context(), amount)
	if err != nil {
		if errors.Is(err, utils.ErrPaymentsDisabled) {
			utils.WriteError(w, http.StatusServiceUnavailable, "Payments are not available")
			return
		}
		pc.logger.Error().Err(err).Int64("amount", amount).Msg("failed to create payment intent")
		utils.WriteError(w, http.StatusBadGateway, "Error creating payment intent")
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}

// RecordPayment handles POST /payments. The payment is stored pending, its
// cart items are removed and it is then marked completed. Replaying the same
// transaction after a partial failure resumes the cleanup without storing a
// second payment.
func (pc *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := utils.DecodeJSON(r, &payment); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	payment.ID = ""
	payment.Status = models.PaymentPending
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	log := pc.logger.With().Str("transaction_id", payment.TransactionID).Logger()

	insertResult, existing, err := pc.Payments.InsertPayment(r.Context(), &payment)
	if err != nil {
		log.Error().Err(err).Msg("failed to record payment")
		utils.WriteError(w, http.StatusInternalServerError, "Error recording payment")
		return
	}

	cartItems := payment.CartItems
	if existing != nil {
		cartItems = existing.CartItems
	}

	deleteResult, err := pc.Payments.DeleteCartItems(r.Context(), cartItems)
	if err != nil {
		log.Error().Err(err).Str("payment_id", insertResult.InsertedID.String()).Msg("payment recorded, cart cleanup pending")
		utils.WriteError(w, http.StatusInternalServerError, "Payment recorded but cart cleanup failed, retry the request")
		return
	}

	if err := pc.Payments.CompletePayment(r.Context(), insertResult.InsertedID); err != nil {
		log.Error().Err(err).Str("payment_id", insertResult.InsertedID.String()).Msg("failed to complete payment")
		utils.WriteError(w, http.StatusInternalServerError, "Payment recorded but not completed, retry the request")
		return
	}

	if existing == nil {
		log.Info().
			Str("email", payment.Email).
			Float64("price", payment.Price).
			Int64("cart_items_removed", deleteResult.DeletedCount).
			Msg("payment completed")
		pc.sendReceipt(payment)
	}

	utils.WriteJSON(w, http.StatusOK, models.PaymentResult{
		InsertResult: insertResult,
		DeleteResult: deleteResult,
	})
}

// GetPayments handles GET /payments?email=, the caller's payment history.
func (pc *PaymentController) GetPayments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteJSON(w, http.StatusOK, []models.Payment{})
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		utils.WriteError(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	payments, err := pc.Payments.ListPayments(r.Context(), email)
	if err != nil {
		pc.logger.Error().Err(err).Str("email", email).Msg("failed to list payments")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching payments")
		return
	}

	utils.WriteJSON(w, http.StatusOK, payments)
}

func (pc *PaymentController) sendReceipt(payment models.Payment) {
	if pc.Mailer == nil {
		return
	}

	pc.receipts.Add(1)
	go func() {
		defer pc.receipts.Done()

		ctx, cancel := context.WithTimeout(context.Background(), receiptTimeout)
		defer cancel()

		subject, body := utils.ReceiptEmail(&payment)
		if err := pc.Mailer.SendEmail(ctx, payment.Email, subject, body); err != nil {
			pc.logger.Error().Err(err).Str("email", payment.Email).Msg("failed to send receipt")
		}
	}()
}

// WaitForReceipts blocks until every receipt in flight has been handed to the
// mailer or ctx ends.
func (pc *PaymentController) WaitForReceipts(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		pc.receipts.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
