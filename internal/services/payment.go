package service

import (
	"context"
	"time"

	"storefront/internal/errors"
	"storefront/internal/models"
	repository "storefront/internal/repositories"
)

type PaymentService struct {
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// VerifyPayment records the confirmation for an order. Individual statement
// failures are swallowed by the repository; only a connection fault surfaces.
func (s *PaymentService) VerifyPayment(ctx context.Context, orderID int64, transactionID string) error {

	payment := &models.Payment{
		OrderID:       orderID,
		TransactionID: transactionID,
		Date:          time.Now(),
	}

	if err := s.repo.RecordPayment(ctx, payment); err != nil {
		return errors.DatabaseError("Failed to record payment").WithError(err)
	}

	return nil
}
