package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/logger"
)

const (
	ResultSuccess            = "success"
	ResultInvalidArgument    = "invalid_argument"
	ResultNotFound           = "not_found"
	ResultInsufficientStock  = "insufficient_stock"
	ResultInvariantViolation = "invariant_violation"
	ResultError              = "error"
)

type Service struct {
	customers    CustomerRepository
	equipment    EquipmentRepository
	transactions TransactionRepository
	tx           TxRunner
	guard        Guard
	metrics      SaleRecorder
}

func NewService(
	customers CustomerRepository,
	equipment EquipmentRepository,
	transactions TransactionRepository,
	tx TxRunner,
	metrics SaleRecorder,
) *Service {
	return &Service{
		customers:    customers,
		equipment:    equipment,
		transactions: transactions,
		tx:           tx,
		guard:        StockGuard{},
		metrics:      metrics,
	}
}

// TotalPrice is price × quantity kept at two fractional digits.
func TotalPrice(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Truncate(domain.MoneyScale)
}

// ProcessTransaction sells quantity units of equipmentID to customerID. The
// stock decrement and the sale record commit together or not at all.
func (s *Service) ProcessTransaction(ctx context.Context, customerID, equipmentID int64, quantity int) (*domain.Transaction, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"customer_id":  customerID,
		"equipment_id": equipmentID,
		"quantity":     quantity,
	})

	txn, err := s.processTransaction(ctx, customerID, equipmentID, quantity)
	result := resultOf(err)
	if s.metrics != nil {
		s.metrics.ObserveSale(result, quantity)
	}
	if err != nil {
		log.WithError(err).WithField("result", result).Warn("transaction rejected")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"transaction_id": txn.ID,
		"total_price":    txn.TotalPrice.StringFixed(domain.MoneyScale),
	}).Info("Transaction Processed Successfully")
	return txn, nil
}

func (s *Service) processTransaction(ctx context.Context, customerID, equipmentID int64, quantity int) (*domain.Transaction, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidArgument, quantity)
	}

	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, customerID)
	}

	// Fail fast on an obviously short shelf. The authoritative check runs
	// again under the row lock below.
	eq, err := s.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if eq.Quantity < quantity {
		return nil, insufficientStock(equipmentID, eq.Quantity, quantity)
	}

	var txn *domain.Transaction
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.equipment.LockByID(ctx, equipmentID)
		if err != nil {
			return err
		}
		if locked.Quantity < quantity {
			return insufficientStock(equipmentID, locked.Quantity, quantity)
		}

		decremented, err := s.equipment.DecrementStock(ctx, equipmentID, quantity)
		if err != nil {
			return err
		}
		if !decremented {
			return insufficientStock(equipmentID, locked.Quantity, quantity)
		}

		t := &domain.Transaction{
			CustomerID:  customerID,
			EquipmentID: equipmentID,
			Quantity:    quantity,
			TotalPrice:  TotalPrice(locked.Price, quantity),
		}
		if err := s.transactions.Create(ctx, t); err != nil {
			return err
		}

		after, err := s.equipment.GetByID(ctx, equipmentID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if err := s.guard.Validate(after); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInsufficientStock, err)
		}

		txn = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *Service) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

func insufficientStock(equipmentID int64, available, requested int) error {
	return fmt.Errorf("%w: equipment %d has %d, requested %d", domain.ErrInsufficientStock, equipmentID, available, requested)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrInvariantViolation):
		return ResultInvariantViolation
	case errors.Is(err, domain.ErrInsufficientStock):
		return ResultInsufficientStock
	case errors.Is(err, domain.ErrInvalidArgument):
		return ResultInvalidArgument
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	default:
		return ResultError
	}
}
