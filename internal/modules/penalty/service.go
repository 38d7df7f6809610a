package penalty

import (
	"context"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/logger"
)

const defaultPageSize = 100

// Service aggregates penalties and exposes a customer's purchase history.
// All methods except IssuePenalty are read-only.
type Service struct {
	customers    CustomerRepository
	penalties    PenaltyRepository
	transactions TransactionRepository
	pageSize     int
}

func NewService(customers CustomerRepository, penalties PenaltyRepository, transactions TransactionRepository) *Service {
	return &Service{
		customers:    customers,
		penalties:    penalties,
		transactions: transactions,
		pageSize:     defaultPageSize,
	}
}

// GetTotalPenalty sums every penalty issued to the customer. A customer
// without penalties owes zero.
func (s *Service) GetTotalPenalty(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return decimal.Zero, err
	}
	return s.penalties.SumByCustomer(ctx, customerID)
}

// CustomerTransactions yields the customer's sales in id order. Each range
// over the sequence starts a fresh read, fetching one page at a time, so no
// connection is held while the caller consumes rows. An unknown customer
// yields a single ErrNotFound.
func (s *Service) CustomerTransactions(ctx context.Context, customerID int64) iter.Seq2[domain.Transaction, error] {
	return func(yield func(domain.Transaction, error) bool) {
		if err := s.requireCustomer(ctx, customerID); err != nil {
			yield(domain.Transaction{}, err)
			return
		}

		var after int64
		for {
			page, err := s.transactions.ListByCustomerAfter(ctx, customerID, after, s.pageSize)
			if err != nil {
				yield(domain.Transaction{}, err)
				return
			}
			for _, t := range page {
				if !yield(t, nil) {
					return
				}
			}
			if len(page) < s.pageSize {
				return
			}
			after = page[len(page)-1].ID
		}
	}
}

func (s *Service) IssuePenalty(ctx context.Context, customerID int64, amount decimal.Decimal, reason string) (*domain.Penalty, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: penalty amount must be positive, got %s", domain.ErrInvalidArgument, amount)
	}

	p := &domain.Penalty{CustomerID: customerID, Amount: amount, Reason: reason}
	if err := s.penalties.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).WithFields(logrus.Fields{
		"penalty_id":  p.ID,
		"customer_id": customerID,
		"amount":      amount.StringFixed(domain.MoneyScale),
	}).Info("penalty issued")
	return p, nil
}

func (s *Service) GetPenalty(ctx context.Context, id int64) (*domain.Penalty, error) {
	return s.penalties.GetByID(ctx, id)
}

func (s *Service) ListPenalties(ctx context.Context, customerID int64) ([]domain.Penalty, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	return s.penalties.ListByCustomer(ctx, customerID)
}

func (s *Service) requireCustomer(ctx context.Context, customerID int64) error {
	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: customer %d", domain.ErrNotFound, customerID)
	}
	return nil
}
