package sale

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Payee moves withdrawn funds out of the sale.
type Payee interface {
	Send(ctx context.Context, to common.Address, amount *big.Int) error
}

// PayeeFunc adapts a function to Payee.
type PayeeFunc func(ctx context.Context, to common.Address, amount *big.Int) error

// Send calls f.
func (f PayeeFunc) Send(ctx context.Context, to common.Address, amount *big.Int) error {
	return f(ctx, to, amount)
}

// Withdraw sends the whole balance to the current owner and returns the
// amount sent. The balance is zeroed before the payee runs, and restored if
// the payee fails.
func (s *Sale) Withdraw(ctx context.Context, caller common.Address) (*big.Int, error) {
	s.mu.Lock()
	if err := s.guard.check(caller); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	if s.payee == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("withdraw: %w", ErrNoPayee)
	}
	if s.balance.Sign() == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("withdraw: %w", ErrNothingToWithdraw)
	}
	to := s.guard.owner
	amount := new(big.Int).Set(s.balance)
	s.balance.SetUint64(0)
	payee := s.payee
	s.mu.Unlock()

	if err := payee.Send(ctx, to, amount); err != nil {
		s.mu.Lock()
		s.balance.Add(s.balance, amount)
		s.mu.Unlock()
		s.log.Warn("withdraw failed, balance restored", zap.Stringer("amount", amount), zap.Error(err))
		return nil, fmt.Errorf("withdraw: sending %s wei to %s: %w", amount, to.Hex(), err)
	}

	s.mu.Lock()
	s.observer.Withdrawn(amount)
	s.mu.Unlock()
	s.log.Info("withdrawn", zap.Stringer("to", to), zap.Stringer("amount", amount))
	return amount, nil
}
