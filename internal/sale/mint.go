package sale

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// PublicMint mints quantity tokens to caller at the public price.
func (s *Sale) PublicMint(caller common.Address, quantity uint64, paid *big.Int) ([]Token, error) {
	return s.Mint(caller, quantity, paid, PhasePublic)
}

// PreMint mints quantity tokens to a whitelisted caller at the presale price.
func (s *Sale) PreMint(caller common.Address, quantity uint64, paid *big.Int) ([]Token, error) {
	return s.Mint(caller, quantity, paid, PhasePresale)
}

// Mint mints quantity tokens to caller through phase, paying paid wei.
// Preconditions are checked in a fixed order and the first failure is
// returned; on failure nothing changes. Any overpayment is kept.
func (s *Sale) Mint(caller common.Address, quantity uint64, paid *big.Int, phase Phase) ([]Token, error) {
	if phase != PhasePresale && phase != PhasePublic {
		return nil, fmt.Errorf("mint: unsupported phase %s", phase)
	}
	if paid == nil {
		paid = new(big.Int)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMint(caller, quantity, paid, phase); err != nil {
		s.observer.Rejected(phase, err)
		s.log.Debug("mint rejected",
			zap.Stringer("phase", phase),
			zap.Stringer("caller", caller),
			zap.Uint64("quantity", quantity),
			zap.Stringer("paid", paid),
			zap.Error(err))
		return nil, err
	}

	tokens := s.ledger.mint(caller, quantity)
	if phase == PhasePresale {
		s.ledger.presaleMinted[caller] += quantity
	}
	s.balance.Add(s.balance, paid)
	s.emitTransfers(common.Address{}, tokens)

	s.observer.Minted(phase, quantity, paid, s.ledger.supply())
	s.log.Info("minted",
		zap.Stringer("phase", phase),
		zap.Stringer("caller", caller),
		zap.Uint64("quantity", quantity),
		zap.Uint64("first_id", tokens[0].ID),
		zap.Stringer("paid", paid))
	s.assertInvariants()
	return tokens, nil
}

func (s *Sale) checkMint(caller common.Address, quantity uint64, paid *big.Int, phase Phase) error {
	if caller == (common.Address{}) {
		return ErrInvalidAddress
	}
	if s.cfg.paused {
		return ErrSalePaused
	}
	switch {
	case phase == PhasePresale && !s.cfg.presaleActive:
		return ErrPresaleNotActive
	case phase == PhasePublic && s.cfg.presaleActive:
		return ErrPublicMintBlockedDuringPresale
	}
	if quantity == 0 || (phase == PhasePublic && quantity > s.params.MaxMintPerTx) {
		return fmt.Errorf("%w: %d requested, cap %d", ErrExceedsPerTxCap, quantity, s.params.MaxMintPerTx)
	}
	if phase == PhasePresale {
		limit := s.whitelist.presaleLimit(caller, s.params.MaxPresalePerAddress)
		minted := s.ledger.presaleMinted[caller]
		if quantity > limit-minted {
			return fmt.Errorf("%w: %d minted, %d requested, limit %d", ErrExceedsWhitelistCap, minted, quantity, limit)
		}
	}
	if quantity > s.ledger.remaining() {
		return fmt.Errorf("%w: %d requested, %d left", ErrExceedsMaxSupply, quantity, s.ledger.remaining())
	}
	cost := new(big.Int).Mul(s.cfg.unitPrice(phase), new(big.Int).SetUint64(quantity))
	if paid.Cmp(cost) < 0 {
		return fmt.Errorf("%w: paid %s wei, cost %s wei", ErrInsufficientPayment, paid, cost)
	}
	return nil
}

// OwnerMint mints quantity tokens to the owner free of charge. Only the
// supply cap applies.
func (s *Sale) OwnerMint(caller common.Address, quantity uint64) ([]Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.guard.check(caller)
	switch {
	case err != nil:
	case quantity == 0:
		err = ErrInvalidQuantity
	case quantity > s.ledger.remaining():
		err = fmt.Errorf("%w: %d requested, %d left", ErrExceedsMaxSupply, quantity, s.ledger.remaining())
	}
	if err != nil {
		s.observer.Rejected(PhaseOwner, err)
		return nil, fmt.Errorf("owner mint: %w", err)
	}

	tokens := s.ledger.mint(caller, quantity)
	s.emitTransfers(common.Address{}, tokens)

	s.observer.Minted(PhaseOwner, quantity, new(big.Int), s.ledger.supply())
	s.log.Info("owner minted",
		zap.Stringer("caller", caller),
		zap.Uint64("quantity", quantity),
		zap.Uint64("first_id", tokens[0].ID))
	s.assertInvariants()
	return tokens, nil
}

// ApplyTransfer records a transfer of token id from from to to, performed by
// the external transfer component. Presale counts stay with the minter.
func (s *Sale) ApplyTransfer(from, to common.Address, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.transfer(from, to, id); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	s.emit(Event{Kind: EventTransfer, From: from, To: to, TokenID: id})
	s.assertInvariants()
	return nil
}
