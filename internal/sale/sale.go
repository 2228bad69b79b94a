// Package sale implements the AstarCats token sale: a fixed-supply mint
// ledger gated by a pause switch and a presale/public phase, with per-phase
// pricing, a per-transaction cap, a whitelist allocation ledger for presale,
// and a one-way reveal of token metadata.
//
// A Sale serialises every mutating call behind one lock, so each call either
// applies completely or fails without effect.
package sale

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// Observer is told about every mint outcome and withdrawal. Calls happen
// while the sale lock is held and must not call back into the Sale.
type Observer interface {
	Minted(phase Phase, quantity uint64, paid *big.Int, supply uint64)
	Rejected(phase Phase, err error)
	Withdrawn(amount *big.Int)
}

type nopObserver struct{}

func (nopObserver) Minted(Phase, uint64, *big.Int, uint64) {}
func (nopObserver) Rejected(Phase, error)                  {}
func (nopObserver) Withdrawn(*big.Int)                     {}

// Sale is the token sale state machine.
type Sale struct {
	mu sync.RWMutex

	name    string
	symbol  string
	address common.Address
	params  Params

	guard     guard
	cfg       config
	ledger    *ledger
	whitelist whitelist
	balance   *big.Int
	events    []Event

	log      *zap.Logger
	observer Observer
	payee    Payee
}

// Option configures a Sale.
type Option func(*Sale)

// WithParams overrides the default supply, caps, prices and base extension.
func WithParams(p Params) Option {
	return func(s *Sale) {
		s.params = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sale) {
		s.log = l
	}
}

// WithObserver registers an observer, e.g. a metrics collector.
func WithObserver(o Observer) Option {
	return func(s *Sale) {
		s.observer = o
	}
}

// WithPayee sets where Withdraw sends funds.
func WithPayee(p Payee) Option {
	return func(s *Sale) {
		s.payee = p
	}
}

// New deploys a sale owned by deployer. It starts paused, in presale and
// unrevealed with nothing minted.
func New(deployer common.Address, name, symbol, notRevealedURI string, opts ...Option) (*Sale, error) {
	if deployer == (common.Address{}) {
		return nil, fmt.Errorf("deployer: %w", ErrInvalidAddress)
	}
	s := &Sale{
		name:      name,
		symbol:    symbol,
		address:   crypto.CreateAddress(deployer, 0),
		params:    DefaultParams(),
		guard:     guard{owner: deployer},
		whitelist: newWhitelist(),
		balance:   new(big.Int),
		log:       zap.NewNop(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.params.validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	s.params = s.params.clone()
	s.cfg = newConfig(s.params, notRevealedURI)
	s.ledger = newLedger(s.params.MaxSupply)
	s.log = s.log.With(zap.String("sale", symbol), zap.Stringer("contract", s.address))
	return s, nil
}

// Name returns the token name.
func (s *Sale) Name() string { return s.name }

// Symbol returns the token symbol.
func (s *Sale) Symbol() string { return s.symbol }

// Address returns the address the sale emits events from.
func (s *Sale) Address() common.Address { return s.address }

// MaxSupply returns the supply cap.
func (s *Sale) MaxSupply() uint64 { return s.params.MaxSupply }

// MaxMintPerTx returns the public per-call cap.
func (s *Sale) MaxMintPerTx() uint64 { return s.params.MaxMintPerTx }

// Owner returns the current owner.
func (s *Sale) Owner() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guard.owner
}

// TotalSupply returns the number of minted tokens.
func (s *Sale) TotalSupply() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.supply()
}

// OwnerOf returns the owner of token id.
func (s *Sale) OwnerOf(id uint64) (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.ownerOf(id)
}

// BalanceOf returns how many tokens addr holds.
func (s *Sale) BalanceOf(addr common.Address) (uint64, error) {
	if addr == (common.Address{}) {
		return 0, ErrInvalidAddress
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.balances[addr], nil
}

// Balance returns the wei currently held by the sale.
func (s *Sale) Balance() *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return new(big.Int).Set(s.balance)
}

// WhitelistCount returns the total number of allocation units pushed.
func (s *Sale) WhitelistCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.whitelist.total
}

// Allocation returns the allocation units pushed for addr.
func (s *Sale) Allocation(addr common.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.whitelist.allocation(addr)
}

// PresaleLimit returns the most addr may mint in total during presale.
func (s *Sale) PresaleLimit(addr common.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.whitelist.presaleLimit(addr, s.params.MaxPresalePerAddress)
}

// PresaleMinted returns how many tokens addr has minted through presale.
func (s *Sale) PresaleMinted(addr common.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.presaleMinted[addr]
}

// Events returns a copy of the event journal.
func (s *Sale) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
