package sale

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// State is a complete, serialisable copy of a sale.
type State struct {
	Name    string         `json:"name"`
	Symbol  string         `json:"symbol"`
	Address common.Address `json:"address"`
	Owner   common.Address `json:"owner"`

	MaxSupply            uint64   `json:"max_supply"`
	MaxMintPerTx         uint64   `json:"max_mint_per_tx"`
	MaxPresalePerAddress uint64   `json:"max_presale_per_address"`
	PriceRegular         *big.Int `json:"price_regular"`
	PricePresale         *big.Int `json:"price_presale"`

	Paused         bool   `json:"paused"`
	PresaleActive  bool   `json:"presale_active"`
	Revealed       bool   `json:"revealed"`
	BaseURI        string `json:"base_uri"`
	BaseExtension  string `json:"base_extension"`
	NotRevealedURI string `json:"not_revealed_uri"`

	Owners         []common.Address          `json:"owners"`
	PresaleMinted  map[common.Address]uint64 `json:"presale_minted"`
	Whitelist      map[common.Address]uint64 `json:"whitelist"`
	WhitelistCount uint64                    `json:"whitelist_count"`
	Balance        *big.Int                  `json:"balance"`
	Events         []Event                   `json:"events"`
}

// State returns a copy of the sale's state.
func (s *Sale) State() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := &State{
		Name:                 s.name,
		Symbol:               s.symbol,
		Address:              s.address,
		Owner:                s.guard.owner,
		MaxSupply:            s.params.MaxSupply,
		MaxMintPerTx:         s.params.MaxMintPerTx,
		MaxPresalePerAddress: s.params.MaxPresalePerAddress,
		PriceRegular:         new(big.Int).Set(s.cfg.priceRegular),
		PricePresale:         new(big.Int).Set(s.cfg.pricePresale),
		Paused:               s.cfg.paused,
		PresaleActive:        s.cfg.presaleActive,
		Revealed:             s.cfg.revealed,
		BaseURI:              s.cfg.baseURI,
		BaseExtension:        s.cfg.baseExtension,
		NotRevealedURI:       s.cfg.notRevealedURI,
		Owners:               append([]common.Address(nil), s.ledger.owners...),
		PresaleMinted:        make(map[common.Address]uint64, len(s.ledger.presaleMinted)),
		Whitelist:            make(map[common.Address]uint64, len(s.whitelist.units)),
		WhitelistCount:       s.whitelist.total,
		Balance:              new(big.Int).Set(s.balance),
		Events:               append([]Event(nil), s.events...),
	}
	for a, n := range s.ledger.presaleMinted {
		st.PresaleMinted[a] = n
	}
	for a, n := range s.whitelist.units {
		st.Whitelist[a] = n
	}
	return st
}

// Restore rebuilds a sale from st. Supply, balances, whitelist and presale
// counts are re-verified and the event journal is replayed against the token
// and contract owners; a state that breaks any of them is rejected with
// ErrCorruptState.
func Restore(st *State, opts ...Option) (*Sale, error) {
	if st.Owner == (common.Address{}) {
		return nil, fmt.Errorf("%w: no owner", ErrCorruptState)
	}
	s := &Sale{}
	for _, opt := range opts {
		opt(s)
	}
	s.name = st.Name
	s.symbol = st.Symbol
	s.address = st.Address
	s.params = Params{
		MaxSupply:            st.MaxSupply,
		MaxMintPerTx:         st.MaxMintPerTx,
		MaxPresalePerAddress: st.MaxPresalePerAddress,
		PriceRegular:         st.PriceRegular,
		PricePresale:         st.PricePresale,
		BaseExtension:        st.BaseExtension,
	}
	if err := s.params.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	s.params = s.params.clone()
	s.guard = guard{owner: st.Owner}
	s.cfg = config{
		paused:         st.Paused,
		presaleActive:  st.PresaleActive,
		revealed:       st.Revealed,
		priceRegular:   s.params.PriceRegular,
		pricePresale:   s.params.PricePresale,
		baseURI:        st.BaseURI,
		baseExtension:  st.BaseExtension,
		notRevealedURI: st.NotRevealedURI,
	}

	s.ledger = newLedger(st.MaxSupply)
	s.ledger.owners = append(s.ledger.owners, st.Owners...)
	for _, o := range st.Owners {
		s.ledger.balances[o]++
	}
	for a, n := range st.PresaleMinted {
		if n > 0 {
			s.ledger.presaleMinted[a] = n
		}
	}

	s.whitelist = newWhitelist()
	var units uint64
	for a, n := range st.Whitelist {
		if n > 0 {
			s.whitelist.units[a] = n
			units += n
		}
	}
	if units != st.WhitelistCount {
		return nil, fmt.Errorf("%w: whitelist count %d, units sum to %d", ErrCorruptState, st.WhitelistCount, units)
	}
	s.whitelist.total = units

	s.balance = new(big.Int)
	if st.Balance != nil {
		if st.Balance.Sign() < 0 {
			return nil, fmt.Errorf("%w: negative balance", ErrCorruptState)
		}
		s.balance.Set(st.Balance)
	}
	if err := checkJournal(st.Events, st.Owners, st.Owner); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	s.events = append([]Event(nil), st.Events...)

	if err := s.ledger.verify(&s.whitelist, s.params.MaxPresalePerAddress); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.With(zap.String("sale", s.symbol), zap.Stringer("contract", s.address))
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	return s, nil
}

// checkJournal replays events and reports the first point where they disagree
// with owners or with the contract owner.
func checkJournal(events []Event, owners []common.Address, owner common.Address) error {
	var replayed []common.Address
	var lastOwner *common.Address
	for i, e := range events {
		if e.Index != uint64(i) {
			return fmt.Errorf("event %d has index %d", i, e.Index)
		}
		switch e.Kind {
		case EventTransfer:
			if e.From == (common.Address{}) {
				if want := uint64(len(replayed)) + 1; e.TokenID != want {
					return fmt.Errorf("event %d mints token %d, want %d", i, e.TokenID, want)
				}
				replayed = append(replayed, e.To)
				continue
			}
			if e.TokenID == 0 || e.TokenID > uint64(len(replayed)) || replayed[e.TokenID-1] != e.From {
				return fmt.Errorf("event %d moves token %d from %s, which does not hold it", i, e.TokenID, e.From.Hex())
			}
			replayed[e.TokenID-1] = e.To
		case EventOwnershipTransferred:
			if lastOwner != nil && *lastOwner != e.From {
				return fmt.Errorf("event %d hands over ownership from %s, owner was %s", i, e.From.Hex(), lastOwner.Hex())
			}
			to := e.To
			lastOwner = &to
		default:
			return fmt.Errorf("event %d has unknown kind %q", i, e.Kind)
		}
	}
	if len(replayed) != len(owners) {
		return fmt.Errorf("journal mints %d tokens, supply is %d", len(replayed), len(owners))
	}
	for i, o := range owners {
		if replayed[i] != o {
			return fmt.Errorf("token %d: journal says %s, owners say %s", i+1, replayed[i].Hex(), o.Hex())
		}
	}
	if lastOwner != nil && *lastOwner != owner {
		return fmt.Errorf("journal hands ownership to %s, owner is %s", lastOwner.Hex(), owner.Hex())
	}
	return nil
}

// debugInvariants makes every mutation re-verify the ledger and panic on a
// violation. Tests switch it on.
var debugInvariants = false

func (s *Sale) assertInvariants() {
	if !debugInvariants {
		return
	}
	if err := s.ledger.verify(&s.whitelist, s.params.MaxPresalePerAddress); err != nil {
		panic(fmt.Sprintf("sale invariant violated: %v", err))
	}
}
