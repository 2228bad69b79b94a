package sale

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// config holds the admin-controlled flags and metadata settings. paused and
// presaleActive toggle freely; revealed only ever goes from false to true.
type config struct {
	paused         bool
	presaleActive  bool
	revealed       bool
	priceRegular   *big.Int
	pricePresale   *big.Int
	baseURI        string
	baseExtension  string
	notRevealedURI string
}

func newConfig(p Params, notRevealedURI string) config {
	return config{
		paused:         true,
		presaleActive:  true,
		priceRegular:   p.PriceRegular,
		pricePresale:   p.PricePresale,
		baseExtension:  p.BaseExtension,
		notRevealedURI: notRevealedURI,
	}
}

func (c *config) unitPrice(phase Phase) *big.Int {
	if phase == PhasePresale {
		return c.pricePresale
	}
	return c.priceRegular
}

func (c *config) currentCost() *big.Int {
	if c.presaleActive {
		return c.pricePresale
	}
	return c.priceRegular
}

// IsPaused reports whether minting is paused.
func (s *Sale) IsPaused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.paused
}

// IsPresaleActive reports whether the sale is in its presale phase.
func (s *Sale) IsPresaleActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.presaleActive
}

// IsRevealed reports whether token metadata has been revealed.
func (s *Sale) IsRevealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.revealed
}

// BaseURI returns the base URI used once revealed.
func (s *Sale) BaseURI() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.baseURI
}

// BaseExtension returns the suffix appended to revealed token URIs.
func (s *Sale) BaseExtension() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.baseExtension
}

// NotRevealedURI returns the placeholder URI served before reveal.
func (s *Sale) NotRevealedURI() string {
	return s.cfg.notRevealedURI
}

// GetCurrentCost returns the unit price in wei for the active phase.
func (s *Sale) GetCurrentCost() *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return new(big.Int).Set(s.cfg.currentCost())
}

// UnitPrice returns the unit price in wei for phase.
func (s *Sale) UnitPrice(phase Phase) *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return new(big.Int).Set(s.cfg.unitPrice(phase))
}

// TokenURI returns the metadata URI of token id: the placeholder before
// reveal, baseURI + id + baseExtension after.
func (s *Sale) TokenURI(id uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, err := s.ledger.ownerOf(id); err != nil {
		return "", err
	}
	if !s.cfg.revealed {
		return s.cfg.notRevealedURI, nil
	}
	return s.cfg.baseURI + strconv.FormatUint(id, 10) + s.cfg.baseExtension, nil
}

// --- admin ---

// Pause sets the pause switch.
func (s *Sale) Pause(caller common.Address, paused bool) error {
	return s.admin(caller, "pause", func() error {
		s.cfg.paused = paused
		return nil
	}, zap.Bool("paused", paused))
}

// SetPresale switches between the presale and public phases.
func (s *Sale) SetPresale(caller common.Address, active bool) error {
	return s.admin(caller, "set presale", func() error {
		s.cfg.presaleActive = active
		return nil
	}, zap.Bool("presale", active))
}

// SetBaseURI sets the base URI for revealed tokens.
func (s *Sale) SetBaseURI(caller common.Address, uri string) error {
	return s.admin(caller, "set base uri", func() error {
		s.cfg.baseURI = uri
		return nil
	}, zap.String("uri", uri))
}

// SetBaseExtension sets the suffix of revealed token URIs.
func (s *Sale) SetBaseExtension(caller common.Address, ext string) error {
	return s.admin(caller, "set base extension", func() error {
		s.cfg.baseExtension = ext
		return nil
	}, zap.String("extension", ext))
}

// Reveal switches token URIs to the real metadata. There is no way back.
func (s *Sale) Reveal(caller common.Address) error {
	return s.admin(caller, "reveal", func() error {
		s.cfg.revealed = true
		return nil
	})
}

// PushWhitelist grants one presale allocation unit per occurrence of each
// address. A zero address rejects the whole call.
func (s *Sale) PushWhitelist(caller common.Address, addrs []common.Address) error {
	return s.admin(caller, "push whitelist", func() error {
		for _, a := range addrs {
			if a == (common.Address{}) {
				return ErrInvalidAddress
			}
		}
		s.whitelist.push(addrs)
		return nil
	}, zap.Int("units", len(addrs)))
}

// TransferOwnership hands admin rights to newOwner. The call is authorised
// against the current owner; newOwner is in charge from the next call on.
func (s *Sale) TransferOwnership(caller, newOwner common.Address) error {
	return s.admin(caller, "transfer ownership", func() error {
		prev, err := s.guard.handOver(newOwner)
		if err != nil {
			return err
		}
		s.emit(Event{Kind: EventOwnershipTransferred, From: prev, To: newOwner})
		return nil
	}, zap.Stringer("new_owner", newOwner))
}

// admin runs fn under the write lock once caller passed the owner check.
func (s *Sale) admin(caller common.Address, op string, fn func() error, fields ...zap.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard.check(caller); err != nil {
		s.log.Debug("admin call rejected", zap.String("op", op), zap.Stringer("caller", caller))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info(op, append(fields, zap.Stringer("caller", caller))...)
	s.assertInvariants()
	return nil
}
