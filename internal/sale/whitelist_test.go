package sale_test

import (
	"testing"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonWhitelistedCannotBuyOnPresale(t *testing.T) {
	s := newSale(t)
	cost := s.GetCurrentCost()

	_, err := s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
	assert.Equal(t, "CL: Five cats max per address in Catlist", s.RevertReason(err))

	_, err = s.PreMint(owner, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
}

func TestPresaleCannotOpenOnPublicSale(t *testing.T) {
	s := newSale(t)
	cost := s.GetCurrentCost()
	require.NoError(t, s.SetPresale(owner, false))

	_, err := s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrPresaleNotActive)
	assert.Equal(t, "Presale is not active.", s.RevertReason(err))
}

func TestWhitelistedCanBuyOnPresale(t *testing.T) {
	s := newSale(t)
	cost := s.GetCurrentCost()

	require.NoError(t, s.PushWhitelist(owner, []common.Address{bob}))
	assert.Equal(t, uint64(1), s.WhitelistCount())

	assertPreMint(t, s, cost, bob, 1, 0)
	_, err := s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
}

func TestWhitelistedCanBuyFiveNotSix(t *testing.T) {
	s := newSale(t)
	cost := mul(s.GetCurrentCost(), 5)

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 5)))
	assertPreMint(t, s, cost, bob, 5, 0)

	_, err := s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
	assert.Equal(t, uint64(5), s.TotalSupply())
}

func TestWhitelistedCanBuyThreePlusTwo(t *testing.T) {
	s := newSale(t)
	cost := mul(s.GetCurrentCost(), 3)

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 5)))
	assertPreMint(t, s, cost, bob, 3, 0)
	assertPreMint(t, s, cost, bob, 2, 3)

	_, err := s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
	assert.Equal(t, uint64(5), s.PresaleMinted(bob))
}

func TestWhitelistedCannotBuyOverAllocationAtOnce(t *testing.T) {
	s := newSale(t)
	cost := mul(s.GetCurrentCost(), 6)

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 5)))
	_, err := s.PreMint(bob, 6, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
	assert.Equal(t, uint64(0), s.TotalSupply())
	assert.Equal(t, uint64(0), s.PresaleMinted(bob))
}

func TestNonWhitelistedBlockedAfterWhitelistedBuys(t *testing.T) {
	s := newSale(t)
	cost := s.GetCurrentCost()

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 2)))
	assert.Equal(t, uint64(2), s.WhitelistCount())

	assertPreMint(t, s, cost, bob, 1, 0)
	_, err := s.PreMint(alis, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
	assertPreMint(t, s, cost, bob, 1, 1)
	_, err = s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
}

func TestPresalePriceBoundary(t *testing.T) {
	s := newSale(t)
	cost := sale.Ether(2)

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 2)))
	assertPreMint(t, s, cost, bob, 1, 0)
	assertPreMint(t, s, add(cost, 1), bob, 1, 1)

	require.NoError(t, s.PushWhitelist(owner, []common.Address{bob}))
	_, err := s.PreMint(bob, 1, add(cost, -1))
	assert.ErrorIs(t, err, sale.ErrInsufficientPayment)
	assert.Equal(t, uint64(2), s.TotalSupply())
	assert.Equal(t, uint64(2), s.PresaleMinted(bob))
}

func TestBlockOverAllocateAfterTransfer(t *testing.T) {
	s := newSale(t)
	cost := mul(s.GetCurrentCost(), 5)

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 5)))
	assertPreMint(t, s, cost, bob, 5, 0)

	require.NoError(t, s.ApplyTransfer(bob, alis, 1))
	nb, err := s.BalanceOf(bob)
	require.NoError(t, err)
	na, err := s.BalanceOf(alis)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), nb)
	assert.Equal(t, uint64(1), na)

	_, err = s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
}

func TestFivePerAddressCeilingIgnoresExtraUnits(t *testing.T) {
	s := newSale(t)
	cost := s.GetCurrentCost()

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 8)))
	assert.Equal(t, uint64(8), s.Allocation(bob))
	assert.Equal(t, uint64(5), s.PresaleLimit(bob))
	assert.Zero(t, s.PresaleLimit(alis))

	assertPreMint(t, s, mul(cost, 5), bob, 5, 0)
	_, err := s.PreMint(bob, 1, cost)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
}

func TestWhitelistCheckedBeforeSupplyAndPayment(t *testing.T) {
	p := sale.DefaultParams()
	p.MaxSupply = 1
	s := newSale(t, sale.WithParams(p))

	_, err := s.PreMint(bob, 2, nil)
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)

	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 2)))
	_, err = s.PreMint(bob, 2, nil)
	assert.ErrorIs(t, err, sale.ErrExceedsMaxSupply)
	_, err = s.PreMint(bob, 1, nil)
	assert.ErrorIs(t, err, sale.ErrInsufficientPayment)
}

func TestPublicMintsDoNotCountTowardsPresale(t *testing.T) {
	s := newPublicSale(t)
	_, err := s.PublicMint(bob, 10, mul(s.GetCurrentCost(), 10))
	require.NoError(t, err)

	require.NoError(t, s.SetPresale(owner, true))
	require.NoError(t, s.PushWhitelist(owner, repeat(bob, 5)))
	assert.Equal(t, uint64(0), s.PresaleMinted(bob))
	assertPreMint(t, s, mul(s.GetCurrentCost(), 5), bob, 5, 10)
}

func TestPushWhitelistRejectsZeroAddress(t *testing.T) {
	s := newSale(t)
	err := s.PushWhitelist(owner, []common.Address{bob, {}})
	assert.ErrorIs(t, err, sale.ErrInvalidAddress)
	assert.Equal(t, uint64(0), s.WhitelistCount())
	assert.Equal(t, uint64(0), s.Allocation(bob))
}

func TestPushWhitelistOwnerOnly(t *testing.T) {
	s := newSale(t)
	err := s.PushWhitelist(bob, []common.Address{bob})
	assert.ErrorIs(t, err, sale.ErrNotOwner)
	assert.Equal(t, uint64(0), s.WhitelistCount())
}

// Scenario: five pushes for A, PreMint(5) at exact cost, then PreMint(1) fails.
func TestPresaleScenario(t *testing.T) {
	s := newSale(t)
	require.NoError(t, s.PushWhitelist(owner, repeat(alis, 5)))

	tokens, err := s.PreMint(alis, 5, mul(sale.Ether(2), 5))
	require.NoError(t, err)
	assert.Len(t, tokens, 5)
	assert.Equal(t, uint64(5), s.TotalSupply())

	_, err = s.PreMint(alis, 1, sale.Ether(10))
	assert.ErrorIs(t, err, sale.ErrExceedsWhitelistCap)
	assert.Equal(t, uint64(5), s.TotalSupply())
}
