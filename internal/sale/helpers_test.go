package sale_test

import (
	"math/big"
	"testing"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default hardhat accounts #0..#2.
var (
	owner = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	bob   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	alis  = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

const notRevealedURI = "not_revealed_uri"

// newSale deploys a sale and unpauses it, like the contract test fixture.
func newSale(t *testing.T, opts ...sale.Option) *sale.Sale {
	t.Helper()
	s, err := sale.New(owner, "AstarCats", "CAT", notRevealedURI, opts...)
	require.NoError(t, err)
	require.True(t, s.IsPaused())
	require.False(t, s.IsRevealed())
	require.NoError(t, s.Pause(owner, false))
	return s
}

// newPublicSale is newSale with presale switched off.
func newPublicSale(t *testing.T, opts ...sale.Option) *sale.Sale {
	t.Helper()
	s := newSale(t, opts...)
	require.NoError(t, s.SetPresale(owner, false))
	return s
}

func mul(x *big.Int, n int64) *big.Int {
	return new(big.Int).Mul(x, big.NewInt(n))
}

func add(x *big.Int, n int64) *big.Int {
	return new(big.Int).Add(x, big.NewInt(n))
}

func repeat(a common.Address, n int) []common.Address {
	out := make([]common.Address, n)
	for i := range out {
		out[i] = a
	}
	return out
}

// assertPublicMint mints and checks the supply moved from already to
// already+num, with the last Transfer going to signer.
func assertPublicMint(t *testing.T, s *sale.Sale, cost *big.Int, signer common.Address, num, already uint64) {
	t.Helper()
	assertMint(t, s, cost, signer, num, already, s.PublicMint)
}

func assertPreMint(t *testing.T, s *sale.Sale, cost *big.Int, signer common.Address, num, already uint64) {
	t.Helper()
	assertMint(t, s, cost, signer, num, already, s.PreMint)
}

func assertMint(t *testing.T, s *sale.Sale, cost *big.Int, signer common.Address, num, already uint64,
	mint func(common.Address, uint64, *big.Int) ([]sale.Token, error)) {
	t.Helper()
	before := s.TotalSupply()
	tokens, err := mint(signer, num, cost)
	require.NoError(t, err)
	require.Len(t, tokens, int(num))
	assert.Equal(t, before+num, tokens[len(tokens)-1].ID)
	assert.Equal(t, signer, tokens[len(tokens)-1].Owner)
	assert.Equal(t, num+already, s.TotalSupply())

	events := s.Events()
	last := events[len(events)-1]
	assert.Equal(t, sale.EventTransfer, last.Kind)
	assert.Equal(t, common.Address{}, last.From)
	assert.Equal(t, signer, last.To)
	assert.Equal(t, before+num, last.TokenID)
}
