package sale_test

import (
	"testing"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenURINotAvailableForUnminted(t *testing.T) {
	s := newPublicSale(t)
	_, err := s.TokenURI(1)
	assert.ErrorIs(t, err, sale.ErrTokenDoesNotExist)
	_, err = s.TokenURI(0)
	assert.ErrorIs(t, err, sale.ErrTokenDoesNotExist)
}

func TestURIHiddenBeforeReveal(t *testing.T) {
	s := newPublicSale(t)
	_, err := s.PublicMint(owner, 3, mul(s.GetCurrentCost(), 3))
	require.NoError(t, err)
	require.NoError(t, s.SetBaseURI(owner, "baseUri/"))

	for id := uint64(1); id <= 3; id++ {
		uri, err := s.TokenURI(id)
		require.NoError(t, err)
		assert.Equal(t, notRevealedURI, uri)
	}
}

func TestURIVisibleAfterReveal(t *testing.T) {
	s := newPublicSale(t)
	require.NoError(t, s.Reveal(owner))

	_, err := s.PublicMint(owner, 5, mul(s.GetCurrentCost(), 5))
	require.NoError(t, err)

	require.NoError(t, s.SetBaseURI(owner, "baseUri/"))
	require.NoError(t, s.SetBaseExtension(owner, ".ext"))

	uri, err := s.TokenURI(3)
	require.NoError(t, err)
	assert.Equal(t, "baseUri/3.ext", uri)
}

func TestURIUsesDefaultExtension(t *testing.T) {
	s := newPublicSale(t)
	_, err := s.PublicMint(owner, 1, s.GetCurrentCost())
	require.NoError(t, err)
	require.NoError(t, s.SetBaseURI(owner, "ipfs://cid/"))
	require.NoError(t, s.Reveal(owner))

	uri, err := s.TokenURI(1)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://cid/1.json", uri)
}

func TestRevealIsOneWay(t *testing.T) {
	s := newPublicSale(t)
	_, err := s.PublicMint(owner, 1, s.GetCurrentCost())
	require.NoError(t, err)
	require.NoError(t, s.SetBaseURI(owner, "b/"))
	require.NoError(t, s.Reveal(owner))

	// Revealing again and flipping every other flag never hides metadata.
	require.NoError(t, s.Reveal(owner))
	require.NoError(t, s.Pause(owner, true))
	require.NoError(t, s.SetPresale(owner, true))
	assert.True(t, s.IsRevealed())

	uri, err := s.TokenURI(1)
	require.NoError(t, err)
	assert.Equal(t, "b/1.json", uri)
}
