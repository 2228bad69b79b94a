package metrics_test

import (
	"fmt"
	"testing"

	"github.com/Mohsinsiddi/catsale/internal/metrics"
	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	bob   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func TestCollectorCountsMints(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	s, err := sale.New(owner, "AstarCats", "CAT", "u", sale.WithObserver(c))
	require.NoError(t, err)
	require.NoError(t, s.Pause(owner, false))
	require.NoError(t, s.SetPresale(owner, false))

	_, err = s.PublicMint(bob, 2, sale.Ether(6))
	require.NoError(t, err)
	_, err = s.PublicMint(bob, 1, sale.Ether(1))
	require.Error(t, err)
	_, err = s.PublicMint(bob, 11, sale.Ether(33))
	require.Error(t, err)
	_, err = s.OwnerMint(owner, 3)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.MintedCounter("public")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.MintedCounter("owner")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.SupplyGauge()))
	assert.Equal(t, 6e18, testutil.ToFloat64(c.PaidCounter()))

	count, err := testutil.GatherAndCount(reg, "catsale_mint_rejections_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollectorRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestReasonLabels(t *testing.T) {
	cases := map[error]string{
		sale.ErrSalePaused:                     "paused",
		sale.ErrPresaleNotActive:               "presale_not_active",
		sale.ErrPublicMintBlockedDuringPresale: "public_blocked",
		sale.ErrExceedsPerTxCap:                "per_tx_cap",
		sale.ErrExceedsWhitelistCap:            "whitelist_cap",
		sale.ErrExceedsMaxSupply:               "max_supply",
		sale.ErrInsufficientPayment:            "insufficient_payment",
		sale.ErrNotOwner:                       "not_owner",
		sale.ErrNotTokenOwner:                  "not_token_owner",
		fmt.Errorf("boom"):                     "other",
	}
	for err, want := range cases {
		assert.Equal(t, want, metrics.Reason(fmt.Errorf("wrapped: %w", err)))
	}
}
