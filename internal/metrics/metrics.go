// Package metrics exposes sale activity as prometheus collectors.
package metrics

import (
	"errors"
	"math/big"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "catsale"

// Collector implements sale.Observer.
type Collector struct {
	minted      *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	paidWei     prometheus.Counter
	supply      prometheus.Gauge
	withdrawals prometheus.Counter
	withdrawn   prometheus.Counter
}

var _ sale.Observer = (*Collector)(nil)

// New creates a Collector and registers it with r.
func New(r prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		minted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "minted_tokens_total",
			Help:      "number of tokens minted, by phase",
		}, []string{"phase"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mint_rejections_total",
			Help:      "number of rejected mint calls, by reason",
		}, []string{"phase", "reason"}),
		paidWei: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_wei_total",
			Help:      "wei accepted by successful mints",
		}),
		supply: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_supply",
			Help:      "tokens minted so far",
		}),
		withdrawals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "number of successful withdrawals",
		}),
		withdrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawn_wei_total",
			Help:      "wei sent to the owner",
		}),
	}
	errs := []error{
		r.Register(c.minted),
		r.Register(c.rejections),
		r.Register(c.paidWei),
		r.Register(c.supply),
		r.Register(c.withdrawals),
		r.Register(c.withdrawn),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Minted records a successful mint.
func (c *Collector) Minted(phase sale.Phase, quantity uint64, paid *big.Int, supply uint64) {
	c.minted.WithLabelValues(phase.String()).Add(float64(quantity))
	c.paidWei.Add(weiFloat(paid))
	c.supply.Set(float64(supply))
}

// Rejected records a failed mint.
func (c *Collector) Rejected(phase sale.Phase, err error) {
	c.rejections.WithLabelValues(phase.String(), Reason(err)).Inc()
}

// Withdrawn records a successful withdrawal.
func (c *Collector) Withdrawn(amount *big.Int) {
	c.withdrawals.Inc()
	c.withdrawn.Add(weiFloat(amount))
}

// Reason maps a sale error to a low-cardinality label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, sale.ErrSalePaused):
		return "paused"
	case errors.Is(err, sale.ErrPresaleNotActive):
		return "presale_not_active"
	case errors.Is(err, sale.ErrPublicMintBlockedDuringPresale):
		return "public_blocked"
	case errors.Is(err, sale.ErrExceedsPerTxCap):
		return "per_tx_cap"
	case errors.Is(err, sale.ErrExceedsWhitelistCap):
		return "whitelist_cap"
	case errors.Is(err, sale.ErrExceedsMaxSupply):
		return "max_supply"
	case errors.Is(err, sale.ErrInsufficientPayment):
		return "insufficient_payment"
	case errors.Is(err, sale.ErrNotOwner):
		return "not_owner"
	case errors.Is(err, sale.ErrNotTokenOwner):
		return "not_token_owner"
	case errors.Is(err, sale.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, sale.ErrInvalidAddress):
		return "invalid_address"
	default:
		return "other"
	}
}

func weiFloat(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(wei).Float64()
	return f
}
