package metrics

import "github.com/prometheus/client_golang/prometheus"

func (c *Collector) MintedCounter(phase string) prometheus.Counter {
	return c.minted.WithLabelValues(phase)
}

func (c *Collector) SupplyGauge() prometheus.Gauge { return c.supply }

func (c *Collector) PaidCounter() prometheus.Counter { return c.paidWei }
