package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/store"
	"github.com/Mohsinsiddi/catsale/internal/ui"
)

// newStateStore opens the sale state at path.
var newStateStore = func(path string) store.Store { return store.NewJSONStore(path) }

// session is one load, call, save cycle over the stored sale.
type session struct {
	path    string
	store   store.Store
	payouts *store.PayoutJournal
	sale    *sale.Sale
}

// openSale restores the deployed sale with logging, metrics and the payout
// journal wired in. opts are applied last.
func openSale(opts ...sale.Option) (*session, error) {
	path := cfg.StatePath()
	st := newStateStore(path)
	state, err := st.Load()
	if errors.Is(err, store.ErrNoSale) {
		return nil, fmt.Errorf("no sale at %s: run `catsale deploy` first", path)
	}
	if err != nil {
		return nil, err
	}
	payouts := store.NewPayoutJournal(cfg.PayoutsPath())
	s, err := sale.Restore(state, append(saleOptions(payouts), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("restoring %s: %w", path, err)
	}
	return &session{path: path, store: st, payouts: payouts, sale: s}, nil
}

func saleOptions(payouts *store.PayoutJournal) []sale.Option {
	opts := []sale.Option{sale.WithLogger(log), sale.WithPayee(payouts)}
	if collector != nil {
		opts = append(opts, sale.WithObserver(collector))
	}
	return opts
}

// commit persists the sale after a successful call.
func (ss *session) commit() error {
	if err := ss.store.Save(ss.sale.State()); err != nil {
		return fmt.Errorf("saving sale to %s: %w", ss.path, err)
	}
	return nil
}

// revertError carries the contract revert string of a rejected call.
type revertError struct {
	reason string
	err    error
}

func (e *revertError) Error() string { return e.err.Error() }
func (e *revertError) Unwrap() error { return e.err }

// reverted wraps a core error with its revert reason, if it has one.
func (ss *session) reverted(err error) error {
	if reason := ss.sale.RevertReason(err); reason != "" {
		return &revertError{reason: reason, err: err}
	}
	return err
}

func renderError(err error) string {
	var rev *revertError
	if errors.As(err, &rev) {
		return ui.Revert(rev.reason) + "\n" + ui.Meta(rev.err.Error())
	}
	return ui.Err(err.Error())
}

// caller resolves --from.
func caller() (common.Address, error) {
	addr, err := cfg.ResolveAccount(fromFlag)
	if err != nil {
		return common.Address{}, fmt.Errorf("resolving caller: %w", err)
	}
	return addr, nil
}

// parseAccount accepts an address or an account alias.
func parseAccount(s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, fmt.Errorf("empty account")
	}
	return cfg.ResolveAccount(s)
}

func parseTokenID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q", s)
	}
	return id, nil
}

func parseQuantity(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return n, nil
}

// printMetrics renders every gathered sample as a table row.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	tbl := ui.NewTable([]ui.Column{
		{Title: "Metric", Width: 60},
		{Title: "Value", Width: 24, Align: ui.AlignRight},
	})
	for _, row := range metricRows(families) {
		tbl.AddRow(row)
	}
	fmt.Fprintln(w, tbl.Render())
	return nil
}

func metricRows(families []*dto.MetricFamily) []ui.Row {
	var rows []ui.Row
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				parts := make([]string, 0, len(labels))
				for _, l := range labels {
					parts = append(parts, l.GetName()+"="+strconv.Quote(l.GetValue()))
				}
				name += "{" + strings.Join(parts, ",") + "}"
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			}
			rows = append(rows, ui.Row{name, strconv.FormatFloat(v, 'f', -1, 64)})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows
}

func lowerAlias(s string) string { return strings.ToLower(s) }
