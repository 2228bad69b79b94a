// simulate-sale: runs a full sale in memory with concurrent buyers racing
// through the presale and the public mint, then prints a per-buyer table and
// checks that supply and balance add up.
//
// Run from the module root:
//
//	go run ./scripts/simulate-sale
//	go run ./scripts/simulate-sale -buyers 64 -supply 2000 -whitelisted 16
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Mohsinsiddi/catsale/internal/logger"
	"github.com/Mohsinsiddi/catsale/internal/metrics"
	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/units"
)

// ── config ────────────────────────────────────────────────────────────────────

var (
	buyers      = flag.Int("buyers", 32, "number of concurrent buyers")
	whitelisted = flag.Int("whitelisted", 8, "buyers pushed to the whitelist (5 units each)")
	supply      = flag.Uint64("supply", 777, "max supply")
	seed        = flag.Uint64("seed", 1, "random seed")
	verbose     = flag.Bool("v", false, "debug logging")
)

var deployer = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

// ── types ─────────────────────────────────────────────────────────────────────

type result struct {
	buyer    common.Address
	presale  uint64
	public   uint64
	paid     *big.Int
	rejected map[string]int
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	flag.Parse()

	log := logger.Must(logger.Config{Debug: *verbose})
	defer log.Sync() //nolint:errcheck

	if err := run(log); err != nil {
		log.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		return err
	}

	params := sale.DefaultParams()
	params.MaxSupply = *supply

	var mu sync.Mutex
	payouts := new(big.Int)
	payee := sale.PayeeFunc(func(_ context.Context, _ common.Address, amount *big.Int) error {
		mu.Lock()
		defer mu.Unlock()
		payouts.Add(payouts, amount)
		return nil
	})

	s, err := sale.New(deployer, "AstarCats", "CAT", "ipfs://hidden.json",
		sale.WithParams(params),
		sale.WithLogger(log),
		sale.WithObserver(collector),
		sale.WithPayee(payee))
	if err != nil {
		return err
	}

	results := make([]*result, *buyers)
	var wl []common.Address
	for i := range results {
		addr := crypto.CreateAddress(deployer, uint64(i+1))
		results[i] = &result{buyer: addr, paid: new(big.Int), rejected: make(map[string]int)}
		if i < *whitelisted {
			for range params.MaxPresalePerAddress {
				wl = append(wl, addr)
			}
		}
	}
	if len(wl) > 0 {
		if err := s.PushWhitelist(deployer, wl); err != nil {
			return err
		}
	}
	if err := s.Pause(deployer, false); err != nil {
		return err
	}

	start := time.Now()
	if err := phase(s, results, sale.PhasePresale); err != nil {
		return err
	}
	if err := s.SetPresale(deployer, false); err != nil {
		return err
	}
	if err := phase(s, results, sale.PhasePublic); err != nil {
		return err
	}
	elapsed := time.Since(start)

	balance := s.Balance()
	if _, err := s.Withdraw(context.Background(), deployer); err != nil && !errors.Is(err, sale.ErrNothingToWithdraw) {
		return err
	}

	printTable(results)
	return verify(s, results, balance, payouts, elapsed)
}

// phase lets every buyer mint concurrently until it is done or the sale is
// sold out.
func phase(s *sale.Sale, results []*result, p sale.Phase) error {
	var g errgroup.Group
	for i, r := range results {
		rng := rand.New(rand.NewPCG(*seed, uint64(i)))
		g.Go(func() error {
			return buy(s, r, p, rng)
		})
	}
	return g.Wait()
}

func buy(s *sale.Sale, r *result, p sale.Phase, rng *rand.Rand) error {
	price := s.UnitPrice(p)
	for s.TotalSupply() < s.MaxSupply() {
		qty := 1 + rng.Uint64N(s.MaxMintPerTx())
		if p == sale.PhasePresale {
			left := s.PresaleLimit(r.buyer) - s.PresaleMinted(r.buyer)
			if left == 0 {
				return nil
			}
			qty = min(qty, left)
		}
		cost := new(big.Int).Mul(price, new(big.Int).SetUint64(qty))
		// One in ten buyers underpays to exercise the payment check.
		if rng.IntN(10) == 0 {
			cost.Sub(cost, big.NewInt(1))
		}

		tokens, err := s.Mint(r.buyer, qty, cost, p)
		switch {
		case err == nil:
			if p == sale.PhasePresale {
				r.presale += uint64(len(tokens))
			} else {
				r.public += uint64(len(tokens))
			}
			r.paid.Add(r.paid, cost)
		case errors.Is(err, sale.ErrInsufficientPayment), errors.Is(err, sale.ErrExceedsMaxSupply):
			r.rejected[metrics.Reason(err)]++
		default:
			return fmt.Errorf("buyer %s: %w", r.buyer.Hex(), err)
		}
		if p == sale.PhasePublic && rng.IntN(4) == 0 {
			return nil
		}
	}
	return nil
}

// ── output ────────────────────────────────────────────────────────────────────

func printTable(results []*result) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if ta, tb := a.presale+a.public, b.presale+b.public; ta != tb {
			return ta > tb
		}
		return a.buyer.Hex() < b.buyer.Hex()
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUYER\tPRESALE\tPUBLIC\tPAID (ETH)\tREJECTED")
	fmt.Fprintln(w, strings.Repeat("-", 14)+"\t"+
		strings.Repeat("-", 7)+"\t"+
		strings.Repeat("-", 6)+"\t"+
		strings.Repeat("-", 10)+"\t"+
		strings.Repeat("-", 24))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			shortAddr(r.buyer.Hex()), r.presale, r.public, units.FormatEther(r.paid), rejections(r.rejected))
	}
	w.Flush()
}

func verify(s *sale.Sale, results []*result, balance, payouts *big.Int, elapsed time.Duration) error {
	var minted uint64
	paid := new(big.Int)
	for _, r := range results {
		minted += r.presale + r.public
		paid.Add(paid, r.paid)
	}

	fmt.Printf("\nminted %d/%d tokens in %s, collected %s ETH, withdrawn %s ETH\n",
		s.TotalSupply(), s.MaxSupply(), elapsed.Round(time.Millisecond),
		units.FormatEther(balance), units.FormatEther(payouts))

	if minted != s.TotalSupply() {
		return fmt.Errorf("buyers minted %d tokens but supply is %d", minted, s.TotalSupply())
	}
	if paid.Cmp(balance) != 0 {
		return fmt.Errorf("buyers paid %s wei but the sale collected %s wei", paid, balance)
	}
	if payouts.Cmp(balance) != 0 {
		return fmt.Errorf("withdrew %s wei of %s wei", payouts, balance)
	}
	return nil
}

func rejections(m map[string]int) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}

func shortAddr(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}
