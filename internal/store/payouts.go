package store

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Payout is one withdrawal sent to an owner.
type Payout struct {
	To     common.Address `json:"to"`
	Amount *big.Int       `json:"amount"`
	SentAt string         `json:"sent_at"`
}

// PayoutJournal records withdrawals in a JSON file. It stands in for the
// value transfer a chain would perform and implements sale.Payee.
type PayoutJournal struct {
	path string
	now  func() time.Time
}

// NewPayoutJournal creates a journal backed by path.
func NewPayoutJournal(path string) *PayoutJournal {
	return &PayoutJournal{path: path, now: time.Now}
}

// Send appends a payout entry.
func (j *PayoutJournal) Send(ctx context.Context, to common.Address, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payouts, err := j.List()
	if err != nil {
		return err
	}
	payouts = append(payouts, Payout{
		To:     to,
		Amount: new(big.Int).Set(amount),
		SentAt: j.now().UTC().Format(time.RFC3339),
	})
	data, err := json.MarshalIndent(payouts, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(j.path, data)
}

// List returns every recorded payout, oldest first.
func (j *PayoutJournal) List() ([]Payout, error) {
	data, err := os.ReadFile(j.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var payouts []Payout
	if err := json.Unmarshal(data, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

// Total returns the sum paid to addr.
func (j *PayoutJournal) Total(addr common.Address) (*big.Int, error) {
	payouts, err := j.List()
	if err != nil {
		return nil, err
	}
	total := new(big.Int)
	for _, p := range payouts {
		if p.To == addr {
			total.Add(total, p.Amount)
		}
	}
	return total, nil
}

// Rotate moves the journal aside to a timestamped file next to it and returns
// that path. It returns "" when there is no journal yet.
func (j *PayoutJournal) Rotate() (string, error) {
	if _, err := os.Stat(j.path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	ext := filepath.Ext(j.path)
	dst := strings.TrimSuffix(j.path, ext) + "." + j.now().UTC().Format("20060102T150405.000000000Z") + ext
	if err := os.Rename(j.path, dst); err != nil {
		return "", err
	}
	return dst, nil
}
