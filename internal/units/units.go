// Package units converts between ether, gwei and wei without going through
// floating point.
package units

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

var (
	weiPerEther = big.NewInt(params.Ether)
	weiPerGwei  = big.NewInt(params.GWei)
)

// EtherToWei parses a decimal ether amount ("1", "0.5", "2.000001") into wei.
// Amounts finer than one wei are rejected.
func EtherToWei(s string) (*big.Int, error) {
	return parseDecimal(s, 18)
}

// GweiToWei parses a decimal gwei amount into wei.
func GweiToWei(s string) (*big.Int, error) {
	return parseDecimal(s, 9)
}

// ParseValue parses an amount with an optional unit suffix: "3", "3eth",
// "2.5 ether", "150 gwei", "1000wei". A bare number is ether.
func ParseValue(s string) (*big.Int, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasSuffix(v, "gwei"):
		return GweiToWei(strings.TrimSpace(strings.TrimSuffix(v, "gwei")))
	case strings.HasSuffix(v, "wei"):
		n, ok := new(big.Int).SetString(strings.TrimSpace(strings.TrimSuffix(v, "wei")), 10)
		if !ok || n.Sign() < 0 {
			return nil, fmt.Errorf("invalid wei value: %q", s)
		}
		return n, nil
	case strings.HasSuffix(v, "ether"):
		return EtherToWei(strings.TrimSpace(strings.TrimSuffix(v, "ether")))
	case strings.HasSuffix(v, "eth"):
		return EtherToWei(strings.TrimSpace(strings.TrimSuffix(v, "eth")))
	default:
		return EtherToWei(v)
	}
}

// FormatEther renders wei as an ether decimal with trailing zeros removed.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	neg := wei.Sign() < 0
	q, r := new(big.Int).QuoRem(new(big.Int).Abs(wei), weiPerEther, new(big.Int))
	out := q.String()
	if r.Sign() != 0 {
		frac := strings.TrimRight(leftPad(r.String(), 18), "0")
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatGwei renders wei as a gwei decimal with trailing zeros removed.
func FormatGwei(wei *big.Int) string {
	q, r := new(big.Int).QuoRem(wei, weiPerGwei, new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	return q.String() + "." + strings.TrimRight(leftPad(r.String(), 9), "0")
}

func parseDecimal(s string, decimals int) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}
	if len(frac) > decimals {
		if strings.TrimRight(frac[decimals:], "0") != "" {
			return nil, fmt.Errorf("amount %q has more than %d decimal places", s, decimals)
		}
		frac = frac[:decimals]
	}
	frac += strings.Repeat("0", decimals-len(frac))

	n, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}
	return n, nil
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func digitsOnly(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
