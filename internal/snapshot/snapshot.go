// Package snapshot exports token ownership and imports whitelist files.
package snapshot

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// OwnerReader is the part of a sale a snapshot needs.
type OwnerReader interface {
	TotalSupply() uint64
	OwnerOf(id uint64) (common.Address, error)
}

// Export writes one "id,owner" line per token from start to the current
// supply and returns the number of rows written. A start of 0 is treated as 1.
func Export(w io.Writer, r OwnerReader, start uint64) (int, error) {
	if start == 0 {
		start = 1
	}
	cw := csv.NewWriter(w)
	supply := r.TotalSupply()
	n := 0
	for id := start; id <= supply; id++ {
		owner, err := r.OwnerOf(id)
		if err != nil {
			return n, fmt.Errorf("token %d: %w", id, err)
		}
		if err := cw.Write([]string{strconv.FormatUint(id, 10), owner.Hex()}); err != nil {
			return n, err
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}

// ReadWhitelist reads one address per line. Blank lines and lines starting
// with '#' are skipped; duplicates are kept, each one is an allocation unit.
func ReadWhitelist(r io.Reader) ([]common.Address, error) {
	var addrs []common.Address
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("line %d: invalid address %q", line, s)
		}
		addr := common.HexToAddress(s)
		if addr == (common.Address{}) {
			return nil, fmt.Errorf("line %d: zero address", line)
		}
		addrs = append(addrs, addr)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return addrs, nil
}
