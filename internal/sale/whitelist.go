package sale

import "github.com/ethereum/go-ethereum/common"

// whitelist counts allocation units per address. Pushing an address N times
// grants N units.
type whitelist struct {
	units map[common.Address]uint64
	total uint64
}

func newWhitelist() whitelist {
	return whitelist{units: make(map[common.Address]uint64)}
}

func (w *whitelist) push(addrs []common.Address) {
	for _, a := range addrs {
		w.units[a]++
	}
	w.total += uint64(len(addrs))
}

func (w *whitelist) allocation(a common.Address) uint64 {
	return w.units[a]
}

// presaleLimit is the most an address may mint during presale in total:
// its allocation, capped by the global per-address ceiling.
func (w *whitelist) presaleLimit(a common.Address, ceiling uint64) uint64 {
	return min(w.allocation(a), ceiling)
}
