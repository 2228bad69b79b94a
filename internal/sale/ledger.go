package sale

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Token is a minted token. IDs start at 1 and are contiguous.
type Token struct {
	ID    uint64         `json:"id"`
	Owner common.Address `json:"owner"`
}

// ledger tracks who owns what. owners[i] is the owner of token i+1, so the
// supply is len(owners) and ids can never have gaps.
type ledger struct {
	maxSupply     uint64
	owners        []common.Address
	balances      map[common.Address]uint64
	presaleMinted map[common.Address]uint64
}

func newLedger(maxSupply uint64) *ledger {
	return &ledger{
		maxSupply:     maxSupply,
		balances:      make(map[common.Address]uint64),
		presaleMinted: make(map[common.Address]uint64),
	}
}

func (l *ledger) supply() uint64 {
	return uint64(len(l.owners))
}

func (l *ledger) remaining() uint64 {
	return l.maxSupply - l.supply()
}

// mint assigns the next quantity ids to to. Callers check the supply cap first.
func (l *ledger) mint(to common.Address, quantity uint64) []Token {
	first := l.supply() + 1
	tokens := make([]Token, 0, quantity)
	for i := uint64(0); i < quantity; i++ {
		l.owners = append(l.owners, to)
		tokens = append(tokens, Token{ID: first + i, Owner: to})
	}
	l.balances[to] += quantity
	return tokens
}

func (l *ledger) ownerOf(id uint64) (common.Address, error) {
	if id == 0 || id > l.supply() {
		return common.Address{}, fmt.Errorf("%w: %d", ErrTokenDoesNotExist, id)
	}
	return l.owners[id-1], nil
}

func (l *ledger) transfer(from, to common.Address, id uint64) error {
	owner, err := l.ownerOf(id)
	if err != nil {
		return err
	}
	if owner != from {
		return fmt.Errorf("%w: token %d is not owned by %s", ErrNotTokenOwner, id, from.Hex())
	}
	if to == (common.Address{}) {
		return ErrInvalidAddress
	}
	l.owners[id-1] = to
	l.balances[from]--
	if l.balances[from] == 0 {
		delete(l.balances, from)
	}
	l.balances[to]++
	return nil
}

// verify reports the first broken bookkeeping invariant.
func (l *ledger) verify(wl *whitelist, presaleCeiling uint64) error {
	if l.supply() > l.maxSupply {
		return fmt.Errorf("supply %d above max %d", l.supply(), l.maxSupply)
	}
	counted := make(map[common.Address]uint64, len(l.balances))
	for i, o := range l.owners {
		if o == (common.Address{}) {
			return fmt.Errorf("token %d owned by the zero address", i+1)
		}
		counted[o]++
	}
	if len(counted) != len(l.balances) {
		return fmt.Errorf("balance table has %d holders, tokens have %d", len(l.balances), len(counted))
	}
	for a, n := range counted {
		if l.balances[a] != n {
			return fmt.Errorf("balance of %s is %d, owns %d tokens", a.Hex(), l.balances[a], n)
		}
	}
	for a, n := range l.presaleMinted {
		if limit := wl.presaleLimit(a, presaleCeiling); n > limit {
			return fmt.Errorf("%s minted %d in presale, limit %d", a.Hex(), n, limit)
		}
	}
	return nil
}
