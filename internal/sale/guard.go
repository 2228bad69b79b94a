package sale

import "github.com/ethereum/go-ethereum/common"

// guard holds the single account allowed to run admin operations.
type guard struct {
	owner common.Address
}

func (g *guard) check(caller common.Address) error {
	if caller != g.owner {
		return ErrNotOwner
	}
	return nil
}

// handOver replaces the owner and returns the previous one. The call that
// hands over was already authorised against the previous owner.
func (g *guard) handOver(newOwner common.Address) (common.Address, error) {
	if newOwner == (common.Address{}) {
		return common.Address{}, ErrInvalidAddress
	}
	prev := g.owner
	g.owner = newOwner
	return prev, nil
}
