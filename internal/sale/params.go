package sale

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// Defaults matching the deployed AstarCats contract.
const (
	DefaultMaxSupply            = uint64(7777)
	DefaultMaxMintPerTx         = uint64(10)
	DefaultMaxPresalePerAddress = uint64(5)
	DefaultBaseExtension        = ".json"
)

// Phase is the sale path a mint request goes through.
type Phase uint8

// Sale phases. PhaseOwner is only used for reporting owner mints.
const (
	PhasePresale Phase = iota + 1
	PhasePublic
	PhaseOwner
)

func (p Phase) String() string {
	switch p {
	case PhasePresale:
		return "presale"
	case PhasePublic:
		return "public"
	case PhaseOwner:
		return "owner"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Params are the fixed and initial values a sale is constructed with.
// MaxSupply, MaxMintPerTx and MaxPresalePerAddress never change afterwards.
type Params struct {
	MaxSupply            uint64
	MaxMintPerTx         uint64
	MaxPresalePerAddress uint64
	PriceRegular         *big.Int // wei
	PricePresale         *big.Int // wei
	BaseExtension        string
}

// DefaultParams returns 7777 supply, 10 per tx, 5 per whitelisted address,
// 3 ether public and 2 ether presale.
func DefaultParams() Params {
	return Params{
		MaxSupply:            DefaultMaxSupply,
		MaxMintPerTx:         DefaultMaxMintPerTx,
		MaxPresalePerAddress: DefaultMaxPresalePerAddress,
		PriceRegular:         Ether(3),
		PricePresale:         Ether(2),
		BaseExtension:        DefaultBaseExtension,
	}
}

// Ether returns n whole ether in wei.
func Ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.Ether))
}

func (p Params) validate() error {
	if p.MaxSupply == 0 {
		return fmt.Errorf("max supply must be positive")
	}
	if p.MaxMintPerTx == 0 {
		return fmt.Errorf("max mint per tx must be positive")
	}
	if p.PriceRegular == nil || p.PriceRegular.Sign() < 0 {
		return fmt.Errorf("regular price must be non-negative")
	}
	if p.PricePresale == nil || p.PricePresale.Sign() < 0 {
		return fmt.Errorf("presale price must be non-negative")
	}
	return nil
}

func (p Params) clone() Params {
	p.PriceRegular = new(big.Int).Set(p.PriceRegular)
	p.PricePresale = new(big.Int).Set(p.PricePresale)
	return p
}
