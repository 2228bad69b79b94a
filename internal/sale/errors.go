package sale

import (
	"errors"
	"fmt"
)

// Errors. Every failed call leaves the sale untouched.
var (
	ErrSalePaused                     = errors.New("sale is paused")
	ErrPresaleNotActive               = errors.New("presale is not active")
	ErrPublicMintBlockedDuringPresale = errors.New("public mint is blocked while presale is active")
	ErrExceedsPerTxCap                = errors.New("mint amount exceeds per-transaction cap")
	ErrExceedsWhitelistCap            = errors.New("mint amount exceeds whitelist allocation")
	ErrExceedsMaxSupply               = errors.New("mint amount exceeds max supply")
	ErrInsufficientPayment            = errors.New("insufficient payment")
	ErrTokenDoesNotExist              = errors.New("token does not exist")
	ErrNotOwner                       = errors.New("caller is not the owner")
	ErrNotTokenOwner                  = errors.New("token is not held by sender")
	ErrNothingToWithdraw              = errors.New("nothing to withdraw")

	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNoPayee         = errors.New("no payee configured")
	ErrCorruptState    = errors.New("corrupt sale state")
)

// revertReasons holds the revert strings emitted by the deployed contract, kept
// so that tooling comparing against chain receipts sees identical text.
var revertReasons = map[error]string{
	ErrSalePaused:                     "Sale is paused.",
	ErrPresaleNotActive:               "Presale is not active.",
	ErrPublicMintBlockedDuringPresale: "Public mint is paused while Presale is active.",
	ErrExceedsWhitelistCap:            "CL: Five cats max per address in Catlist",
	ErrExceedsMaxSupply:               "Max supply exceeded.",
	ErrInsufficientPayment:            "Not enough funds provided for mint",
	ErrTokenDoesNotExist:              "ERC721Metadata: URI query for nonexistent token",
	ErrNotOwner:                       "Ownable: caller is not the owner",
	ErrNotTokenOwner:                  "ERC721: transfer from incorrect owner",
	ErrNothingToWithdraw:              "Nothing to withdraw.",
	ErrInvalidAddress:                 "ERC721: invalid address",
}

// RevertReason returns the contract revert string for err, or "" when err is
// not a sale error.
func (s *Sale) RevertReason(err error) string {
	if errors.Is(err, ErrExceedsPerTxCap) {
		return fmt.Sprintf("Mint amount cannot exceed %d per Tx.", s.params.MaxMintPerTx)
	}
	for target, reason := range revertReasons {
		if errors.Is(err, target) {
			return reason
		}
	}
	return ""
}
