package sale

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Event signatures as emitted by an ERC-721 Ownable contract.
var (
	TransferTopic             = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	OwnershipTransferredTopic = crypto.Keccak256Hash([]byte("OwnershipTransferred(address,address)"))
)

// EventKind identifies an event.
type EventKind string

// Event kinds.
const (
	EventTransfer             EventKind = "Transfer"
	EventOwnershipTransferred EventKind = "OwnershipTransferred"
)

// Event is one entry of the sale's event journal. Index increases by one per
// event for the lifetime of the sale.
type Event struct {
	Index   uint64         `json:"index"`
	Kind    EventKind      `json:"kind"`
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	TokenID uint64         `json:"token_id,omitempty"`
}

// Log renders the event the way an indexer reads it off chain: all
// parameters are indexed topics and the data field is empty.
func (e Event) Log(contract common.Address) *types.Log {
	topics := []common.Hash{
		OwnershipTransferredTopic,
		common.BytesToHash(e.From.Bytes()),
		common.BytesToHash(e.To.Bytes()),
	}
	if e.Kind == EventTransfer {
		topics[0] = TransferTopic
		topics = append(topics, common.BigToHash(new(big.Int).SetUint64(e.TokenID)))
	}
	return &types.Log{
		Address: contract,
		Topics:  topics,
		Data:    []byte{},
		Index:   uint(e.Index),
	}
}

func (s *Sale) emit(e Event) {
	e.Index = uint64(len(s.events))
	s.events = append(s.events, e)
}

func (s *Sale) emitTransfers(from common.Address, tokens []Token) {
	for _, t := range tokens {
		s.emit(Event{Kind: EventTransfer, From: from, To: t.Owner, TokenID: t.ID})
	}
}
