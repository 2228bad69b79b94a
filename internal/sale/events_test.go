package sale_test

import (
	"math/big"
	"testing"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferTopicIsERC721Signature(t *testing.T) {
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", sale.TransferTopic.Hex())
	assert.Equal(t, "0x8be0079c531659141344cd1fd0a4f28419497f9722a3daafe3b4186f6b6457e0", sale.OwnershipTransferredTopic.Hex())
}

func TestTransferEventLog(t *testing.T) {
	s := newPublicSale(t)
	_, err := s.PublicMint(bob, 1, s.GetCurrentCost())
	require.NoError(t, err)

	events := s.Events()
	require.Len(t, events, 1)
	log := events[0].Log(s.Address())

	assert.Equal(t, s.Address(), log.Address)
	require.Len(t, log.Topics, 4)
	assert.Equal(t, sale.TransferTopic, log.Topics[0])
	assert.Equal(t, common.Hash{}, log.Topics[1])
	assert.Equal(t, bob, common.BytesToAddress(log.Topics[2].Bytes()))
	assert.Equal(t, big.NewInt(1), new(big.Int).SetBytes(log.Topics[3].Bytes()))
	assert.Empty(t, log.Data)
	assert.Equal(t, uint(0), log.Index)
}

func TestOwnershipTransferredEventLog(t *testing.T) {
	s := newSale(t)
	require.NoError(t, s.TransferOwnership(owner, bob))

	log := s.Events()[0].Log(s.Address())
	require.Len(t, log.Topics, 3)
	assert.Equal(t, sale.OwnershipTransferredTopic, log.Topics[0])
	assert.Equal(t, owner, common.BytesToAddress(log.Topics[1].Bytes()))
	assert.Equal(t, bob, common.BytesToAddress(log.Topics[2].Bytes()))
}
