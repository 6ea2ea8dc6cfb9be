package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrTransactionReverted error = errors.New("transaction reverted")

// transact builds, signs and sends a zero-value call to the given contract and
// blocks until it is included. Only the caller's context bounds the wait.
func (s *MarketService) transact(ctx context.Context, signer Signer, to common.Address, data []byte) (*Transaction, error) {
	from := signer.Address()

	nonce, err := s.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("get pending nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	gasLimit, err := s.client.EstimateGas(ctx, geth.CallMsg{From: from, To: &to, Data: data})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := signer.SignTx(tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, s.client, signed)
	if err != nil {
		return nil, fmt.Errorf("wait for transaction %s: %w", signed.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrTransactionReverted, signed.Hash().Hex())
	}

	return toTransaction(signed, receipt, from), nil
}

func toTransaction(tx *types.Transaction, receipt *types.Receipt, from common.Address) *Transaction {
	var to string
	if tx.To() != nil {
		to = tx.To().Hex()
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &Transaction{
		TransactionHash:   tx.Hash().Hex(),
		TransactionStatus: receipt.Status,
		BlockHash:         receipt.BlockHash.Hex(),
		BlockNumber:       blockNumber,
		From:              from.Hex(),
		To:                toPtr(to),
		LogsCount:         len(receipt.Logs),
		Input:             fmt.Sprintf("0x%x", tx.Data()),
		Value:             tx.Value().String(),
	}
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
