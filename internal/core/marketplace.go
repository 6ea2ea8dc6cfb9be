package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"soko/internal/ethereum"
	"soko/internal/metrics"
	"soko/internal/repository"
	"soko/internal/units"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNotConnected       error = errors.New("wallet not connected")
	ErrSelfTrade          error = errors.New("cannot buy your own listing")
	ErrApprovalFailed     error = errors.New("token approval failed")
	ErrInvalidQuantity    error = units.ErrInvalidQuantity
	ErrListingNotFound    error = errors.New("listing not found")
	ErrListingInactive    error = errors.New("listing is no longer active")
	ErrActionNotFound     error = errors.New("action not found")
	ErrActionInFlight     error = errors.New("an action on this target is already pending")
	ErrActionNotResumable error = errors.New("only failed actions can be resumed")
)

const maxPrealloc = 1024

// Marketplace reads the listing registry and runs the approve-then-act flows
// against it.
type Marketplace struct {
	logs      *zap.SugaredLogger
	chain     Chain
	repo      Repository
	contracts Contracts

	mu       sync.Mutex
	actions  map[string]*Action
	inFlight map[string]string
}

func NewMarketplace(logger *zap.SugaredLogger, chain Chain, repo Repository, contracts Contracts) *Marketplace {
	return &Marketplace{
		logs:      logger,
		chain:     chain,
		repo:      repo,
		contracts: contracts,
		actions:   make(map[string]*Action),
		inFlight:  make(map[string]string),
	}
}

// FetchListings reads the counter and then every record in [0, counter) one by
// one. It returns the active listings newest first, or a single error if any
// read fails.
func (m *Marketplace) FetchListings(ctx context.Context) ([]Listing, error) {
	reads := 1
	count, err := m.chain.ListingCount(ctx)
	if err != nil {
		metrics.ObserveFetch("failed", reads)
		return nil, fmt.Errorf("read listing count: %w", err)
	}

	// the counter comes from the node, so it only bounds the loop
	listings := make([]Listing, 0, min(count, maxPrealloc))
	for index := uint64(0); index < count; index++ {
		reads++
		record, err := m.chain.Listing(ctx, index)
		if err != nil {
			metrics.ObserveFetch("failed", reads)
			return nil, fmt.Errorf("read listing %d: %w", index, err)
		}

		if !record.Active {
			continue
		}
		listings = append(listings, toListing(record))
	}

	slices.Reverse(listings)

	metrics.ObserveFetch("ok", reads)
	m.logs.Debugw("listings fetched", "count", count, "active", len(listings))

	return listings, nil
}

// Transactions returns the recorded receipts, optionally filtered by kind.
func (m *Marketplace) Transactions(ctx context.Context, kind string) ([]TransactionRecord, error) {
	var (
		dbTxs []repository.Transaction
		err   error
	)

	if kind == "" {
		dbTxs, err = m.repo.GetAllTransactions(ctx)
	} else {
		dbTxs, err = m.repo.GetTransactionsByKind(ctx, []string{kind})
	}
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	records := make([]TransactionRecord, 0, len(dbTxs))
	for _, tx := range dbTxs {
		records = append(records, TransactionRecord{
			TransactionHash:   tx.TransactionHash,
			Kind:              tx.Kind,
			TransactionStatus: tx.TransactionStatus,
			BlockHash:         tx.BlockHash,
			BlockNumber:       tx.BlockNumber,
			From:              tx.From,
			To:                tx.To,
			LogsCount:         tx.LogsCount,
			Input:             tx.Input,
			Value:             tx.Value,
			CreatedAt:         tx.CreatedAt,
		})
	}

	return records, nil
}

// record stores a receipt in the ledger. The ledger is informational, so a
// failure is only logged.
func (m *Marketplace) record(ctx context.Context, kind string, tx *ethereum.Transaction) *TransactionRecord {
	rec := toTransactionRecord(kind, tx)

	err := m.repo.SaveTransactions(ctx, []repository.Transaction{{
		TransactionHash:   rec.TransactionHash,
		Kind:              rec.Kind,
		TransactionStatus: rec.TransactionStatus,
		BlockHash:         rec.BlockHash,
		BlockNumber:       rec.BlockNumber,
		From:              rec.From,
		To:                rec.To,
		LogsCount:         rec.LogsCount,
		Input:             rec.Input,
		Value:             rec.Value,
		CreatedAt:         rec.CreatedAt,
	}})
	if err != nil {
		m.logs.Errorw("failed to record transaction",
			"tx_hash", rec.TransactionHash,
			"kind", kind,
			"error", err)
	}

	return rec
}

func toListing(l ethereum.Listing) Listing {
	return Listing{
		ID:     l.ID,
		Seller: l.Seller,
		Amount: l.Amount,
		Price:  l.Price,
		Active: l.Active,
	}
}

func toTransactionRecord(kind string, tx *ethereum.Transaction) *TransactionRecord {
	return &TransactionRecord{
		TransactionHash:   tx.TransactionHash,
		Kind:              kind,
		TransactionStatus: tx.TransactionStatus,
		BlockHash:         tx.BlockHash,
		BlockNumber:       tx.BlockNumber,
		From:              tx.From,
		To:                tx.To,
		LogsCount:         tx.LogsCount,
		Input:             tx.Input,
		Value:             tx.Value,
		CreatedAt:         time.Now().UTC(),
	}
}
