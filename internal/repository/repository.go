package repository

import (
	"context"
	"errors"
	"fmt"
	"soko/internal/db"
)

var ErrPairingNotFound error = errors.New("pairing not found")

type TransactionRepository struct {
	db Storage
}

func NewTransactionRepository(db Storage) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) MigrateTables(tables ...any) error {
	err := r.db.MigrateTable(tables...)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TransactionRepository) SaveTransactions(ctx context.Context, transactions []Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	err := r.db.SaveToTable(ctx, &transactions)
	if err != nil {
		return fmt.Errorf("save to table: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetAllTransactions(ctx context.Context) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAll(ctx, "created_at desc", &transactions)
	if err != nil {
		return nil, fmt.Errorf("get all transactions: %w", err)
	}

	return transactions, nil
}

func (r *TransactionRepository) GetTransactionsByKind(ctx context.Context, kinds []string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllBy(ctx, "kind", kinds, &transactions)
	if err != nil {
		return nil, fmt.Errorf("get transactions by kind: %w", err)
	}

	return transactions, nil
}

type PairingRepository struct {
	db Storage
}

func NewPairingRepository(db Storage) *PairingRepository {
	return &PairingRepository{
		db: db,
	}
}

// SavePairing replaces whatever pairing was stored before.
func (r *PairingRepository) SavePairing(ctx context.Context, topic, account string) error {
	err := r.db.DeleteAll(ctx, &Pairing{})
	if err != nil {
		return fmt.Errorf("clear pairings: %w", err)
	}

	pairings := []Pairing{{Topic: topic, Account: account}}
	err = r.db.SaveToTable(ctx, &pairings)
	if err != nil {
		return fmt.Errorf("save pairing: %w", err)
	}

	return nil
}

func (r *PairingRepository) GetPairing(ctx context.Context) (Pairing, error) {
	var pairings []Pairing
	err := r.db.GetAll(ctx, "created_at desc", &pairings)
	if err != nil {
		return Pairing{}, fmt.Errorf("get pairing: %w", err)
	}

	if len(pairings) == 0 {
		return Pairing{}, ErrPairingNotFound
	}

	return pairings[0], nil
}

func (r *PairingRepository) DeletePairing(ctx context.Context, topic string) error {
	err := r.db.DeleteBy(ctx, "topic", topic, &Pairing{})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrPairingNotFound
		}
		return fmt.Errorf("delete pairing: %w", err)
	}

	return nil
}
