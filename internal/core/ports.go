package core

import (
	"context"
	"math/big"
	"soko/internal/ethereum"
	"soko/internal/repository"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	ListingCount(ctx context.Context) (uint64, error)
	Listing(ctx context.Context, index uint64) (ethereum.Listing, error)
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	Approve(ctx context.Context, signer ethereum.Signer, token, spender common.Address, amount *big.Int) (*ethereum.Transaction, error)
	ListEnergy(ctx context.Context, signer ethereum.Signer, amount, price *big.Int) (*ethereum.Transaction, error)
	BuyEnergy(ctx context.Context, signer ethereum.Signer, listingID uint64) (*ethereum.Transaction, error)
}

// Session is the read-only view of the wallet session the flows need.
//
//counterfeiter:generate -o fake -fake-name Session . Session
type Session interface {
	Signer() (ethereum.Signer, bool)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveTransactions(ctx context.Context, transactions []repository.Transaction) error
	GetAllTransactions(ctx context.Context) ([]repository.Transaction, error)
	GetTransactionsByKind(ctx context.Context, kinds []string) ([]repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name ListingFetcher . ListingFetcher
type ListingFetcher interface {
	FetchListings(ctx context.Context) ([]Listing, error)
}

// ListingFinder looks a listing up on the current board.
//
//counterfeiter:generate -o fake -fake-name ListingFinder . ListingFinder
type ListingFinder interface {
	Find(id uint64) (Listing, bool)
}
