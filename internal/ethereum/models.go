package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Listing is a snapshot of one entry of the marketplace registry. ID is the
// registry index and never changes.
type Listing struct {
	ID     uint64
	Seller common.Address
	Amount *big.Int
	Price  *big.Int
	Active bool
}

// listingRecord mirrors the tuple returned by listings(uint256).
type listingRecord struct {
	Seller     common.Address
	AmountSEWH *big.Int
	PriceUSDC  *big.Int
	Active     bool
}

type Transaction struct {
	TransactionHash   string
	TransactionStatus uint64
	BlockHash         string
	BlockNumber       uint64
	From              string
	To                *string
	LogsCount         int
	Input             string
	Value             string
}
