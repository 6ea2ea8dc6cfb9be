package core

import (
	"math/big"
	"soko/internal/units"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Contracts holds the deployed addresses the marketplace talks to.
type Contracts struct {
	Market       common.Address
	EnergyToken  common.Address
	PaymentToken common.Address
}

type Listing struct {
	ID     uint64
	Seller common.Address
	Amount *big.Int
	Price  *big.Int
	Active bool
}

type ListingView struct {
	ID            uint64 `json:"id"`
	Seller        string `json:"seller"`
	Amount        string `json:"amount"`
	AmountDisplay string `json:"amountDisplay"`
	Price         string `json:"price"`
	PriceCents    string `json:"priceCents"`
	OwnListing    bool   `json:"ownListing"`
}

// NewListingView renders a listing for account. A zero account means no
// wallet is connected.
func NewListingView(l Listing, account common.Address) ListingView {
	return ListingView{
		ID:            l.ID,
		Seller:        l.Seller.Hex(),
		Amount:        l.Amount.String(),
		AmountDisplay: units.FormatEnergy(l.Amount),
		Price:         l.Price.String(),
		PriceCents:    units.FormatCents(l.Price),
		OwnListing:    account != (common.Address{}) && l.Seller == account,
	}
}

type ListOrder struct {
	Amount string
	Price  string
}

type AllowanceOutcome string

const (
	AllowanceSufficient AllowanceOutcome = "sufficient"
	AllowanceApproved   AllowanceOutcome = "approved"
	AllowanceFailed     AllowanceOutcome = "failed"
)

type AllowanceResult struct {
	Outcome     AllowanceOutcome
	Reason      error
	Transaction *TransactionRecord
}

type ActionKind string

const (
	ActionList ActionKind = "list"
	ActionBuy  ActionKind = "buy"
)

type ActionStage string

const (
	StagePending   ActionStage = "pending"
	StageApproved  ActionStage = "approved"
	StageCompleted ActionStage = "completed"
	StageFailed    ActionStage = "failed"
)

// Action is one listing or purchase attempt. Approved survives a failure so a
// resumed action skips straight to the contract call.
type Action struct {
	ID           string         `json:"id"`
	Kind         ActionKind     `json:"kind"`
	Stage        ActionStage    `json:"stage"`
	Approved     bool           `json:"approved"`
	Owner        common.Address `json:"owner"`
	Token        common.Address `json:"token"`
	Required     *big.Int       `json:"required"`
	ListingID    uint64         `json:"listingId,omitempty"`
	Seller       common.Address `json:"seller"`
	Amount       *big.Int       `json:"amount,omitempty"`
	Price        *big.Int       `json:"price,omitempty"`
	Transactions []string       `json:"transactions"`
	Error        string         `json:"error,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type TransactionRecord struct {
	TransactionHash   string    `json:"transactionHash"`
	Kind              string    `json:"kind"`
	TransactionStatus uint64    `json:"transactionStatus"`
	BlockHash         string    `json:"blockHash"`
	BlockNumber       uint64    `json:"blockNumber"`
	From              string    `json:"from"`
	To                *string   `json:"to"`
	LogsCount         int       `json:"logsCount"`
	Input             string    `json:"input"`
	Value             string    `json:"value"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Snapshot is the listings board as of a refresh token.
type Snapshot struct {
	Token    uint64
	Listings []Listing
}
