package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ErrNoContractCode error = errors.New("no contract code at address")

// MarketService is the chain-facing side of the marketplace: read-only calls
// against the registry and the tokens, and signed writes that wait for inclusion.
type MarketService struct {
	client    EthClient
	market    common.Address
	marketABI abi.ABI
	erc20ABI  abi.ABI
}

func NewMarketService(ethClient EthClient, market common.Address) (*MarketService, error) {
	marketABI, err := abi.JSON(strings.NewReader(MarketABI))
	if err != nil {
		return nil, fmt.Errorf("parse market abi: %w", err)
	}

	erc20ABI, err := abi.JSON(strings.NewReader(ERC20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	return &MarketService{
		client:    ethClient,
		market:    market,
		marketABI: marketABI,
		erc20ABI:  erc20ABI,
	}, nil
}

// ListingCount returns nextListingId, the number of listings ever created.
func (s *MarketService) ListingCount(ctx context.Context) (uint64, error) {
	out, err := s.call(ctx, s.marketABI, s.market, "nextListingId")
	if err != nil {
		return 0, err
	}

	var count *big.Int
	if err := s.marketABI.UnpackIntoInterface(&count, "nextListingId", out); err != nil {
		return 0, fmt.Errorf("unpack nextListingId: %w", err)
	}

	if !count.IsUint64() {
		return 0, fmt.Errorf("listing counter out of range: %s", count)
	}

	return count.Uint64(), nil
}

func (s *MarketService) Listing(ctx context.Context, index uint64) (Listing, error) {
	out, err := s.call(ctx, s.marketABI, s.market, "listings", new(big.Int).SetUint64(index))
	if err != nil {
		return Listing{}, err
	}

	var record listingRecord
	if err := s.marketABI.UnpackIntoInterface(&record, "listings", out); err != nil {
		return Listing{}, fmt.Errorf("unpack listing %d: %w", index, err)
	}

	return Listing{
		ID:     index,
		Seller: record.Seller,
		Amount: record.AmountSEWH,
		Price:  record.PriceUSDC,
		Active: record.Active,
	}, nil
}

func (s *MarketService) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	out, err := s.call(ctx, s.erc20ABI, token, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	var allowance *big.Int
	if err := s.erc20ABI.UnpackIntoInterface(&allowance, "allowance", out); err != nil {
		return nil, fmt.Errorf("unpack allowance: %w", err)
	}

	return allowance, nil
}

// Approve sets the spender's allowance on token to exactly amount and waits for inclusion.
func (s *MarketService) Approve(ctx context.Context, signer Signer, token, spender common.Address, amount *big.Int) (*Transaction, error) {
	data, err := s.erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return nil, fmt.Errorf("pack approve: %w", err)
	}

	return s.transact(ctx, signer, token, data)
}

func (s *MarketService) ListEnergy(ctx context.Context, signer Signer, amount, price *big.Int) (*Transaction, error) {
	data, err := s.marketABI.Pack("listEnergy", amount, price)
	if err != nil {
		return nil, fmt.Errorf("pack listEnergy: %w", err)
	}

	return s.transact(ctx, signer, s.market, data)
}

func (s *MarketService) BuyEnergy(ctx context.Context, signer Signer, listingID uint64) (*Transaction, error) {
	data, err := s.marketABI.Pack("buyEnergy", new(big.Int).SetUint64(listingID))
	if err != nil {
		return nil, fmt.Errorf("pack buyEnergy: %w", err)
	}

	return s.transact(ctx, signer, s.market, data)
}

// CheckContracts makes sure every address holds deployed code, so a wrong
// network or address fails at startup instead of on the first read.
func (s *MarketService) CheckContracts(ctx context.Context, addresses ...common.Address) error {
	for _, addr := range addresses {
		code, err := s.client.CodeAt(ctx, addr, nil)
		if err != nil {
			return fmt.Errorf("code at %s: %w", addr.Hex(), err)
		}
		if len(code) == 0 {
			return fmt.Errorf("%w: %s", ErrNoContractCode, addr.Hex())
		}
	}
	return nil
}

func (s *MarketService) call(ctx context.Context, contractABI abi.ABI, to common.Address, method string, args ...any) ([]byte, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	out, err := s.client.CallContract(ctx, geth.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	return out, nil
}
