package core_test

import (
	"context"
	"errors"
	"math/big"
	"soko/internal/core"
	"soko/internal/core/fake"
	"soko/internal/ethereum"
	"soko/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var (
	marketAddr  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	energyAddr  = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	paymentAddr = common.HexToAddress("0x00000000000000000000000000000000000000e2")
	sellerA     = common.HexToAddress("0x000000000000000000000000000000000000000a")
	sellerB     = common.HexToAddress("0x000000000000000000000000000000000000000b")
)

func contracts() core.Contracts {
	return core.Contracts{
		Market:       marketAddr,
		EnergyToken:  energyAddr,
		PaymentToken: paymentAddr,
	}
}

var _ = Describe("Marketplace", func() {
	var (
		fakeChain *fake.Chain
		fakeRepo  *fake.Repository
		market    *core.Marketplace
		ctx       context.Context
	)

	BeforeEach(func() {
		fakeChain = new(fake.Chain)
		fakeRepo = new(fake.Repository)
		ctx = context.Background()
		market = core.NewMarketplace(zap.NewNop().Sugar(), fakeChain, fakeRepo, contracts())
	})

	Describe("FetchListings", func() {
		var (
			listings []core.Listing
			err      error
		)

		JustBeforeEach(func() {
			listings, err = market.FetchListings(ctx)
		})

		When("the registry holds an inactive and two active listings", func() {
			BeforeEach(func() {
				records := []ethereum.Listing{
					{ID: 0, Seller: sellerA, Amount: big.NewInt(1), Price: big.NewInt(1), Active: false},
					{ID: 1, Seller: sellerA, Amount: big.NewInt(100000000000), Price: big.NewInt(150000), Active: true},
					{ID: 2, Seller: sellerB, Amount: big.NewInt(200000000), Price: big.NewInt(20000), Active: true},
				}
				fakeChain.ListingCountReturns(3, nil)
				fakeChain.ListingStub = func(_ context.Context, index uint64) (ethereum.Listing, error) {
					return records[index], nil
				}
			})

			It("should return the active ones newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(listings).To(HaveLen(2))
				Expect(listings[0].ID).To(Equal(uint64(2)))
				Expect(listings[1].ID).To(Equal(uint64(1)))
				Expect(listings[1].Seller).To(Equal(sellerA))
				Expect(listings[1].Amount.String()).To(Equal("100000000000"))
				Expect(listings[1].Price.String()).To(Equal("150000"))
			})

			It("should read the counter once and every index in order", func() {
				Expect(fakeChain.ListingCountCallCount()).To(Equal(1))
				Expect(fakeChain.ListingCallCount()).To(Equal(3))
				for i := 0; i < 3; i++ {
					_, index := fakeChain.ListingArgsForCall(i)
					Expect(index).To(Equal(uint64(i)))
				}
			})
		})

		When("the counter read fails", func() {
			BeforeEach(func() {
				fakeChain.ListingCountReturns(0, errors.New("rpc down"))
			})

			It("should return a single error and no listings", func() {
				Expect(err).To(MatchError("read listing count: rpc down"))
				Expect(listings).To(BeNil())
				Expect(fakeChain.ListingCallCount()).To(BeZero())
			})
		})

		When("a record read fails midway", func() {
			BeforeEach(func() {
				fakeChain.ListingCountReturns(3, nil)
				fakeChain.ListingReturnsOnCall(0, ethereum.Listing{ID: 0, Active: true, Amount: big.NewInt(1), Price: big.NewInt(1)}, nil)
				fakeChain.ListingReturnsOnCall(1, ethereum.Listing{}, errors.New("timeout"))
			})

			It("should abort without partial results", func() {
				Expect(err).To(MatchError("read listing 1: timeout"))
				Expect(listings).To(BeNil())
				Expect(fakeChain.ListingCallCount()).To(Equal(2))
			})
		})

		When("the node reports a huge counter", func() {
			BeforeEach(func() {
				fakeChain.ListingCountReturns(1<<62, nil)
				fakeChain.ListingStub = func(_ context.Context, index uint64) (ethereum.Listing, error) {
					if index == 2 {
						return ethereum.Listing{}, errors.New("out of range")
					}
					return ethereum.Listing{ID: index, Active: true, Amount: big.NewInt(1), Price: big.NewInt(1)}, nil
				}
			})

			It("should surface the read error instead of panicking", func() {
				Expect(err).To(MatchError("read listing 2: out of range"))
				Expect(listings).To(BeNil())
				Expect(fakeChain.ListingCallCount()).To(Equal(3))
			})
		})
	})

	Describe("FetchListings read count", func() {
		DescribeTable("issues exactly 1 + n reads",
			func(n int) {
				fakeChain.ListingCountReturns(uint64(n), nil)
				fakeChain.ListingStub = func(_ context.Context, index uint64) (ethereum.Listing, error) {
					return ethereum.Listing{ID: index, Amount: big.NewInt(1), Price: big.NewInt(1), Active: index%2 == 0}, nil
				}

				got, err := market.FetchListings(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.ListingCountCallCount()).To(Equal(1))
				Expect(fakeChain.ListingCallCount()).To(Equal(n))
				for _, l := range got {
					Expect(l.Active).To(BeTrue())
				}
				for i := 1; i < len(got); i++ {
					Expect(got[i-1].ID).To(BeNumerically(">", got[i].ID))
				}
			},
			Entry("empty registry", 0),
			Entry("single listing", 1),
			Entry("several listings", 7),
		)
	})

	Describe("Transactions", func() {
		BeforeEach(func() {
			fakeRepo.GetAllTransactionsReturns([]repository.Transaction{
				{TransactionHash: "0x1", Kind: "approve"},
				{TransactionHash: "0x2", Kind: "buyEnergy"},
			}, nil)
			fakeRepo.GetTransactionsByKindReturns([]repository.Transaction{
				{TransactionHash: "0x2", Kind: "buyEnergy"},
			}, nil)
		})

		It("should return every record without a filter", func() {
			records, err := market.Transactions(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].TransactionHash).To(Equal("0x1"))
			Expect(fakeRepo.GetTransactionsByKindCallCount()).To(BeZero())
		})

		It("should filter by kind", func() {
			records, err := market.Transactions(ctx, "buyEnergy")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			_, kinds := fakeRepo.GetTransactionsByKindArgsForCall(0)
			Expect(kinds).To(Equal([]string{"buyEnergy"}))
		})

		It("should wrap repository errors", func() {
			fakeRepo.GetAllTransactionsReturns(nil, errors.New("db down"))
			_, err := market.Transactions(ctx, "")
			Expect(err).To(MatchError("get transactions: db down"))
		})
	})
})
