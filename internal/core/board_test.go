package core_test

import (
	"context"
	"errors"
	"math/big"
	"soko/internal/core"
	"soko/internal/core/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Board", func() {
	var (
		fakeFetcher *fake.ListingFetcher
		board       *core.Board
		notified    []uint64
		ctx         context.Context
		first       []core.Listing
	)

	BeforeEach(func() {
		fakeFetcher = new(fake.ListingFetcher)
		notified = nil
		ctx = context.Background()
		first = []core.Listing{
			{ID: 2, Seller: sellerB, Amount: big.NewInt(1), Price: big.NewInt(1), Active: true},
			{ID: 1, Seller: sellerA, Amount: big.NewInt(1), Price: big.NewInt(1), Active: true},
		}
		fakeFetcher.FetchListingsReturns(first, nil)

		board = core.NewBoard(zap.NewNop().Sugar(), fakeFetcher, func(token uint64) {
			notified = append(notified, token)
		})
	})

	It("should fetch on first read", func() {
		snap, err := board.Current(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Token).To(Equal(uint64(1)))
		Expect(snap.Listings).To(HaveLen(2))
		Expect(fakeFetcher.FetchListingsCallCount()).To(Equal(1))

		_, err = board.Current(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(fakeFetcher.FetchListingsCallCount()).To(Equal(1))
	})

	It("should bump the token on every refresh", func() {
		for i := 1; i <= 3; i++ {
			snap, err := board.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Token).To(Equal(uint64(i)))
		}
		Expect(notified).To(Equal([]uint64{1, 2, 3}))
		Expect(board.Token()).To(Equal(uint64(3)))
	})

	It("should keep the previous snapshot when a refresh fails", func() {
		_, err := board.Refresh(ctx)
		Expect(err).NotTo(HaveOccurred())

		fakeFetcher.FetchListingsReturns(nil, errors.New("rpc down"))
		_, err = board.Refresh(ctx)
		Expect(err).To(MatchError("refresh listings: rpc down"))

		snap, err := board.Current(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Token).To(Equal(uint64(1)))
		Expect(snap.Listings).To(HaveLen(2))
		Expect(board.Token()).To(Equal(uint64(2)))
	})

	It("should not let a slow older fetch overwrite a newer one", func() {
		release := make(chan struct{})
		fakeFetcher.FetchListingsStub = func(context.Context) ([]core.Listing, error) {
			<-release
			return first, nil
		}

		done := make(chan core.Snapshot, 1)
		go func() {
			defer GinkgoRecover()
			snap, err := board.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())
			done <- snap
		}()
		Eventually(fakeFetcher.FetchListingsCallCount).Should(Equal(1))

		fakeFetcher.FetchListingsReturnsOnCall(1, first[:1], nil)
		snap, err := board.Refresh(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Token).To(Equal(uint64(2)))
		Expect(snap.Listings).To(HaveLen(1))

		close(release)
		var stale core.Snapshot
		Eventually(done).Should(Receive(&stale))
		Expect(stale.Token).To(Equal(uint64(2)))
		Expect(stale.Listings).To(HaveLen(1))
	})

	It("should find listings in the current snapshot", func() {
		_, err := board.Refresh(ctx)
		Expect(err).NotTo(HaveOccurred())

		l, ok := board.Find(1)
		Expect(ok).To(BeTrue())
		Expect(l.Seller).To(Equal(sellerA))

		_, ok = board.Find(9)
		Expect(ok).To(BeFalse())
	})

	It("should refresh in the background on Signal", func() {
		board.Signal()
		Eventually(board.Token).Should(Equal(uint64(1)))
		Eventually(fakeFetcher.FetchListingsCallCount).Should(Equal(1))
	})
})
