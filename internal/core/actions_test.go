package core_test

import (
	"context"
	"errors"
	"math/big"
	"soko/internal/core"
	"soko/internal/core/fake"
	"soko/internal/ethereum"
	ethfake "soko/internal/ethereum/fake"
	"soko/internal/session"
	sessionfake "soko/internal/session/fake"
	"soko/internal/wallet"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Action flows", func() {
	var (
		fakeChain   *fake.Chain
		fakeRepo    *fake.Repository
		fakeSession *fake.Session
		fakeSigner  *ethfake.Signer
		fakeFinder  *fake.ListingFinder
		market      *core.Marketplace
		ctx         context.Context
		buyer       common.Address
		refreshes   atomic.Int32
		onSuccess   func()
		listing     core.Listing
	)

	BeforeEach(func() {
		fakeChain = new(fake.Chain)
		fakeRepo = new(fake.Repository)
		fakeSession = new(fake.Session)
		fakeSigner = new(ethfake.Signer)
		fakeFinder = new(fake.ListingFinder)
		ctx = context.Background()
		buyer = common.HexToAddress("0x00000000000000000000000000000000000000bb")

		fakeSigner.AddressReturns(buyer)
		fakeSession.SignerReturns(fakeSigner, true)

		fakeChain.AllowanceReturns(big.NewInt(0), nil)
		fakeChain.ApproveReturns(&ethereum.Transaction{TransactionHash: "0xapprove"}, nil)
		fakeChain.ListEnergyReturns(&ethereum.Transaction{TransactionHash: "0xlist"}, nil)
		fakeChain.BuyEnergyReturns(&ethereum.Transaction{TransactionHash: "0xbuy"}, nil)

		refreshes.Store(0)
		onSuccess = func() { refreshes.Add(1) }

		listing = core.Listing{
			ID:     1,
			Seller: sellerA,
			Amount: big.NewInt(100000000000),
			Price:  big.NewInt(150000),
			Active: true,
		}

		fakeFinder.FindStub = func(uint64) (core.Listing, bool) {
			return listing, true
		}

		market = core.NewMarketplace(zap.NewNop().Sugar(), fakeChain, fakeRepo, contracts())
	})

	Describe("ListEnergy", func() {
		var (
			order  core.ListOrder
			action core.Action
			err    error
		)

		BeforeEach(func() {
			order = core.ListOrder{Amount: "1000", Price: "15"}
		})

		JustBeforeEach(func() {
			action, err = market.ListEnergy(ctx, fakeSession, order, onSuccess)
		})

		It("should approve the energy token and list with converted quantities", func() {
			Expect(err).NotTo(HaveOccurred())

			_, token, owner, spender := fakeChain.AllowanceArgsForCall(0)
			Expect(token).To(Equal(energyAddr))
			Expect(owner).To(Equal(buyer))
			Expect(spender).To(Equal(marketAddr))

			_, _, _, _, approved := fakeChain.ApproveArgsForCall(0)
			Expect(approved.String()).To(Equal("100000000000"))

			Expect(fakeChain.ListEnergyCallCount()).To(Equal(1))
			_, _, amount, price := fakeChain.ListEnergyArgsForCall(0)
			Expect(amount.String()).To(Equal("100000000000"))
			Expect(price.String()).To(Equal("150000"))

			Expect(action.Kind).To(Equal(core.ActionList))
			Expect(action.Stage).To(Equal(core.StageCompleted))
			Expect(action.Transactions).To(Equal([]string{"0xapprove", "0xlist"}))
			Expect(refreshes.Load()).To(Equal(int32(1)))
		})

		When("the allowance is already sufficient", func() {
			BeforeEach(func() {
				fakeChain.AllowanceReturns(big.NewInt(100000000000), nil)
			})

			It("should skip the approval", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.ApproveCallCount()).To(BeZero())
				Expect(action.Transactions).To(Equal([]string{"0xlist"}))
			})
		})

		When("no wallet is connected", func() {
			BeforeEach(func() {
				fakeSession.SignerReturns(nil, false)
			})

			It("should fail fast", func() {
				Expect(err).To(MatchError(core.ErrNotConnected))
				Expect(fakeChain.AllowanceCallCount()).To(BeZero())
				Expect(refreshes.Load()).To(BeZero())
			})
		})

		When("the amount is not a valid quantity", func() {
			BeforeEach(func() {
				order.Amount = "-3"
			})

			It("should reject it before touching the chain", func() {
				Expect(err).To(MatchError(core.ErrInvalidQuantity))
				Expect(fakeChain.AllowanceCallCount()).To(BeZero())
			})
		})

		When("the approval fails", func() {
			BeforeEach(func() {
				fakeChain.ApproveReturns(nil, errors.New("user rejected"))
			})

			It("should abort before listing", func() {
				Expect(err).To(MatchError(core.ErrApprovalFailed))
				Expect(err).To(MatchError(ContainSubstring("user rejected")))
				Expect(fakeChain.ListEnergyCallCount()).To(BeZero())
				Expect(action.Stage).To(Equal(core.StageFailed))
				Expect(action.Approved).To(BeFalse())
				Expect(refreshes.Load()).To(BeZero())
			})
		})
	})

	Describe("BuyEnergy", func() {
		var (
			action core.Action
			err    error
		)

		JustBeforeEach(func() {
			action, err = market.BuyEnergy(ctx, fakeSession, listing, onSuccess)
		})

		It("should approve the payment token for the price and buy", func() {
			Expect(err).NotTo(HaveOccurred())

			_, token, _, _ := fakeChain.AllowanceArgsForCall(0)
			Expect(token).To(Equal(paymentAddr))

			_, _, _, _, approved := fakeChain.ApproveArgsForCall(0)
			Expect(approved.String()).To(Equal("150000"))

			_, _, id := fakeChain.BuyEnergyArgsForCall(0)
			Expect(id).To(Equal(uint64(1)))

			Expect(action.Stage).To(Equal(core.StageCompleted))
			Expect(action.ListingID).To(Equal(uint64(1)))
			Expect(refreshes.Load()).To(Equal(int32(1)))
		})

		It("should record both receipts", func() {
			Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(2))
			_, first := fakeRepo.SaveTransactionsArgsForCall(0)
			_, second := fakeRepo.SaveTransactionsArgsForCall(1)
			Expect(first[0].Kind).To(Equal("approve"))
			Expect(second[0].Kind).To(Equal("buyEnergy"))
			Expect(second[0].TransactionHash).To(Equal("0xbuy"))
		})

		When("the buyer is the seller", func() {
			BeforeEach(func() {
				fakeSigner.AddressReturns(sellerA)
			})

			It("should reject before any transaction", func() {
				Expect(err).To(MatchError(core.ErrSelfTrade))
				Expect(fakeChain.AllowanceCallCount()).To(BeZero())
				Expect(fakeChain.ApproveCallCount()).To(BeZero())
				Expect(fakeChain.BuyEnergyCallCount()).To(BeZero())
			})
		})

		When("the listing is no longer active", func() {
			BeforeEach(func() {
				listing.Active = false
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(core.ErrListingInactive))
				Expect(fakeChain.AllowanceCallCount()).To(BeZero())
			})
		})

		When("the purchase reverts after the approval", func() {
			BeforeEach(func() {
				fakeChain.BuyEnergyReturns(nil, ethereum.ErrTransactionReverted)
			})

			It("should fail but remember the approval", func() {
				Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
				Expect(action.Stage).To(Equal(core.StageFailed))
				Expect(action.Approved).To(BeTrue())
				Expect(action.Transactions).To(Equal([]string{"0xapprove"}))
				Expect(refreshes.Load()).To(BeZero())
			})

			It("should redo the allowance step when another account resumes", func() {
				other := new(ethfake.Signer)
				other.AddressReturns(sellerB)
				fakeSession.SignerReturns(other, true)
				fakeChain.BuyEnergyReturns(&ethereum.Transaction{TransactionHash: "0xbuy"}, nil)

				resumed, err := market.ResumeAction(ctx, fakeSession, action.ID, fakeFinder, onSuccess)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.AllowanceCallCount()).To(Equal(2))
				Expect(resumed.Owner).To(Equal(sellerB))
			})

			It("should not resume a purchase whose listing left the board", func() {
				fakeFinder.FindStub = nil
				fakeFinder.FindReturns(core.Listing{}, false)

				_, err := market.ResumeAction(ctx, fakeSession, action.ID, fakeFinder, onSuccess)
				Expect(err).To(MatchError(core.ErrListingNotFound))
				Expect(fakeChain.BuyEnergyCallCount()).To(Equal(1))

				stored, lookupErr := market.Action(action.ID)
				Expect(lookupErr).NotTo(HaveOccurred())
				Expect(stored.Stage).To(Equal(core.StageFailed))
			})

			It("should not resume a purchase whose listing was sold", func() {
				sold := listing
				sold.Active = false
				fakeFinder.FindStub = nil
				fakeFinder.FindReturns(sold, true)

				_, err := market.ResumeAction(ctx, fakeSession, action.ID, fakeFinder, onSuccess)
				Expect(err).To(MatchError(core.ErrListingInactive))
				Expect(fakeChain.AllowanceCallCount()).To(Equal(1))
				Expect(fakeChain.BuyEnergyCallCount()).To(Equal(1))
			})

			Describe("ResumeAction", func() {
				var (
					resumed   core.Action
					resumeErr error
				)

				JustBeforeEach(func() {
					fakeChain.BuyEnergyReturns(&ethereum.Transaction{TransactionHash: "0xbuy"}, nil)
					resumed, resumeErr = market.ResumeAction(ctx, fakeSession, action.ID, fakeFinder, onSuccess)
				})

				It("should only retry the purchase", func() {
					Expect(resumeErr).NotTo(HaveOccurred())
					Expect(fakeChain.AllowanceCallCount()).To(Equal(1))
					Expect(fakeChain.ApproveCallCount()).To(Equal(1))
					Expect(fakeChain.BuyEnergyCallCount()).To(Equal(2))
					Expect(resumed.ID).To(Equal(action.ID))
					Expect(resumed.Stage).To(Equal(core.StageCompleted))
					Expect(resumed.Transactions).To(Equal([]string{"0xapprove", "0xbuy"}))
					Expect(refreshes.Load()).To(Equal(int32(1)))
				})

				It("should check the listing as it is now", func() {
					Expect(fakeFinder.FindCallCount()).To(Equal(1))
					Expect(fakeFinder.FindArgsForCall(0)).To(Equal(listing.ID))
				})

				It("should refuse to resume a completed action", func() {
					_, err := market.ResumeAction(ctx, fakeSession, action.ID, fakeFinder, onSuccess)
					Expect(err).To(MatchError(core.ErrActionNotResumable))
				})
			})
		})
	})

	Describe("ResumeAction", func() {
		It("should report unknown actions", func() {
			_, err := market.ResumeAction(ctx, fakeSession, "missing", fakeFinder, onSuccess)
			Expect(err).To(MatchError(core.ErrActionNotFound))
		})

		It("should look up actions by id", func() {
			action, err := market.BuyEnergy(ctx, fakeSession, listing, nil)
			Expect(err).NotTo(HaveOccurred())

			found, err := market.Action(action.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Stage).To(Equal(core.StageCompleted))
		})
	})

	Describe("in-flight guard", func() {
		var (
			release chan struct{}
			started chan struct{}
		)

		BeforeEach(func() {
			release = make(chan struct{})
			started = make(chan struct{}, 1)
			fakeChain.BuyEnergyStub = func(_ context.Context, _ ethereum.Signer, id uint64) (*ethereum.Transaction, error) {
				if id == listing.ID {
					started <- struct{}{}
					<-release
				}
				return &ethereum.Transaction{TransactionHash: "0xbuy"}, nil
			}
		})

		It("should reject a second purchase of the same listing while pending", func() {
			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				_, err := market.BuyEnergy(ctx, fakeSession, listing, onSuccess)
				done <- err
			}()
			Eventually(started).Should(Receive())

			_, err := market.BuyEnergy(ctx, fakeSession, listing, onSuccess)
			Expect(err).To(MatchError(core.ErrActionInFlight))

			other := listing
			other.ID = 2
			_, err = market.BuyEnergy(ctx, fakeSession, other, onSuccess)
			Expect(err).NotTo(HaveOccurred())

			close(release)
			Eventually(done).Should(Receive(BeNil()))

			_, err = market.BuyEnergy(ctx, fakeSession, other, onSuccess)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("disconnection during a pending flow", func() {
		var (
			manager      *session.Manager
			fakeProvider *sessionfake.Provider
			events       chan wallet.Event
			loopCtx      context.Context
			cancel       context.CancelFunc
		)

		BeforeEach(func() {
			events = make(chan wallet.Event)
			fakeProvider = new(sessionfake.Provider)
			fakeProvider.EventsReturns(events)
			fakeProvider.FoundPairingReturns(wallet.Pairing{Topic: "topic-1", Account: buyer}, true)
			fakeProvider.SignerReturns(fakeSigner, nil)

			tokens := new(sessionfake.TokenIssuer)
			tokens.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			tokens.SignReturns("token", nil)

			manager = session.NewManager(zap.NewNop().Sugar(), fakeProvider, tokens)
			manager.Restore()

			loopCtx, cancel = context.WithCancel(context.Background())
			go manager.Run(loopCtx)
		})

		AfterEach(func() {
			cancel()
		})

		It("should flip the session while the flow still resolves", func() {
			release := make(chan struct{})
			started := make(chan struct{}, 1)
			fakeChain.BuyEnergyStub = func(context.Context, ethereum.Signer, uint64) (*ethereum.Transaction, error) {
				started <- struct{}{}
				<-release
				return &ethereum.Transaction{TransactionHash: "0xbuy"}, nil
			}

			type outcome struct {
				action core.Action
				err    error
			}
			done := make(chan outcome, 1)
			go func() {
				defer GinkgoRecover()
				action, err := market.BuyEnergy(ctx, manager, listing, onSuccess)
				done <- outcome{action, err}
			}()
			Eventually(started).Should(Receive())

			events <- wallet.Event{Kind: wallet.EventDisconnected, Pairing: wallet.Pairing{Topic: "topic-1", Account: buyer}}
			Eventually(func() wallet.ConnectionState {
				return manager.Snapshot().State
			}).Should(Equal(wallet.Disconnected))

			close(release)

			var got outcome
			Eventually(done).Should(Receive(&got))
			Expect(got.err).NotTo(HaveOccurred())
			Expect(got.action.Stage).To(Equal(core.StageCompleted))
			Expect(manager.Snapshot().State).To(Equal(wallet.Disconnected))

			_, err := market.BuyEnergy(ctx, manager, listing, onSuccess)
			Expect(err).To(MatchError(core.ErrNotConnected))
		})
	})
})
