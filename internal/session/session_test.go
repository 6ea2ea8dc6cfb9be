package session_test

import (
	"context"
	"errors"
	"soko/internal/ethereum"
	ethfake "soko/internal/ethereum/fake"
	"soko/internal/session"
	"soko/internal/session/fake"
	"soko/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Manager", func() {
	var (
		manager      *session.Manager
		fakeProvider *fake.Provider
		fakeTokens   *fake.TokenIssuer
		fakeSigner   *ethfake.Signer
		events       chan wallet.Event
		ctx          context.Context
		cancel       context.CancelFunc
		account      common.Address
		pairing      wallet.Pairing
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		account = common.HexToAddress("0x00000000000000000000000000000000000000bb")
		pairing = wallet.Pairing{Topic: "topic-1", Account: account}

		events = make(chan wallet.Event)
		fakeProvider = new(fake.Provider)
		fakeProvider.EventsReturns(events)

		fakeSigner = new(ethfake.Signer)
		fakeSigner.AddressReturns(account)
		fakeProvider.SignerReturns(fakeSigner, nil)

		fakeTokens = new(fake.TokenIssuer)
		fakeTokens.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
		fakeTokens.SignReturns("signed-token", nil)

		manager = session.NewManager(zap.NewNop().Sugar(), fakeProvider, fakeTokens)
	})

	AfterEach(func() {
		cancel()
	})

	startLoop := func() {
		go manager.Run(ctx)
	}

	It("should start disconnected", func() {
		snap := manager.Snapshot()
		Expect(snap.State).To(Equal(wallet.Disconnected))
		_, ok := manager.Signer()
		Expect(ok).To(BeFalse())
	})

	Describe("Restore", func() {
		When("the provider found a pairing", func() {
			BeforeEach(func() {
				fakeProvider.FoundPairingReturns(pairing, true)
			})

			It("should go straight to connected", func() {
				manager.Restore()

				snap := manager.Snapshot()
				Expect(snap.State).To(Equal(wallet.Connected))
				Expect(snap.Account).To(Equal(account))
				Expect(snap.Topic).To(Equal("topic-1"))
				Expect(snap.Token).To(Equal("signed-token"))

				signer, ok := manager.Signer()
				Expect(ok).To(BeTrue())
				Expect(signer).To(BeIdenticalTo(ethereum.Signer(fakeSigner)))

				info := fakeTokens.GenerateArgsForCall(0)
				Expect(info.Subject).To(Equal(account.Hex()))
				Expect(info.Topic).To(Equal("topic-1"))
			})
		})

		When("the signer cannot be derived", func() {
			BeforeEach(func() {
				fakeProvider.FoundPairingReturns(pairing, true)
				fakeProvider.SignerReturns(nil, errors.New("locked"))
			})

			It("should stay disconnected", func() {
				manager.Restore()
				Expect(manager.Snapshot().State).To(Equal(wallet.Disconnected))
			})
		})
	})

	Describe("Connect", func() {
		It("should move to connecting and open a pairing", func() {
			req := wallet.PairingRequest{Account: account}
			Expect(manager.Connect(ctx, req)).To(Succeed())

			Expect(manager.Snapshot().State).To(Equal(wallet.Connecting))
			Expect(fakeProvider.OpenPairingCallCount()).To(Equal(1))
			_, got := fakeProvider.OpenPairingArgsForCall(0)
			Expect(got).To(Equal(req))
		})

		It("should reject a second connect while connecting", func() {
			Expect(manager.Connect(ctx, wallet.PairingRequest{Account: account})).To(Succeed())

			err := manager.Connect(ctx, wallet.PairingRequest{Account: account})
			Expect(err).To(MatchError(session.ErrInvalidTransition))
			Expect(fakeProvider.OpenPairingCallCount()).To(Equal(1))
		})

		When("the provider refuses to open a pairing", func() {
			BeforeEach(func() {
				fakeProvider.OpenPairingReturns(errors.New("unreachable"))
			})

			It("should fall back to disconnected", func() {
				err := manager.Connect(ctx, wallet.PairingRequest{Account: account})
				Expect(err).To(MatchError(ContainSubstring("unreachable")))
				Expect(manager.Snapshot().State).To(Equal(wallet.Disconnected))
			})
		})
	})

	Describe("provider events", func() {
		BeforeEach(func() {
			startLoop()
			Expect(manager.Connect(ctx, wallet.PairingRequest{Account: account})).To(Succeed())
		})

		It("should connect on a pairing", func() {
			events <- wallet.Event{Kind: wallet.EventPairing, Pairing: pairing}

			Eventually(func() wallet.ConnectionState {
				return manager.Snapshot().State
			}).Should(Equal(wallet.Connected))
			Expect(manager.Snapshot().Account).To(Equal(account))
		})

		It("should return to disconnected on a rejection", func() {
			sub := manager.Subscribe()
			Eventually(sub).Should(Receive())

			events <- wallet.Event{Kind: wallet.EventPairingRejected, Err: errors.New("user declined")}

			var ev session.Event
			Eventually(sub).Should(Receive(&ev))
			Expect(ev.State).To(Equal(wallet.Disconnected))
			Expect(ev.Notice).To(ContainSubstring("pairing rejected"))
			Expect(ev.Notice).To(ContainSubstring("user declined"))
		})

		It("should replace the session wholesale on a new pairing", func() {
			events <- wallet.Event{Kind: wallet.EventPairing, Pairing: pairing}
			Eventually(func() bool { return manager.Snapshot().Connected() }).Should(BeTrue())

			other := common.HexToAddress("0x00000000000000000000000000000000000000cc")
			otherSigner := new(ethfake.Signer)
			otherSigner.AddressReturns(other)
			fakeProvider.SignerReturns(otherSigner, nil)

			events <- wallet.Event{Kind: wallet.EventPairing, Pairing: wallet.Pairing{Topic: "topic-2", Account: other}}
			Eventually(func() string { return manager.Snapshot().Topic }).Should(Equal("topic-2"))

			signer, ok := manager.Signer()
			Expect(ok).To(BeTrue())
			Expect(signer.Address()).To(Equal(other))
		})

		When("connected", func() {
			BeforeEach(func() {
				events <- wallet.Event{Kind: wallet.EventPairing, Pairing: pairing}
				Eventually(func() bool { return manager.Snapshot().Connected() }).Should(BeTrue())
			})

			It("should request termination and clear on the disconnection event", func() {
				Expect(manager.Disconnect(ctx)).To(Succeed())
				_, topic := fakeProvider.DisconnectArgsForCall(0)
				Expect(topic).To(Equal("topic-1"))
				Expect(manager.Snapshot().State).To(Equal(wallet.Connected))

				events <- wallet.Event{Kind: wallet.EventDisconnected, Pairing: pairing}
				Eventually(func() wallet.ConnectionState {
					return manager.Snapshot().State
				}).Should(Equal(wallet.Disconnected))
				Expect(manager.Snapshot().Account).To(Equal(common.Address{}))
			})

			It("should be forced to disconnected by a status change", func() {
				events <- wallet.Event{Kind: wallet.EventStatusChange, State: wallet.Disconnected}
				Eventually(func() bool {
					_, ok := manager.Signer()
					return ok
				}).Should(BeFalse())
			})

			It("should reject connect", func() {
				err := manager.Connect(ctx, wallet.PairingRequest{Account: account})
				Expect(err).To(MatchError(session.ErrInvalidTransition))
			})
		})
	})

	Describe("Disconnect", func() {
		It("should reject disconnect when not connected", func() {
			err := manager.Disconnect(ctx)
			Expect(err).To(MatchError(session.ErrInvalidTransition))
			Expect(fakeProvider.DisconnectCallCount()).To(BeZero())
		})
	})

	Describe("Authorize", func() {
		BeforeEach(func() {
			fakeProvider.FoundPairingReturns(pairing, true)
			manager.Restore()
		})

		It("should accept a token for the current topic", func() {
			fakeTokens.ValidateReturns(jwt.MapClaims{"topic": "topic-1"}, nil)
			Expect(manager.Authorize("signed-token")).To(Succeed())
		})

		It("should reject a token for another topic", func() {
			fakeTokens.ValidateReturns(jwt.MapClaims{"topic": "topic-0"}, nil)
			Expect(manager.Authorize("old-token")).To(MatchError(session.ErrUnauthorized))
		})

		It("should reject an invalid token", func() {
			fakeTokens.ValidateReturns(nil, errors.New("bad signature"))
			Expect(manager.Authorize("junk")).To(MatchError(ContainSubstring("bad signature")))
		})
	})

	Describe("Subscribe", func() {
		It("should deliver the current state first", func() {
			sub := manager.Subscribe()
			var ev session.Event
			Expect(sub).To(Receive(&ev))
			Expect(ev.State).To(Equal(wallet.Disconnected))
		})

		It("should forward refresh tokens", func() {
			sub := manager.Subscribe()
			Eventually(sub).Should(Receive())

			manager.NotifyRefresh(7)

			var ev session.Event
			Expect(sub).To(Receive(&ev))
			Expect(ev.RefreshToken).To(Equal(uint64(7)))
		})

		It("should close the previous subscriber when replaced", func() {
			first := manager.Subscribe()
			Eventually(first).Should(Receive())

			second := manager.Subscribe()
			Eventually(first).Should(BeClosed())

			manager.Unsubscribe(second)
			Eventually(second).Should(Receive())
			Eventually(second).Should(BeClosed())
		})
	})
})
