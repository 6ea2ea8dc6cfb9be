package wallet_test

import (
	"context"
	"errors"
	"math/big"
	"soko/internal/repository"
	"soko/internal/wallet"
	"soko/internal/wallet/fake"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("KeystoreProvider", func() {
	const passphrase = "correct horse"

	var (
		provider  *wallet.KeystoreProvider
		ks        *keystore.KeyStore
		account   accounts.Account
		fakeStore *fake.PairingStore
		ctx       context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		ks = keystore.NewKeyStore(GinkgoT().TempDir(), keystore.LightScryptN, keystore.LightScryptP)
		account, err = ks.NewAccount(passphrase)
		Expect(err).NotTo(HaveOccurred())

		fakeStore = new(fake.PairingStore)
		fakeStore.GetPairingReturns(repository.Pairing{}, repository.ErrPairingNotFound)

		provider = wallet.NewKeystoreProvider(zap.NewNop().Sugar(), ks, fakeStore, passphrase)
	})

	Describe("Init", func() {
		var err error

		JustBeforeEach(func() {
			err = provider.Init(ctx)
		})

		When("nothing was paired before", func() {
			It("should report no pairing", func() {
				Expect(err).NotTo(HaveOccurred())
				_, found := provider.FoundPairing()
				Expect(found).To(BeFalse())
			})
		})

		When("a pairing was persisted", func() {
			BeforeEach(func() {
				fakeStore.GetPairingReturns(repository.Pairing{
					Topic:   "topic-1",
					Account: account.Address.Hex(),
				}, nil)
			})

			It("should restore and unlock it", func() {
				Expect(err).NotTo(HaveOccurred())
				pairing, found := provider.FoundPairing()
				Expect(found).To(BeTrue())
				Expect(pairing.Topic).To(Equal("topic-1"))
				Expect(pairing.Account).To(Equal(account.Address))
			})
		})

		When("the persisted account is gone from the keystore", func() {
			BeforeEach(func() {
				fakeStore.GetPairingReturns(repository.Pairing{
					Topic:   "topic-1",
					Account: "0x00000000000000000000000000000000000000ee",
				}, nil)
			})

			It("should start without a pairing", func() {
				Expect(err).NotTo(HaveOccurred())
				_, found := provider.FoundPairing()
				Expect(found).To(BeFalse())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.GetPairingReturns(repository.Pairing{}, errors.New("db down"))
			})

			It("should return the error", func() {
				Expect(err).To(MatchError("load pairing: db down"))
			})
		})
	})

	Describe("OpenPairing", func() {
		var req wallet.PairingRequest

		BeforeEach(func() {
			req = wallet.PairingRequest{Account: account.Address}
		})

		JustBeforeEach(func() {
			Expect(provider.OpenPairing(ctx, req)).To(Succeed())
		})

		When("the wallet approves", func() {
			It("should emit a pairing event and persist it", func() {
				var ev wallet.Event
				Eventually(provider.Events()).Should(Receive(&ev))
				Expect(ev.Kind).To(Equal(wallet.EventPairing))
				Expect(ev.Pairing.Account).To(Equal(account.Address))
				Expect(ev.Pairing.Topic).NotTo(BeEmpty())

				Expect(fakeStore.SavePairingCallCount()).To(Equal(1))
				_, topic, stored := fakeStore.SavePairingArgsForCall(0)
				Expect(topic).To(Equal(ev.Pairing.Topic))
				Expect(stored).To(Equal(account.Address.Hex()))

				pairing, found := provider.FoundPairing()
				Expect(found).To(BeTrue())
				Expect(pairing).To(Equal(ev.Pairing))
			})
		})

		When("the passphrase is wrong", func() {
			BeforeEach(func() {
				req.Passphrase = "wrong"
			})

			It("should emit a rejection", func() {
				var ev wallet.Event
				Eventually(provider.Events()).Should(Receive(&ev))
				Expect(ev.Kind).To(Equal(wallet.EventPairingRejected))
				Expect(ev.Err).To(HaveOccurred())
				Expect(fakeStore.SavePairingCallCount()).To(BeZero())
			})
		})

		When("the account is unknown", func() {
			BeforeEach(func() {
				req.Account = common.HexToAddress("0x00000000000000000000000000000000000000ee")
			})

			It("should emit a rejection", func() {
				var ev wallet.Event
				Eventually(provider.Events()).Should(Receive(&ev))
				Expect(ev.Kind).To(Equal(wallet.EventPairingRejected))
				Expect(ev.Err).To(MatchError(keystore.ErrNoMatch))
			})
		})
	})

	Describe("Disconnect", func() {
		var pairing wallet.Pairing

		BeforeEach(func() {
			Expect(provider.OpenPairing(ctx, wallet.PairingRequest{Account: account.Address})).To(Succeed())
			var ev wallet.Event
			Eventually(provider.Events()).Should(Receive(&ev))
			pairing = ev.Pairing
		})

		It("should end the pairing and emit a disconnection", func() {
			Expect(provider.Disconnect(ctx, pairing.Topic)).To(Succeed())

			var ev wallet.Event
			Eventually(provider.Events()).Should(Receive(&ev))
			Expect(ev.Kind).To(Equal(wallet.EventDisconnected))

			Expect(fakeStore.DeletePairingCallCount()).To(Equal(1))
			_, topic := fakeStore.DeletePairingArgsForCall(0)
			Expect(topic).To(Equal(pairing.Topic))

			_, found := provider.FoundPairing()
			Expect(found).To(BeFalse())
		})

		It("should reject an unknown topic", func() {
			Expect(provider.Disconnect(ctx, "other")).To(MatchError(wallet.ErrNoPairing))
			Expect(fakeStore.DeletePairingCallCount()).To(BeZero())
		})
	})

	Describe("Signer", func() {
		It("should sign with the unlocked account", func() {
			Expect(ks.Unlock(account, passphrase)).To(Succeed())

			signer, err := provider.Signer(account.Address)
			Expect(err).NotTo(HaveOccurred())
			Expect(signer.Address()).To(Equal(account.Address))

			chainID := big.NewInt(296)
			tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
			signed, err := signer.SignTx(tx, chainID)
			Expect(err).NotTo(HaveOccurred())

			sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(sender).To(Equal(account.Address))
		})

		It("should fail for a locked account", func() {
			signer, err := provider.Signer(account.Address)
			Expect(err).NotTo(HaveOccurred())

			tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
			_, err = signer.SignTx(tx, big.NewInt(296))
			Expect(err).To(HaveOccurred())
		})

		It("should fail for an unknown account", func() {
			_, err := provider.Signer(common.HexToAddress("0x00000000000000000000000000000000000000ee"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Watch", func() {
		var (
			walletEvents chan accounts.WalletEvent
			cancel       context.CancelFunc
		)

		BeforeEach(func() {
			Expect(provider.OpenPairing(ctx, wallet.PairingRequest{Account: account.Address})).To(Succeed())
			Eventually(provider.Events()).Should(Receive())

			walletEvents = make(chan accounts.WalletEvent, 1)
			var watchCtx context.Context
			watchCtx, cancel = context.WithCancel(ctx)
			go provider.Watch(watchCtx, walletEvents)
		})

		AfterEach(func() {
			cancel()
		})

		It("should force a disconnection when the paired wallet is dropped", func() {
			walletEvents <- accounts.WalletEvent{Wallet: ks.Wallets()[0], Kind: accounts.WalletDropped}

			var ev wallet.Event
			Eventually(provider.Events()).Should(Receive(&ev))
			Expect(ev.Kind).To(Equal(wallet.EventStatusChange))
			Expect(ev.State).To(Equal(wallet.Disconnected))

			_, found := provider.FoundPairing()
			Expect(found).To(BeFalse())
		})

		It("should ignore arrivals", func() {
			walletEvents <- accounts.WalletEvent{Wallet: ks.Wallets()[0], Kind: accounts.WalletArrived}
			Consistently(provider.Events()).ShouldNot(Receive())
		})
	})
})
