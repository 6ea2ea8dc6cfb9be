package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"soko/internal/ethereum"
	"soko/internal/repository"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoPairing error = errors.New("no active pairing")

const eventBuffer = 16

// KeystoreProvider plays the wallet side of a pairing using accounts held in a
// local keystore. Approving a pairing unlocks the account; disconnecting locks it.
type KeystoreProvider struct {
	logger     *zap.SugaredLogger
	keystore   *keystore.KeyStore
	store      PairingStore
	passphrase string
	events     chan Event

	mu      sync.Mutex
	pairing *Pairing
}

func NewKeystoreProvider(
	logger *zap.SugaredLogger,
	ks *keystore.KeyStore,
	store PairingStore,
	passphrase string,
) *KeystoreProvider {
	return &KeystoreProvider{
		logger:     logger,
		keystore:   ks,
		store:      store,
		passphrase: passphrase,
		events:     make(chan Event, eventBuffer),
	}
}

func (p *KeystoreProvider) Events() <-chan Event {
	return p.events
}

// Init restores the persisted pairing if its account can still be unlocked.
func (p *KeystoreProvider) Init(ctx context.Context) error {
	stored, err := p.store.GetPairing(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPairingNotFound) {
			return nil
		}
		return fmt.Errorf("load pairing: %w", err)
	}

	if !common.IsHexAddress(stored.Account) {
		return fmt.Errorf("stored pairing has invalid account %q", stored.Account)
	}

	account, err := p.keystore.Find(accounts.Account{Address: common.HexToAddress(stored.Account)})
	if err != nil {
		p.logger.Warnw("paired account no longer in keystore",
			"topic", stored.Topic,
			"account", stored.Account,
			"error", err)
		return nil
	}

	if err := p.keystore.Unlock(account, p.passphrase); err != nil {
		p.logger.Warnw("failed to unlock paired account",
			"topic", stored.Topic,
			"account", stored.Account,
			"error", err)
		return nil
	}

	p.mu.Lock()
	p.pairing = &Pairing{Topic: stored.Topic, Account: account.Address}
	p.mu.Unlock()

	return nil
}

func (p *KeystoreProvider) FoundPairing() (Pairing, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pairing == nil {
		return Pairing{}, false
	}
	return *p.pairing, true
}

// OpenPairing returns immediately; the outcome arrives on Events as either
// EventPairing or EventPairingRejected.
func (p *KeystoreProvider) OpenPairing(ctx context.Context, req PairingRequest) error {
	ctx = context.WithoutCancel(ctx)

	go func() {
		pairing, err := p.pair(ctx, req)
		if err != nil {
			p.logger.Infow("pairing rejected",
				"account", req.Account.Hex(),
				"error", err)
			p.emit(Event{Kind: EventPairingRejected, Err: err})
			return
		}

		p.emit(Event{Kind: EventPairing, Pairing: pairing})
	}()

	return nil
}

func (p *KeystoreProvider) pair(ctx context.Context, req PairingRequest) (Pairing, error) {
	account, err := p.keystore.Find(accounts.Account{Address: req.Account})
	if err != nil {
		return Pairing{}, fmt.Errorf("find account %s: %w", req.Account.Hex(), err)
	}

	passphrase := req.Passphrase
	if passphrase == "" {
		passphrase = p.passphrase
	}

	if err := p.keystore.Unlock(account, passphrase); err != nil {
		return Pairing{}, fmt.Errorf("unlock account %s: %w", req.Account.Hex(), err)
	}

	pairing := Pairing{Topic: uuid.NewString(), Account: account.Address}
	if err := p.store.SavePairing(ctx, pairing.Topic, pairing.Account.Hex()); err != nil {
		_ = p.keystore.Lock(account.Address)
		return Pairing{}, fmt.Errorf("persist pairing: %w", err)
	}

	p.mu.Lock()
	previous := p.pairing
	p.pairing = &pairing
	p.mu.Unlock()

	if previous != nil && previous.Account != pairing.Account {
		_ = p.keystore.Lock(previous.Account)
	}

	return pairing, nil
}

func (p *KeystoreProvider) Disconnect(ctx context.Context, topic string) error {
	p.mu.Lock()
	current := p.pairing
	if current == nil || current.Topic != topic {
		p.mu.Unlock()
		return ErrNoPairing
	}
	p.pairing = nil
	p.mu.Unlock()

	if err := p.keystore.Lock(current.Account); err != nil {
		p.logger.Warnw("failed to lock account",
			"account", current.Account.Hex(),
			"error", err)
	}

	err := p.store.DeletePairing(ctx, topic)
	if err != nil && !errors.Is(err, repository.ErrPairingNotFound) {
		p.logger.Errorw("failed to delete pairing",
			"topic", topic,
			"error", err)
	}

	p.emit(Event{Kind: EventDisconnected, Pairing: *current})
	return nil
}

func (p *KeystoreProvider) Signer(account common.Address) (ethereum.Signer, error) {
	found, err := p.keystore.Find(accounts.Account{Address: account})
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", account.Hex(), err)
	}

	return &keystoreSigner{keystore: p.keystore, account: found}, nil
}

// Watch turns keystore wallet events into status changes. A dropped wallet that
// holds the paired account ends the pairing.
func (p *KeystoreProvider) Watch(ctx context.Context, walletEvents <-chan accounts.WalletEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-walletEvents:
			if !ok {
				return
			}
			if ev.Kind != accounts.WalletDropped {
				continue
			}
			p.dropped(ctx, ev.Wallet)
		}
	}
}

func (p *KeystoreProvider) dropped(ctx context.Context, w accounts.Wallet) {
	p.mu.Lock()
	current := p.pairing
	if current == nil || !w.Contains(accounts.Account{Address: current.Account}) {
		p.mu.Unlock()
		return
	}
	p.pairing = nil
	p.mu.Unlock()

	p.logger.Infow("paired account removed from wallet",
		"account", current.Account.Hex(),
		"topic", current.Topic)

	err := p.store.DeletePairing(ctx, current.Topic)
	if err != nil && !errors.Is(err, repository.ErrPairingNotFound) {
		p.logger.Errorw("failed to delete pairing",
			"topic", current.Topic,
			"error", err)
	}

	p.emit(Event{Kind: EventStatusChange, Pairing: *current, State: Disconnected})
}

func (p *KeystoreProvider) emit(ev Event) {
	p.events <- ev
}

type keystoreSigner struct {
	keystore *keystore.KeyStore
	account  accounts.Account
}

func (s *keystoreSigner) Address() common.Address {
	return s.account.Address
}

func (s *keystoreSigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return s.keystore.SignTx(s.account, tx, chainID)
}
