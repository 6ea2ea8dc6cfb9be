package session

import (
	"context"
	"errors"
	"fmt"
	"soko/internal/ethereum"
	"soko/internal/metrics"
	"soko/internal/wallet"
	tokenIssuer "soko/pkg/jwt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrInvalidTransition error = errors.New("invalid session transition")
	ErrPairingRejected   error = errors.New("pairing rejected")
	ErrUnauthorized      error = errors.New("pairing token does not match the session")
)

const (
	tokenExpiration = 24
	subscriberQueue = 32
)

// Manager owns the single wallet session. State changes come from two sides:
// user requests (Connect, Disconnect) and provider events consumed by Run.
type Manager struct {
	logger   *zap.SugaredLogger
	provider Provider
	tokens   TokenIssuer

	mu      sync.RWMutex
	state   wallet.ConnectionState
	account common.Address
	topic   string
	token   string
	signer  ethereum.Signer

	subMu      sync.Mutex
	subscriber chan Event
}

func NewManager(logger *zap.SugaredLogger, provider Provider, tokens TokenIssuer) *Manager {
	return &Manager{
		logger:   logger,
		provider: provider,
		tokens:   tokens,
		state:    wallet.Disconnected,
	}
}

// Restore resumes a pairing the provider found at startup. Without one the
// session stays Disconnected.
func (m *Manager) Restore() {
	pairing, found := m.provider.FoundPairing()
	if !found {
		return
	}

	if err := m.establish(pairing); err != nil {
		m.logger.Warnw("failed to restore session",
			"account", pairing.Account.Hex(),
			"error", err)
		return
	}

	m.logger.Infow("session restored", "account", pairing.Account.Hex())
}

// Run consumes provider events until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	events := m.provider.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			m.handle(ev)
		}
	}
}

func (m *Manager) handle(ev wallet.Event) {
	switch ev.Kind {
	case wallet.EventPairing:
		if err := m.establish(ev.Pairing); err != nil {
			m.logger.Errorw("failed to establish session",
				"account", ev.Pairing.Account.Hex(),
				"error", err)
			m.clear(fmt.Sprintf("connection failed: %s", err))
			return
		}
		m.logger.Infow("wallet connected",
			"account", ev.Pairing.Account.Hex(),
			"topic", ev.Pairing.Topic)

	case wallet.EventPairingRejected:
		notice := fmt.Errorf("%w: %w", ErrPairingRejected, ev.Err)
		m.logger.Infow("wallet pairing rejected", "error", ev.Err)
		m.clear(notice.Error())

	case wallet.EventDisconnected:
		m.logger.Infow("wallet disconnected", "topic", ev.Pairing.Topic)
		m.clear("")

	case wallet.EventStatusChange:
		m.logger.Infow("wallet status changed", "state", ev.State)
		if ev.State == wallet.Disconnected {
			m.clear("wallet ended the session")
			return
		}
		m.setState(ev.State)
	}
}

// establish replaces the session wholesale with the given pairing.
func (m *Manager) establish(pairing wallet.Pairing) error {
	signer, err := m.provider.Signer(pairing.Account)
	if err != nil {
		return fmt.Errorf("derive signer: %w", err)
	}

	token, err := m.issueToken(pairing)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.state = wallet.Connected
	m.account = pairing.Account
	m.topic = pairing.Topic
	m.token = token
	m.signer = signer
	m.mu.Unlock()

	metrics.ObserveSessionTransition(string(wallet.Connected))
	m.publish(Event{State: wallet.Connected, Account: pairing.Account.Hex(), Token: token})
	return nil
}

func (m *Manager) issueToken(pairing wallet.Pairing) (string, error) {
	token := m.tokens.Generate(tokenIssuer.TokenInfo{
		Subject:    pairing.Account.Hex(),
		Topic:      pairing.Topic,
		Expiration: tokenExpiration,
	})

	signed, err := m.tokens.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (m *Manager) clear(notice string) {
	m.mu.Lock()
	m.state = wallet.Disconnected
	m.account = common.Address{}
	m.topic = ""
	m.token = ""
	m.signer = nil
	m.mu.Unlock()

	metrics.ObserveSessionTransition(string(wallet.Disconnected))
	m.publish(Event{State: wallet.Disconnected, Notice: notice})
}

func (m *Manager) setState(state wallet.ConnectionState) {
	m.mu.Lock()
	m.state = state
	account := m.account
	m.mu.Unlock()

	metrics.ObserveSessionTransition(string(state))
	m.publish(Event{State: state, Account: accountHex(account)})
}

// Connect starts a pairing. It only moves the session to Connecting; the
// outcome arrives through Run.
func (m *Manager) Connect(ctx context.Context, req wallet.PairingRequest) error {
	m.mu.Lock()
	if m.state != wallet.Disconnected {
		state := m.state
		m.mu.Unlock()
		return fmt.Errorf("%w: connect while %s", ErrInvalidTransition, state)
	}
	m.state = wallet.Connecting
	m.mu.Unlock()

	metrics.ObserveSessionTransition(string(wallet.Connecting))
	m.publish(Event{State: wallet.Connecting})

	if err := m.provider.OpenPairing(ctx, req); err != nil {
		m.clear(fmt.Sprintf("connection failed: %s", err))
		return fmt.Errorf("open pairing: %w", err)
	}

	return nil
}

// Disconnect asks the wallet to end the pairing. The session clears when the
// disconnection event comes back.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.RLock()
	state, topic := m.state, m.topic
	m.mu.RUnlock()

	if state != wallet.Connected {
		return fmt.Errorf("%w: disconnect while %s", ErrInvalidTransition, state)
	}

	if err := m.provider.Disconnect(ctx, topic); err != nil {
		return fmt.Errorf("disconnect pairing: %w", err)
	}

	return nil
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		State:   m.state,
		Account: m.account,
		Topic:   m.topic,
		Token:   m.token,
	}
}

// Signer returns the connected account's signer. Callers keep what they got
// even if the session changes afterwards.
func (m *Manager) Signer() (ethereum.Signer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != wallet.Connected || m.signer == nil {
		return nil, false
	}
	return m.signer, true
}

// Authorize checks that token was issued for the current pairing.
func (m *Manager) Authorize(token string) error {
	claims, err := m.tokens.Validate(token)
	if err != nil {
		return fmt.Errorf("validate token: %w", err)
	}

	topic, _ := claims["topic"].(string)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != wallet.Connected || topic == "" || topic != m.topic {
		return ErrUnauthorized
	}
	return nil
}

// Subscribe registers the single subscriber, replacing any previous one. The
// first event on the channel is the current state.
func (m *Manager) Subscribe() <-chan Event {
	snap := m.Snapshot()
	ch := make(chan Event, subscriberQueue)
	ch <- Event{State: snap.State, Account: accountHex(snap.Account), Token: snap.Token}

	m.subMu.Lock()
	defer m.subMu.Unlock()

	if m.subscriber != nil {
		close(m.subscriber)
	}
	m.subscriber = ch
	return ch
}

func (m *Manager) Unsubscribe(ch <-chan Event) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	if m.subscriber != nil && (<-chan Event)(m.subscriber) == ch {
		close(m.subscriber)
		m.subscriber = nil
	}
}

// NotifyRefresh tells the subscriber a new listing snapshot was requested.
func (m *Manager) NotifyRefresh(refreshToken uint64) {
	snap := m.Snapshot()
	m.publish(Event{State: snap.State, Account: accountHex(snap.Account), RefreshToken: refreshToken})
}

func (m *Manager) publish(ev Event) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	if m.subscriber == nil {
		return
	}

	select {
	case m.subscriber <- ev:
	default:
		m.logger.Warnw("subscriber queue full, dropping event", "state", ev.State)
	}
}

func accountHex(account common.Address) string {
	if account == (common.Address{}) {
		return ""
	}
	return account.Hex()
}
