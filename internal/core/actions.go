package core

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"soko/internal/ethereum"
	"soko/internal/metrics"
	"soko/internal/units"
	"time"

	"github.com/google/uuid"
)

// ListEnergy publishes a new listing: approve the market to move the energy
// amount, then call listEnergy. onSuccess runs once the listing is included.
func (m *Marketplace) ListEnergy(ctx context.Context, sess Session, order ListOrder, onSuccess func()) (Action, error) {
	signer, ok := sess.Signer()
	if !ok {
		return Action{}, ErrNotConnected
	}

	amount, err := units.EnergyToSmallest(order.Amount)
	if err != nil {
		return Action{}, fmt.Errorf("convert amount: %w", err)
	}

	price, err := units.CentsToSmallest(order.Price)
	if err != nil {
		return Action{}, fmt.Errorf("convert price: %w", err)
	}

	action, err := m.begin(&Action{
		Kind:     ActionList,
		Owner:    signer.Address(),
		Token:    m.contracts.EnergyToken,
		Required: amount,
		Amount:   amount,
		Price:    price,
	})
	if err != nil {
		return Action{}, err
	}

	return m.run(ctx, signer, action, onSuccess)
}

// BuyEnergy purchases listing: approve the market to move the listing price in
// payment tokens, then call buyEnergy. The seller's own account is refused
// before anything is sent.
func (m *Marketplace) BuyEnergy(ctx context.Context, sess Session, listing Listing, onSuccess func()) (Action, error) {
	signer, ok := sess.Signer()
	if !ok {
		return Action{}, ErrNotConnected
	}

	if err := checkPurchase(signer, listing); err != nil {
		return Action{}, err
	}

	action, err := m.begin(&Action{
		Kind:      ActionBuy,
		Owner:     signer.Address(),
		Token:     m.contracts.PaymentToken,
		Required:  new(big.Int).Set(listing.Price),
		ListingID: listing.ID,
		Seller:    listing.Seller,
		Amount:    listing.Amount,
		Price:     listing.Price,
	})
	if err != nil {
		return Action{}, err
	}

	return m.run(ctx, signer, action, onSuccess)
}

// ResumeAction re-runs a failed action. If its approval was already included
// for the same account only the contract call is retried. A purchase is
// checked again against the listing as listings currently shows it.
func (m *Marketplace) ResumeAction(ctx context.Context, sess Session, id string, listings ListingFinder, onSuccess func()) (Action, error) {
	signer, ok := sess.Signer()
	if !ok {
		return Action{}, ErrNotConnected
	}

	m.mu.Lock()
	action, found := m.actions[id]
	if !found {
		m.mu.Unlock()
		return Action{}, ErrActionNotFound
	}

	if action.Stage != StageFailed {
		m.mu.Unlock()
		return Action{}, fmt.Errorf("%w: action is %s", ErrActionNotResumable, action.Stage)
	}

	if action.Kind == ActionBuy {
		listing, onBoard := listings.Find(action.ListingID)
		if !onBoard {
			m.mu.Unlock()
			return Action{}, fmt.Errorf("%w: %d", ErrListingNotFound, action.ListingID)
		}
		if err := checkPurchase(signer, listing); err != nil {
			m.mu.Unlock()
			return Action{}, err
		}
	}

	key := action.target()
	if _, busy := m.inFlight[key]; busy {
		m.mu.Unlock()
		return Action{}, ErrActionInFlight
	}
	m.inFlight[key] = action.ID

	if action.Owner != signer.Address() {
		action.Owner = signer.Address()
		action.Approved = false
	}
	action.Stage = StagePending
	action.Error = ""
	action.UpdatedAt = time.Now().UTC()
	m.mu.Unlock()

	m.logs.Infow("resuming action",
		"action_id", action.ID,
		"kind", action.Kind,
		"approved", action.Approved)

	return m.run(ctx, signer, action, onSuccess)
}

// Action returns a copy of the action with the given id.
func (m *Marketplace) Action(id string) (Action, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	action, found := m.actions[id]
	if !found {
		return Action{}, ErrActionNotFound
	}
	return action.copy(), nil
}

func checkPurchase(signer ethereum.Signer, listing Listing) error {
	if listing.Seller == signer.Address() {
		return ErrSelfTrade
	}
	if !listing.Active {
		return fmt.Errorf("%w: %d", ErrListingInactive, listing.ID)
	}
	return nil
}

// begin registers a new pending action unless its target already has one.
func (m *Marketplace) begin(action *Action) (*Action, error) {
	now := time.Now().UTC()
	action.ID = uuid.NewString()
	action.Stage = StagePending
	action.Transactions = []string{}
	action.CreatedAt = now
	action.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()

	key := action.target()
	if _, busy := m.inFlight[key]; busy {
		return nil, ErrActionInFlight
	}

	m.inFlight[key] = action.ID
	m.actions[action.ID] = action
	return action, nil
}

func (m *Marketplace) run(ctx context.Context, signer ethereum.Signer, action *Action, onSuccess func()) (Action, error) {
	start := time.Now()
	defer m.release(action)

	m.mu.Lock()
	approved := action.Approved
	m.mu.Unlock()

	if !approved {
		res := m.EnsureAllowance(ctx, signer, action.Token, m.contracts.Market, action.Required)
		if res.Outcome == AllowanceFailed {
			return m.fail(action, start, fmt.Errorf("%w: %w", ErrApprovalFailed, res.Reason))
		}

		m.advance(action, StageApproved, res.Transaction)
	}

	tx, err := m.write(ctx, signer, action)
	if err != nil {
		return m.fail(action, start, fmt.Errorf("submit %s: %w", action.Kind, err))
	}

	result := m.advance(action, StageCompleted, m.record(ctx, writeKind(action.Kind), tx))
	metrics.ObserveAction(string(action.Kind), string(StageCompleted), time.Since(start).Seconds())

	m.logs.Infow("action completed",
		"action_id", action.ID,
		"kind", action.Kind,
		"listing_id", action.ListingID,
		"tx_hash", tx.TransactionHash)

	if onSuccess != nil {
		onSuccess()
	}

	return result, nil
}

func (m *Marketplace) write(ctx context.Context, signer ethereum.Signer, action *Action) (*ethereum.Transaction, error) {
	switch action.Kind {
	case ActionList:
		return m.chain.ListEnergy(ctx, signer, action.Amount, action.Price)
	case ActionBuy:
		return m.chain.BuyEnergy(ctx, signer, action.ListingID)
	default:
		return nil, fmt.Errorf("unknown action kind %q", action.Kind)
	}
}

func (m *Marketplace) advance(action *Action, stage ActionStage, tx *TransactionRecord) Action {
	m.mu.Lock()
	defer m.mu.Unlock()

	action.Stage = stage
	if stage == StageApproved {
		action.Approved = true
	}
	if tx != nil {
		action.Transactions = append(action.Transactions, tx.TransactionHash)
	}
	action.UpdatedAt = time.Now().UTC()
	return action.copy()
}

func (m *Marketplace) fail(action *Action, start time.Time, err error) (Action, error) {
	m.mu.Lock()
	action.Stage = StageFailed
	action.Error = err.Error()
	action.UpdatedAt = time.Now().UTC()
	result := action.copy()
	m.mu.Unlock()

	metrics.ObserveAction(string(action.Kind), string(StageFailed), time.Since(start).Seconds())
	m.logs.Errorw("action failed",
		"action_id", action.ID,
		"kind", action.Kind,
		"listing_id", action.ListingID,
		"approved", result.Approved,
		"error", err)

	return result, err
}

func (m *Marketplace) release(action *Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := action.target()
	if m.inFlight[key] == action.ID {
		delete(m.inFlight, key)
	}
}

func (a *Action) target() string {
	if a.Kind == ActionBuy {
		return fmt.Sprintf("buy:%d", a.ListingID)
	}
	return string(a.Kind)
}

func (a *Action) copy() Action {
	c := *a
	c.Transactions = slices.Clone(a.Transactions)
	return c
}

func writeKind(kind ActionKind) string {
	if kind == ActionBuy {
		return "buyEnergy"
	}
	return "listEnergy"
}
