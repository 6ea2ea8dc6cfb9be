package core

import (
	"context"
	"fmt"
	"math/big"
	"soko/internal/ethereum"
	"soko/internal/metrics"

	"github.com/ethereum/go-ethereum/common"
)

// EnsureAllowance makes sure spender may move at least required of token on
// behalf of signer. It approves exactly required when the current allowance
// falls short and waits for that approval to be included. There is no retry
// and no re-check after a failed approval.
func (m *Marketplace) EnsureAllowance(
	ctx context.Context,
	signer ethereum.Signer,
	token, spender common.Address,
	required *big.Int,
) AllowanceResult {
	owner := signer.Address()
	label := m.tokenLabel(token)

	current, err := m.chain.Allowance(ctx, token, owner, spender)
	if err != nil {
		metrics.ObserveAllowance(label, string(AllowanceFailed))
		return AllowanceResult{
			Outcome: AllowanceFailed,
			Reason:  fmt.Errorf("read allowance: %w", err),
		}
	}

	if current.Cmp(required) >= 0 {
		metrics.ObserveAllowance(label, string(AllowanceSufficient))
		return AllowanceResult{Outcome: AllowanceSufficient}
	}

	m.logs.Infow("requesting approval",
		"token", label,
		"owner", owner.Hex(),
		"current", current.String(),
		"required", required.String())

	tx, err := m.chain.Approve(ctx, signer, token, spender, new(big.Int).Set(required))
	if err != nil {
		metrics.ObserveAllowance(label, string(AllowanceFailed))
		return AllowanceResult{
			Outcome: AllowanceFailed,
			Reason:  fmt.Errorf("approve: %w", err),
		}
	}

	metrics.ObserveAllowance(label, string(AllowanceApproved))
	return AllowanceResult{
		Outcome:     AllowanceApproved,
		Transaction: m.record(ctx, "approve", tx),
	}
}

func (m *Marketplace) tokenLabel(token common.Address) string {
	switch token {
	case m.contracts.EnergyToken:
		return "energy"
	case m.contracts.PaymentToken:
		return "payment"
	default:
		return token.Hex()
	}
}
