package session

import (
	"soko/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
)

// Snapshot is a read-only copy of the session.
type Snapshot struct {
	State   wallet.ConnectionState
	Account common.Address
	Topic   string
	Token   string
}

func (s Snapshot) Connected() bool {
	return s.State == wallet.Connected
}

// Event is what the session pushes to its subscriber: state changes, user
// notices and listing refresh tokens.
type Event struct {
	State        wallet.ConnectionState `json:"state"`
	Account      string                 `json:"account,omitempty"`
	Token        string                 `json:"token,omitempty"`
	Notice       string                 `json:"notice,omitempty"`
	RefreshToken uint64                 `json:"refreshToken,omitempty"`
}
