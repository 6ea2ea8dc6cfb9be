package wallet

import "github.com/ethereum/go-ethereum/common"

type ConnectionState string

const (
	Disconnected ConnectionState = "disconnected"
	Connecting   ConnectionState = "connecting"
	Connected    ConnectionState = "connected"
)

// Pairing is an approved link between this client and one wallet account.
type Pairing struct {
	Topic   string
	Account common.Address
}

// PairingRequest asks the wallet to approve Account. An empty Passphrase falls
// back to the one the provider was configured with.
type PairingRequest struct {
	Account    common.Address
	Passphrase string
}

type EventKind string

const (
	EventPairing         EventKind = "pairing"
	EventPairingRejected EventKind = "pairing_rejected"
	EventDisconnected    EventKind = "disconnected"
	EventStatusChange    EventKind = "status_change"
)

type Event struct {
	Kind    EventKind
	Pairing Pairing
	State   ConnectionState
	Err     error
}
