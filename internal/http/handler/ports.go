package handler

import (
	"context"
	"net/http"
	"soko/internal/core"
	"soko/internal/ethereum"
	"soko/internal/session"
	"soko/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Marketplace . Marketplace
type Marketplace interface {
	ListEnergy(ctx context.Context, sess core.Session, order core.ListOrder, onSuccess func()) (core.Action, error)
	BuyEnergy(ctx context.Context, sess core.Session, listing core.Listing, onSuccess func()) (core.Action, error)
	ResumeAction(ctx context.Context, sess core.Session, id string, listings core.ListingFinder, onSuccess func()) (core.Action, error)
	Action(id string) (core.Action, error)
	Transactions(ctx context.Context, kind string) ([]core.TransactionRecord, error)
}

//counterfeiter:generate -o fake -fake-name Board . Board
type Board interface {
	Current(ctx context.Context) (core.Snapshot, error)
	Refresh(ctx context.Context) (core.Snapshot, error)
	Find(id uint64) (core.Listing, bool)
	Signal()
}

// WalletSession is the session as the HTTP layer sees it. It doubles as the
// core.Session handed to the action flows.
//
//counterfeiter:generate -o fake -fake-name WalletSession . WalletSession
type WalletSession interface {
	Signer() (ethereum.Signer, bool)
	Snapshot() session.Snapshot
	Connect(ctx context.Context, req wallet.PairingRequest) error
	Disconnect(ctx context.Context) error
	Authorize(token string) error
	Subscribe() <-chan session.Event
	Unsubscribe(ch <-chan session.Event)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
