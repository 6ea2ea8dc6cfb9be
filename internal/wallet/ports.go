package wallet

import (
	"context"
	"soko/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PairingStore . PairingStore
type PairingStore interface {
	SavePairing(ctx context.Context, topic, account string) error
	GetPairing(ctx context.Context) (repository.Pairing, error)
	DeletePairing(ctx context.Context, topic string) error
}
