package session

import (
	"context"
	"soko/internal/ethereum"
	"soko/internal/wallet"
	tokenIssuer "soko/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	Events() <-chan wallet.Event
	FoundPairing() (wallet.Pairing, bool)
	OpenPairing(ctx context.Context, req wallet.PairingRequest) error
	Disconnect(ctx context.Context, topic string) error
	Signer(account common.Address) (ethereum.Signer, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
