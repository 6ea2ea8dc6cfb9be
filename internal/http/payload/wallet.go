package payload

import (
	"errors"
	"soko/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

type ConnectRequest struct {
	Account    string `json:"account"`
	Passphrase string `json:"passphrase"`
}

func (c *ConnectRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Account, validation.Required, validation.By(hexAddress)),
	)
}

func (c ConnectRequest) ToPairingRequest() wallet.PairingRequest {
	return wallet.PairingRequest{
		Account:    common.HexToAddress(c.Account),
		Passphrase: c.Passphrase,
	}
}

func hexAddress(value any) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) {
		return errors.New("must be a hex address")
	}
	return nil
}
