package handler

import (
	"errors"
	"fmt"
	"net/http"
	"soko/internal/http/payload"
	"soko/internal/session"

	"go.uber.org/zap"
)

var (
	GetWallet        = "GET /soko/wallet"
	ConnectWallet    = "POST /soko/wallet/connect"
	DisconnectWallet = "POST /soko/wallet/disconnect"
	Events           = "GET /soko/events"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	session          WalletSession
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, session WalletSession) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		session:          session,
	}
}

type walletResponse struct {
	State   string `json:"state"`
	Account string `json:"account,omitempty"`
	Token   string `json:"token,omitempty"`
}

// HandleGetWallet reports the session and, when connected, hands out the
// pairing token without authentication. The token only tells a current
// client from a stale one; anything that can reach the listener can read it.
func (h *WalletHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	snap := h.session.Snapshot()
	resp := walletResponse{State: string(snap.State)}
	if snap.Connected() {
		resp.Account = snap.Account.Hex()
		resp.Token = snap.Token
	}

	respond(h.logs, w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var p payload.ConnectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &p); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not connect wallet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	if err := h.session.Connect(r.Context(), p.ToPairingRequest()); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, session.ErrInvalidTransition) {
			code = http.StatusConflict
		}

		respond(h.logs, w, Response{
			Message: "Could not connect wallet",
			Error:   err.Error(),
		}, code, requestId)
		h.logs.Errorw("failed to open pairing",
			"error", err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	h.logs.Infow("pairing requested",
		"account", p.Account,
		"handler", ConnectWallet,
		"request_id", requestId)

	// the outcome arrives on the event stream
	respond(h.logs, w, Response{
		Message: "Approve the connection in your wallet",
		Data:    walletResponse{State: string(h.session.Snapshot().State)},
	}, http.StatusAccepted, requestId)
}

func (h *WalletHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.session.Authorize(r.Header.Get(authHeader)); err != nil {
		respond(h.logs, w, Response{
			Message: "Wallet session required",
			Error:   err.Error(),
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("unauthorized request",
			"error", err,
			"handler", DisconnectWallet,
			"request_id", requestId)
		return
	}

	if err := h.session.Disconnect(r.Context()); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, session.ErrInvalidTransition) {
			code = http.StatusConflict
		}

		respond(h.logs, w, Response{
			Message: "Could not disconnect wallet",
			Error:   err.Error(),
		}, code, requestId)
		h.logs.Errorw("failed to disconnect",
			"error", err,
			"handler", DisconnectWallet,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet disconnected",
		"handler", DisconnectWallet,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Wallet disconnected"}, http.StatusOK, requestId)
}
