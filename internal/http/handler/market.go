package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"soko/internal/core"
	"soko/internal/ethereum"
	"soko/internal/http/payload"
	"soko/internal/session"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	GetListings     = "GET /soko/listings"
	RefreshListings = "POST /soko/listings/refresh"
	CreateListing   = "POST /soko/listings"
	BuyListing      = "POST /soko/listings/{id}/buy"
	GetAction       = "GET /soko/actions/{id}"
	ResumeAction    = "POST /soko/actions/{id}/resume"
	GetTransactions = "GET /soko/transactions"
)

type MarketHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	market           Marketplace
	board            Board
	session          WalletSession
}

func NewMarketHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, market Marketplace, board Board, session WalletSession) *MarketHandler {
	return &MarketHandler{
		logs:             logger,
		requestValidator: requestValidator,
		market:           market,
		board:            board,
		session:          session,
	}
}

type listingsResponse struct {
	RefreshToken uint64             `json:"refreshToken"`
	Connected    bool               `json:"connected"`
	Listings     []core.ListingView `json:"listings"`
}

func (h *MarketHandler) HandleGetListings(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	snapshot, err := h.board.Current(r.Context())
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not load listings",
			Error:   fmt.Errorf("fetch listings: %w", err).Error(),
		}, http.StatusBadGateway, requestId)
		h.logs.Errorw("failed to load listings",
			"error", err,
			"handler", GetListings,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: h.render(snapshot)}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleRefreshListings(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	snapshot, err := h.board.Refresh(r.Context())
	if err != nil {
		// the board keeps serving the previous snapshot
		respond(h.logs, w, Response{
			Message: "Could not refresh listings",
			Error:   fmt.Errorf("fetch listings: %w", err).Error(),
		}, http.StatusBadGateway, requestId)
		h.logs.Errorw("failed to refresh listings",
			"error", err,
			"handler", RefreshListings,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: h.render(snapshot)}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorize(w, r, CreateListing, requestId) {
		return
	}

	var p payload.ListEnergyRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &p); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not list energy",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateListing,
			"request_id", requestId)
		return
	}

	h.logs.Infow("listing requested",
		"amount", p.Amount,
		"price", p.Price,
		"handler", CreateListing,
		"request_id", requestId)

	action, err := h.market.ListEnergy(flowContext(r), h.session, p.ToOrder(), h.board.Signal)
	h.respondAction(w, action, err, "Could not list energy", CreateListing, requestId)
}

func (h *MarketHandler) HandleBuyListing(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorize(w, r, BuyListing, requestId) {
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not buy energy",
			Error:   fmt.Errorf("parse listing id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid listing id",
			"error", err,
			"handler", BuyListing,
			"request_id", requestId)
		return
	}

	listing, ok := h.board.Find(id)
	if !ok {
		respond(h.logs, w, Response{
			Message: "Could not buy energy",
			Error:   core.ErrListingNotFound.Error(),
		}, http.StatusNotFound, requestId)
		h.logs.Errorw("listing not on the board",
			"listing_id", id,
			"handler", BuyListing,
			"request_id", requestId)
		return
	}

	h.logs.Infow("purchase requested",
		"listing_id", id,
		"handler", BuyListing,
		"request_id", requestId)

	action, err := h.market.BuyEnergy(flowContext(r), h.session, listing, h.board.Signal)
	h.respondAction(w, action, err, "Could not buy energy", BuyListing, requestId)
}

func (h *MarketHandler) HandleGetAction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	action, err := h.market.Action(r.PathValue("id"))
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not find action",
			Error:   err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("failed to get action",
			"error", err,
			"handler", GetAction,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: action}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleResumeAction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorize(w, r, ResumeAction, requestId) {
		return
	}

	action, err := h.market.ResumeAction(flowContext(r), h.session, r.PathValue("id"), h.board, h.board.Signal)
	h.respondAction(w, action, err, "Could not resume action", ResumeAction, requestId)
}

func (h *MarketHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	kind := r.URL.Query().Get("kind")
	transactions, err := h.market.Transactions(r.Context(), kind)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("get transactions: %w", err).Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get transactions",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *MarketHandler) authorize(w http.ResponseWriter, r *http.Request, route, requestId string) bool {
	if err := h.session.Authorize(r.Header.Get(authHeader)); err != nil {
		respond(h.logs, w, Response{
			Message: "Wallet session required",
			Error:   err.Error(),
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("unauthorized request",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return false
	}
	return true
}

// respondAction reports a finished flow. Failed actions still carry the
// action so the client can resume it.
func (h *MarketHandler) respondAction(w http.ResponseWriter, action core.Action, err error, message, route, requestId string) {
	if err != nil {
		resp := Response{
			Message: message,
			Error:   err.Error(),
		}
		if action.ID != "" {
			resp.Data = action
		}

		respond(h.logs, w, resp, statusFor(err), requestId)
		h.logs.Errorw("action failed",
			"error", err,
			"action_id", action.ID,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("action completed",
		"action_id", action.ID,
		"transactions", action.Transactions,
		"handler", route,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Transaction confirmed", Data: action}, http.StatusOK, requestId)
}

func (h *MarketHandler) render(snapshot core.Snapshot) listingsResponse {
	sess := h.session.Snapshot()

	account := common.Address{}
	if sess.Connected() {
		account = sess.Account
	}

	views := make([]core.ListingView, 0, len(snapshot.Listings))
	for _, l := range snapshot.Listings {
		views = append(views, core.NewListingView(l, account))
	}

	return listingsResponse{
		RefreshToken: snapshot.Token,
		Connected:    sess.Connected(),
		Listings:     views,
	}
}

// flowContext detaches a flow from the request so a dropped client does not
// abandon a transaction that was already sent.
func flowContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotConnected), errors.Is(err, session.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrSelfTrade):
		return http.StatusForbidden
	case errors.Is(err, core.ErrListingNotFound), errors.Is(err, core.ErrActionNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrActionInFlight), errors.Is(err, core.ErrActionNotResumable),
		errors.Is(err, session.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, core.ErrListingInactive):
		return http.StatusGone
	case errors.Is(err, core.ErrApprovalFailed), errors.Is(err, ethereum.ErrTransactionReverted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
