// Package api serves the ledger operations of a node as JSON over HTTP.
//
// The node keeps no keys: the sender of a request is trusted as given, so the
// server is meant to listen on a loopback address of a development network.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/framedcoin/framedcoin/app"
	registrytypes "github.com/framedcoin/framedcoin/x/certregistry/types"
	framedcointypes "github.com/framedcoin/framedcoin/x/framedcoin/types"
)

const maxBodyBytes = 1 << 16

type Server struct {
	node   *app.App
	mux    *http.ServeMux
	logger log.Logger
}

func New(node *app.App, logger log.Logger) *Server {
	s := &Server{node: node, mux: http.NewServeMux(), logger: logger.With("module", "api")}

	s.mux.HandleFunc("GET /healthz", s.healthz)
	s.mux.HandleFunc("GET /status", s.wrap(s.handleStatus))
	s.mux.HandleFunc("GET /certificates", s.wrap(s.handleCertificates))
	s.mux.HandleFunc("GET /certificates/{id}", s.wrap(s.handleCertificate))
	s.mux.HandleFunc("GET /balances/{address}", s.wrap(s.handleBalance))
	s.mux.HandleFunc("GET /fees", s.wrap(s.handleFees))

	s.mux.HandleFunc("POST /mint", s.wrap(s.handleMint))
	s.mux.HandleFunc("POST /cash-out", s.wrap(s.handleCashOut))
	s.mux.HandleFunc("POST /burn", s.wrap(s.handleBurn))
	s.mux.HandleFunc("POST /withdraw-fees", s.wrap(s.handleWithdrawFees))
	s.mux.HandleFunc("POST /transfer", s.wrap(s.handleTransfer))

	// owner only
	s.mux.HandleFunc("POST /pause", s.wrap(s.handlePause(true)))
	s.mux.HandleFunc("POST /unpause", s.wrap(s.handlePause(false)))
	s.mux.HandleFunc("POST /minting-fee", s.wrap(s.handleSetMintingFee))
	s.mux.HandleFunc("POST /minimum-value", s.wrap(s.handleSetMinimumValue))
	return s
}

func (s *Server) Mux() *http.ServeMux { return s.mux }

// handlerFunc returns the response body or an error mapped to a status code.
type handlerFunc func(r *http.Request) (any, error)

func (s *Server) wrap(next handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		out, err := next(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("X-Block-Height", strconv.FormatInt(s.node.LastHeight(), 10))
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	Codespace string `json:"codespace,omitempty"`
	Code      uint32 `json:"code,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}

	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Codespace: codespace, Code: code})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, framedcointypes.ErrNotFound),
		errors.Is(err, registrytypes.ErrCertificateNotFound):
		return http.StatusNotFound
	case errors.Is(err, framedcointypes.ErrUnauthorized),
		errors.Is(err, framedcointypes.ErrUnauthorizedCertificateAccess),
		errors.Is(err, registrytypes.ErrNotHolder):
		return http.StatusForbidden
	case errors.Is(err, framedcointypes.ErrPaused),
		errors.Is(err, framedcointypes.ErrAlreadyCashedOut),
		errors.Is(err, framedcointypes.ErrStillHoldsValue):
		return http.StatusConflict
	case errors.Is(err, framedcointypes.ErrOracleUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, framedcointypes.ErrInsufficientPayment),
		errors.Is(err, framedcointypes.ErrTransferFailed),
		errors.Is(err, framedcointypes.ErrInvalidParams),
		errors.Is(err, framedcointypes.ErrNotSupported),
		errors.Is(err, sdkerrors.ErrInvalidAddress),
		errors.Is(err, sdkerrors.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(format string, args ...any) error {
	return sdkerrors.ErrInvalidRequest.Wrapf(format, args...)
}

func parseAddress(addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("%q: %v", addr, err)
	}
	return nil
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleStatus(*http.Request) (any, error) {
	return s.node.Status()
}

func (s *Server) handleCertificates(r *http.Request) (any, error) {
	holder := r.URL.Query().Get("holder")
	var (
		certs []framedcointypes.IdentifiedCertificate
		err   error
	)
	if holder != "" {
		if err := parseAddress(holder); err != nil {
			return nil, err
		}
		certs, err = s.node.CertificatesByHolder(holder)
	} else {
		certs, err = s.node.Certificates()
	}
	if err != nil {
		return nil, err
	}
	if certs == nil {
		certs = []framedcointypes.IdentifiedCertificate{}
	}
	return certs, nil
}

func (s *Server) handleCertificate(r *http.Request) (any, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return nil, badRequest("invalid certificate id %q", r.PathValue("id"))
	}
	cert, err := s.node.Certificate(id)
	if err != nil {
		return nil, err
	}
	return framedcointypes.IdentifiedCertificate{ID: id, Certificate: cert}, nil
}

func (s *Server) handleBalance(r *http.Request) (any, error) {
	if err := parseAddress(r.PathValue("address")); err != nil {
		return nil, err
	}
	return s.node.Balance(r.PathValue("address"))
}

func (s *Server) handleFees(r *http.Request) (any, error) {
	fees, err := s.node.UnwithdrawnFees(r.URL.Query().Get("caller"))
	if err != nil {
		return nil, err
	}
	return map[string]math.Int{"unwithdrawn_fees": fees}, nil
}

type mintRequest struct {
	Sender  string   `json:"sender"`
	Payment math.Int `json:"payment"`
}

type certificateRequest struct {
	Sender string `json:"sender"`
	ID     uint64 `json:"id"`
}

type ownerRequest struct {
	Sender string `json:"sender"`
}

type transferRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	ID        uint64 `json:"id"`
}

type mintingFeeRequest struct {
	Sender     string   `json:"sender"`
	MintingFee math.Int `json:"minting_fee"`
}

type minimumValueRequest struct {
	Sender             string   `json:"sender"`
	MinimumValueToMint math.Int `json:"minimum_value_to_mint"`
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	return nil
}

func (s *Server) handleMint(r *http.Request) (any, error) {
	var req mintRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	if req.Payment.IsNil() {
		return nil, badRequest("payment must be set")
	}
	return s.node.Mint(req.Sender, req.Payment)
}

func (s *Server) handleCashOut(r *http.Request) (any, error) {
	var req certificateRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.node.CashOut(req.Sender, req.ID)
}

func (s *Server) handleBurn(r *http.Request) (any, error) {
	var req certificateRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	if _, err := s.node.Burn(req.Sender, req.ID); err != nil {
		return nil, err
	}
	return map[string]uint64{"burnt": req.ID}, nil
}

func (s *Server) handleWithdrawFees(r *http.Request) (any, error) {
	var req ownerRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.node.WithdrawFees(req.Sender)
}

func (s *Server) handleTransfer(r *http.Request) (any, error) {
	var req transferRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	for _, addr := range []string{req.Sender, req.Recipient} {
		if err := parseAddress(addr); err != nil {
			return nil, err
		}
	}
	if err := s.node.TransferCertificate(req.Sender, req.Recipient, req.ID); err != nil {
		return nil, err
	}
	return map[string]any{"id": req.ID, "holder": req.Recipient}, nil
}

func (s *Server) handlePause(paused bool) handlerFunc {
	return func(r *http.Request) (any, error) {
		var req ownerRequest
		if err := decode(r, &req); err != nil {
			return nil, err
		}
		if err := s.node.SetPaused(req.Sender, paused); err != nil {
			return nil, err
		}
		return map[string]bool{"paused": paused}, nil
	}
}

func (s *Server) handleSetMintingFee(r *http.Request) (any, error) {
	var req mintingFeeRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	if req.MintingFee.IsNil() {
		return nil, badRequest("minting_fee must be set")
	}
	if err := s.node.SetMintingFee(req.Sender, req.MintingFee); err != nil {
		return nil, err
	}
	return s.node.Params()
}

func (s *Server) handleSetMinimumValue(r *http.Request) (any, error) {
	var req minimumValueRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	if req.MinimumValueToMint.IsNil() {
		return nil, badRequest("minimum_value_to_mint must be set")
	}
	if err := s.node.SetMinimumValueToMint(req.Sender, req.MinimumValueToMint); err != nil {
		return nil, err
	}
	return s.node.Params()
}
