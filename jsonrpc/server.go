package jsonrpc

import (
	"context"
	"net/http"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mezonai/starnotary/block"
	"github.com/mezonai/starnotary/errors"
	"github.com/mezonai/starnotary/exception"
	"github.com/mezonai/starnotary/interfaces"
	"github.com/mezonai/starnotary/jsonx"
	"github.com/mezonai/starnotary/logx"
)

// --- Error type used by handlers ---

type rpcError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func toJRPC2Error(e *rpcError) error {
	if e == nil {
		return nil
	}
	var ledgerError errors.LedgerError
	err := jsonx.Unmarshal([]byte(e.Message), &ledgerError)
	if err == nil {
		return jrpc2.Errorf(jrpc2.Code(e.Code), "%s", ledgerError.Message).WithData(ledgerError)
	}
	return jrpc2.Errorf(jrpc2.Code(e.Code), "%s", e.Message)
}

// --- Params/Results ---

type blockInfo struct {
	Height            uint64 `json:"height"`
	Time              int64  `json:"time"`
	PreviousBlockHash string `json:"previousBlockHash,omitempty"`
	Hash              string `json:"hash"`
	Body              string `json:"body"`
}

type getHeightResponse struct {
	Height uint64 `json:"height"`
}

type getBlockByHashRequest struct {
	Hash string `json:"hash"`
}

type getBlockByHeightRequest struct {
	Height uint64 `json:"height"`
}

type validateChainResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type requestValidationParams struct {
	Address string `json:"address"`
}

type requestValidationResponse struct {
	Address string `json:"address"`
	Message string `json:"message"`
}

type submitStarParams struct {
	Address   string     `json:"address"`
	Message   string     `json:"message"`
	Signature string     `json:"signature"`
	Star      block.Star `json:"star"`
}

type getStarsByWalletParams struct {
	Address string `json:"address"`
}

type starRecord struct {
	Owner string     `json:"owner"`
	Star  block.Star `json:"star"`
}

// --- Server ---

type Server struct {
	addr       string
	ledger     interfaces.LedgerService
	corsConfig CORSConfig
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

func NewServer(addr string, ledger interfaces.LedgerService) *Server {
	return &Server{
		addr:   addr,
		ledger: ledger,
	}
}

// SetCORSConfig allows configuring CORS settings
func (s *Server) SetCORSConfig(config CORSConfig) {
	s.corsConfig = config
}

func (s *Server) Start() {
	methods := s.buildMethodMap()
	jh := jhttp.NewBridge(methods, &jhttp.BridgeOptions{Server: &jrpc2.ServerOptions{}})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.setCORSHeaders(w, r)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		jh.ServeHTTP(w, r)
	}))

	logx.Info("RPC", "JSON-RPC server listening on ", s.addr)
	exception.SafeGoWithPanic("jsonrpc server", func() {
		if err := http.ListenAndServe(s.addr, mux); err != nil {
			logx.Error("RPC", "Server stopped: ", err)
		}
	})
}

// Build jrpc2 method map
func (s *Server) buildMethodMap() handler.Map {
	return handler.Map{
		"chain.getheight": handler.New(func(ctx context.Context) (*getHeightResponse, error) {
			return &getHeightResponse{Height: s.ledger.Height()}, nil
		}),
		"chain.getblockbyhash": handler.New(func(ctx context.Context, p getBlockByHashRequest) (*blockInfo, error) {
			res, err := s.rpcGetBlockByHash(p)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return res, nil
		}),
		"chain.getblockbyheight": handler.New(func(ctx context.Context, p getBlockByHeightRequest) (*blockInfo, error) {
			res, err := s.rpcGetBlockByHeight(p)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return res, nil
		}),
		"chain.validate": handler.New(func(ctx context.Context) (*validateChainResponse, error) {
			errs := s.ledger.ValidateChain()
			if errs == nil {
				errs = []string{}
			}
			return &validateChainResponse{Valid: len(errs) == 0, Errors: errs}, nil
		}),
		"star.requestvalidation": handler.New(func(ctx context.Context, p requestValidationParams) (*requestValidationResponse, error) {
			res, err := s.rpcRequestValidation(p)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return res, nil
		}),
		"star.submitstar": handler.New(func(ctx context.Context, p submitStarParams) (*blockInfo, error) {
			res, err := s.rpcSubmitStar(p)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return res, nil
		}),
		"star.getstarsbywallet": handler.New(func(ctx context.Context, p getStarsByWalletParams) ([]starRecord, error) {
			return s.rpcGetStarsByWallet(p), nil
		}),
	}
}

func (s *Server) rpcGetBlockByHash(p getBlockByHashRequest) (*blockInfo, *rpcError) {
	hash, err := block.ParseHash(p.Hash)
	if err != nil {
		return nil, invalidParamsError(err.Error())
	}
	b := s.ledger.GetBlockByHash(hash)
	if b == nil {
		return nil, nil // absence is a value, not a failure
	}
	return toBlockInfo(b), nil
}

func (s *Server) rpcGetBlockByHeight(p getBlockByHeightRequest) (*blockInfo, *rpcError) {
	b := s.ledger.GetBlockByHeight(p.Height)
	if b == nil {
		return nil, nil
	}
	return toBlockInfo(b), nil
}

func (s *Server) rpcRequestValidation(p requestValidationParams) (*requestValidationResponse, *rpcError) {
	msg, err := s.ledger.RequestOwnershipChallenge(p.Address)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &requestValidationResponse{Address: p.Address, Message: msg}, nil
}

func (s *Server) rpcSubmitStar(p submitStarParams) (*blockInfo, *rpcError) {
	b, err := s.ledger.SubmitStar(p.Address, p.Message, p.Signature, p.Star)
	if err != nil {
		return nil, toRPCError(err)
	}
	return toBlockInfo(b), nil
}

func (s *Server) rpcGetStarsByWallet(p getStarsByWalletParams) []starRecord {
	claims := s.ledger.GetStarsByWallet(p.Address)
	if claims == nil {
		return nil // serialized as null, distinct from an empty list
	}
	records := make([]starRecord, len(claims))
	for i, claim := range claims {
		records[i] = starRecord{Owner: claim.Owner, Star: claim.Star}
	}
	return records
}

func (s *Server) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}
	for _, allowed := range s.corsConfig.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			break
		}
	}
	for _, method := range s.corsConfig.AllowedMethods {
		w.Header().Add("Access-Control-Allow-Methods", method)
	}
	for _, header := range s.corsConfig.AllowedHeaders {
		w.Header().Add("Access-Control-Allow-Headers", header)
	}
}
