package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lumenlabs-xyz/solana-txlens/txlens"
)

type classifyReq struct {
	Signature string `json:"signature"`
	Wallet    string `json:"wallet,omitempty"`
}

type classifyResp struct {
	Transaction    *txlens.RawTransaction            `json:"transaction"`
	Legs           []txlens.TxLeg                    `json:"legs"`
	Validation     txlens.ValidationReport           `json:"validation"`
	Classification *txlens.TransactionClassification `json:"classification"`
}

type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSONMaybePretty(w http.ResponseWriter, status int, v interface{}, pretty bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(v)
}

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	rpcURL := os.Getenv("SOLANA_RPC_URL")
	if rpcURL == "" {
		rpcURL = rpc.MainNetBeta_RPC
	}
	const rpcTimeout = 10 * time.Second

	// Shared Solana RPC client (safe for concurrent use)
	client := rpc.New(rpcURL)

	// Registry built once at startup; Classify is then safe for any number
	// of concurrent requests.
	engine := txlens.NewEngine()
	engine.Log = log

	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Classify endpoint: POST (JSON) or GET (?signature=...&wallet=...&pretty=1)
	http.HandleFunc("/classify", func(w http.ResponseWriter, r *http.Request) {
		pretty := r.URL.Query().Get("pretty") == "1" || r.URL.Query().Get("pretty") == "true"

		var sigStr, wallet string
		switch r.Method {
		case http.MethodPost:
			var req classifyReq
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "invalid JSON body"}, pretty)
				return
			}
			sigStr, wallet = req.Signature, req.Wallet
		case http.MethodGet:
			sigStr = r.URL.Query().Get("signature")
			wallet = r.URL.Query().Get("wallet")
		default:
			writeJSONMaybePretty(w, http.StatusMethodNotAllowed, apiError{Error: "method_not_allowed"}, pretty)
			return
		}

		if sigStr == "" {
			writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "signature is required"}, pretty)
			return
		}

		sig, err := solana.SignatureFromBase58(sigStr)
		if err != nil {
			writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "invalid signature (base58)"}, pretty)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
		defer cancel()

		result, err := client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
			Commitment:                     rpc.CommitmentConfirmed,
			MaxSupportedTransactionVersion: pointer.ToUint64(0),
		})
		if err != nil {
			low := strings.ToLower(err.Error())
			if errors.Is(err, context.DeadlineExceeded) || strings.Contains(low, "deadline") || strings.Contains(low, "timeout") {
				// Graceful timeout: return 200 with nulls
				writeJSONMaybePretty(w, http.StatusOK, classifyResp{}, pretty)
				return
			}
			writeJSONMaybePretty(w, http.StatusBadGateway, apiError{Error: "rpc_error", Details: err.Error()}, pretty)
			return
		}
		if result == nil {
			writeJSONMaybePretty(w, http.StatusNotFound, apiError{Error: "not_found", Details: "transaction not found"}, pretty)
			return
		}

		raw, err := txlens.FromRPCTransaction(result)
		if err != nil {
			writeJSONMaybePretty(w, http.StatusUnprocessableEntity, apiError{Error: "decode_error", Details: err.Error()}, pretty)
			return
		}

		legs := txlens.BuildLegs(raw, wallet)
		report := txlens.ValidateLegs(legs)
		if !report.IsBalanced {
			log.WithField("signature", sigStr).Warn("leg set does not balance")
		}

		writeJSONMaybePretty(w, http.StatusOK, classifyResp{
			Transaction:    raw,
			Legs:           legs,
			Validation:     report,
			Classification: engine.Classify(legs, raw, wallet),
		}, pretty)
	})

	addr := ":8080"
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		addr = v
	}
	srv := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Infof("listening on http://%s (rpc=%s)", addr, rpcURL)
	log.Fatal(srv.ListenAndServe())
}
