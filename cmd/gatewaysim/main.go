// gatewaysim is a local stand-in for the external payment gateway so the
// order service can run end to end without a real provider. It accepts any
// positive amount and declines the well-known test card 1111222233334444.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
)

const (
	listenAddr   = ":9090"
	declinedCard = "1111222233334444"
)

type chargeRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

type processRequest struct {
	Method  string `json:"method"`
	Details struct {
		CardNumber string `json:"card_number"`
		Email      string `json:"email"`
	} `json:"details"`
	Amount float64 `json:"amount"`
}

type gatewayResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

var txCounter atomic.Int64

func nextTransactionID() string {
	return fmt.Sprintf("sim-%d", txCounter.Add(1))
}

func writeJSON(w http.ResponseWriter, status int, resp gatewayResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func handleCharge(w http.ResponseWriter, r *http.Request) {
	var req chargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 {
		log.Printf("declined charge: invalid amount %v", req.Amount)
		writeJSON(w, http.StatusPaymentRequired, gatewayResponse{Status: "failure", Reason: "invalid_amount"})
		return
	}

	tx := nextTransactionID()
	log.Printf("charged %v %s (user %s) -> %s", req.Amount, req.Currency, req.Metadata["user_id"], tx)
	writeJSON(w, http.StatusOK, gatewayResponse{Status: "success", TransactionID: tx})
}

func handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 {
		writeJSON(w, http.StatusPaymentRequired, gatewayResponse{Status: "failure", Reason: "invalid_amount"})
		return
	}
	if req.Details.CardNumber == declinedCard {
		log.Printf("declined %s payment of %v: test decline card", req.Method, req.Amount)
		writeJSON(w, http.StatusPaymentRequired, gatewayResponse{Status: "failure", Reason: "card_declined"})
		return
	}

	tx := nextTransactionID()
	log.Printf("processed %s payment of %v -> %s", req.Method, req.Amount, tx)
	writeJSON(w, http.StatusOK, gatewayResponse{Status: "success", TransactionID: tx})
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/charges", handleCharge)
	mux.HandleFunc("/v1/payments", handleProcess)

	log.Printf("payment gateway simulator listening on %s", listenAddr)
	if err := http.ListenAndServe(listenAddr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
