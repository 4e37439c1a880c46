// Package handlers implements the three YnabAPI operations. Every handler
// follows the same cycle: decode the request, build a YNAB client scoped
// to the request's token, issue one upstream call, translate the result.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/d9nchik/ynab-gateway/internal/api/middleware"
	"github.com/d9nchik/ynab-gateway/internal/contract"
	"github.com/d9nchik/ynab-gateway/internal/logger"
	"github.com/d9nchik/ynab-gateway/internal/mapper"
	"github.com/d9nchik/ynab-gateway/internal/ynab"
	"github.com/rs/zerolog"
)

// ClientFactory builds a YNAB client for one request's token. A fresh
// client per call keeps credentials from leaking across requests.
type ClientFactory func(token string) ynab.Service

// YnabHandler handles the YnabAPI operations.
type YnabHandler struct {
	newClient ClientFactory
	log       zerolog.Logger
}

// NewYnabHandler creates a new YnabAPI handler.
func NewYnabHandler(newClient ClientFactory, log zerolog.Logger) *YnabHandler {
	return &YnabHandler{
		newClient: newClient,
		log:       log,
	}
}

// GetBudgets handles POST /rpc/YnabAPI/GetBudgets
func (h *YnabHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.requestLog(ctx)

	var req contract.GetBudgetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Str("operation", "GetBudgets").Msg("Failed to decode request")
		h.internalError(w)
		return
	}

	client := h.newClient(accessToken(req.Authentication))

	budgets, err := client.GetBudgets(ctx, true)
	if err != nil {
		log.Error().Err(err).Str("operation", "GetBudgets").Msg("YNAB call failed")
		h.internalError(w)
		return
	}

	resp := contract.GetBudgetsResponse{
		Budgets: make([]contract.Budget, 0, len(budgets)),
	}
	for _, b := range budgets {
		budget, err := mapper.BudgetFromYNAB(b)
		if err != nil {
			log.Error().Err(err).Str("operation", "GetBudgets").Msg("Failed to map budget")
			h.internalError(w)
			return
		}
		resp.Budgets = append(resp.Budgets, budget)
	}

	middleware.WriteJSON(w, http.StatusOK, resp)
}

// GetTransactionsByAccount handles POST /rpc/YnabAPI/GetTransactionsByAccount
func (h *YnabHandler) GetTransactionsByAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.requestLog(ctx)

	var req contract.GetTransactionsByAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Str("operation", "GetTransactionsByAccount").Msg("Failed to decode request")
		h.internalError(w)
		return
	}

	client := h.newClient(accessToken(req.Authentication))

	snapshot, err := client.GetTransactionsByAccount(ctx, req.BudgetID, req.AccountID, req.ServerKnowledge)
	if err != nil {
		log.Error().
			Err(err).
			Str("operation", "GetTransactionsByAccount").
			Str("budget_id", req.BudgetID).
			Str("account_id", req.AccountID).
			Msg("YNAB call failed")
		h.internalError(w)
		return
	}

	resp := contract.GetTransactionsByAccountResponse{
		ServerKnowledge: snapshot.ServerKnowledge,
		Transactions:    make([]contract.Transaction, 0, len(snapshot.Transactions)),
	}
	for _, t := range snapshot.Transactions {
		transaction, err := mapper.TransactionFromYNAB(t)
		if err != nil {
			log.Error().Err(err).Str("operation", "GetTransactionsByAccount").Msg("Failed to map transaction")
			h.internalError(w)
			return
		}
		resp.Transactions = append(resp.Transactions, transaction)
	}

	middleware.WriteJSON(w, http.StatusOK, resp)
}

// UpdateTransactions handles POST /rpc/YnabAPI/UpdateTransactions
func (h *YnabHandler) UpdateTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.requestLog(ctx)

	var req contract.UpdateTransactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Str("operation", "UpdateTransactions").Msg("Failed to decode request")
		h.internalError(w)
		return
	}

	var patches []contract.SaveTransaction
	if req.PatchTransactionWrapper != nil {
		patches = req.PatchTransactionWrapper.Transactions
	}

	transactions := make([]ynab.SaveTransactionWithID, 0, len(patches))
	for _, p := range patches {
		transaction, err := mapper.SaveTransactionToYNAB(p)
		if err != nil {
			log.Error().Err(err).Str("operation", "UpdateTransactions").Msg("Failed to map transaction patch")
			h.internalError(w)
			return
		}
		transactions = append(transactions, transaction)
	}

	client := h.newClient(accessToken(req.Authentication))

	result, err := client.UpdateTransactions(ctx, req.BudgetID, transactions)
	if err != nil {
		log.Error().
			Err(err).
			Str("operation", "UpdateTransactions").
			Str("budget_id", req.BudgetID).
			Int("batch_size", len(transactions)).
			Msg("YNAB call failed")
		h.internalError(w)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, contract.UpdateTransactionsResponse{
		ServerKnowledge: result.ServerKnowledge,
	})
}

// requestLog returns the request-scoped logger placed into the context by
// the RequestID middleware, falling back to the handler's base logger.
func (h *YnabHandler) requestLog(ctx context.Context) zerolog.Logger {
	if log, ok := ctx.Value(logger.LoggerKey).(zerolog.Logger); ok {
		return log
	}
	return h.log
}

// internalError is the single failure response. The cause stays in the
// logs; callers only ever see a generic internal error.
func (h *YnabHandler) internalError(w http.ResponseWriter) {
	middleware.WriteError(w, http.StatusInternalServerError, "internal error")
}

func accessToken(auth *contract.Authentication) string {
	if auth == nil {
		return ""
	}
	return auth.AccessToken
}
