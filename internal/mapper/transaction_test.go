package mapper

import (
	"testing"

	"github.com/d9nchik/ynab-gateway/internal/contract"
	"github.com/d9nchik/ynab-gateway/internal/ynab"
)

func TestTransactionFromYNAB(t *testing.T) {
	memo := "groceries"
	payeeID := "p-1"
	payeeName := "Market"
	flag := ynab.FlagColorGreen

	transaction, err := TransactionFromYNAB(ynab.TransactionDetail{
		ID:          "t-1",
		Date:        "2024-03-04",
		Amount:      -12340,
		Memo:        &memo,
		Cleared:     ynab.ClearedStatusCleared,
		Approved:    true,
		FlagColor:   &flag,
		AccountID:   "a-1",
		AccountName: "Checking",
		PayeeID:     &payeeID,
		PayeeName:   &payeeName,
		Deleted:     true,
		Subtransactions: []ynab.SubTransaction{
			{ID: "s-1", TransactionID: "t-1", Amount: -10000},
			{ID: "s-2", TransactionID: "t-1", Amount: -2340, Deleted: true},
		},
	})
	if err != nil {
		t.Fatalf("TransactionFromYNAB error: %v", err)
	}

	if transaction.Amount != -12340 {
		t.Errorf("Expected amount -12340 unchanged, got %d", transaction.Amount)
	}
	if transaction.Cleared != contract.ClearedStatusCleared {
		t.Errorf("Expected CLEARED, got %q", transaction.Cleared)
	}
	if transaction.FlagColor != contract.FlagColorGreen {
		t.Errorf("Expected GREEN, got %q", transaction.FlagColor)
	}
	if transaction.Memo != memo || transaction.PayeeID != payeeID || transaction.PayeeName != payeeName {
		t.Errorf("Optional fields mapped wrong: %+v", transaction)
	}
	if !transaction.Deleted {
		t.Error("Deleted transactions must pass through, not be dropped")
	}

	if len(transaction.Subtransactions) != 2 {
		t.Fatalf("Expected 2 subtransactions, got %d", len(transaction.Subtransactions))
	}
	if transaction.Subtransactions[0].ID != "s-1" || transaction.Subtransactions[1].ID != "s-2" {
		t.Error("Subtransaction order must be preserved")
	}
	if !transaction.Subtransactions[1].Deleted {
		t.Error("Deleted subtransactions must pass through")
	}
}

func TestTransactionFromYNAB_Defaults(t *testing.T) {
	transaction, err := TransactionFromYNAB(ynab.TransactionDetail{
		ID:        "t-1",
		Date:      "2024-03-04",
		Cleared:   ynab.ClearedStatusUncleared,
		AccountID: "a-1",
	})
	if err != nil {
		t.Fatalf("TransactionFromYNAB error: %v", err)
	}

	if transaction.Memo != "" || transaction.PayeeID != "" || transaction.CategoryID != "" {
		t.Errorf("Expected empty defaults, got %+v", transaction)
	}
	if transaction.TransferAccountID != "" || transaction.TransferTransactionID != "" || transaction.MatchedTransactionID != "" {
		t.Errorf("Expected empty linkage ids, got %+v", transaction)
	}
	if transaction.Subtransactions == nil {
		t.Error("Expected empty subtransaction slice, got nil")
	}
}

func TestTransactionFromYNAB_UnsetFlagColor(t *testing.T) {
	transaction, err := TransactionFromYNAB(ynab.TransactionDetail{
		ID:        "t-1",
		Cleared:   ynab.ClearedStatusReconciled,
		AccountID: "a-1",
	})
	if err != nil {
		t.Fatalf("TransactionFromYNAB error: %v", err)
	}

	if transaction.FlagColor != contract.FlagColorUnspecified {
		t.Errorf("Expected unspecified flag color, got %q", transaction.FlagColor)
	}

	// Mapping back must yield absent, never a default color.
	back, err := FlagColorToYNAB(transaction.FlagColor)
	if err != nil {
		t.Fatalf("FlagColorToYNAB error: %v", err)
	}
	if back != nil {
		t.Errorf("Expected absent flag color on the way back, got %q", *back)
	}
}

func TestTransactionFromYNAB_UnknownCleared(t *testing.T) {
	_, err := TransactionFromYNAB(ynab.TransactionDetail{
		ID:      "t-1",
		Cleared: "settling",
	})
	if err == nil {
		t.Error("Expected error for unknown cleared status, got nil")
	}
}

func TestSaveTransactionToYNAB_New(t *testing.T) {
	saved, err := SaveTransactionToYNAB(contract.SaveTransaction{
		AccountID: "a-1",
		Date:      "2024-03-04",
		Amount:    -5000,
		PayeeName: "Market",
		Cleared:   contract.ClearedStatusCleared,
		Approved:  true,
		FlagColor: contract.FlagColorBlue,
	})
	if err != nil {
		t.Fatalf("SaveTransactionToYNAB error: %v", err)
	}

	if saved.ID != nil {
		t.Errorf("Expected nil id for new transaction, got %q", *saved.ID)
	}
	if saved.AccountID == nil || *saved.AccountID != "a-1" {
		t.Errorf("Account id mapped wrong: %v", saved.AccountID)
	}
	if saved.Amount == nil || *saved.Amount != -5000 {
		t.Errorf("Amount mapped wrong: %v", saved.Amount)
	}
	if saved.Cleared == nil || *saved.Cleared != ynab.ClearedStatusCleared {
		t.Errorf("Cleared mapped wrong: %v", saved.Cleared)
	}
	if saved.Approved == nil || !*saved.Approved {
		t.Errorf("Approved mapped wrong: %v", saved.Approved)
	}
	if saved.FlagColor == nil || *saved.FlagColor != ynab.FlagColorBlue {
		t.Errorf("Flag color mapped wrong: %v", saved.FlagColor)
	}
}

func TestSaveTransactionToYNAB_OmitsUnsetFields(t *testing.T) {
	saved, err := SaveTransactionToYNAB(contract.SaveTransaction{
		ID: "t-1",
	})
	if err != nil {
		t.Fatalf("SaveTransactionToYNAB error: %v", err)
	}

	if saved.ID == nil || *saved.ID != "t-1" {
		t.Errorf("Id mapped wrong: %v", saved.ID)
	}
	if saved.AccountID != nil || saved.Date != nil || saved.Amount != nil {
		t.Errorf("Expected unset fields to be omitted: %+v", saved)
	}
	if saved.Memo != nil || saved.PayeeID != nil || saved.PayeeName != nil || saved.CategoryID != nil {
		t.Errorf("Expected unset optional fields to be omitted: %+v", saved)
	}
	if saved.Cleared != nil || saved.Approved != nil || saved.FlagColor != nil || saved.ImportID != nil {
		t.Errorf("Expected unset enums and flags to be omitted: %+v", saved)
	}
	if saved.Subtransactions != nil {
		t.Errorf("Expected no subtransactions, got %v", saved.Subtransactions)
	}
}

func TestSaveSubtransactionToYNAB_AmountVerbatim(t *testing.T) {
	// Split amounts carry verbatim, zero included; other fields omit when unset.
	sub := SaveSubtransactionToYNAB(contract.SaveSubtransaction{Amount: 0, Memo: "half"})
	if sub.Amount != 0 {
		t.Errorf("Expected zero amount preserved, got %d", sub.Amount)
	}
	if sub.Memo == nil || *sub.Memo != "half" {
		t.Errorf("Memo mapped wrong: %v", sub.Memo)
	}
	if sub.PayeeID != nil || sub.PayeeName != nil || sub.CategoryID != nil {
		t.Errorf("Expected unset fields omitted: %+v", sub)
	}
}

func TestSaveTransactionToYNAB_SubtransactionOrder(t *testing.T) {
	saved, err := SaveTransactionToYNAB(contract.SaveTransaction{
		AccountID: "a-1",
		Amount:    -3000,
		Subtransactions: []contract.SaveSubtransaction{
			{Amount: -1000, CategoryID: "c-1"},
			{Amount: -2000, CategoryID: "c-2"},
		},
	})
	if err != nil {
		t.Fatalf("SaveTransactionToYNAB error: %v", err)
	}

	if len(saved.Subtransactions) != 2 {
		t.Fatalf("Expected 2 subtransactions, got %d", len(saved.Subtransactions))
	}
	if *saved.Subtransactions[0].CategoryID != "c-1" || *saved.Subtransactions[1].CategoryID != "c-2" {
		t.Error("Subtransaction order must be preserved")
	}
}

func TestSaveTransactionToYNAB_BadEnum(t *testing.T) {
	if _, err := SaveTransactionToYNAB(contract.SaveTransaction{Cleared: "PENDING"}); err == nil {
		t.Error("Expected error for unknown wire cleared status, got nil")
	}
	if _, err := SaveTransactionToYNAB(contract.SaveTransaction{FlagColor: "MAGENTA"}); err == nil {
		t.Error("Expected error for unknown wire flag color, got nil")
	}
}
