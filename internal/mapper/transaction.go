package mapper

import (
	"fmt"

	"github.com/d9nchik/ynab-gateway/internal/contract"
	"github.com/d9nchik/ynab-gateway/internal/ynab"
)

// TransactionFromYNAB converts a transaction with its subtransactions, in
// original order, to the wire schema. Deleted entries pass through
// untouched; amounts are carried verbatim in milliunits.
func TransactionFromYNAB(t ynab.TransactionDetail) (contract.Transaction, error) {
	cleared, err := ClearedFromYNAB(t.Cleared)
	if err != nil {
		return contract.Transaction{}, fmt.Errorf("transaction %s: %w", t.ID, err)
	}

	out := contract.Transaction{
		ID:                      t.ID,
		Date:                    t.Date,
		Amount:                  t.Amount,
		Memo:                    orEmpty(t.Memo),
		Cleared:                 cleared,
		Approved:                t.Approved,
		FlagColor:               FlagColorFromYNAB(t.FlagColor),
		AccountID:               t.AccountID,
		PayeeID:                 orEmpty(t.PayeeID),
		CategoryID:              orEmpty(t.CategoryID),
		TransferAccountID:       orEmpty(t.TransferAccountID),
		TransferTransactionID:   orEmpty(t.TransferTransactionID),
		MatchedTransactionID:    orEmpty(t.MatchedTransactionID),
		ImportID:                orEmpty(t.ImportID),
		Deleted:                 t.Deleted,
		ImportPayeeName:         orEmpty(t.ImportPayeeName),
		ImportPayeeNameOriginal: orEmpty(t.ImportPayeeNameOriginal),
		AccountName:             t.AccountName,
		PayeeName:               orEmpty(t.PayeeName),
		CategoryName:            orEmpty(t.CategoryName),
		Subtransactions:         make([]contract.Subtransaction, 0, len(t.Subtransactions)),
	}

	for _, s := range t.Subtransactions {
		out.Subtransactions = append(out.Subtransactions, SubtransactionFromYNAB(s))
	}

	return out, nil
}

// SubtransactionFromYNAB converts one split of a transaction.
func SubtransactionFromYNAB(s ynab.SubTransaction) contract.Subtransaction {
	return contract.Subtransaction{
		ID:                    s.ID,
		TransactionID:         s.TransactionID,
		Amount:                s.Amount,
		Memo:                  orEmpty(s.Memo),
		PayeeID:               orEmpty(s.PayeeID),
		PayeeName:             orEmpty(s.PayeeName),
		CategoryID:            orEmpty(s.CategoryID),
		CategoryName:          orEmpty(s.CategoryName),
		TransferAccountID:     orEmpty(s.TransferAccountID),
		TransferTransactionID: orEmpty(s.TransferTransactionID),
		Deleted:               s.Deleted,
	}
}

// SaveTransactionToYNAB is the inverse mapping for the update path. Wire
// zero values become omitted fields so the API leaves them unchanged; a
// patch without an id creates a new transaction.
func SaveTransactionToYNAB(t contract.SaveTransaction) (ynab.SaveTransactionWithID, error) {
	cleared, err := ClearedToYNAB(t.Cleared)
	if err != nil {
		return ynab.SaveTransactionWithID{}, err
	}
	flagColor, err := FlagColorToYNAB(t.FlagColor)
	if err != nil {
		return ynab.SaveTransactionWithID{}, err
	}

	out := ynab.SaveTransactionWithID{
		ID:         omitEmpty(t.ID),
		AccountID:  omitEmpty(t.AccountID),
		Date:       omitEmpty(t.Date),
		Amount:     omitZero(t.Amount),
		PayeeID:    omitEmpty(t.PayeeID),
		PayeeName:  omitEmpty(t.PayeeName),
		CategoryID: omitEmpty(t.CategoryID),
		Memo:       omitEmpty(t.Memo),
		Cleared:    cleared,
		Approved:   omitFalse(t.Approved),
		FlagColor:  flagColor,
		ImportID:   omitEmpty(t.ImportID),
	}

	for _, s := range t.Subtransactions {
		out.Subtransactions = append(out.Subtransactions, SaveSubtransactionToYNAB(s))
	}

	return out, nil
}

// SaveSubtransactionToYNAB converts one split of a patch. Split amounts
// are carried verbatim, zero included.
func SaveSubtransactionToYNAB(s contract.SaveSubtransaction) ynab.SaveSubTransaction {
	return ynab.SaveSubTransaction{
		Amount:     s.Amount,
		Memo:       omitEmpty(s.Memo),
		PayeeID:    omitEmpty(s.PayeeID),
		PayeeName:  omitEmpty(s.PayeeName),
		CategoryID: omitEmpty(s.CategoryID),
	}
}
