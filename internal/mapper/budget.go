package mapper

import (
	"fmt"

	"github.com/d9nchik/ynab-gateway/internal/contract"
	"github.com/d9nchik/ynab-gateway/internal/ynab"
)

// BudgetFromYNAB converts a budget summary, including its accounts in
// original order, to the wire schema. A budget without accounts yields an
// empty slice, not nil.
func BudgetFromYNAB(b ynab.BudgetSummary) (contract.Budget, error) {
	out := contract.Budget{
		ID:             b.ID,
		Name:           b.Name,
		LastModifiedOn: orEmpty(b.LastModifiedOn),
		FirstMonth:     orEmpty(b.FirstMonth),
		LastMonth:      orEmpty(b.LastMonth),
		DateFormat:     &contract.DateFormat{},
		CurrencyFormat: &contract.CurrencyFormat{},
		Accounts:       make([]contract.Account, 0, len(b.Accounts)),
	}

	if b.DateFormat != nil {
		out.DateFormat.Format = b.DateFormat.Format
	}
	if cf := b.CurrencyFormat; cf != nil {
		out.CurrencyFormat = &contract.CurrencyFormat{
			IsoCode:          cf.ISOCode,
			ExampleFormat:    cf.ExampleFormat,
			DecimalDigits:    cf.DecimalDigits,
			DecimalSeparator: cf.DecimalSeparator,
			SymbolFirst:      cf.SymbolFirst,
			GroupSeparator:   cf.GroupSeparator,
			CurrencySymbol:   cf.CurrencySymbol,
			DisplaySymbol:    cf.DisplaySymbol,
		}
	}

	for _, a := range b.Accounts {
		account, err := AccountFromYNAB(a)
		if err != nil {
			return contract.Budget{}, fmt.Errorf("budget %s: %w", b.ID, err)
		}
		out.Accounts = append(out.Accounts, account)
	}

	return out, nil
}

// AccountFromYNAB converts one account to the wire schema. The account
// type always goes through the shared translator; an unknown type is an
// error, not an unspecified placeholder.
func AccountFromYNAB(a ynab.Account) (contract.Account, error) {
	accountType, err := AccountTypeFromYNAB(a.Type)
	if err != nil {
		return contract.Account{}, fmt.Errorf("account %s: %w", a.ID, err)
	}

	return contract.Account{
		ID:                  a.ID,
		Name:                a.Name,
		Type:                accountType,
		OnBudget:            a.OnBudget,
		Closed:              a.Closed,
		Note:                orEmpty(a.Note),
		Balance:             a.Balance,
		ClearedBalance:      a.ClearedBalance,
		UnclearedBalance:    a.UnclearedBalance,
		TransferPayeeID:     orEmpty(a.TransferPayeeID),
		Deleted:             a.Deleted,
		DirectImportLinked:  orFalse(a.DirectImportLinked),
		DirectImportInError: orFalse(a.DirectImportInError),
		LastReconciledAt:    orEmpty(a.LastReconciledAt),
		DebtOriginalBalance: orZero(a.DebtOriginalBalance),
	}, nil
}
