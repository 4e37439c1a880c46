package mapper

import (
	"fmt"

	"github.com/d9nchik/ynab-gateway/internal/contract"
	"github.com/d9nchik/ynab-gateway/internal/ynab"
)

// AccountTypeFromYNAB maps an API account type to its wire value. The
// thirteen known kinds map one-to-one; anything else is a contract
// violation and fails rather than defaulting.
func AccountTypeFromYNAB(t ynab.AccountType) (contract.AccountType, error) {
	switch t {
	case ynab.AccountTypeChecking:
		return contract.AccountTypeChecking, nil
	case ynab.AccountTypeSavings:
		return contract.AccountTypeSavings, nil
	case ynab.AccountTypeCash:
		return contract.AccountTypeCash, nil
	case ynab.AccountTypeCreditCard:
		return contract.AccountTypeCreditCard, nil
	case ynab.AccountTypeLineOfCredit:
		return contract.AccountTypeLineOfCredit, nil
	case ynab.AccountTypeOtherAsset:
		return contract.AccountTypeOtherAsset, nil
	case ynab.AccountTypeOtherLiability:
		return contract.AccountTypeOtherLiability, nil
	case ynab.AccountTypeMortgage:
		return contract.AccountTypeMortgage, nil
	case ynab.AccountTypeAutoLoan:
		return contract.AccountTypeAutoLoan, nil
	case ynab.AccountTypeStudentLoan:
		return contract.AccountTypeStudentLoan, nil
	case ynab.AccountTypePersonalLoan:
		return contract.AccountTypePersonalLoan, nil
	case ynab.AccountTypeMedicalDebt:
		return contract.AccountTypeMedicalDebt, nil
	case ynab.AccountTypeOtherDebt:
		return contract.AccountTypeOtherDebt, nil
	default:
		return "", fmt.Errorf("unknown account type %q", t)
	}
}

// AccountTypeToYNAB is the inverse of AccountTypeFromYNAB. The unspecified
// sentinel has no API counterpart and is rejected.
func AccountTypeToYNAB(t contract.AccountType) (ynab.AccountType, error) {
	switch t {
	case contract.AccountTypeChecking:
		return ynab.AccountTypeChecking, nil
	case contract.AccountTypeSavings:
		return ynab.AccountTypeSavings, nil
	case contract.AccountTypeCash:
		return ynab.AccountTypeCash, nil
	case contract.AccountTypeCreditCard:
		return ynab.AccountTypeCreditCard, nil
	case contract.AccountTypeLineOfCredit:
		return ynab.AccountTypeLineOfCredit, nil
	case contract.AccountTypeOtherAsset:
		return ynab.AccountTypeOtherAsset, nil
	case contract.AccountTypeOtherLiability:
		return ynab.AccountTypeOtherLiability, nil
	case contract.AccountTypeMortgage:
		return ynab.AccountTypeMortgage, nil
	case contract.AccountTypeAutoLoan:
		return ynab.AccountTypeAutoLoan, nil
	case contract.AccountTypeStudentLoan:
		return ynab.AccountTypeStudentLoan, nil
	case contract.AccountTypePersonalLoan:
		return ynab.AccountTypePersonalLoan, nil
	case contract.AccountTypeMedicalDebt:
		return ynab.AccountTypeMedicalDebt, nil
	case contract.AccountTypeOtherDebt:
		return ynab.AccountTypeOtherDebt, nil
	default:
		return "", fmt.Errorf("wire account type %q has no API equivalent", t)
	}
}

// ClearedFromYNAB maps the three-way cleared status onto the wire. The
// mapping is a bijection; an unknown value fails fast.
func ClearedFromYNAB(c ynab.ClearedStatus) (contract.TransactionClearedStatus, error) {
	switch c {
	case ynab.ClearedStatusCleared:
		return contract.ClearedStatusCleared, nil
	case ynab.ClearedStatusUncleared:
		return contract.ClearedStatusUncleared, nil
	case ynab.ClearedStatusReconciled:
		return contract.ClearedStatusReconciled, nil
	default:
		return "", fmt.Errorf("unknown cleared status %q", c)
	}
}

// ClearedToYNAB maps a wire cleared status back to the API. An unset wire
// value means "leave unchanged" and maps to nil.
func ClearedToYNAB(c contract.TransactionClearedStatus) (*ynab.ClearedStatus, error) {
	switch c {
	case "":
		return nil, nil
	case contract.ClearedStatusCleared:
		return ptr(ynab.ClearedStatusCleared), nil
	case contract.ClearedStatusUncleared:
		return ptr(ynab.ClearedStatusUncleared), nil
	case contract.ClearedStatusReconciled:
		return ptr(ynab.ClearedStatusReconciled), nil
	default:
		return nil, fmt.Errorf("unknown wire cleared status %q", c)
	}
}

// FlagColorFromYNAB maps a flag color onto the wire. An absent color maps
// to the explicit unspecified sentinel, never to a default color.
func FlagColorFromYNAB(c *ynab.FlagColor) contract.TransactionFlagColor {
	if c == nil {
		return contract.FlagColorUnspecified
	}
	switch *c {
	case ynab.FlagColorRed:
		return contract.FlagColorRed
	case ynab.FlagColorOrange:
		return contract.FlagColorOrange
	case ynab.FlagColorYellow:
		return contract.FlagColorYellow
	case ynab.FlagColorGreen:
		return contract.FlagColorGreen
	case ynab.FlagColorBlue:
		return contract.FlagColorBlue
	case ynab.FlagColorPurple:
		return contract.FlagColorPurple
	default:
		return contract.FlagColorUnspecified
	}
}

// FlagColorToYNAB maps a wire flag color back to the API. The unspecified
// sentinel (and the empty JSON zero value) maps to absent; that is not an
// error.
func FlagColorToYNAB(c contract.TransactionFlagColor) (*ynab.FlagColor, error) {
	switch c {
	case "", contract.FlagColorUnspecified:
		return nil, nil
	case contract.FlagColorRed:
		return ptr(ynab.FlagColorRed), nil
	case contract.FlagColorOrange:
		return ptr(ynab.FlagColorOrange), nil
	case contract.FlagColorYellow:
		return ptr(ynab.FlagColorYellow), nil
	case contract.FlagColorGreen:
		return ptr(ynab.FlagColorGreen), nil
	case contract.FlagColorBlue:
		return ptr(ynab.FlagColorBlue), nil
	case contract.FlagColorPurple:
		return ptr(ynab.FlagColorPurple), nil
	default:
		return nil, fmt.Errorf("unknown wire flag color %q", c)
	}
}

func ptr[T any](v T) *T {
	return &v
}
