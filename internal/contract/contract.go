// Package contract holds the wire types of the YnabAPI RPC contract.
// Shapes and JSON field names come from the upstream schema definition and
// must not drift; behavior lives elsewhere.
package contract

// AccountType is the wire enumeration of YNAB account kinds.
type AccountType string

const (
	AccountTypeUnspecified    AccountType = "ACCOUNT_TYPE_UNSPECIFIED"
	AccountTypeChecking       AccountType = "CHECKING"
	AccountTypeSavings        AccountType = "SAVINGS"
	AccountTypeCash           AccountType = "CASH"
	AccountTypeCreditCard     AccountType = "CREDIT_CARD"
	AccountTypeLineOfCredit   AccountType = "LINE_OF_CREDIT"
	AccountTypeOtherAsset     AccountType = "OTHER_ASSET"
	AccountTypeOtherLiability AccountType = "OTHER_LIABILITY"
	AccountTypeMortgage       AccountType = "MORTGAGE"
	AccountTypeAutoLoan       AccountType = "AUTO_LOAN"
	AccountTypeStudentLoan    AccountType = "STUDENT_LOAN"
	AccountTypePersonalLoan   AccountType = "PERSONAL_LOAN"
	AccountTypeMedicalDebt    AccountType = "MEDICAL_DEBT"
	AccountTypeOtherDebt      AccountType = "OTHER_DEBT"
)

// TransactionClearedStatus is the wire enumeration of cleared states.
type TransactionClearedStatus string

const (
	ClearedStatusCleared    TransactionClearedStatus = "CLEARED"
	ClearedStatusUncleared  TransactionClearedStatus = "UNCLEARED"
	ClearedStatusReconciled TransactionClearedStatus = "RECONCILED"
)

// TransactionFlagColor is the wire enumeration of flag colors. The zero
// JSON value decodes to "", which is treated the same as the explicit
// unspecified sentinel.
type TransactionFlagColor string

const (
	FlagColorUnspecified TransactionFlagColor = "FLAG_COLOR_UNSPECIFIED"
	FlagColorRed         TransactionFlagColor = "RED"
	FlagColorOrange      TransactionFlagColor = "ORANGE"
	FlagColorYellow      TransactionFlagColor = "YELLOW"
	FlagColorGreen       TransactionFlagColor = "GREEN"
	FlagColorBlue        TransactionFlagColor = "BLUE"
	FlagColorPurple      TransactionFlagColor = "PURPLE"
)

// Authentication carries the per-request bearer token. It is never stored
// beyond the handler call that received it.
type Authentication struct {
	AccessToken string `json:"accessToken"`
}

type DateFormat struct {
	Format string `json:"format"`
}

type CurrencyFormat struct {
	IsoCode          string `json:"isoCode"`
	ExampleFormat    string `json:"exampleFormat"`
	DecimalDigits    int32  `json:"decimalDigits"`
	DecimalSeparator string `json:"decimalSeparator"`
	SymbolFirst      bool   `json:"symbolFirst"`
	GroupSeparator   string `json:"groupSeparator"`
	CurrencySymbol   string `json:"currencySymbol"`
	DisplaySymbol    bool   `json:"displaySymbol"`
}

type Account struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Type                AccountType `json:"type"`
	OnBudget            bool        `json:"onBudget"`
	Closed              bool        `json:"closed"`
	Note                string      `json:"note"`
	Balance             int64       `json:"balance"`
	ClearedBalance      int64       `json:"clearedBalance"`
	UnclearedBalance    int64       `json:"unclearedBalance"`
	TransferPayeeID     string      `json:"transferPayeeId"`
	Deleted             bool        `json:"deleted"`
	DirectImportLinked  bool        `json:"directImportLinked"`
	DirectImportInError bool        `json:"directImportInError"`
	LastReconciledAt    string      `json:"lastReconciledAt"`
	DebtOriginalBalance int64       `json:"debtOriginalBalance"`
}

type Budget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn string          `json:"lastModifiedOn"`
	FirstMonth     string          `json:"firstMonth"`
	LastMonth      string          `json:"lastMonth"`
	DateFormat     *DateFormat     `json:"dateFormat"`
	CurrencyFormat *CurrencyFormat `json:"currencyFormat"`
	Accounts       []Account       `json:"accounts"`
}

type Subtransaction struct {
	ID                    string `json:"id"`
	TransactionID         string `json:"transactionId"`
	Amount                int64  `json:"amount"`
	Memo                  string `json:"memo"`
	PayeeID               string `json:"payeeId"`
	PayeeName             string `json:"payeeName"`
	CategoryID            string `json:"categoryId"`
	CategoryName          string `json:"categoryName"`
	TransferAccountID     string `json:"transferAccountId"`
	TransferTransactionID string `json:"transferTransactionId"`
	Deleted               bool   `json:"deleted"`
}

type Transaction struct {
	ID                      string                   `json:"id"`
	Date                    string                   `json:"date"`
	Amount                  int64                    `json:"amount"`
	Memo                    string                   `json:"memo"`
	Cleared                 TransactionClearedStatus `json:"cleared"`
	Approved                bool                     `json:"approved"`
	FlagColor               TransactionFlagColor     `json:"flagColor"`
	AccountID               string                   `json:"accountId"`
	PayeeID                 string                   `json:"payeeId"`
	CategoryID              string                   `json:"categoryId"`
	TransferAccountID       string                   `json:"transferAccountId"`
	TransferTransactionID   string                   `json:"transferTransactionId"`
	MatchedTransactionID    string                   `json:"matchedTransactionId"`
	ImportID                string                   `json:"importId"`
	Deleted                 bool                     `json:"deleted"`
	ImportPayeeName         string                   `json:"importPayeeName"`
	ImportPayeeNameOriginal string                   `json:"importPayeeNameOriginal"`
	AccountName             string                   `json:"accountName"`
	PayeeName               string                   `json:"payeeName"`
	CategoryName            string                   `json:"categoryName"`
	Subtransactions         []Subtransaction         `json:"subtransactions"`
}

// SaveTransaction is a transaction patch. An empty ID means a new
// transaction; any other empty field means "leave unchanged".
type SaveTransaction struct {
	ID              string                   `json:"id"`
	AccountID       string                   `json:"accountId"`
	Date            string                   `json:"date"`
	Amount          int64                    `json:"amount"`
	PayeeID         string                   `json:"payeeId"`
	PayeeName       string                   `json:"payeeName"`
	CategoryID      string                   `json:"categoryId"`
	Memo            string                   `json:"memo"`
	Cleared         TransactionClearedStatus `json:"cleared"`
	Approved        bool                     `json:"approved"`
	FlagColor       TransactionFlagColor     `json:"flagColor"`
	ImportID        string                   `json:"importId"`
	Subtransactions []SaveSubtransaction     `json:"subtransactions"`
}

type SaveSubtransaction struct {
	Amount     int64  `json:"amount"`
	Memo       string `json:"memo"`
	PayeeID    string `json:"payeeId"`
	PayeeName  string `json:"payeeName"`
	CategoryID string `json:"categoryId"`
}

type PatchTransactionWrapper struct {
	Transactions []SaveTransaction `json:"transactions"`
}

type GetBudgetsRequest struct {
	Authentication *Authentication `json:"authentication,omitempty"`
}

type GetBudgetsResponse struct {
	Budgets []Budget `json:"budgets"`
}

type GetTransactionsByAccountRequest struct {
	Authentication *Authentication `json:"authentication,omitempty"`
	BudgetID       string          `json:"budgetId"`
	AccountID      string          `json:"accountId"`
	// ServerKnowledge is the delta-sync cursor from a previous response.
	// Zero requests the full transaction set.
	ServerKnowledge int64 `json:"serverKnowledge"`
}

type GetTransactionsByAccountResponse struct {
	ServerKnowledge int64         `json:"serverKnowledge"`
	Transactions    []Transaction `json:"transactions"`
}

type UpdateTransactionsRequest struct {
	Authentication          *Authentication          `json:"authentication,omitempty"`
	BudgetID                string                   `json:"budgetId"`
	PatchTransactionWrapper *PatchTransactionWrapper `json:"patchTransactionWrapper,omitempty"`
}

type UpdateTransactionsResponse struct {
	ServerKnowledge int64 `json:"serverKnowledge"`
}
