package ynab

// AccountType enumerates the account kinds the YNAB API reports.
type AccountType string

const (
	AccountTypeChecking       AccountType = "checking"
	AccountTypeSavings        AccountType = "savings"
	AccountTypeCash           AccountType = "cash"
	AccountTypeCreditCard     AccountType = "creditCard"
	AccountTypeLineOfCredit   AccountType = "lineOfCredit"
	AccountTypeOtherAsset     AccountType = "otherAsset"
	AccountTypeOtherLiability AccountType = "otherLiability"
	AccountTypeMortgage       AccountType = "mortgage"
	AccountTypeAutoLoan       AccountType = "autoLoan"
	AccountTypeStudentLoan    AccountType = "studentLoan"
	AccountTypePersonalLoan   AccountType = "personalLoan"
	AccountTypeMedicalDebt    AccountType = "medicalDebt"
	AccountTypeOtherDebt      AccountType = "otherDebt"
)

// ClearedStatus is the cleared state of a transaction.
type ClearedStatus string

const (
	ClearedStatusCleared    ClearedStatus = "cleared"
	ClearedStatusUncleared  ClearedStatus = "uncleared"
	ClearedStatusReconciled ClearedStatus = "reconciled"
)

// FlagColor is a transaction flag color. A nil *FlagColor means no flag.
type FlagColor string

const (
	FlagColorRed    FlagColor = "red"
	FlagColorOrange FlagColor = "orange"
	FlagColorYellow FlagColor = "yellow"
	FlagColorGreen  FlagColor = "green"
	FlagColorBlue   FlagColor = "blue"
	FlagColorPurple FlagColor = "purple"
)

type DateFormat struct {
	Format string `json:"format"`
}

type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format"`
	DecimalDigits    int32  `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator"`
	CurrencySymbol   string `json:"currency_symbol"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// Account is an account within a budget. Nullable API fields are pointers.
type Account struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Type                AccountType `json:"type"`
	OnBudget            bool        `json:"on_budget"`
	Closed              bool        `json:"closed"`
	Note                *string     `json:"note"`
	Balance             int64       `json:"balance"`
	ClearedBalance      int64       `json:"cleared_balance"`
	UnclearedBalance    int64       `json:"uncleared_balance"`
	TransferPayeeID     *string     `json:"transfer_payee_id"`
	DirectImportLinked  *bool       `json:"direct_import_linked"`
	DirectImportInError *bool       `json:"direct_import_in_error"`
	LastReconciledAt    *string     `json:"last_reconciled_at"`
	DebtOriginalBalance *int64      `json:"debt_original_balance"`
	Deleted             bool        `json:"deleted"`
}

// BudgetSummary is one entry of the budgets listing. Accounts are present
// only when the listing was requested with include_accounts=true.
type BudgetSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn *string         `json:"last_modified_on"`
	FirstMonth     *string         `json:"first_month"`
	LastMonth      *string         `json:"last_month"`
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
	Accounts       []Account       `json:"accounts"`
}

type SubTransaction struct {
	ID                    string  `json:"id"`
	TransactionID         string  `json:"transaction_id"`
	Amount                int64   `json:"amount"`
	Memo                  *string `json:"memo"`
	PayeeID               *string `json:"payee_id"`
	PayeeName             *string `json:"payee_name"`
	CategoryID            *string `json:"category_id"`
	CategoryName          *string `json:"category_name"`
	TransferAccountID     *string `json:"transfer_account_id"`
	TransferTransactionID *string `json:"transfer_transaction_id"`
	Deleted               bool    `json:"deleted"`
}

// TransactionDetail is a transaction with its splits and denormalized names.
type TransactionDetail struct {
	ID                      string           `json:"id"`
	Date                    string           `json:"date"`
	Amount                  int64            `json:"amount"`
	Memo                    *string          `json:"memo"`
	Cleared                 ClearedStatus    `json:"cleared"`
	Approved                bool             `json:"approved"`
	FlagColor               *FlagColor       `json:"flag_color"`
	AccountID               string           `json:"account_id"`
	PayeeID                 *string          `json:"payee_id"`
	CategoryID              *string          `json:"category_id"`
	TransferAccountID       *string          `json:"transfer_account_id"`
	TransferTransactionID   *string          `json:"transfer_transaction_id"`
	MatchedTransactionID    *string          `json:"matched_transaction_id"`
	ImportID                *string          `json:"import_id"`
	ImportPayeeName         *string          `json:"import_payee_name"`
	ImportPayeeNameOriginal *string          `json:"import_payee_name_original"`
	Deleted                 bool             `json:"deleted"`
	AccountName             string           `json:"account_name"`
	PayeeName               *string          `json:"payee_name"`
	CategoryName            *string          `json:"category_name"`
	Subtransactions         []SubTransaction `json:"subtransactions"`
}

// TransactionsSnapshot is the payload of a transactions listing together
// with the server-knowledge cursor it was taken at.
type TransactionsSnapshot struct {
	Transactions    []TransactionDetail `json:"transactions"`
	ServerKnowledge int64               `json:"server_knowledge"`
}

// SaveTransactionWithID is a transaction create-or-update. Nil fields are
// omitted from the request body, which the API treats as "leave unchanged".
// A nil ID creates a new transaction.
type SaveTransactionWithID struct {
	ID              *string              `json:"id,omitempty"`
	AccountID       *string              `json:"account_id,omitempty"`
	Date            *string              `json:"date,omitempty"`
	Amount          *int64               `json:"amount,omitempty"`
	PayeeID         *string              `json:"payee_id,omitempty"`
	PayeeName       *string              `json:"payee_name,omitempty"`
	CategoryID      *string              `json:"category_id,omitempty"`
	Memo            *string              `json:"memo,omitempty"`
	Cleared         *ClearedStatus       `json:"cleared,omitempty"`
	Approved        *bool                `json:"approved,omitempty"`
	FlagColor       *FlagColor           `json:"flag_color,omitempty"`
	ImportID        *string              `json:"import_id,omitempty"`
	Subtransactions []SaveSubTransaction `json:"subtransactions,omitempty"`
}

type SaveSubTransaction struct {
	Amount     int64   `json:"amount"`
	Memo       *string `json:"memo,omitempty"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

// SaveTransactionsResult is the payload returned by a transactions patch.
type SaveTransactionsResult struct {
	TransactionIDs     []string            `json:"transaction_ids"`
	Transactions       []TransactionDetail `json:"transactions"`
	DuplicateImportIDs []string            `json:"duplicate_import_ids"`
	ServerKnowledge    int64               `json:"server_knowledge"`
}
