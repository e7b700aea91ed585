package ledger

//go:generate reform

//reform:checkout.accounts
type accountRow struct {
	AccountID int64  `reform:"account_id,pk"`
	Token     string `reform:"token"`
	Identity  string `reform:"identity"`
	Balance   int64  `reform:"balance"`
}
