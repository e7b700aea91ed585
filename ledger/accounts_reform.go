package ledger

// generated with gopkg.in/reform.v1

import (
	"fmt"
	"strings"

	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/parse"
)

type accountRowTableType struct {
	s parse.StructInfo
	z []interface{}
}

// Schema returns a schema name in SQL database ("checkout").
func (v *accountRowTableType) Schema() string {
	return v.s.SQLSchema
}

// Name returns a view or table name in SQL database ("accounts").
func (v *accountRowTableType) Name() string {
	return v.s.SQLName
}

// Columns returns a new slice of column names for that view or table in SQL database.
func (v *accountRowTableType) Columns() []string {
	return []string{"account_id", "token", "identity", "balance"}
}

// NewStruct makes a new struct for that view or table.
func (v *accountRowTableType) NewStruct() reform.Struct {
	return new(accountRow)
}

// NewRecord makes a new record for that table.
func (v *accountRowTableType) NewRecord() reform.Record {
	return new(accountRow)
}

// PKColumnIndex returns an index of primary key column for that table in SQL database.
func (v *accountRowTableType) PKColumnIndex() uint {
	return uint(v.s.PKFieldIndex)
}

// accountRowTable represents accounts view or table in SQL database.
var accountRowTable = &accountRowTableType{
	s: parse.StructInfo{Type: "accountRow", SQLSchema: "checkout", SQLName: "accounts", Fields: []parse.FieldInfo{{Name: "AccountID", Type: "int64", Column: "account_id"}, {Name: "Token", Type: "string", Column: "token"}, {Name: "Identity", Type: "string", Column: "identity"}, {Name: "Balance", Type: "int64", Column: "balance"}}, PKFieldIndex: 0},
	z: new(accountRow).Values(),
}

// String returns a string representation of this struct or record.
func (s accountRow) String() string {
	res := make([]string, 4)
	res[0] = "AccountID: " + reform.Inspect(s.AccountID, true)
	res[1] = "Token: " + reform.Inspect(s.Token, true)
	res[2] = "Identity: " + reform.Inspect(s.Identity, true)
	res[3] = "Balance: " + reform.Inspect(s.Balance, true)
	return strings.Join(res, ", ")
}

// Values returns a slice of struct or record field values.
// Returned interface{} values are never untyped nils.
func (s *accountRow) Values() []interface{} {
	return []interface{}{
		s.AccountID,
		s.Token,
		s.Identity,
		s.Balance,
	}
}

// Pointers returns a slice of pointers to struct or record fields.
// Returned interface{} values are never untyped nils.
func (s *accountRow) Pointers() []interface{} {
	return []interface{}{
		&s.AccountID,
		&s.Token,
		&s.Identity,
		&s.Balance,
	}
}

// View returns View object for that struct.
func (s *accountRow) View() reform.View {
	return accountRowTable
}

// Table returns Table object for that record.
func (s *accountRow) Table() reform.Table {
	return accountRowTable
}

// PKValue returns a value of primary key for that record.
// Returned interface{} value is never untyped nil.
func (s *accountRow) PKValue() interface{} {
	return s.AccountID
}

// PKPointer returns a pointer to primary key field for that record.
// Returned interface{} value is never untyped nil.
func (s *accountRow) PKPointer() interface{} {
	return &s.AccountID
}

// HasPK returns true if record has non-zero primary key set, false otherwise.
func (s *accountRow) HasPK() bool {
	return s.AccountID != accountRowTable.z[accountRowTable.s.PKFieldIndex]
}

// SetPK sets record primary key, if possible.
//
// Deprecated: prefer direct field assignment where possible: s.AccountID = pk.
func (s *accountRow) SetPK(pk interface{}) {
	reform.SetPK(s, pk)
}

// check interfaces
var (
	_ reform.View   = accountRowTable
	_ reform.Struct = new(accountRow)
	_ reform.Table  = accountRowTable
	_ reform.Record = new(accountRow)
	_ fmt.Stringer  = new(accountRow)
)

func init() {
	parse.AssertUpToDate(&accountRowTable.s, new(accountRow))
}
