package store

// generated with gopkg.in/reform.v1

import (
	"fmt"
	"strings"

	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/parse"
)

type invoiceRowTableType struct {
	s parse.StructInfo
	z []interface{}
}

// Schema returns a schema name in SQL database ("checkout").
func (v *invoiceRowTableType) Schema() string {
	return v.s.SQLSchema
}

// Name returns a view or table name in SQL database ("invoices").
func (v *invoiceRowTableType) Name() string {
	return v.s.SQLName
}

// Columns returns a new slice of column names for that view or table in SQL database.
func (v *invoiceRowTableType) Columns() []string {
	return []string{"id", "merchant", "amount", "expiry", "status", "created_at", "payer"}
}

// NewStruct makes a new struct for that view or table.
func (v *invoiceRowTableType) NewStruct() reform.Struct {
	return new(invoiceRow)
}

// NewRecord makes a new record for that table.
func (v *invoiceRowTableType) NewRecord() reform.Record {
	return new(invoiceRow)
}

// PKColumnIndex returns an index of primary key column for that table in SQL database.
func (v *invoiceRowTableType) PKColumnIndex() uint {
	return uint(v.s.PKFieldIndex)
}

// invoiceRowTable represents invoices view or table in SQL database.
var invoiceRowTable = &invoiceRowTableType{
	s: parse.StructInfo{Type: "invoiceRow", SQLSchema: "checkout", SQLName: "invoices", Fields: []parse.FieldInfo{{Name: "ID", Type: "string", Column: "id"}, {Name: "Merchant", Type: "string", Column: "merchant"}, {Name: "Amount", Type: "int64", Column: "amount"}, {Name: "Expiry", Type: "int64", Column: "expiry"}, {Name: "Status", Type: "string", Column: "status"}, {Name: "CreatedAt", Type: "int64", Column: "created_at"}, {Name: "Payer", Type: "*string", Column: "payer"}}, PKFieldIndex: 0},
	z: new(invoiceRow).Values(),
}

// String returns a string representation of this struct or record.
func (s invoiceRow) String() string {
	res := make([]string, 7)
	res[0] = "ID: " + reform.Inspect(s.ID, true)
	res[1] = "Merchant: " + reform.Inspect(s.Merchant, true)
	res[2] = "Amount: " + reform.Inspect(s.Amount, true)
	res[3] = "Expiry: " + reform.Inspect(s.Expiry, true)
	res[4] = "Status: " + reform.Inspect(s.Status, true)
	res[5] = "CreatedAt: " + reform.Inspect(s.CreatedAt, true)
	res[6] = "Payer: " + reform.Inspect(s.Payer, true)
	return strings.Join(res, ", ")
}

// Values returns a slice of struct or record field values.
// Returned interface{} values are never untyped nils.
func (s *invoiceRow) Values() []interface{} {
	return []interface{}{
		s.ID,
		s.Merchant,
		s.Amount,
		s.Expiry,
		s.Status,
		s.CreatedAt,
		s.Payer,
	}
}

// Pointers returns a slice of pointers to struct or record fields.
// Returned interface{} values are never untyped nils.
func (s *invoiceRow) Pointers() []interface{} {
	return []interface{}{
		&s.ID,
		&s.Merchant,
		&s.Amount,
		&s.Expiry,
		&s.Status,
		&s.CreatedAt,
		&s.Payer,
	}
}

// View returns View object for that struct.
func (s *invoiceRow) View() reform.View {
	return invoiceRowTable
}

// Table returns Table object for that record.
func (s *invoiceRow) Table() reform.Table {
	return invoiceRowTable
}

// PKValue returns a value of primary key for that record.
// Returned interface{} value is never untyped nil.
func (s *invoiceRow) PKValue() interface{} {
	return s.ID
}

// PKPointer returns a pointer to primary key field for that record.
// Returned interface{} value is never untyped nil.
func (s *invoiceRow) PKPointer() interface{} {
	return &s.ID
}

// HasPK returns true if record has non-zero primary key set, false otherwise.
func (s *invoiceRow) HasPK() bool {
	return s.ID != invoiceRowTable.z[invoiceRowTable.s.PKFieldIndex]
}

// SetPK sets record primary key, if possible.
//
// Deprecated: prefer direct field assignment where possible: s.ID = pk.
func (s *invoiceRow) SetPK(pk interface{}) {
	reform.SetPK(s, pk)
}

// check interfaces
var (
	_ reform.View   = invoiceRowTable
	_ reform.Struct = new(invoiceRow)
	_ reform.Table  = invoiceRowTable
	_ reform.Record = new(invoiceRow)
	_ fmt.Stringer  = new(invoiceRow)
)

type paymentRowTableType struct {
	s parse.StructInfo
	z []interface{}
}

// Schema returns a schema name in SQL database ("checkout").
func (v *paymentRowTableType) Schema() string {
	return v.s.SQLSchema
}

// Name returns a view or table name in SQL database ("payments").
func (v *paymentRowTableType) Name() string {
	return v.s.SQLName
}

// Columns returns a new slice of column names for that view or table in SQL database.
func (v *paymentRowTableType) Columns() []string {
	return []string{"invoice_id", "payer", "amount", "timestamp"}
}

// NewStruct makes a new struct for that view or table.
func (v *paymentRowTableType) NewStruct() reform.Struct {
	return new(paymentRow)
}

// NewRecord makes a new record for that table.
func (v *paymentRowTableType) NewRecord() reform.Record {
	return new(paymentRow)
}

// PKColumnIndex returns an index of primary key column for that table in SQL database.
func (v *paymentRowTableType) PKColumnIndex() uint {
	return uint(v.s.PKFieldIndex)
}

// paymentRowTable represents payments view or table in SQL database.
var paymentRowTable = &paymentRowTableType{
	s: parse.StructInfo{Type: "paymentRow", SQLSchema: "checkout", SQLName: "payments", Fields: []parse.FieldInfo{{Name: "InvoiceID", Type: "string", Column: "invoice_id"}, {Name: "Payer", Type: "string", Column: "payer"}, {Name: "Amount", Type: "int64", Column: "amount"}, {Name: "Timestamp", Type: "int64", Column: "timestamp"}}, PKFieldIndex: 0},
	z: new(paymentRow).Values(),
}

// String returns a string representation of this struct or record.
func (s paymentRow) String() string {
	res := make([]string, 4)
	res[0] = "InvoiceID: " + reform.Inspect(s.InvoiceID, true)
	res[1] = "Payer: " + reform.Inspect(s.Payer, true)
	res[2] = "Amount: " + reform.Inspect(s.Amount, true)
	res[3] = "Timestamp: " + reform.Inspect(s.Timestamp, true)
	return strings.Join(res, ", ")
}

// Values returns a slice of struct or record field values.
// Returned interface{} values are never untyped nils.
func (s *paymentRow) Values() []interface{} {
	return []interface{}{
		s.InvoiceID,
		s.Payer,
		s.Amount,
		s.Timestamp,
	}
}

// Pointers returns a slice of pointers to struct or record fields.
// Returned interface{} values are never untyped nils.
func (s *paymentRow) Pointers() []interface{} {
	return []interface{}{
		&s.InvoiceID,
		&s.Payer,
		&s.Amount,
		&s.Timestamp,
	}
}

// View returns View object for that struct.
func (s *paymentRow) View() reform.View {
	return paymentRowTable
}

// Table returns Table object for that record.
func (s *paymentRow) Table() reform.Table {
	return paymentRowTable
}

// PKValue returns a value of primary key for that record.
// Returned interface{} value is never untyped nil.
func (s *paymentRow) PKValue() interface{} {
	return s.InvoiceID
}

// PKPointer returns a pointer to primary key field for that record.
// Returned interface{} value is never untyped nil.
func (s *paymentRow) PKPointer() interface{} {
	return &s.InvoiceID
}

// HasPK returns true if record has non-zero primary key set, false otherwise.
func (s *paymentRow) HasPK() bool {
	return s.InvoiceID != paymentRowTable.z[paymentRowTable.s.PKFieldIndex]
}

// SetPK sets record primary key, if possible.
//
// Deprecated: prefer direct field assignment where possible: s.InvoiceID = pk.
func (s *paymentRow) SetPK(pk interface{}) {
	reform.SetPK(s, pk)
}

// check interfaces
var (
	_ reform.View   = paymentRowTable
	_ reform.Struct = new(paymentRow)
	_ reform.Table  = paymentRowTable
	_ reform.Record = new(paymentRow)
	_ fmt.Stringer  = new(paymentRow)
)

type settingRowTableType struct {
	s parse.StructInfo
	z []interface{}
}

// Schema returns a schema name in SQL database ("checkout").
func (v *settingRowTableType) Schema() string {
	return v.s.SQLSchema
}

// Name returns a view or table name in SQL database ("settings").
func (v *settingRowTableType) Name() string {
	return v.s.SQLName
}

// Columns returns a new slice of column names for that view or table in SQL database.
func (v *settingRowTableType) Columns() []string {
	return []string{"key", "value"}
}

// NewStruct makes a new struct for that view or table.
func (v *settingRowTableType) NewStruct() reform.Struct {
	return new(settingRow)
}

// NewRecord makes a new record for that table.
func (v *settingRowTableType) NewRecord() reform.Record {
	return new(settingRow)
}

// PKColumnIndex returns an index of primary key column for that table in SQL database.
func (v *settingRowTableType) PKColumnIndex() uint {
	return uint(v.s.PKFieldIndex)
}

// settingRowTable represents settings view or table in SQL database.
var settingRowTable = &settingRowTableType{
	s: parse.StructInfo{Type: "settingRow", SQLSchema: "checkout", SQLName: "settings", Fields: []parse.FieldInfo{{Name: "Key", Type: "string", Column: "key"}, {Name: "Value", Type: "string", Column: "value"}}, PKFieldIndex: 0},
	z: new(settingRow).Values(),
}

// String returns a string representation of this struct or record.
func (s settingRow) String() string {
	res := make([]string, 2)
	res[0] = "Key: " + reform.Inspect(s.Key, true)
	res[1] = "Value: " + reform.Inspect(s.Value, true)
	return strings.Join(res, ", ")
}

// Values returns a slice of struct or record field values.
// Returned interface{} values are never untyped nils.
func (s *settingRow) Values() []interface{} {
	return []interface{}{
		s.Key,
		s.Value,
	}
}

// Pointers returns a slice of pointers to struct or record fields.
// Returned interface{} values are never untyped nils.
func (s *settingRow) Pointers() []interface{} {
	return []interface{}{
		&s.Key,
		&s.Value,
	}
}

// View returns View object for that struct.
func (s *settingRow) View() reform.View {
	return settingRowTable
}

// Table returns Table object for that record.
func (s *settingRow) Table() reform.Table {
	return settingRowTable
}

// PKValue returns a value of primary key for that record.
// Returned interface{} value is never untyped nil.
func (s *settingRow) PKValue() interface{} {
	return s.Key
}

// PKPointer returns a pointer to primary key field for that record.
// Returned interface{} value is never untyped nil.
func (s *settingRow) PKPointer() interface{} {
	return &s.Key
}

// HasPK returns true if record has non-zero primary key set, false otherwise.
func (s *settingRow) HasPK() bool {
	return s.Key != settingRowTable.z[settingRowTable.s.PKFieldIndex]
}

// SetPK sets record primary key, if possible.
//
// Deprecated: prefer direct field assignment where possible: s.Key = pk.
func (s *settingRow) SetPK(pk interface{}) {
	reform.SetPK(s, pk)
}

// check interfaces
var (
	_ reform.View   = settingRowTable
	_ reform.Struct = new(settingRow)
	_ reform.Table  = settingRowTable
	_ reform.Record = new(settingRow)
	_ fmt.Stringer  = new(settingRow)
)

func init() {
	parse.AssertUpToDate(&invoiceRowTable.s, new(invoiceRow))
	parse.AssertUpToDate(&paymentRowTable.s, new(paymentRow))
	parse.AssertUpToDate(&settingRowTable.s, new(settingRow))
}
