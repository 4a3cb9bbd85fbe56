package enum

// InvoiceStatus represents the lifecycle status of an invoice.
// Stored as text so new statuses can be added without a migration.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// Known reports whether the status is one of the built-in values.
func (s InvoiceStatus) Known() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusVoid:
		return true
	}
	return false
}
