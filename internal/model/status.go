package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the approval state of a transaction or payment order.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

// Valid reports whether s is a known transaction status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DebtStatus is the lifecycle state of a debt installment.
type DebtStatus string

const (
	DebtActive  DebtStatus = "active"
	DebtPaid    DebtStatus = "paid"
	DebtOverdue DebtStatus = "overdue"
)

// Valid reports whether s is a known debt status.
func (s DebtStatus) Valid() bool {
	switch s {
	case DebtActive, DebtPaid, DebtOverdue:
		return true
	}
	return false
}

// PaymentOrder is an outgoing payment awaiting approval. Approved orders
// feed journal postings; the order itself is only an input to reports.
type PaymentOrder struct {
	Reference   string // e.g. "OPO-2025-001"
	Date        time.Time
	Description string
	Payee       string
	Amount      decimal.Decimal
	Currency    string
	Status      TransactionStatus
	ApprovedBy  string
}

// DebtInstallment is one scheduled repayment of a debt.
type DebtInstallment struct {
	Reference string // e.g. "DEBT-2025-001"
	Sequence  int
	DueDate   time.Time
	Amount    decimal.Decimal
	Currency  string
	Status    DebtStatus
}

// EffectiveStatus derives the display status as of a date: paid stays
// paid, anything unpaid past its due date reads overdue.
func (d DebtInstallment) EffectiveStatus(asOf time.Time) DebtStatus {
	if d.Status == DebtPaid {
		return DebtPaid
	}
	if d.DueDate.Before(asOf) {
		return DebtOverdue
	}
	return DebtActive
}
