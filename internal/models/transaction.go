package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// TransactionDateLayout is the canonical timezone-naive form every
	// transaction date is normalized into before it reaches the store.
	TransactionDateLayout = "2006-01-02 15:04:05"

	BatchIDPrefix = "BATCH"
)

// Transaction is the canonical, fully typed representation of one mobile
// money transaction, independent of how the source SMS was worded.
type Transaction struct {
	ID              int64           `json:"id"`
	Amount          decimal.Decimal `json:"amount" validate:"dgt"`
	Fee             decimal.Decimal `json:"fee" validate:"dgte"`
	Balance         decimal.Decimal `json:"balance" validate:"dgte"`
	InitialBalance  decimal.Decimal `json:"initialBalance" validate:"dgte"`
	SenderUserID    int64           `json:"senderUserId" validate:"required"`
	ReceiverUserID  int64           `json:"receiverUserId" validate:"required,nefield=SenderUserID"`
	TransactionDate time.Time       `json:"transactionDate"`
	CategoryID      int             `json:"categoryId" validate:"required"`
	Reference       string          `json:"reference" validate:"required"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
}

// TransactionDraft is the normalizer output before a category is assigned.
// Sender and receiver are already resolved users; Body is carried along for
// the categorizer's keyword rules.
type TransactionDraft struct {
	Amount          decimal.Decimal
	Fee             decimal.Decimal
	Balance         decimal.Decimal
	InitialBalance  decimal.Decimal
	Sender          User
	Receiver        User
	TransactionDate time.Time
	Reference       string
	Body            string
}

// ToTransaction fixes the draft into a loadable transaction once a category
// has been assigned.
func (d *TransactionDraft) ToTransaction(categoryID int) *Transaction {
	return &Transaction{
		Amount:          d.Amount,
		Fee:             d.Fee,
		Balance:         d.Balance,
		InitialBalance:  d.InitialBalance,
		SenderUserID:    d.Sender.ID,
		ReceiverUserID:  d.Receiver.ID,
		TransactionDate: d.TransactionDate,
		CategoryID:      categoryID,
		Reference:       d.Reference,
	}
}
