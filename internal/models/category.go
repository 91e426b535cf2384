package models

// Category is one entry of the closed (transaction type, payment type)
// lookup set. The pipeline only ever reads it; seeding happens out of band.
type Category struct {
	ID              int    `json:"id"`
	TransactionType string `json:"transactionType"`
	PaymentType     string `json:"paymentType"`
}

// Transaction types of the default category set.
const (
	TransactionTypeDeposit     = "DEPOSIT"
	TransactionTypeWithdrawal  = "WITHDRAWAL"
	TransactionTypePayment     = "PAYMENT"
	TransactionTypeTransfer    = "TRANSFER"
	TransactionTypeAirtime     = "AIRTIME"
	TransactionTypeBankDeposit = "BANK_DEPOSIT"
)

// Payment types of the default category set.
const (
	PaymentTypeIncoming = "INCOMING"
	PaymentTypeCash     = "CASH"
	PaymentTypeMerchant = "MERCHANT"
	PaymentTypePeer     = "PEER"
	PaymentTypeVendor   = "VENDOR"
	PaymentTypeBank     = "BANK"
)
