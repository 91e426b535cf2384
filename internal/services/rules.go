package services

import "github.com/kwizera-io/go-momo-etl/internal/models"

// DefaultRules is the ordered rule table for the mobile money SMS feed.
// Order is deliberate: the withdrawal and bank deposit wordings contain words
// that the broader transfer/deposit rules would also match, so the specific
// rules come first.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		KeywordRule("agent-withdrawal",
			models.TransactionTypeWithdrawal, models.PaymentTypeCash,
			"withdrawn"),
		KeywordRule("bank-deposit",
			models.TransactionTypeBankDeposit, models.PaymentTypeBank,
			"bank deposit"),
		KeywordRule("incoming-deposit",
			models.TransactionTypeDeposit, models.PaymentTypeIncoming,
			"received"),
		KeywordRule("airtime-purchase",
			models.TransactionTypeAirtime, models.PaymentTypeVendor,
			"airtime"),
		KeywordRule("merchant-payment",
			models.TransactionTypePayment, models.PaymentTypeMerchant,
			"payment of"),
		KeywordRule("peer-transfer",
			models.TransactionTypeTransfer, models.PaymentTypePeer,
			"transferred to"),
	}
}

// DefaultCategories is the closed category set the default rules resolve
// against. `etl seed` upserts it.
func DefaultCategories() []models.Category {
	return []models.Category{
		{TransactionType: models.TransactionTypeDeposit, PaymentType: models.PaymentTypeIncoming},
		{TransactionType: models.TransactionTypeWithdrawal, PaymentType: models.PaymentTypeCash},
		{TransactionType: models.TransactionTypePayment, PaymentType: models.PaymentTypeMerchant},
		{TransactionType: models.TransactionTypeTransfer, PaymentType: models.PaymentTypePeer},
		{TransactionType: models.TransactionTypeAirtime, PaymentType: models.PaymentTypeVendor},
		{TransactionType: models.TransactionTypeBankDeposit, PaymentType: models.PaymentTypeBank},
	}
}
