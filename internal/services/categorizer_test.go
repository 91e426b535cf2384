package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kwizera-io/go-momo-etl/internal/common"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/services"
)

func TestNewCategorizer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		helper := serviceTestHelper(t)
		defer helper.mockCtrl.Finish()

		helper.mockCategoryRepository.EXPECT().List(gomock.Any()).Return(storedCategories(), nil)

		categorizer, err := services.NewCategorizer(context.Background(), services.DefaultRules(), helper.mockCategoryRepository)
		require.NoError(t, err)
		assert.NotNil(t, categorizer)
	})

	t.Run("store failure", func(t *testing.T) {
		helper := serviceTestHelper(t)
		defer helper.mockCtrl.Finish()

		helper.mockCategoryRepository.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		_, err := services.NewCategorizer(context.Background(), services.DefaultRules(), helper.mockCategoryRepository)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("rule without a stored category", func(t *testing.T) {
		helper := serviceTestHelper(t)
		defer helper.mockCtrl.Finish()

		// category table is missing the WITHDRAWAL/CASH pair
		helper.mockCategoryRepository.EXPECT().List(gomock.Any()).Return(storedCategories()[2:], nil)

		_, err := services.NewCategorizer(context.Background(), services.DefaultRules(), helper.mockCategoryRepository)
		assert.ErrorIs(t, err, common.ErrCategoryNotFound)
	})
}

func TestCategorizer_Categorize(t *testing.T) {
	newCategorizer := func(t *testing.T) *services.Categorizer {
		helper := serviceTestHelper(t)
		t.Cleanup(helper.mockCtrl.Finish)

		helper.mockCategoryRepository.EXPECT().List(gomock.Any()).Return(storedCategories(), nil)

		categorizer, err := services.NewCategorizer(context.Background(), services.DefaultRules(), helper.mockCategoryRepository)
		require.NoError(t, err)
		return categorizer
	}

	tests := []struct {
		name                string
		body                string
		wantTransactionType string
		wantPaymentType     string
		wantRejected        bool
	}{
		{
			name:                "agent withdrawal",
			body:                "You have via agent: Agent Sophia (250790777777), withdrawn 50000 RWF. Your new balance: 200000 RWF.",
			wantTransactionType: models.TransactionTypeWithdrawal,
			wantPaymentType:     models.PaymentTypeCash,
		},
		{
			name:                "incoming transfer",
			body:                "You have received 2000 RWF from Jane Smith (*********013). Your new balance:2000 RWF.",
			wantTransactionType: models.TransactionTypeDeposit,
			wantPaymentType:     models.PaymentTypeIncoming,
		},
		{
			name:                "merchant payment",
			body:                "TxId: 73214484437. Your payment of 1,000 RWF to Jane Smith 12845 has been completed.",
			wantTransactionType: models.TransactionTypePayment,
			wantPaymentType:     models.PaymentTypeMerchant,
		},
		{
			name:                "airtime purchase",
			body:                "TxId:13913173324. Your payment of 2000 RWF to Airtime with token has been completed.",
			wantTransactionType: models.TransactionTypeAirtime,
			wantPaymentType:     models.PaymentTypeVendor,
		},
		{
			name:                "peer transfer",
			body:                "*165*S*10000 RWF transferred to Samuel Carter (250791666661) from 36521838 at 2024-05-11 20:34:47. Fee was: 100 RWF. New balance: 28300 RWF.",
			wantTransactionType: models.TransactionTypeTransfer,
			wantPaymentType:     models.PaymentTypePeer,
		},
		{
			name:                "bank deposit",
			body:                "*113*R*A bank deposit of 40000 RWF has been added to your mobile money account at 2024-05-27 10:30:51. Your NEW BALANCE: 70400 RWF.",
			wantTransactionType: models.TransactionTypeBankDeposit,
			wantPaymentType:     models.PaymentTypeBank,
		},
		{
			// "withdrawn" and "transferred to" both appear; slice order
			// decides, so the withdrawal rule wins
			name:                "overlapping wordings resolve by rule order",
			body:                "You have withdrawn 5000 RWF which was transferred to your agent.",
			wantTransactionType: models.TransactionTypeWithdrawal,
			wantPaymentType:     models.PaymentTypeCash,
		},
		{
			name:         "unknown wording",
			body:         "Your OTP code is 123456.",
			wantRejected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categorizer := newCategorizer(t)

			category, rej := categorizer.Categorize(&models.TransactionDraft{Body: tt.body})

			if tt.wantRejected {
				require.Nil(t, category)
				require.NotNil(t, rej)
				assert.Equal(t, models.StageCategorize, rej.Stage)
				assert.ErrorIs(t, rej, common.ErrUncategorized)
				return
			}

			require.Nil(t, rej)
			require.NotNil(t, category)
			assert.Equal(t, tt.wantTransactionType, category.TransactionType)
			assert.Equal(t, tt.wantPaymentType, category.PaymentType)
			assert.NotZero(t, category.ID)
		})
	}
}
