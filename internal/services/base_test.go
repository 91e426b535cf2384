package services_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/kwizera-io/go-momo-etl/internal/common/idgenerator"
	"github.com/kwizera-io/go-momo-etl/internal/common/log"
	"github.com/kwizera-io/go-momo-etl/internal/config"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/repositories/mock"
	"github.com/kwizera-io/go-momo-etl/internal/services"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

const (
	testOwnerFullName    = "Account Owner"
	testOwnerPhoneNumber = "250788000000"
)

// decimalComparer lets cmp.Diff compare decimals by value instead of by
// internal representation.
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

type testServiceHelper struct {
	mockCtrl                 *gomock.Controller
	config                   config.Config
	mockSQLRepository        *mock.MockSQLRepository
	mockUserRepository       *mock.MockUserRepository
	mockCategoryRepository   *mock.MockCategoryRepository
	mockTrxRepository        *mock.MockTransactionRepository
	mockDeadLetterRepository *mock.MockDeadLetterRepository

	pipelineService services.PipelineService
	categoryService services.CategoryService
	seederService   services.SeederService
}

func serviceTestHelper(t *testing.T) *testServiceHelper {
	mockCtrl := gomock.NewController(t)

	helper := &testServiceHelper{
		mockCtrl: mockCtrl,
		config: config.Config{
			ETL: config.ETL{
				OwnerFullName:    testOwnerFullName,
				OwnerPhoneNumber: testOwnerPhoneNumber,
			},
		},
		mockSQLRepository:        mock.NewMockSQLRepository(mockCtrl),
		mockUserRepository:       mock.NewMockUserRepository(mockCtrl),
		mockCategoryRepository:   mock.NewMockCategoryRepository(mockCtrl),
		mockTrxRepository:        mock.NewMockTransactionRepository(mockCtrl),
		mockDeadLetterRepository: mock.NewMockDeadLetterRepository(mockCtrl),
	}

	svc := services.New(helper.config, helper.mockSQLRepository, idgenerator.New(), services.DefaultRules())
	helper.pipelineService = svc.Pipeline
	helper.categoryService = svc.Category
	helper.seederService = svc.Seeder

	return helper
}

// storedCategories is the default category set as the store would return it.
func storedCategories() []models.Category {
	categories := services.DefaultCategories()
	for i := range categories {
		categories[i].ID = i + 1
	}
	return categories
}
