package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kwizera-io/go-momo-etl/internal/config"
	"github.com/kwizera-io/go-momo-etl/internal/models"
)

func TestTransactionRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(transactionTestSuite))
}

type transactionTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    TransactionRepository
}

func (suite *transactionTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetTransactionRepository()
}

func (suite *transactionTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func testTransactionIn() *models.Transaction {
	return &models.Transaction{
		Amount:          decimal.NewFromInt(2000),
		Fee:             decimal.Zero,
		Balance:         decimal.NewFromInt(2000),
		InitialBalance:  decimal.Zero,
		SenderUserID:    2,
		ReceiverUserID:  1,
		TransactionDate: time.Date(2024, 5, 10, 21, 30, 51, 0, time.UTC),
		CategoryID:      1,
		Reference:       "76662021700",
	}
}

func (suite *transactionTestSuite) TestRepository_Upsert() {
	type args struct {
		ctx        context.Context
		in         *models.Transaction
		setupMocks func()
	}

	testCases := []struct {
		name         string
		args         args
		wantInserted bool
		wantErr      bool
	}{
		{
			name: "test inserts a new row",
			args: args{
				ctx: context.Background(),
				in:  testTransactionIn(),
				setupMocks: func() {
					rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(10))
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionUpsert)).WillReturnRows(rows)
				},
			},
			wantInserted: true,
		},
		{
			name: "test conflicting reference is a no-op",
			args: args{
				ctx: context.Background(),
				in:  testTransactionIn(),
				setupMocks: func() {
					// DO NOTHING yields zero rows from RETURNING
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionUpsert)).
						WillReturnRows(sqlmock.NewRows([]string{"id"}))
				},
			},
			wantInserted: false,
		},
		{
			name: "test error result",
			args: args{
				ctx: context.TODO(),
				in:  testTransactionIn(),
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionUpsert)).WillReturnError(assert.AnError)
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.args.setupMocks()

			inserted, err := suite.repo.Upsert(tt.args.ctx, tt.args.in)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantInserted, inserted)
			if tt.wantInserted {
				assert.Equal(t, int64(10), tt.args.in.ID)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *transactionTestSuite) TestRepository_GetByReference() {
	now := time.Now()

	type args struct {
		ctx        context.Context
		reference  string
		setupMocks func()
	}

	testCases := []struct {
		name     string
		args     args
		wantNil  bool
		wantErr  bool
		wantInit decimal.Decimal
	}{
		{
			name: "test success",
			args: args{
				ctx:       context.Background(),
				reference: "76662021700",
				setupMocks: func() {
					rows := sqlmock.NewRows([]string{
						"id", "fee", "amount", "balance", "initialBalance",
						"senderUserId", "receiverUserId", "transactionDate",
						"categoryId", "reference", "createdAt",
					}).AddRow(int64(10), "0", "2000", "2000", "0",
						int64(2), int64(1), time.Date(2024, 5, 10, 21, 30, 51, 0, time.UTC),
						1, "76662021700", now)
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionGetByReference)).
						WithArgs("76662021700").
						WillReturnRows(rows)
				},
			},
			wantInit: decimal.Zero,
		},
		{
			name: "test data not found",
			args: args{
				ctx:       context.Background(),
				reference: "0",
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionGetByReference)).WillReturnError(sql.ErrNoRows)
				},
			},
			wantNil: true,
		},
		{
			name: "test error result",
			args: args{
				ctx: context.TODO(),
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionGetByReference)).WillReturnError(assert.AnError)
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.args.setupMocks()

			got, err := suite.repo.GetByReference(tt.args.ctx, tt.args.reference)
			assert.Equal(t, tt.wantErr, err != nil)
			if tt.wantErr || tt.wantNil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tt.args.reference, got.Reference)
				assert.True(t, got.Amount.Equal(decimal.NewFromInt(2000)))
				assert.True(t, got.InitialBalance.Equal(tt.wantInit))
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *transactionTestSuite) TestRepository_CountAll() {
	testCases := []struct {
		name       string
		setupMocks func()
		want       int64
		wantErr    bool
	}{
		{
			name: "test success",
			setupMocks: func() {
				rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(7))
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionCountAll)).WillReturnRows(rows)
			},
			want: 7,
		},
		{
			name: "test error result",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionCountAll)).WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			got, err := suite.repo.CountAll(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
