package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tenurelab/tenure-backend/mocks"
	"github.com/tenurelab/tenure-backend/models"
)

type OutreachUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.OutreachUsecaseRepository
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction
}

func (suite *OutreachUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.OutreachUsecaseRepository)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
}

func (suite *OutreachUsecaseTestSuite) makeUsecase() *OutreachUsecase {
	return &OutreachUsecase{
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
	}
}

func (suite *OutreachUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.transaction.AssertExpectations(t)
}

func outreachTestClient(clientId int64, phone string, email null.String) models.Client {
	birthDate := time.Date(1988, time.March, 12, 0, 0, 0, 0, time.UTC)
	return models.Client{
		ClientId:       clientId,
		Gender:         "Female",
		BirthDate:      &birthDate,
		Phone:          phone,
		MobileOperator: "Geocell",
		Email:          email,
	}
}

func (suite *OutreachUsecaseTestSuite) TestLogCallRejectsUnknownStatus() {
	ctx := context.Background()

	err := suite.makeUsecase().LogCall(ctx, models.CreateOutboundCall{
		ClientId:   101,
		CallStatus: "Busy",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogCallUnknownClient() {
	ctx := context.Background()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetClientsByIds", ctx, suite.transaction, []int64{101}).
		Return([]models.Client{}, nil)

	err := suite.makeUsecase().LogCall(ctx, models.CreateOutboundCall{
		ClientId:   101,
		CallStatus: models.CallAccepted,
	})

	suite.ErrorIs(err, models.ErrUnknownClient)
	suite.repository.AssertNotCalled(suite.T(), "CreateOutboundCall",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogCallRejectsClientWithoutPhone() {
	ctx := context.Background()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetClientsByIds", ctx, suite.transaction, []int64{101}).
		Return([]models.Client{outreachTestClient(101, "", null.String{})}, nil)

	err := suite.makeUsecase().LogCall(ctx, models.CreateOutboundCall{
		ClientId:   101,
		CallStatus: models.CallRejected,
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogCallRecordsThePhoneOnFile() {
	ctx := context.Background()
	call := models.CreateOutboundCall{
		ClientId:     101,
		CallStatus:   models.CallAccepted,
		OperatorName: "n.beridze",
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetClientsByIds", ctx, suite.transaction, []int64{101}).
		Return([]models.Client{outreachTestClient(101, "+995551112233", null.String{})}, nil)
	suite.repository.On("CreateOutboundCall", ctx, suite.transaction, call, "+995551112233").
		Return(nil)

	err := suite.makeUsecase().LogCall(ctx, call)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogTextsRejectsEmptyBatch() {
	ctx := context.Background()

	err := suite.makeUsecase().LogTexts(ctx, models.CreateOutboundMessages{
		SentStatus: models.MessageDelivered,
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogTextsRejectsUnknownStatus() {
	ctx := context.Background()

	err := suite.makeUsecase().LogTexts(ctx, models.CreateOutboundMessages{
		ClientIds:  []int64{101},
		SentStatus: "Pending",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogTextsFailsTheWholeBatchOnUnknownClient() {
	ctx := context.Background()
	messages := models.CreateOutboundMessages{
		ClientIds:  []int64{101, 102},
		SentStatus: models.MessageDelivered,
		Content:    "Your payment is due on Friday.",
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetClientsByIds", ctx, suite.transaction, []int64{101, 102}).
		Return([]models.Client{outreachTestClient(101, "+995551112233", null.String{})}, nil)

	err := suite.makeUsecase().LogTexts(ctx, messages)

	suite.ErrorIs(err, models.ErrUnknownClient)
	suite.repository.AssertNotCalled(suite.T(), "CreateOutboundTexts",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogTextsRecordsOneRowPerClient() {
	ctx := context.Background()
	messages := models.CreateOutboundMessages{
		ClientIds:  []int64{101, 102},
		SentStatus: models.MessageDelivered,
		Content:    "Your payment is due on Friday.",
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetClientsByIds", ctx, suite.transaction, []int64{101, 102}).
		Return([]models.Client{
			outreachTestClient(101, "+995551112233", null.String{}),
			outreachTestClient(102, "+995551114455", null.String{}),
		}, nil)
	suite.repository.On("CreateOutboundTexts", ctx, suite.transaction, messages,
		map[int64]string{101: "+995551112233", 102: "+995551114455"}).Return(nil)

	err := suite.makeUsecase().LogTexts(ctx, messages)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogEmailsRejectsClientWithoutEmail() {
	ctx := context.Background()
	messages := models.CreateOutboundMessages{
		ClientIds:  []int64{101},
		SentStatus: models.MessageDelivered,
		Content:    "Contract renewal details attached.",
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetClientsByIds", ctx, suite.transaction, []int64{101}).
		Return([]models.Client{outreachTestClient(101, "+995551112233", null.String{})}, nil)

	err := suite.makeUsecase().LogEmails(ctx, messages)

	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "CreateOutboundEmails",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *OutreachUsecaseTestSuite) TestLogEmailsRecordsTheEmailOnFile() {
	ctx := context.Background()
	messages := models.CreateOutboundMessages{
		ClientIds:  []int64{101},
		SentStatus: models.MessageFailed,
		Content:    "Contract renewal details attached.",
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetClientsByIds", ctx, suite.transaction, []int64{101}).
		Return([]models.Client{
			outreachTestClient(101, "+995551112233", null.StringFrom("n.k@example.com")),
		}, nil)
	suite.repository.On("CreateOutboundEmails", ctx, suite.transaction, messages,
		map[int64]string{101: "n.k@example.com"}).Return(nil)

	err := suite.makeUsecase().LogEmails(ctx, messages)

	suite.NoError(err)
	suite.AssertExpectations()
}

func TestOutreachUsecaseSuite(t *testing.T) {
	suite.Run(t, new(OutreachUsecaseTestSuite))
}
