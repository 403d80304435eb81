package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
)

type OutreachUsecaseRepository struct {
	mock.Mock
}

func (_m *OutreachUsecaseRepository) GetClientsByIds(ctx context.Context,
	exec repositories.Executor, clientIds []int64,
) ([]models.Client, error) {
	args := _m.Called(ctx, exec, clientIds)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (_m *OutreachUsecaseRepository) CreateOutboundCall(ctx context.Context,
	tx repositories.Transaction, call models.CreateOutboundCall, phone string,
) error {
	args := _m.Called(ctx, tx, call, phone)
	return args.Error(0)
}

func (_m *OutreachUsecaseRepository) CreateOutboundTexts(ctx context.Context,
	tx repositories.Transaction, messages models.CreateOutboundMessages,
	phonesByClientId map[int64]string,
) error {
	args := _m.Called(ctx, tx, messages, phonesByClientId)
	return args.Error(0)
}

func (_m *OutreachUsecaseRepository) CreateOutboundEmails(ctx context.Context,
	tx repositories.Transaction, messages models.CreateOutboundMessages,
	emailsByClientId map[int64]string,
) error {
	args := _m.Called(ctx, tx, messages, emailsByClientId)
	return args.Error(0)
}
