package usecases

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
	"github.com/tenurelab/tenure-backend/usecases/executor_factory"
)

type OutreachUsecaseRepository interface {
	GetClientsByIds(ctx context.Context, exec repositories.Executor,
		clientIds []int64) ([]models.Client, error)
	CreateOutboundCall(ctx context.Context, tx repositories.Transaction,
		call models.CreateOutboundCall, phone string) error
	CreateOutboundTexts(ctx context.Context, tx repositories.Transaction,
		messages models.CreateOutboundMessages, phonesByClientId map[int64]string) error
	CreateOutboundEmails(ctx context.Context, tx repositories.Transaction,
		messages models.CreateOutboundMessages, emailsByClientId map[int64]string) error
}

// OutreachUsecase records operator contact attempts (calls, texts, emails)
// against clients. Phone numbers and email addresses are always resolved from
// the client records at write time, never taken from the request.
type OutreachUsecase struct {
	transactionFactory executor_factory.TransactionFactory
	repository         OutreachUsecaseRepository
}

func (usecase *OutreachUsecase) LogCall(ctx context.Context, call models.CreateOutboundCall) error {
	if !slices.Contains(models.ValidCallStatuses, call.CallStatus) {
		return errors.Wrapf(models.BadParameterError, "invalid call status %q", call.CallStatus)
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		clients, err := usecase.repository.GetClientsByIds(ctx, tx, []int64{call.ClientId})
		if err != nil {
			return err
		}
		if len(clients) == 0 {
			return errors.Wrapf(models.ErrUnknownClient, "client %d", call.ClientId)
		}
		if clients[0].Phone == "" {
			return errors.Wrapf(models.BadParameterError,
				"client %d has no phone number on file", call.ClientId)
		}

		return usecase.repository.CreateOutboundCall(ctx, tx, call, clients[0].Phone)
	})
}

// LogTexts writes one outbound text row per client. Any unknown client fails
// the whole batch, so either every row is recorded or none.
func (usecase *OutreachUsecase) LogTexts(ctx context.Context, messages models.CreateOutboundMessages) error {
	if err := validateMessages(messages); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		clients, err := usecase.repository.GetClientsByIds(ctx, tx, messages.ClientIds)
		if err != nil {
			return err
		}

		phonesByClientId := make(map[int64]string, len(clients))
		for _, client := range clients {
			phonesByClientId[client.ClientId] = client.Phone
		}
		for _, clientId := range messages.ClientIds {
			phone, ok := phonesByClientId[clientId]
			if !ok {
				return errors.Wrapf(models.ErrUnknownClient, "client %d", clientId)
			}
			if phone == "" {
				return errors.Wrapf(models.BadParameterError,
					"client %d has no phone number on file", clientId)
			}
		}

		return usecase.repository.CreateOutboundTexts(ctx, tx, messages, phonesByClientId)
	})
}

// LogEmails mirrors LogTexts with the client email as recipient. Clients
// without an email address on file are rejected before anything is written.
func (usecase *OutreachUsecase) LogEmails(ctx context.Context, messages models.CreateOutboundMessages) error {
	if err := validateMessages(messages); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		clients, err := usecase.repository.GetClientsByIds(ctx, tx, messages.ClientIds)
		if err != nil {
			return err
		}

		clientsById := make(map[int64]models.Client, len(clients))
		for _, client := range clients {
			clientsById[client.ClientId] = client
		}

		emailsByClientId := make(map[int64]string, len(clients))
		for _, clientId := range messages.ClientIds {
			client, ok := clientsById[clientId]
			if !ok {
				return errors.Wrapf(models.ErrUnknownClient, "client %d", clientId)
			}
			if !client.Email.Valid {
				return errors.Wrapf(models.BadParameterError,
					"client %d has no email address on file", clientId)
			}
			emailsByClientId[clientId] = client.Email.String
		}

		return usecase.repository.CreateOutboundEmails(ctx, tx, messages, emailsByClientId)
	})
}

func validateMessages(messages models.CreateOutboundMessages) error {
	if len(messages.ClientIds) == 0 {
		return errors.Wrap(models.BadParameterError, "no client ids provided")
	}
	if !slices.Contains(models.ValidMessageStatuses, messages.SentStatus) {
		return errors.Wrapf(models.BadParameterError, "invalid sent status %q", messages.SentStatus)
	}
	return nil
}
