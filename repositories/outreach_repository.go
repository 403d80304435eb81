package repositories

import (
	"context"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories/dbmodels"
)

func (repo *TenureDbRepository) CreateOutboundCall(
	ctx context.Context,
	tx Transaction,
	call models.CreateOutboundCall,
	phone string,
) error {
	if err := validateDbExecutor(tx); err != nil {
		return err
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_OUTBOUND_CALLS).
		Columns(
			"client_id",
			"phone",
			"call_status",
			"comment",
			"operator_name",
		).
		Values(
			call.ClientId,
			phone,
			call.CallStatus,
			call.Comment,
			call.OperatorName,
		)

	return ExecBuilder(ctx, tx, query)
}

func (repo *TenureDbRepository) CreateOutboundTexts(
	ctx context.Context,
	tx Transaction,
	messages models.CreateOutboundMessages,
	phonesByClientId map[int64]string,
) error {
	if err := validateDbExecutor(tx); err != nil {
		return err
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_OUTBOUND_TEXTS).
		Columns(
			"client_id",
			"phone",
			"sent_status",
			"content",
		)
	for _, clientId := range messages.ClientIds {
		query = query.Values(
			clientId,
			phonesByClientId[clientId],
			messages.SentStatus,
			messages.Content,
		)
	}

	return ExecBuilder(ctx, tx, query)
}

func (repo *TenureDbRepository) CreateOutboundEmails(
	ctx context.Context,
	tx Transaction,
	messages models.CreateOutboundMessages,
	emailsByClientId map[int64]string,
) error {
	if err := validateDbExecutor(tx); err != nil {
		return err
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_OUTBOUND_EMAILS).
		Columns(
			"client_id",
			"email",
			"sent_status",
			"content",
		)
	for _, clientId := range messages.ClientIds {
		query = query.Values(
			clientId,
			emailsByClientId[clientId],
			messages.SentStatus,
			messages.Content,
		)
	}

	return ExecBuilder(ctx, tx, query)
}
