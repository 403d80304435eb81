package dto

import "github.com/tenurelab/tenure-backend/models"

type CreateCallBody struct {
	ClientId     int64   `json:"client_id" binding:"required"`
	CallStatus   string  `json:"call_status" binding:"required"`
	Comment      *string `json:"comment"`
	OperatorName string  `json:"operator_name"`
}

func AdaptCreateOutboundCall(body CreateCallBody) models.CreateOutboundCall {
	return models.CreateOutboundCall{
		ClientId:     body.ClientId,
		CallStatus:   models.CallStatus(body.CallStatus),
		Comment:      body.Comment,
		OperatorName: body.OperatorName,
	}
}

type CreateMessagesBody struct {
	ClientIds  []int64 `json:"client_ids" binding:"required,min=1"`
	SentStatus string  `json:"sent_status" binding:"required"`
	Content    string  `json:"content"`
}

func AdaptCreateOutboundMessages(body CreateMessagesBody) models.CreateOutboundMessages {
	return models.CreateOutboundMessages{
		ClientIds:  body.ClientIds,
		SentStatus: models.MessageStatus(body.SentStatus),
		Content:    body.Content,
	}
}
