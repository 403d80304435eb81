package models

// CallStatus is the operator-reported outcome of an outbound call.
type CallStatus string

const (
	CallFailed   CallStatus = "Failed"
	CallRejected CallStatus = "Rejected"
	CallAccepted CallStatus = "Accepted"
)

var ValidCallStatuses = []CallStatus{CallFailed, CallRejected, CallAccepted}

// MessageStatus is the delivery outcome of an outbound text or email.
type MessageStatus string

const (
	MessageDelivered MessageStatus = "Delivered"
	MessageFailed    MessageStatus = "Failed"
)

var ValidMessageStatuses = []MessageStatus{MessageDelivered, MessageFailed}

type CreateOutboundCall struct {
	ClientId     int64
	CallStatus   CallStatus
	Comment      *string
	OperatorName string
}

type CreateOutboundMessages struct {
	ClientIds  []int64
	SentStatus MessageStatus
	Content    string
}
