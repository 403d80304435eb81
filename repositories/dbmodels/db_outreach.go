package dbmodels

const (
	TABLE_OUTBOUND_CALLS  = "outbound_calls"
	TABLE_OUTBOUND_TEXTS  = "outbound_texts"
	TABLE_OUTBOUND_EMAILS = "outbound_emails"
)
