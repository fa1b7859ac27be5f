package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldBackend    = "backend"
	FieldCloser     = "closer"
	FieldShift      = "shift"
	FieldEntries    = "entries"
	FieldAmount     = "amount"
	FieldBatchTotal = "batch_total"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentClosing = "closing"
	ComponentLedger  = "ledger"
	ComponentWebhook = "webhook"
	ComponentSheets  = "sheets"
	ComponentAMQP    = "amqp"
)
