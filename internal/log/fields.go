package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldTournament    = "tournament"
	FieldCategory      = "category"
	FieldTotalCents    = "total_cents"
	FieldMatchWins     = "match_wins"
	FieldRankingPoints = "ranking_points"
	FieldRowRef        = "row_ref"
	FieldExportRef     = "export_ref"
	FieldExportRows    = "export_rows"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentLedger   = "ledger"
	ComponentExport   = "export"
	ComponentSheets   = "sheets"
	ComponentSecurity = "security"
	ComponentTrace    = "trace"
)

// Operations defines standard operation names
const (
	OpAppend   = "append"
	OpDerive   = "derive"
	OpRender   = "render"
	OpExport   = "export"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
