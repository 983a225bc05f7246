package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldRequestID    = "request_id"
	FieldMethod       = "method"
	FieldPath         = "path"
	FieldStatusCode   = "status_code"
	FieldDuration     = "duration_ms"
	FieldError        = "error"
	FieldOperation    = "operation"
	FieldExpenseID    = "expense_id"
	FieldSelectedDate = "selected_date"
	FieldPage         = "page"
	FieldCount        = "count"
	FieldUser         = "user"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentAPI        = "api"
	ComponentController = "controller"
	ComponentSession    = "session"
	ComponentCLI        = "cli"
)

// Operations defines standard operation names
const (
	OpList    = "list"
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpRefresh = "refresh"
	OpLogin   = "login"
	OpLogout  = "logout"
)
