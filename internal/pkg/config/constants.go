package config

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
	MysqlDbType    = "mysql"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Mail provider constants
const (
	MailProviderSMTP   = "smtp"
	MailProviderResend = "resend"
	MailProviderNoop   = "noop"
)

// Media storage provider constants
const (
	MediaProviderLocal = "local"
	MediaProviderAzure = "azure"
)
