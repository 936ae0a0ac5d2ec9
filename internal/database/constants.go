package database

// Pool sizing
const (
	// DefaultMinConnections keeps a couple of warm connections so the first
	// requests after an idle period don't pay the connect cost
	DefaultMinConnections = 2

	// PingTimeout bounds the startup connectivity check
	PingTimeout = 5 // seconds
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgConnectedToDatabase = "Connected to the database"
)
