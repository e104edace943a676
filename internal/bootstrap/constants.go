package bootstrap

// Log messages for application shutdown
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgReindexShutdownFailed = "Reindex worker shutdown failed"
	LogMsgServerStopped         = "Server stopped"
)
