package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Ranking error messages
	ErrMsgRankFailed = "Failed to rank inflatables"

	// Sync error messages
	ErrMsgSyncFailed          = "Failed to sync catalog"
	ErrMsgSyncItemFailed      = "Failed to sync inflatable"
	ErrMsgMissingInflatableID = "Missing inflatable_id"
)
