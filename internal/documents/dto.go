package documents

// ListResponse is the collection-read payload. Pagination is declared
// unimplemented, so HasMore is always false.
type ListResponse struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
	HasMore   bool       `json:"hasMore"`
}

// ConflictDetails echoes the stored state back to a client that lost the
// optimistic-concurrency check, so it can merge or retry.
type ConflictDetails struct {
	CurrentVersion int64    `json:"currentVersion"`
	ConflictData   Document `json:"conflictData"`
}

// DeleteResponse carries the confirmation message for a hard delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
