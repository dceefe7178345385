package invoiceiq

import "github.com/google/uuid"

// NewIdempotencyKey mints a random key for the Idempotency-Key header on
// submission calls. Reusing one key across retries of the same submission
// lets the server deduplicate it.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
