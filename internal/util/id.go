package util

import (
	"fmt"

	"github.com/google/uuid"
)

// NewTransactionID returns a payment transaction reference unique per attempt.
func NewTransactionID() string {
	return fmt.Sprintf("txn_%s", uuid.NewString())
}
