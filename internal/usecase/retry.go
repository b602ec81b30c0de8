package usecase

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

const (
	maxTxAttempts  = 3
	txRetryBackoff = 50 * time.Millisecond
)

// isTransientError reports whether a storage error is worth retrying.
// Serialization failures and deadlocks are expected under the per-doctor
// row lock; anything else (validation, constraint violations, connection
// loss mid-commit) is returned to the caller immediately.
func isTransientError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 = serialization_failure, 40P01 = deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// runInTxWithRetry executes fn up to maxTxAttempts times, backing off
// between attempts. fn must be a self-contained transaction: it opens,
// commits or rolls back its own tx so a retry starts clean.
func runInTxWithRetry(log *logrus.Logger, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = fn()
		if err == nil || !isTransientError(err) {
			return err
		}
		log.Warnf("Transient storage error (attempt %d/%d): %+v", attempt, maxTxAttempts, err)
		if attempt < maxTxAttempts {
			time.Sleep(txRetryBackoff * time.Duration(attempt))
		}
	}
	return err
}
