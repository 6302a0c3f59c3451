package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// generateDocumentNumber produces the next document number for a tenant in the
// form <prefix>-YYYY-NNNNN (e.g. SI-2026-00042). The sequence restarts each
// year. Concurrent callers may race to the same candidate; the unique index on
// (tenant_id, number) rejects the loser and the request retries.
func generateDocumentNumber(ctx context.Context, db *gorm.DB, table, column, prefix string, tenantID uuid.UUID) (string, error) {
	yearPrefix := fmt.Sprintf("%s-%d-", prefix, time.Now().Year())

	var last string
	err := db.WithContext(ctx).
		Table(table).
		Select(column).
		Where("tenant_id = ? AND "+column+" LIKE ?", tenantID, yearPrefix+"%").
		Order(column + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("query last document number: %w", err)
	}

	var next int64 = 1
	if last != "" {
		parts := strings.Split(last, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				next = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%05d", yearPrefix, next), nil
}
