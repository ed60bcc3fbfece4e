package storage

import "context"

// Keys for every persisted collection. The shapes stored under these keys are
// contractual; the key names themselves are an implementation detail.
const (
	KeyExpenses      = "expense-tracker-data"
	KeyExportHistory = "expense-export-history"
	KeySchedule      = "expense-export-schedule"
	KeyShares        = "expense-export-shares"
	KeyCloudServices = "expense-cloud-services"
)

// BlobStore persists whole collections as opaque blobs, one per key. There is
// no partial write: every mutation replaces the full value. Load returns
// (nil, nil) when no value has ever been stored under the key.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
