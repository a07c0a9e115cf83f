package datastore

import "context"

// RowFetcher is the contract of the external campaign data backend: an
// opaque row-fetching service keyed by table name. Implementations return
// rows in a stable order.
type RowFetcher interface {
	FetchRows(ctx context.Context, table string) ([]map[string]any, error)
}
