package analytics

import "github.com/yigit/alumnisphere/internal/pkg/helpers"

// Paginate returns the [offset, offset+limit) window of items. An offset past
// the end yields an empty slice; negative inputs are treated as zero.
func Paginate[T any](items []T, offset, limit int) []T {
	start, end := helpers.CalculateSliceIndices(offset, limit, len(items))
	return items[start:end]
}
