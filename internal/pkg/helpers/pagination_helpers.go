package helpers

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizeOffsetLimit clamps a requested offset and limit. A non-positive
// limit falls back to defaultLimit and limits above maxLimit are capped.
func NormalizeOffsetLimit(offset, limit, defaultLimit, maxLimit int) (int, int) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageSize
	}
	if maxLimit <= 0 {
		maxLimit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

// CalculateSliceIndices calculates the start and end indices for slicing an
// array of totalItems elements. Negative offset or limit count as zero.
func CalculateSliceIndices(offset, limit, totalItems int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	start = offset
	if start > totalItems {
		start = totalItems
	}
	end = start + limit
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
