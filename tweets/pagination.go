package tweets

// FeedPageSize is the fixed page size for tweet timelines.
const FeedPageSize = 10

// NormalizePage coerces absent or invalid page numbers to the first page.
// Pages are 1-indexed.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// PageWindow converts a 1-indexed page into a LIMIT/OFFSET window.
func PageWindow(page, limit int) (offset int, normalized int) {
	normalized = NormalizePage(page)
	return (normalized - 1) * limit, normalized
}

// HomeFilter builds the author filter for a home feed: the viewer plus
// everyone they follow. The viewer is always included, so a fresh account
// sees its own tweets.
func HomeFilter(viewerID int64, followingIDs []int64) []int64 {
	filter := make([]int64, 0, len(followingIDs)+1)
	filter = append(filter, viewerID)
	filter = append(filter, followingIDs...)
	return filter
}
