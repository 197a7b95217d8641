package redis

// Key patterns for Redis keys.
const (
	KeyPatternQuota = "quota:%s:%s" // key, date
	KeyPatternStats = "stats:%s"    // date
)
