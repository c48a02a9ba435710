package consts

const (
	TrendingKey       = "feed:trending:"
	WeightOverrideKey = "feed:weights:"
	ProfileDirtyKey   = "feed:profile:dirty"
)

const (
	PreferenceLock = "lock:preference:"
)
