package ranking

import "time"

// Timeframe 趋势统计的时间窗口
type Timeframe string

const (
	TimeframeHour Timeframe = "hour"
	TimeframeDay  Timeframe = "day"
	TimeframeWeek Timeframe = "week"
)

// Valid 是否为受支持的时间窗口
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeHour, TimeframeDay, TimeframeWeek:
		return true
	}
	return false
}

// Duration 时间窗口对应的时长
func (t Timeframe) Duration() time.Duration {
	switch t {
	case TimeframeHour:
		return time.Hour
	case TimeframeWeek:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// FollowerTier 作者粉丝量级
type FollowerTier string

const (
	TierNone   FollowerTier = "none"
	TierSmall  FollowerTier = "small"
	TierMedium FollowerTier = "medium"
	TierLarge  FollowerTier = "large"
)

// Factor 粉丝量级对应的影响力系数，未知量级按 0 处理
func (t FollowerTier) Factor() float64 {
	switch t {
	case TierSmall:
		return 0.33
	case TierMedium:
		return 0.66
	case TierLarge:
		return 1.0
	}
	return 0
}

// Counters 帖子的互动计数快照
type Counters struct {
	Likes    int64
	Comments int64
	Shares   int64
	Views    int64
}

// AuthorInfluence 作者影响力标记
type AuthorInfluence struct {
	IsInfluencer bool
	IsVerified   bool
	FollowerTier FollowerTier
}

// PostCandidate 参与排序的帖子快照，请求期间不可变
type PostCandidate struct {
	ID          uint64
	AuthorID    uint64
	Category    string
	LocationTag string
	Hashtags    []string
	CreatedAt   time.Time
	Counters    Counters
	Author      AuthorInfluence

	// ModerationScore 外部审核风险分 0-100，越高越可能被降权
	ModerationScore float64
	// QualityScore 外部质量分 0-100，缺省 50
	QualityScore float64
}

// Breakdown 四项加权贡献，用于排序结果的可解释性
type Breakdown struct {
	Recency         float64 `json:"recency"`
	Engagement      float64 `json:"engagement"`
	Relevance       float64 `json:"relevance"`
	AuthorInfluence float64 `json:"author_influence"`
}

// Result 单个帖子的排序产物，仅在请求内存活
type Result struct {
	PostID               uint64
	FinalScore           float64
	EngagementRate       float64
	ViralityScore        float64
	QualityScore         float64
	FreshnessScore       float64
	RelevanceScore       float64
	AuthorInfluenceScore float64
	Breakdown            Breakdown
}

// TrendingMetrics 趋势条目的辅助指标
type TrendingMetrics struct {
	EngagementVelocity float64 `json:"engagement_velocity"`
	ShareRate          float64 `json:"share_rate"`
	CommentRate        float64 `json:"comment_rate"`
	UniqueViewers      int64   `json:"unique_viewers"`
}

// TrendingEntry 全站趋势榜单条目
type TrendingEntry struct {
	PostID        uint64
	TrendingScore float64
	Timeframe     Timeframe
	Metrics       TrendingMetrics
}
