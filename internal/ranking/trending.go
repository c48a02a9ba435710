package ranking

import (
	"math"
	"sort"
	"time"
)

// ComputeTrending 与个性化权重无关的全站趋势计算。
// 速度在当前批次内做 min-max 归一化，保证榜首得分接近 1.0
// 而不依赖绝对流量水平；空批次返回空榜单而非报错。
func ComputeTrending(now time.Time, candidates []PostCandidate, timeframe Timeframe, limit int, cfg Config) []TrendingEntry {
	if len(candidates) == 0 {
		return []TrendingEntry{}
	}
	if limit <= 0 {
		limit = cfg.TrendingDefaultLimit
	}

	refRate := cfg.viralityReference(timeframe)

	velocities := make([]float64, len(candidates))
	minV, maxV := math.Inf(1), math.Inf(-1)
	for i, c := range candidates {
		v := engagementVelocity(c.Counters, c.CreatedAt, now)
		velocities[i] = v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	type scored struct {
		entry    TrendingEntry
		velocity float64
		index    int
	}

	entries := make([]scored, len(candidates))
	for i, c := range candidates {
		v := velocities[i]

		var normalized float64
		switch {
		case maxV > minV:
			normalized = (v - minV) / (maxV - minV)
		case maxV > 0:
			// 全批次速度相同且非零，统一视为榜首水平
			normalized = 1
		}

		virality := math.Min(1, v/refRate)

		views := c.Counters.Views
		if views < 1 {
			views = 1
		}

		entries[i] = scored{
			velocity: v,
			index:    i,
			entry: TrendingEntry{
				PostID:        c.ID,
				TrendingScore: 0.7*normalized + 0.3*virality,
				Timeframe:     timeframe,
				Metrics: TrendingMetrics{
					EngagementVelocity: v,
					ShareRate:          float64(c.Counters.Shares) / float64(views),
					CommentRate:        float64(c.Counters.Comments) / float64(views),
					UniqueViewers:      c.Counters.Views,
				},
			},
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].entry.TrendingScore != entries[j].entry.TrendingScore {
			return entries[i].entry.TrendingScore > entries[j].entry.TrendingScore
		}
		// 同分按原始速度，再退回输入顺序保证确定性
		if entries[i].velocity != entries[j].velocity {
			return entries[i].velocity > entries[j].velocity
		}
		return entries[i].index < entries[j].index
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]TrendingEntry, len(entries))
	for i, e := range entries {
		out[i] = e.entry
	}
	return out
}
