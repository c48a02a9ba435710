package ranking

// Diversify 在得分序上做贪心打散：维护最近 window 个已输出帖子的
// (品类, 作者) 滑动窗口，每一步在 lookahead 范围内寻找与窗口内
// 全部条目都不同的最高分候选并前置；找不到则按原序输出。
// 只重排、不增删，复杂度 O(n*lookahead)，刻意放弃全局最优换取延迟。
func Diversify(ranked []Result, candidates []PostCandidate, cfg Config) []Result {
	if len(ranked) <= 1 {
		return ranked
	}

	meta := make(map[uint64]*PostCandidate, len(candidates))
	for i := range candidates {
		meta[candidates[i].ID] = &candidates[i]
	}

	type windowEntry struct {
		category string
		authorID uint64
	}

	pending := make([]Result, len(ranked))
	copy(pending, ranked)

	out := make([]Result, 0, len(ranked))
	window := make([]windowEntry, 0, cfg.DiversityWindow)

	conflicts := func(postID uint64) bool {
		m, ok := meta[postID]
		if !ok {
			return false
		}
		for _, w := range window {
			if w.category == m.Category || w.authorID == m.AuthorID {
				return true
			}
		}
		return false
	}

	for len(pending) > 0 {
		pick := 0
		if conflicts(pending[0].PostID) {
			limit := cfg.DiversityLookahead
			if limit > len(pending)-1 {
				limit = len(pending) - 1
			}
			for i := 1; i <= limit; i++ {
				if !conflicts(pending[i].PostID) {
					pick = i
					break
				}
			}
		}

		chosen := pending[pick]
		pending = append(pending[:pick], pending[pick+1:]...)
		out = append(out, chosen)

		if m, ok := meta[chosen.PostID]; ok {
			window = append(window, windowEntry{category: m.Category, authorID: m.AuthorID})
			if len(window) > cfg.DiversityWindow {
				window = window[1:]
			}
		}
	}

	return out
}
