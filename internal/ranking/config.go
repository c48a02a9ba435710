package ranking

// Config 排序引擎的全部可调参数，零值字段在 WithDefaults 中补齐
type Config struct {
	// 新鲜度指数衰减半衰期，小时
	FreshnessHalfLifeHours float64
	// 互动率饱和点，超过后不再增加互动子分
	EngagementSaturation float64
	// 相关性中品类兴趣与作者亲和度的混合比例
	CategoryBlend float64
	AuthorBlend   float64
	// 审核风险的乘法惩罚系数，100 分风险最多损失 PenaltyFactor 的总分
	ModerationPenaltyFactor float64

	// 兴趣/亲和度的懒衰减半衰期，天
	InterestHalfLifeDays float64
	// 单次强化步长，乘以互动类型权重后累加
	ReinforcementStep float64
	// 作者亲和度表的容量上限，超出后按最久未强化淘汰
	AuthorAffinityCap int

	// 打散窗口与向前探查范围
	DiversityWindow    int
	DiversityLookahead int

	// 各时间窗口的病毒性参考速率，窗口越短门槛越高
	ViralityReferenceHour float64
	ViralityReferenceDay  float64
	ViralityReferenceWeek float64
	// 趋势榜单默认长度
	TrendingDefaultLimit int
}

// DefaultConfig 设计默认值，均可被配置覆盖
func DefaultConfig() Config {
	return Config{
		FreshnessHalfLifeHours:  36,
		EngagementSaturation:    2.0,
		CategoryBlend:           0.7,
		AuthorBlend:             0.3,
		ModerationPenaltyFactor: 0.5,
		InterestHalfLifeDays:    14,
		ReinforcementStep:       0.02,
		AuthorAffinityCap:       500,
		DiversityWindow:         3,
		DiversityLookahead:      5,
		ViralityReferenceHour:   120,
		ViralityReferenceDay:    30,
		ViralityReferenceWeek:   8,
		TrendingDefaultLimit:    20,
	}
}

// WithDefaults 用默认值填补未配置的字段
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.FreshnessHalfLifeHours <= 0 {
		c.FreshnessHalfLifeHours = def.FreshnessHalfLifeHours
	}
	if c.EngagementSaturation <= 0 {
		c.EngagementSaturation = def.EngagementSaturation
	}
	if c.CategoryBlend <= 0 && c.AuthorBlend <= 0 {
		c.CategoryBlend = def.CategoryBlend
		c.AuthorBlend = def.AuthorBlend
	}
	if c.ModerationPenaltyFactor <= 0 {
		c.ModerationPenaltyFactor = def.ModerationPenaltyFactor
	}
	if c.InterestHalfLifeDays <= 0 {
		c.InterestHalfLifeDays = def.InterestHalfLifeDays
	}
	if c.ReinforcementStep <= 0 {
		c.ReinforcementStep = def.ReinforcementStep
	}
	if c.AuthorAffinityCap <= 0 {
		c.AuthorAffinityCap = def.AuthorAffinityCap
	}
	if c.DiversityWindow <= 0 {
		c.DiversityWindow = def.DiversityWindow
	}
	if c.DiversityLookahead <= 0 {
		c.DiversityLookahead = def.DiversityLookahead
	}
	if c.ViralityReferenceHour <= 0 {
		c.ViralityReferenceHour = def.ViralityReferenceHour
	}
	if c.ViralityReferenceDay <= 0 {
		c.ViralityReferenceDay = def.ViralityReferenceDay
	}
	if c.ViralityReferenceWeek <= 0 {
		c.ViralityReferenceWeek = def.ViralityReferenceWeek
	}
	if c.TrendingDefaultLimit <= 0 {
		c.TrendingDefaultLimit = def.TrendingDefaultLimit
	}
	return c
}

// viralityReference 取对应时间窗口的参考速率
func (c Config) viralityReference(t Timeframe) float64 {
	switch t {
	case TimeframeHour:
		return c.ViralityReferenceHour
	case TimeframeWeek:
		return c.ViralityReferenceWeek
	default:
		return c.ViralityReferenceDay
	}
}
