package ranking

import (
	"errors"
	"fmt"
	"math"
)

// WeightSumTolerance 四项权重之和允许的浮点误差
const WeightSumTolerance = 1e-3

var (
	// ErrWeightOutOfRange 某个权重分量越界，属于配置类错误
	ErrWeightOutOfRange = errors.New("权重分量必须位于[0,1]区间")
	// ErrWeightSumInvalid 权重之和偏离 1.0，属于校验类错误
	ErrWeightSumInvalid = errors.New("权重之和必须等于1.0")
)

// Weights 四维排序权重
type Weights struct {
	Recency         float64 `json:"recency"`
	Engagement      float64 `json:"engagement"`
	Relevance       float64 `json:"relevance"`
	AuthorInfluence float64 `json:"author_influence"`
}

// DefaultWeights 文档约定的默认权重 0.4/0.3/0.2/0.1
func DefaultWeights() Weights {
	return Weights{
		Recency:         0.4,
		Engagement:      0.3,
		Relevance:       0.2,
		AuthorInfluence: 0.1,
	}
}

// Validate 校验权重，返回首个不满足的约束；不做静默归一化
func (w Weights) Validate() error {
	components := []struct {
		name  string
		value float64
	}{
		{"recency", w.Recency},
		{"engagement", w.Engagement},
		{"relevance", w.Relevance},
		{"author_influence", w.AuthorInfluence},
	}
	for _, c := range components {
		if c.value < 0 || c.value > 1 {
			return fmt.Errorf("%w: %s=%v", ErrWeightOutOfRange, c.name, c.value)
		}
	}

	sum := w.Recency + w.Engagement + w.Relevance + w.AuthorInfluence
	if math.Abs(sum-1.0) > WeightSumTolerance {
		return fmt.Errorf("%w: sum=%v", ErrWeightSumInvalid, sum)
	}
	return nil
}
