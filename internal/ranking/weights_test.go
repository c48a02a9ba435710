package ranking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultWeightsConserved(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	require.InDelta(t, 1.0, w.Recency+w.Engagement+w.Relevance+w.AuthorInfluence, WeightSumTolerance)
}

func TestWeightsValidateSum(t *testing.T) {
	bad := Weights{Recency: 0.4, Engagement: 0.3, Relevance: 0.2, AuthorInfluence: 0.05}
	require.ErrorIs(t, bad.Validate(), ErrWeightSumInvalid)

	// 容差内允许
	ok := Weights{Recency: 0.4, Engagement: 0.3, Relevance: 0.2, AuthorInfluence: 0.1005}
	require.NoError(t, ok.Validate())
}

func TestWeightsValidateRange(t *testing.T) {
	negative := Weights{Recency: -0.1, Engagement: 0.6, Relevance: 0.4, AuthorInfluence: 0.1}
	require.ErrorIs(t, negative.Validate(), ErrWeightOutOfRange)

	tooLarge := Weights{Recency: 1.2, Engagement: 0, Relevance: 0, AuthorInfluence: 0}
	require.ErrorIs(t, tooLarge.Validate(), ErrWeightOutOfRange)
}
