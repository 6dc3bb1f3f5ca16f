package pipeline

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

func okOutcome(i int, conf *float64) entity.PageOCROutcome {
	o := entity.PageOCROutcome{
		PageIndex: i,
		Text:      fmt.Sprintf("page-%d", i),
		Boxes:     []entity.BoundingBox{{Text: fmt.Sprintf("box-%d", i)}},
		Provider:  entity.ProviderPrimary,
	}
	if conf != nil {
		o.Confidence = entity.ProvidedConfidence(*conf)
	}
	return o
}

func ptr(v float64) *float64 { return &v }

func TestAggregateSeparatorsAndOrder(t *testing.T) {
	for n := 1; n <= 7; n++ {
		outcomes := make([]entity.PageOCROutcome, n)
		for i := range outcomes {
			outcomes[i] = okOutcome(i, nil)
		}
		want, err := AggregateOutcomes(outcomes)
		require.NoError(t, err)
		assert.Equal(t, n-1, strings.Count(want.Text, PageBreak))

		shuffled := append([]entity.PageOCROutcome(nil), outcomes...)
		rand.New(rand.NewSource(int64(n))).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got, err := AggregateOutcomes(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		for i, b := range got.Boxes {
			assert.Equal(t, fmt.Sprintf("box-%d", i), b.Text)
		}
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	in := []entity.PageOCROutcome{okOutcome(1, nil), okOutcome(0, nil)}
	_, err := AggregateOutcomes(in)
	require.NoError(t, err)
	assert.Equal(t, 1, in[0].PageIndex)
}

func TestAggregateAllFailed(t *testing.T) {
	outcomes := []entity.PageOCROutcome{
		failedOutcome(0, errors.New("a")),
		failedOutcome(1, errors.New("b")),
		failedOutcome(2, errors.New("c")),
	}
	got, err := AggregateOutcomes(outcomes)
	require.NoError(t, err)
	assert.Equal(t, PageBreak+PageBreak, got.Text)
	assert.Zero(t, got.Confidence)
	assert.Empty(t, got.Boxes)
	assert.NotNil(t, got.Boxes)
	assert.Equal(t, 3, got.Failed)
	assert.Zero(t, got.Succeeded)
}

func TestAggregateConfidenceMeanOfProvided(t *testing.T) {
	outcomes := []entity.PageOCROutcome{
		okOutcome(0, ptr(0.9)),
		okOutcome(1, nil),
		okOutcome(2, ptr(0.5)),
		failedOutcome(3, errors.New("x")),
	}
	got, err := AggregateOutcomes(outcomes)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, got.Confidence, 1e-9)
	assert.Equal(t, 3, got.Succeeded)
	assert.Equal(t, 1, got.NotProvided)
	assert.Equal(t, 1, got.Failed)
}

func TestAggregateErrors(t *testing.T) {
	_, err := AggregateOutcomes(nil)
	assert.ErrorIs(t, err, common.ErrAggregation)

	_, err = AggregateOutcomes([]entity.PageOCROutcome{okOutcome(0, nil), okOutcome(0, nil)})
	assert.ErrorIs(t, err, common.ErrAggregation)
}
