package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// PageBreak separates page texts in the merged document text.
const PageBreak = "\n\n--- Page Break ---\n\n"

// Aggregate is the merged view of all page outcomes of one document.
type Aggregate struct {
	Text        string
	Boxes       []entity.BoundingBox
	Confidence  float64
	Succeeded   int
	Failed      int
	NotProvided int // succeeded pages without a provider score
}

var errNoOutcomes = errors.New("no page outcomes")

// AggregateOutcomes merges outcomes in page-index order regardless of the
// order they are given in. Failed pages contribute an empty segment and no
// boxes. Confidence is the mean of provided page scores, 0 when none.
func AggregateOutcomes(outcomes []entity.PageOCROutcome) (Aggregate, error) {
	if len(outcomes) == 0 {
		return Aggregate{}, common.NewAggregationError(errNoOutcomes)
	}

	sorted := slices.Clone(outcomes)
	slices.SortStableFunc(sorted, func(a, b entity.PageOCROutcome) int { return a.PageIndex - b.PageIndex })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].PageIndex == sorted[i-1].PageIndex {
			return Aggregate{}, common.NewAggregationError(fmt.Errorf("duplicate outcome for page %d", sorted[i].PageIndex))
		}
	}

	agg := Aggregate{Boxes: []entity.BoundingBox{}}
	texts := make([]string, len(sorted))
	var sum float64
	var provided int
	for i, o := range sorted {
		if o.Failed() {
			agg.Failed++
			continue
		}
		agg.Succeeded++
		texts[i] = o.Text
		agg.Boxes = append(agg.Boxes, o.Boxes...)
		if o.Confidence.Present() {
			sum += o.Confidence.Value
			provided++
		} else {
			agg.NotProvided++
		}
	}

	agg.Text = strings.Join(texts, PageBreak)
	if provided > 0 {
		agg.Confidence = sum / float64(provided)
	}
	return agg, nil
}
