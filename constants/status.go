package constants

// Stage is a step of a single pipeline run.
type Stage string

// Stable values; these show up in logs and metrics labels.
const (
	StageReceived    Stage = "RECEIVED"
	StageClassifying Stage = "CLASSIFYING"
	StageExtracting  Stage = "EXTRACTING"  // selectable PDF text layer
	StageRasterizing Stage = "RASTERIZING" // scanned PDF -> page images
	StageDispatching Stage = "DISPATCHING"
	StageAggregating Stage = "AGGREGATING"
	StageIdentifying Stage = "IDENTIFYING"
	StageCompleted   Stage = "COMPLETED"
	StageFailed      Stage = "FAILED" // terminal failure
)
