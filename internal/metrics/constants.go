package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Catalog metric names
const (
	MetricNameItemsScanned   = "barowiki_items_scanned_total"
	MetricNameItemsCataloged = "barowiki_items_cataloged_total"
	MetricNameItemsSkipped   = "barowiki_items_skipped_total"
	MetricNameFilesParsed    = "barowiki_files_parsed_total"
)

// Output metric names
const (
	MetricNameArtifactsWritten = "barowiki_artifacts_written_total"
	MetricNameArtifactBytes    = "barowiki_artifact_bytes"
	MetricNameRunDuration      = "barowiki_run_duration_seconds"
	MetricNameLastSuccess      = "barowiki_last_success_timestamp_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextItemsScanned     = "Item definition elements seen while walking the item tree"
	HelpTextItemsCataloged   = "Items added to the catalog"
	HelpTextItemsSkipped     = "Item definition elements left out of the catalog"
	HelpTextFilesParsed      = "Item definition files parsed"
	HelpTextArtifactsWritten = "Output artifacts written"
	HelpTextArtifactBytes    = "Size of the last written artifact in bytes"
	HelpTextRunDuration      = "Duration of the last run in seconds"
	HelpTextLastSuccess      = "Unix time of the last successful run"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelReason   = "reason"
	LabelArtifact = "artifact"
)

// Skip reasons
const (
	ReasonNoPrice = "no_price"
)
