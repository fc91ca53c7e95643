package main

const appName = "wikigen"

// Artifact file names
const (
	ArtifactPrices         = "items_prices.csv"
	ArtifactDeconstruction = "fabricate_deconstruct.txt"
	ArtifactInfoboxes      = "infoboxes.txt"
	ArtifactCatalog        = "catalog.yaml"
	artifactFabricationFmt = "fabricate_%s.txt"
)

// Flag names
const (
	flagGame = "game"
	flagOut  = "out"
)

// Log Messages
const (
	LogMsgRunStarted       = "Run started"
	LogMsgRunFinished      = "Run finished"
	LogMsgRunFailed        = "Run failed"
	LogMsgMetricsWritten   = "Metrics textfile written"
	LogMsgMetricsFailed    = "Failed to write metrics textfile"
	LogMsgArtifactRendered = "Artifact rendered"
)
