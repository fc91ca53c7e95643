package database

// Game installation layout
const (
	// DepsFileName is the .NET dependency manifest carrying the game version
	DepsFileName = "Barotrauma.deps.json"

	// VersionPattern captures the version from the manifest's "Barotrauma/<version>" key
	VersionPattern = `"Barotrauma/([^"]+)"`
)

// Error Messages - Loading
const (
	ErrMsgReadVersionFailed      = "failed to read version manifest"
	ErrMsgLoadLocalizationFailed = "failed to load localization"
	ErrMsgWalkItemsFailed        = "failed to list item definition files"
	ErrMsgParseItemFileFailed    = "failed to parse item definition file"
	ErrMsgBuildCatalogFailed     = "failed to build item catalog"
)

// Log Messages
const (
	LogMsgVersionDetected    = "Detected game version"
	LogMsgLocalizationLoaded = "Localization loaded"
	LogMsgItemFilesFound     = "Item definition files found"
	LogMsgCatalogBuilt       = "Item catalog built"
)
