package output

// Error Messages
const (
	ErrMsgCreateDirFailed = "failed to create output directory"
	ErrMsgWriteFailed     = "failed to write artifact"
	ErrMsgReplaceFailed   = "failed to move artifact into place"
)

// Log Messages
const (
	LogMsgArtifactWritten = "Artifact written"
)

const (
	tempPattern     = ".%s.*.tmp"
	filePermissions = 0o644
	dirPermissions  = 0o755
)
