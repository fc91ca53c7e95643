package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/BaroWiki_Go/internal/logger"
	"github.com/osse101/BaroWiki_Go/internal/metrics"
)

// Artifact is one rendered output file.
type Artifact struct {
	Name string // file name inside the output directory
	Data []byte
}

// WriteAll writes every artifact into dir. Each file is written to a
// temporary file next to its destination and renamed into place, so an
// existing output is either replaced whole or left untouched.
func WriteAll(ctx context.Context, dir string, artifacts []Artifact) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgCreateDirFailed, dir, err)
	}
	for _, a := range artifacts {
		if err := write(dir, a); err != nil {
			return err
		}
		metrics.RecordArtifact(a.Name, len(a.Data))
		logger.FromContext(ctx).Info(LogMsgArtifactWritten, "artifact", a.Name, "bytes", len(a.Data))
	}
	return nil
}

func write(dir string, a Artifact) error {
	dest := filepath.Join(dir, a.Name)

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(tempPattern, a.Name))
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgWriteFailed, a.Name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s %s: %w", ErrMsgWriteFailed, a.Name, err)
	}
	if err := tmp.Chmod(filePermissions); err != nil {
		tmp.Close()
		return fmt.Errorf("%s %s: %w", ErrMsgWriteFailed, a.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgWriteFailed, a.Name, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReplaceFailed, a.Name, err)
	}
	return nil
}
