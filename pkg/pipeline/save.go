package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/seed"
)

// hashPrefixLen is how much of the hash goes into file names.
const hashPrefixLen = 8

// FileName returns "{label}-{w}x{h}-{hash8}.png", or "{hash8}-{w}x{h}.png"
// without a label.
func FileName(hash, label string, width, height int) string {
	short := hash
	if len(short) > hashPrefixLen {
		short = short[:hashPrefixLen]
	}
	if label == "" {
		return fmt.Sprintf("%s-%dx%d.png", short, width, height)
	}
	return fmt.Sprintf("%s-%dx%d-%s.png", label, width, height, short)
}

// Save writes data into dir under [FileName] and returns the path.
func Save(data []byte, dir, hash, label string, width, height int) (string, error) {
	if err := errors.ValidateDir(dir); err != nil {
		return "", err
	}
	if label != "" {
		if err := errors.ValidateLabel(label); err != nil {
			return "", err
		}
	}
	if err := seed.Validate(hash); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
	}
	path := filepath.Join(dir, FileName(hash, label, width, height))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return path, nil
}
