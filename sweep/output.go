package sweep

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/fixmath/config"
)

// OutputManager writes sweep results as CSV files into an output
// directory. A nil manager is valid and discards everything, so callers
// do not need to guard every write.
type OutputManager struct {
	dir string
}

// NewOutputManager creates the output directory. Returns nil if dir is
// empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// WriteConfig saves the configuration used for this run as YAML, so a
// results directory is self-describing.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSinCos writes a sine/cosine sweep to the named CSV file.
func (om *OutputManager) WriteSinCos(rows []SinCosRow, name string) error {
	if om == nil {
		return nil
	}
	return om.marshalCSV(name, &rows)
}

// WriteAtan2 writes an atan2 grid sweep to the named CSV file.
func (om *OutputManager) WriteAtan2(rows []Atan2Row, name string) error {
	if om == nil {
		return nil
	}
	return om.marshalCSV(name, &rows)
}

func (om *OutputManager) marshalCSV(name string, rows interface{}) error {
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
