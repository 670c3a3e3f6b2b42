package report

import (
	"fmt"
	"os"
	"path/filepath"

	"dampedfilter"
)

// Store saves rendered results into Dir, one file per format.
type Store struct {
	Dir     string
	Formats []Format
}

func NewStore(dir string, formats []Format) *Store {
	if len(formats) == 0 {
		formats = Formats
	}
	return &Store{Dir: dir, Formats: formats}
}

// Save writes every configured format and returns the written paths.
func (st *Store) Save(s *dampedfilter.Solution) ([]string, error) {
	if err := os.MkdirAll(st.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	paths := make([]string, 0, len(st.Formats))
	for _, f := range st.Formats {
		path := filepath.Join(st.Dir, f.FileName())
		if err := writeFile(path, f, s); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, f Format, s *dampedfilter.Solution) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Write(file, f, s); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
