package importacao

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBatch decodes a YAML batch. Unknown keys are rejected so a typo in a
// column name does not silently drop data.
func LoadBatch(r io.Reader) (*Batch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var batch Batch
	if err := dec.Decode(&batch); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("batch file is empty")
		}
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	if len(batch.Detalhes) == 0 {
		return nil, fmt.Errorf("batch has no detalhes")
	}
	return &batch, nil
}

func LoadBatchFile(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch %s: %w", path, err)
	}
	defer f.Close()
	return LoadBatch(f)
}
