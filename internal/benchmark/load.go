package benchmark

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

var (
	errEmptyKey  = eris.New("benchmark: entry with empty key")
	errNoDefault = eris.New("benchmark: table has no default entry")
)

// Load reads a benchmark table from a YAML file. The file holds an ordered
// list under a top-level "benchmarks" key and must include a default entry.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "benchmark: read file %s", path)
	}

	var wrapper struct {
		Benchmarks []Entry `yaml:"benchmarks"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "benchmark: parse file")
	}
	if len(wrapper.Benchmarks) == 0 {
		return nil, eris.Errorf("benchmark: no entries in %s", path)
	}

	return New(wrapper.Benchmarks)
}
