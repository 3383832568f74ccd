package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// SeedFile is the YAML layout of a seed file:
//
//	records:
//	  - name: Alice Smith
//	    age: 20
//	    grade: A
//	    major: Computer Science
type SeedFile struct {
	Records []map[string]interface{} `yaml:"records"`
}

// ReadSeed decodes seed records from YAML. An empty document yields no
// records.
func ReadSeed(r io.Reader) ([]domain.Fields, error) {
	var seed SeedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	out := make([]domain.Fields, len(seed.Records))
	for i, rec := range seed.Records {
		out[i] = domain.Fields(rec)
	}
	return out, nil
}

// LoadSeedFile reads seed records from a YAML file
func LoadSeedFile(filename string) ([]domain.Fields, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()
	return ReadSeed(file)
}

// Seed inserts records into dst in order, stopping at the first rejection
func Seed(dst Inserter, records []domain.Fields) (int, error) {
	for i, fields := range records {
		if _, err := dst.Insert(fields); err != nil {
			return i, fmt.Errorf("failed to seed record %d: %w", i, err)
		}
	}
	return len(records), nil
}

// DefaultSeed returns the example students the records manager starts with
func DefaultSeed() []domain.Fields {
	return []domain.Fields{
		{"name": "Alice Smith", "age": 20, "grade": "A", "major": "Computer Science"},
		{"name": "Bob Johnson", "age": 19, "grade": "B", "major": "Mathematics"},
		{"name": "Carol White", "age": 21, "grade": "A-", "major": "Physics"},
		{"name": "David Brown", "age": 20, "grade": "C+", "major": "Chemistry"},
	}
}
