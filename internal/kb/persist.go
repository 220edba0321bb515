package kb

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Record is the canonical on-disk shape of one fact: an ordered list of
// question phrasings plus the answer. The whole knowledge file is an
// ordered sequence of records.
type Record struct {
	Question []string `yaml:"question" json:"question"`
	Answer   string   `yaml:"answer" json:"answer"`
}

// Load reads the knowledge file and validates every record into a new
// store. A missing file yields an empty store so a fresh install works
// without setup.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}

	store := NewStore()
	for i, rec := range records {
		if _, err := store.Append(rec.Answer, rec.Question); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return store, nil
}

// Save writes the entire ordered collection to path atomically
// (temp file plus rename). Every mutation persists the whole collection;
// there is no incremental write.
func Save(path string, store *Store) error {
	records := make([]Record, 0, store.Len())
	for _, f := range store.All() {
		records = append(records, Record{
			Question: f.Phrasings,
			Answer:   f.Answer,
		})
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal knowledge: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create knowledge dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".knowledge-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write knowledge: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace knowledge file: %w", err)
	}
	return nil
}

// ConvertFlat converts the legacy flat "phrase -> answer" mapping into
// record shape, grouping phrases that share an answer into one record.
// Record order follows the lexicographically smallest phrase per answer
// so conversion is reproducible.
func ConvertFlat(flat map[string]string) []Record {
	grouped := make(map[string][]string)
	for q, a := range flat {
		grouped[a] = append(grouped[a], q)
	}

	records := make([]Record, 0, len(grouped))
	for answer, questions := range grouped {
		sort.Strings(questions)
		records = append(records, Record{Question: questions, Answer: answer})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Question[0] < records[j].Question[0]
	})
	return records
}
