package results

import "sort"

// Set maps dataset -> variant -> table. Each label owns exactly one table.
type Set struct {
	tables map[string]map[string]*Table
}

func NewSet() *Set {
	return &Set{tables: make(map[string]map[string]*Table)}
}

// Put stores t under its label, replacing any previous table for the same label.
func (s *Set) Put(t *Table) {
	variants, ok := s.tables[t.Label.Dataset]
	if !ok {
		variants = make(map[string]*Table)
		s.tables[t.Label.Dataset] = variants
	}
	variants[t.Label.Variant] = t
}

func (s *Set) Get(dataset, variant string) (*Table, bool) {
	t, ok := s.tables[dataset][variant]
	return t, ok
}

func (s *Set) Has(dataset string) bool {
	return len(s.tables[dataset]) > 0
}

func (s *Set) Empty() bool {
	return len(s.tables) == 0
}

// Datasets returns dataset names in sorted order.
func (s *Set) Datasets() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants returns the variant names of dataset in sorted order.
func (s *Set) Variants(dataset string) []string {
	names := make([]string, 0, len(s.tables[dataset]))
	for name := range s.tables[dataset] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tables returns the tables of dataset ordered by variant.
func (s *Set) Tables(dataset string) []*Table {
	variants := s.Variants(dataset)
	out := make([]*Table, 0, len(variants))
	for _, v := range variants {
		out = append(out, s.tables[dataset][v])
	}
	return out
}

// Missing returns the entries of expected that have no tables.
func (s *Set) Missing(expected []string) []string {
	var missing []string
	for _, ds := range expected {
		if !s.Has(ds) {
			missing = append(missing, ds)
		}
	}
	return missing
}
