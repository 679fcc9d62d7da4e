package model

import "errors"

// Partition one warehouse and its records in source order
type Partition struct {
	Key     string        `json:"warehouse"`
	Records []CleanRecord `json:"-"`
}

// PartitionSet ordered warehouse partitions with lookup by key
type PartitionSet struct {
	partitions []Partition
	index      map[string]int
}

// NewPartitionSet keeps parts in the given order. Later duplicates of a key are ignored.
func NewPartitionSet(parts []Partition) *PartitionSet {
	s := &PartitionSet{
		partitions: make([]Partition, 0, len(parts)),
		index:      make(map[string]int, len(parts)),
	}
	for _, p := range parts {
		if _, ok := s.index[p.Key]; ok {
			continue
		}
		s.index[p.Key] = len(s.partitions)
		s.partitions = append(s.partitions, p)
	}
	return s
}

// Len number of warehouses
func (s *PartitionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.partitions)
}

// Keys warehouse keys in presentation order
func (s *PartitionSet) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.partitions))
	for i, p := range s.partitions {
		keys[i] = p.Key
	}
	return keys
}

// Partitions returns the partitions in presentation order.
func (s *PartitionSet) Partitions() []Partition {
	if s == nil {
		return nil
	}
	return s.partitions
}

// Get looks up a warehouse by its exact key.
func (s *PartitionSet) Get(key string) (Partition, bool) {
	if s == nil {
		return Partition{}, false
	}
	i, ok := s.index[key]
	if !ok {
		return Partition{}, false
	}
	return s.partitions[i], true
}

// RecordCount total records across all partitions
func (s *PartitionSet) RecordCount() int {
	n := 0
	for _, p := range s.Partitions() {
		n += len(p.Records)
	}
	return n
}

// ErrUnknownWarehouse a requested warehouse key is not in the partition set
var ErrUnknownWarehouse = errors.New("unknown warehouse")
