package parser

// FieldMapper resolves arbitrary header spellings to the required fields.
// Synonyms are matched against NormalizeColumnName output; the first synonym
// present in the header wins.
type FieldMapper struct {
	synonyms map[Field][]string
}

// DefaultSynonyms accepted header spellings (already normalized), in priority order
var DefaultSynonyms = map[Field][]string{
	FieldWarehouse:    {"warehouse", "depozit"},
	FieldMaterialCode: {"material code", "material", "cod material", "material_code"},
	FieldQuantity:     {"quantity", "qty", "cantitate"},
	FieldNewPrice:     {"new price", "pret nou", "new_price"},
}

// NewFieldMapper uses DefaultSynonyms
func NewFieldMapper() *FieldMapper {
	return &FieldMapper{synonyms: DefaultSynonyms}
}

// NewFieldMapperWithSynonyms uses a custom synonym table. Synonyms are
// normalized here so callers can pass natural spellings.
func NewFieldMapperWithSynonyms(synonyms map[Field][]string) *FieldMapper {
	normalized := make(map[Field][]string, len(synonyms))
	for f, list := range synonyms {
		for _, s := range list {
			normalized[f] = append(normalized[f], NormalizeColumnName(s))
		}
	}
	return &FieldMapper{synonyms: normalized}
}

// Resolve maps headers to the required fields. When fields are missing the
// returned error is a *MissingColumnsError listing all of them.
func (m *FieldMapper) Resolve(columnNames []string) (ColumnMap, error) {
	// left-most column wins when two headers normalize to the same key
	index := make(map[string]int, len(columnNames))
	for i, col := range columnNames {
		key := NormalizeColumnName(col)
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	mappings := make(ColumnMap, len(RequiredFields))
	var missing []string
	for _, f := range RequiredFields {
		mapping, ok := m.resolveField(f, index, columnNames)
		if !ok {
			missing = append(missing, f.String())
			continue
		}
		mappings[f] = mapping
	}

	if len(missing) > 0 {
		return nil, &MissingColumnsError{Fields: missing}
	}
	return mappings, nil
}

func (m *FieldMapper) resolveField(f Field, index map[string]int, columnNames []string) (FieldMapping, bool) {
	for _, cand := range m.synonyms[f] {
		idx, ok := index[cand]
		if !ok {
			continue
		}
		return FieldMapping{
			Field:       f,
			ColumnIndex: idx,
			ColumnName:  columnNames[idx],
			MatchedKey:  cand,
		}, true
	}
	return FieldMapping{}, false
}

// ResolveColumns resolves headers with the default synonym table.
func ResolveColumns(columnNames []string) (ColumnMap, error) {
	return NewFieldMapper().Resolve(columnNames)
}
