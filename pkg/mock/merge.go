package mock

// MergeSchemas combines schema fragments, one per source document, into one mapping.
// It is a shallow merge: a name present in a later fragment overwrites the earlier
// definition and keeps the position where the name was first seen.
func MergeSchemas(fragments ...*Schemas) *Schemas {
	res := NewSchemas()
	for _, fragment := range fragments {
		if fragment == nil {
			continue
		}
		for _, name := range fragment.keys {
			res.Set(name, fragment.items[name])
		}
	}
	return res
}
