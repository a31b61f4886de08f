package params

// Values maps field names to values. A nil value marks a field as absent.
type Values map[string]any

// Source feeds a bag from another bag or from a plain mapping. The zero
// Source feeds nothing.
type Source struct {
	bag    *Bag
	values Values
}

// FromBag uses another bag as the source.
func FromBag(b *Bag) Source {
	return Source{bag: b}
}

// FromMap uses a field name mapping as the source.
func FromMap(values map[string]any) Source {
	return Source{values: values}
}

func (s Source) empty() bool {
	return s.bag == nil && len(s.values) == 0
}
