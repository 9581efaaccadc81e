package preprocessing

// CategoryMap implements a bidirectional mapping between a category
// value and its index. Indexes are assigned in first-seen insertion
// order, so iterating indexes 0..Size()-1 replays the categories in the
// order they were observed during fitting.
type CategoryMap struct {
	ValueToIndex map[string]int
	IndexToValue map[int]string
}

func NewCategoryMap() *CategoryMap {
	return &CategoryMap{
		ValueToIndex: map[string]int{},
		IndexToValue: map[int]string{},
	}
}

// Set records the mapping between value and index in both directions.
func (m *CategoryMap) Set(value string, index int) {
	m.ValueToIndex[value] = index
	m.IndexToValue[index] = value
}

// IndexFor returns the index for value, assigning the next free index
// if the value has not been seen before.
func (m *CategoryMap) IndexFor(value string) int {
	if index, ok := m.ValueToIndex[value]; ok {
		return index
	}
	index := m.Size()
	m.Set(value, index)
	return index
}

// Index returns the index for value and whether the value is present.
func (m *CategoryMap) Index(value string) (int, bool) {
	index, ok := m.ValueToIndex[value]
	return index, ok
}

// Size returns the number of categories in the map.
func (m *CategoryMap) Size() int {
	return len(m.ValueToIndex)
}

// Values returns the categories in index order.
func (m *CategoryMap) Values() []string {
	values := make([]string, m.Size())
	for i := range values {
		values[i] = m.IndexToValue[i]
	}
	return values
}
