package analytics

// DedupCounter counts distinct members per group key. Keys are reported in
// first-seen order so results do not depend on map iteration.
type DedupCounter struct {
	sets  map[string]map[string]struct{}
	order []string
}

// NewDedupCounter returns an empty counter
func NewDedupCounter() *DedupCounter {
	return &DedupCounter{sets: make(map[string]map[string]struct{})}
}

// Add records member under key and reports whether it was new for that key.
func (d *DedupCounter) Add(key, member string) bool {
	set, ok := d.sets[key]
	if !ok {
		set = make(map[string]struct{})
		d.sets[key] = set
		d.order = append(d.order, key)
	}
	if _, seen := set[member]; seen {
		return false
	}
	set[member] = struct{}{}
	return true
}

// Count returns the number of distinct members of key
func (d *DedupCounter) Count(key string) int {
	return len(d.sets[key])
}

// Keys returns every key in first-seen order
func (d *DedupCounter) Keys() []string {
	return d.order
}

// Len returns the number of keys
func (d *DedupCounter) Len() int {
	return len(d.order)
}
