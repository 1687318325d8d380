package spacing

// Rule is one class selector and its declarations.
type Rule struct {
	Class       string
	Declaration string
}

// Bucket groups the rules of one breakpoint key.
type Bucket struct {
	Key   string
	Rules []Rule
}

// RuleTable accumulates rules per breakpoint key. Recording an existing
// (key, class) pair replaces its declaration but keeps its position.
// A RuleTable must not be shared between goroutines.
type RuleTable struct {
	keys    []string
	buckets map[string]*ruleBucket
}

type ruleBucket struct {
	order []string
	decls map[string]string
}

// NewRuleTable returns an empty table.
func NewRuleTable() *RuleTable {
	return &RuleTable{buckets: make(map[string]*ruleBucket)}
}

// Record inserts or overwrites the rule for class under key.
func (t *RuleTable) Record(key, class, declaration string) {
	b, ok := t.buckets[key]
	if !ok {
		b = &ruleBucket{decls: make(map[string]string)}
		t.buckets[key] = b
		t.keys = append(t.keys, key)
	}
	if _, exists := b.decls[class]; !exists {
		b.order = append(b.order, class)
	}
	b.decls[class] = declaration
}

// RuleCount returns the number of rules under key.
func (t *RuleTable) RuleCount(key string) int {
	if b, ok := t.buckets[key]; ok {
		return len(b.order)
	}
	return 0
}

// Len returns the total number of rules.
func (t *RuleTable) Len() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b.order)
	}
	return n
}

// Drain returns a snapshot of every bucket in first-recorded order.
func (t *RuleTable) Drain() []Bucket {
	out := make([]Bucket, 0, len(t.keys))
	for _, key := range t.keys {
		b := t.buckets[key]
		rules := make([]Rule, len(b.order))
		for i, class := range b.order {
			rules[i] = Rule{Class: class, Declaration: b.decls[class]}
		}
		out = append(out, Bucket{Key: key, Rules: rules})
	}
	return out
}

// Classes returns every recorded class name.
func (t *RuleTable) Classes() []string {
	var out []string
	for _, key := range t.keys {
		out = append(out, t.buckets[key].order...)
	}
	return out
}
