package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleTable_RecordOverwrites(t *testing.T) {
	table := NewRuleTable()
	table.Record(DefaultBreakpoint, "mb-2", "margin-bottom: 8rem;")
	table.Record(DefaultBreakpoint, "mt-1", "margin-top: 4rem;")
	assert.Equal(t, 2, table.RuleCount(DefaultBreakpoint))

	table.Record(DefaultBreakpoint, "mb-2", "margin-bottom: 9rem;")
	assert.Equal(t, 2, table.RuleCount(DefaultBreakpoint))
	assert.Equal(t, 0, table.RuleCount("md"))

	buckets := table.Drain()
	assert.Equal(t, []Bucket{{
		Key: DefaultBreakpoint,
		Rules: []Rule{
			{Class: "mb-2", Declaration: "margin-bottom: 9rem;"},
			{Class: "mt-1", Declaration: "margin-top: 4rem;"},
		},
	}}, buckets)
}

func TestRuleTable_BucketsKeepFirstRecordedOrder(t *testing.T) {
	table := NewRuleTable()
	table.Record("md", "mb-md-2", "margin-bottom: 8rem;")
	table.Record(DefaultBreakpoint, "mb-1", "margin-bottom: 4rem;")
	table.Record("md", "pt-md-1", "padding-top: 4rem;")

	buckets := table.Drain()
	assert.Len(t, buckets, 2)
	assert.Equal(t, "md", buckets[0].Key)
	assert.Len(t, buckets[0].Rules, 2)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"mb-md-2", "pt-md-1", "mb-1"}, table.Classes())
}

func TestRuleTable_DrainIsASnapshot(t *testing.T) {
	table := NewRuleTable()
	table.Record(DefaultBreakpoint, "m-1", "margin: 4rem;")

	buckets := table.Drain()
	buckets[0].Rules[0].Declaration = "changed"

	assert.Equal(t, "margin: 4rem;", table.Drain()[0].Rules[0].Declaration)
}
