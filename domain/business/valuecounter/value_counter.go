package valuecounter

import (
	"sort"
)

// Count is the amount of times Value was seen
type Count[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter counts occurrences of values, remembering the order in which each value was first seen.
// + order: values in order of first appearance. Once a value is added, its position cannot change
// + counters: amount of times each value was seen
type Counter[K comparable] struct {
	order    []K
	counters map[K]int
}

func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{
		counters: make(map[K]int),
	}
}

// UpdateCounter registers one more occurrence of value
func (c *Counter[K]) UpdateCounter(value K) {
	if _, ok := c.counters[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counters[value] += 1
}

func (c *Counter[K]) GetCounter(value K) int {
	return c.counters[value]
}

// Len returns the amount of distinct values
func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Total returns the amount of values registered
func (c *Counter[K]) Total() int {
	total := 0
	for _, counter := range c.counters {
		total += counter
	}
	return total
}

// Mode returns the most frequent value. Among ties the value seen first wins.
// The last returned value is false if the counter is empty.
func (c *Counter[K]) Mode() (K, int, bool) {
	var mode K
	best := 0
	for _, value := range c.order {
		if c.counters[value] > best {
			mode = value
			best = c.counters[value]
		}
	}
	return mode, best, best > 0
}

// Sorted returns every value with its count, most frequent first. Ties keep first-seen order.
func (c *Counter[K]) Sorted() []Count[K] {
	counts := make([]Count[K], 0, len(c.order))
	for _, value := range c.order {
		counts = append(counts, Count[K]{Value: value, Count: c.counters[value]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Merge returns a new Counter with the occurrences of both counters.
// Values only present in other are appended after the values of c.
func (c *Counter[K]) Merge(other *Counter[K]) *Counter[K] {
	merged := NewCounter[K]()
	for _, value := range c.order {
		merged.order = append(merged.order, value)
		merged.counters[value] = c.counters[value]
	}
	for _, value := range other.order {
		if _, ok := merged.counters[value]; !ok {
			merged.order = append(merged.order, value)
		}
		merged.counters[value] += other.counters[value]
	}
	return merged
}
