package campaign

import (
	"fmt"
)

// Registry maps campaign ids to campaigns. Ids are unique and the registry is
// read-only once built.
type Registry struct {
	order     []string
	campaigns map[string]Campaign
}

func NewRegistry(campaigns ...Campaign) (*Registry, error) {
	r := &Registry{
		order:     make([]string, 0, len(campaigns)),
		campaigns: make(map[string]Campaign, len(campaigns)),
	}
	for _, c := range campaigns {
		if c.ID == "" {
			return nil, fmt.Errorf("campaign with empty id (badge %q)", c.Badge)
		}
		if _, ok := r.campaigns[c.ID]; ok {
			return nil, fmt.Errorf("duplicate campaign id %s", c.ID)
		}
		r.order = append(r.order, c.ID)
		r.campaigns[c.ID] = c
	}
	return r, nil
}

func (r *Registry) Has(id string) bool {
	_, ok := r.campaigns[id]
	return ok
}

func (r *Registry) Get(id string) (Campaign, bool) {
	c, ok := r.campaigns[id]
	return c, ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Campaigns returns a copy of the registry content in insertion order.
func (r *Registry) Campaigns() []Campaign {
	result := make([]Campaign, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.campaigns[id])
	}
	return result
}

// Overlay replaces base entries by id with the ones in overrides and appends
// overrides that base does not know. Base order is kept. Ids listed in retired
// are dropped from the result whichever side they come from.
func Overlay(base, overrides []Campaign, retired ...string) []Campaign {
	idx := make(map[string]int, len(base))
	result := make([]Campaign, 0, len(base)+len(overrides))
	for _, c := range base {
		idx[c.ID] = len(result)
		result = append(result, c)
	}
	for _, c := range overrides {
		if i, ok := idx[c.ID]; ok {
			result[i] = c
			continue
		}
		idx[c.ID] = len(result)
		result = append(result, c)
	}
	if len(retired) == 0 {
		return result
	}
	gone := make(map[string]struct{}, len(retired))
	for _, id := range retired {
		gone[id] = struct{}{}
	}
	kept := result[:0]
	for _, c := range result {
		if _, ok := gone[c.ID]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}
