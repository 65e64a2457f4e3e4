package client

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Filters is a typed filter set with explicit presence: a key is either set
// or absent, so an empty string can be sent deliberately (SetRaw) while the
// common setters treat blank values as "unset". Unset keys never reach the
// query string.
type Filters struct {
	vals map[string]string
}

func NewFilters() *Filters {
	return &Filters{vals: make(map[string]string)}
}

// Set stores a string filter; blank values (after trimming) clear the key.
func (f *Filters) Set(key, val string) *Filters {
	val = strings.TrimSpace(val)
	if val == "" {
		delete(f.vals, key)
		return f
	}
	f.vals[key] = val
	return f
}

// SetRaw stores a filter verbatim, keeping the key present even when empty.
func (f *Filters) SetRaw(key, val string) *Filters {
	f.vals[key] = val
	return f
}

func (f *Filters) SetInt(key string, val int) *Filters {
	f.vals[key] = strconv.Itoa(val)
	return f
}

func (f *Filters) SetBool(key string, val bool) *Filters {
	f.vals[key] = strconv.FormatBool(val)
	return f
}

func (f *Filters) Clear(key string) *Filters {
	delete(f.vals, key)
	return f
}

func (f *Filters) Reset() *Filters {
	f.vals = make(map[string]string)
	return f
}

func (f *Filters) Get(key string) (string, bool) {
	v, ok := f.vals[key]
	return v, ok
}

func (f *Filters) Len() int {
	if f == nil {
		return 0
	}
	return len(f.vals)
}

// Keys returns the present filter keys, sorted.
func (f *Filters) Keys() []string {
	keys := make([]string, 0, len(f.vals))
	for k := range f.vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *Filters) Clone() *Filters {
	c := NewFilters()
	if f == nil {
		return c
	}
	for k, v := range f.vals {
		c.vals[k] = v
	}
	return c
}

// Values renders the present filters as query parameters.
func (f *Filters) Values() url.Values {
	v := make(url.Values)
	if f == nil {
		return v
	}
	for key, val := range f.vals {
		v.Set(key, val)
	}
	return v
}
