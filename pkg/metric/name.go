package metric

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-logfmt/logfmt"
)

type metadata map[string]string

// Name identifies a series of values produced by a run, such as exponential_samples or integral_estimate.  Metadata
// records the parameters that produced the series.  Names are marshalled to a string using a modified logfmt, e.g.
// integral_estimate[n=10000 seed=0]
type Name struct {
	name string
	md   metadata
}

// String marshals the name to a string representation, such as integral_estimate[n=10000 seed=0]
func (n Name) String() string {
	md, err := MarshalText(n.md)
	if err != nil {
		md = []byte{}
	}
	return n.name + string(md)
}

// Base returns the name without metadata
func (n Name) Base() string {
	return n.name
}

// Get returns the metadata value for key and whether it was set
func (n Name) Get(key string) (string, bool) {
	v, ok := n.md[key]
	return v, ok
}

// With returns a copy of the name with key=value upserted into the metadata.  The receiver is not modified.
func (n Name) With(key string, value string) Name {
	c := n.copy()
	c.md[key] = value
	return c
}

// WithInt is With for integer values
func (n Name) WithInt(key string, value int64) Name {
	return n.With(key, strconv.FormatInt(value, 10))
}

// WithFloat is With for float values, formatted with the shortest representation that round trips
func (n Name) WithFloat(key string, value float64) Name {
	return n.With(key, strconv.FormatFloat(value, 'g', -1, 64))
}

// Annotate returns a copy of the name with valueless annotations added
func (n Name) Annotate(ann ...string) Name {
	c := n.copy()
	for _, a := range ann {
		c.md[a] = ""
	}
	return c
}

func (n Name) copy() Name {
	md := make(metadata, len(n.md)+1)
	for k, v := range n.md {
		md[k] = v
	}
	return Name{name: n.name, md: md}
}

// NewName returns a new name with the associated metadata
func NewName(name string, md map[string]string) Name {
	return Name{name: name, md: md}
}

// MarshalText will return the metadata encoded as a modified logfmt representation.  Metadata opens with a [
// then is followed by (key, value) pairs k=v in sorted key order, the finally by annotations starting with @ in
// sorted order.  Close with a ].  Example: [n=10000 seed=0 @cumulative]
func MarshalText(m metadata) ([]byte, error) {
	if len(m) == 0 {
		return []byte{}, nil
	}
	keys := make([]string, 0, len(m))
	ann := make([]string, 0, len(m))
	for k, v := range m {
		switch v {
		case "":
			ann = append(ann, fmt.Sprintf("@%s", k))
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	sort.Strings(ann)

	var b bytes.Buffer
	b.WriteString("[")
	e := logfmt.NewEncoder(&b)
	for _, k := range keys {
		if err := e.EncodeKeyval(k, m[k]); err != nil {
			return nil, fmt.Errorf("failed to encode %s=%s: %v", k, m[k], err)
		}
	}
	if len(keys) > 0 && len(ann) > 0 {
		b.WriteString(" ")
	}
	b.WriteString(strings.Join(ann, " "))
	b.WriteString("]")
	return b.Bytes(), nil
}
