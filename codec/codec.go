// Package codec centralizes result encoding.
//
// Clustering and classification results are written as JSON. Both codecs
// produce the same document for the same value; they differ only in speed.
package codec

import (
	stdjson "encoding/json"
	"fmt"
	"slices"

	gojson "github.com/goccy/go-json"
)

// Codec turns result documents into bytes and back.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Indenter is implemented by codecs that can pretty-print.
type Indenter interface {
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
}

// JSON wraps encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return stdjson.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return stdjson.Unmarshal(data, v) }
func (JSON) Name() string                       { return "json" }

func (JSON) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return stdjson.MarshalIndent(v, prefix, indent)
}

// GoJSON wraps github.com/goccy/go-json, a drop-in faster encoder.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (GoJSON) Name() string                       { return "go-json" }

func (GoJSON) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// Default is used when the caller does not pick a codec.
var Default Codec = GoJSON{}

var registry = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName looks up a codec by the name it reports. The empty name selects Default.
func ByName(name string) (Codec, bool) {
	if name == "" {
		return Default, true
	}

	c, ok := registry[name]

	return c, ok
}

// Names lists the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	slices.Sort(names)

	return names
}

// MustMarshal encodes v with c, or with Default when c is nil, and panics on failure.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}

	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("codec: %s: %v", c.Name(), err))
	}

	return b
}
