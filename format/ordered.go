package format

import (
	"bytes"
	"encoding/json"
)

// object is a JSON object that marshals its keys in insertion order.
// encoding/json sorts map keys, which would break the writer's
// determinism guarantee, so the generic tree is built from these.
type object struct {
	keys []string
	vals []any
}

func newObject() *object {
	return &object{}
}

func (o *object) set(key string, v any) {
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// insert places key at index i, shifting later keys.
func (o *object) insert(i int, key string, v any) {
	o.keys = append(o.keys, "")
	o.vals = append(o.vals, nil)
	copy(o.keys[i+1:], o.keys[i:])
	copy(o.vals[i+1:], o.vals[i:])
	o.keys[i] = key
	o.vals[i] = v
}

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
