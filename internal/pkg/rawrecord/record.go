// Package rawrecord holds loosely-keyed spreadsheet rows exactly as they were read,
// preserving header order so lookups and re-serialisation stay deterministic.
package rawrecord

import (
	"bytes"
	"encoding/json"
	"sort"

	"parkstay/internal/pkg/errs"
)

type Field struct {
	Key   string
	Value any
}

// Record is an ordered set of header/value pairs. Keys are unique; Set on an
// existing key replaces the value in place.
type Record struct {
	fields []Field
}

func Of(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// FromMap builds a record with keys in lexical order, since map order is not stable.
func FromMap(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := Record{fields: make([]Field, 0, len(keys))}
	for _, k := range keys {
		r.fields = append(r.fields, Field{Key: k, Value: m[k]})
	}
	return r
}

func (r Record) Get(key string) (any, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (r *Record) Set(key string, value any) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

func (r Record) Len() int {
	return len(r.fields)
}

func (r Record) Clone() Record {
	return Record{fields: r.Fields()}
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, errs.Wrap(err, "marshal record key")
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, errs.Wrapf(err, "marshal record value for %q", f.Key)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts a flat JSON object. Numbers are kept as json.Number so
// that cell text such as "0812345678" versus 812345678 is not lost.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errs.Wrap(err, "read record start")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errs.Newf("record must be a JSON object, got %v", tok)
	}

	var out Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errs.Wrap(err, "read record key")
		}
		key, ok := tok.(string)
		if !ok {
			return errs.Newf("record key must be a string, got %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return errs.Wrapf(err, "decode record value for %q", key)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return errs.Wrap(err, "read record end")
	}

	*r = out
	return nil
}
