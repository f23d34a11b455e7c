//go:build unit

package rawrecord

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_SetKeepsFirstPosition(t *testing.T) {
	r := Of(
		Field{Key: "ชื่อ", Value: "บ้านริมน้ำ"},
		Field{Key: "ราคา", Value: 1500},
	)
	r.Set("ชื่อ", "บ้านสน")
	r.Set("โซน", "A")

	assert.Equal(t, []string{"ชื่อ", "ราคา", "โซน"}, r.Keys())
	v, ok := r.Get("ชื่อ")
	require.True(t, ok)
	assert.Equal(t, "บ้านสน", v)
}

func TestRecord_FromMapSortsKeys(t *testing.T) {
	r := FromMap(map[string]any{"b": 1, "a": 2, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	r := Of(Field{Key: "id", Value: "1"})
	c := r.Clone()
	c.Set("id", "2")

	v, _ := r.Get("id")
	assert.Equal(t, "1", v)
}

func TestRecord_JSONKeepsOrder(t *testing.T) {
	in := `{"สถานะ":"active","id":"A1","capacity":4,"price":1200.5,"note":null}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(in), &r))

	want := []Field{
		{Key: "สถานะ", Value: "active"},
		{Key: "id", Value: "A1"},
		{Key: "capacity", Value: json.Number("4")},
		{Key: "price", Value: json.Number("1200.5")},
		{Key: "note", Value: nil},
	}
	if diff := cmp.Diff(want, r.Fields()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestRecord_UnmarshalRejectsNonObject(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`["id"]`), &r)
	assert.Error(t, err)
}

func TestRecord_EmptyMarshal(t *testing.T) {
	out, err := json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
