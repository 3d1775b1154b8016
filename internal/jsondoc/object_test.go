package jsondoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesOrder(t *testing.T) {
	obj, err := Parse([]byte(`{"zeta": 1, "alpha": {"b": 2, "a": 1}, "mid": [1, 2]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())

	raw, ok := obj.Get("alpha")
	require.True(t, ok)
	assert.JSONEq(t, `{"b": 2, "a": 1}`, string(raw))
}

func TestParse_RejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`[1, 2, 3]`))
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok, "error should be ParseError type")
	assert.Contains(t, parseErr.Error(), "expected a JSON object")
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{ invalid json }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParse_DuplicateKeyKeepsLastValue(t *testing.T) {
	obj, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	raw, _ := obj.Get("a")
	assert.Equal(t, "3", string(raw))
}

func TestSet_ReplacesInPlaceAndAppends(t *testing.T) {
	obj, err := Parse([]byte(`{"first": 1, "second": 2}`))
	require.NoError(t, err)

	require.NoError(t, obj.Set("first", "one"))
	require.NoError(t, obj.Set("third", []int{3}))

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"first":"one","second":2,"third":[3]}`, string(out))
}

func TestClone_IsIndependent(t *testing.T) {
	obj, err := Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)

	clone := obj.Clone()
	require.NoError(t, clone.Set("a", 2))

	raw, _ := obj.Get("a")
	assert.Equal(t, "1", string(raw))
	raw, _ = clone.Get("a")
	assert.Equal(t, "2", string(raw))
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	out, err := Marshal("R&D <lab> Zürich")
	require.NoError(t, err)
	assert.Equal(t, `"R&D <lab> Zürich"`, string(out))
}

func TestMarshalJSON_NilObject(t *testing.T) {
	var obj *Object
	out, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
	assert.False(t, obj.Has("anything"))
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull([]byte(" null ")))
	assert.False(t, IsNull([]byte(`"null"`)))
}
