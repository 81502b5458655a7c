package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeta_ZeroCountersSerialized(t *testing.T) {
	// An empty first page: offset 0, limit 0, total 0
	data, err := json.Marshal(&Meta{})
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "offset")
	assert.Contains(t, fields, "limit")
	assert.Contains(t, fields, "total")
	assert.NotContains(t, fields, "forum_id")
}
