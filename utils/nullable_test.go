package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableDecoding(t *testing.T) {
	type body struct {
		Website Nullable[string]  `json:"website"`
		Rating  Nullable[float64] `json:"rating"`
	}

	tests := []struct {
		name    string
		input   string
		changes map[string]interface{}
	}{
		{"absent keys are skipped", `{}`, map[string]interface{}{}},
		{"null clears", `{"website":null}`, map[string]interface{}{"website": nil}},
		{"value is written", `{"website":"https://a.edu","rating":4.2}`, map[string]interface{}{
			"website": "https://a.edu",
			"rating":  4.2,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.input), &b))

			changes := map[string]interface{}{}
			b.Website.Apply(changes, "website")
			b.Rating.Apply(changes, "rating")
			assert.Equal(t, tt.changes, changes)
		})
	}
}

func TestNullableApplyNotNull(t *testing.T) {
	var n Nullable[int]
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.True(t, n.IsNull())

	changes := map[string]interface{}{}
	n.ApplyNotNull(changes, "ranking_position")
	assert.Equal(t, map[string]interface{}{"ranking_position": 0}, changes)
}

func TestNullableRejectsWrongType(t *testing.T) {
	var n Nullable[int]
	assert.Error(t, json.Unmarshal([]byte(`"seven"`), &n))
}
