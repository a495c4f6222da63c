package course

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreateCourseRequestToModel(t *testing.T) {
	fee := "₹90,000"
	specializations := datatypes.JSON(`["Finance"]`)

	course := CreateCourseRequest{
		Name:            "Online MBA",
		Category:        "MBA",
		Fee:             &fee,
		Specializations: &specializations,
	}.toModel()

	assert.Zero(t, course.ID)
	assert.Equal(t, "Online MBA", course.Name)
	assert.Equal(t, "MBA", course.Category)
	assert.Equal(t, &fee, course.Fee)
	assert.JSONEq(t, `["Finance"]`, string(course.Specializations))
	assert.Nil(t, course.Highlights)
}

func TestUpdateCourseRequestChanges(t *testing.T) {
	var req UpdateCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"duration": "18 Months",
		"eligibility": "",
		"fee": null,
		"description": null
	}`), &req))

	assert.Equal(t, map[string]interface{}{
		"duration":    "18 Months",
		"eligibility": "",
		"fee":         nil,
		"description": "",
	}, req.changes())
}
