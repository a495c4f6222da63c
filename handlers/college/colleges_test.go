package college

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// failingStore answers every call with a store failure
type failingStore struct {
	calls int
}

func (f *failingStore) fail(op string) error {
	f.calls++
	return &database.StoreError{Op: op, Entity: "college", Err: errors.New("connection refused")}
}

func (f *failingStore) ListColleges(context.Context) ([]model.College, error) {
	return nil, f.fail("list")
}

func (f *failingStore) GetCollege(context.Context, uint) (*model.College, error) {
	return nil, f.fail("get")
}

func (f *failingStore) CreateCollege(context.Context, *model.College) (*model.College, error) {
	return nil, f.fail("create")
}

func (f *failingStore) UpdateCollege(context.Context, uint, map[string]interface{}) (*model.College, error) {
	return nil, f.fail("update")
}

func (f *failingStore) DeleteCollege(context.Context, uint) ([]model.College, error) {
	return nil, f.fail("delete")
}

func setupApp(store database.CollegeStore) *fiber.App {
	h := NewCollegeHandler(store, zerolog.Nop(), time.Second)

	app := fiber.New()
	app.Get("/colleges", h.ListColleges)
	app.Get("/colleges/:id", h.GetCollege)
	app.Post("/colleges", h.CreateCollege)
	app.Put("/colleges/:id", h.UpdateCollege)
	app.Delete("/colleges/:id", h.DeleteCollege)
	return app
}

func TestStoreFailureIsInternalError(t *testing.T) {
	store := &failingStore{}
	app := setupApp(store)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/colleges", ""},
		{http.MethodGet, "/colleges/1", ""},
		{http.MethodPost, "/colleges", `{"name":"Amity"}`},
		{http.MethodPut, "/colleges/1", `{"name":"Amity"}`},
		{http.MethodDelete, "/colleges/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		})
	}

	assert.Equal(t, len(tests), store.calls)
}

func TestValidationStopsBeforeStore(t *testing.T) {
	store := &failingStore{}
	app := setupApp(store)

	req := httptest.NewRequest(http.MethodPost, "/colleges", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, store.calls)
}

func TestUpdateCollegeRequestChanges(t *testing.T) {
	var req UpdateCollegeRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Manipal Online",
		"ranking_position": 0,
		"highlights": [{"label":"Learners","value":"50k"}],
		"website": null,
		"rating": null
	}`), &req))

	changes := req.changes()
	assert.Len(t, changes, 5)
	assert.Equal(t, "Manipal Online", changes["name"])
	assert.Equal(t, 0, changes["ranking_position"])
	assert.JSONEq(t, `[{"label":"Learners","value":"50k"}]`, string(changes["highlights"].(datatypes.JSON)))

	website, ok := changes["website"]
	assert.True(t, ok)
	assert.Nil(t, website)
	rating, ok := changes["rating"]
	assert.True(t, ok)
	assert.Nil(t, rating)

	assert.Empty(t, UpdateCollegeRequest{}.changes())
}

func TestUpdateRejectsBlankName(t *testing.T) {
	store := &failingStore{}
	app := setupApp(store)

	for _, body := range []string{`{"name":null}`, `{"name":""}`} {
		t.Run(body, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/colleges/1", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
	assert.Zero(t, store.calls)
}
