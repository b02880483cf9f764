package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/testimonials/dto"
	"gemilang_backend/internals/features/testimonials/model"
)

func newTestimonialTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TestimonialModel{}))

	ctrl := NewTestimonialController(db)
	app := fiber.New()
	app.Get("/testimonials", ctrl.GetActiveTestimonials)
	app.Get("/admin/testimonials", ctrl.GetAllTestimonials)
	app.Get("/admin/testimonials/:id", ctrl.GetTestimonialByID)
	app.Post("/admin/testimonials", ctrl.CreateTestimonial)
	app.Put("/admin/testimonials/:id", ctrl.UpdateTestimonial)
	app.Patch("/admin/testimonials/:id/toggle", ctrl.ToggleActive)
	app.Delete("/admin/testimonials/:id", ctrl.DeleteTestimonial)
	return app, db
}

type testimonialEnvelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func request(t *testing.T, app *fiber.App, method, url string, payload any) (int, testimonialEnvelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env testimonialEnvelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func TestPublicList_OnlyActiveTestimonials(t *testing.T) {
	app, db := newTestimonialTestApp(t)

	rows := []model.TestimonialModel{
		{TestimonialQuote: "Mantap", TestimonialAuthor: "Budi", TestimonialLocation: "Jakarta", TestimonialIsActive: true},
		{TestimonialQuote: "Disembunyikan", TestimonialAuthor: "Siti", TestimonialLocation: "Surabaya", TestimonialIsActive: false},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	status, env := request(t, app, http.MethodGet, "/testimonials", nil)
	require.Equal(t, fiber.StatusOK, status)

	var list []dto.TestimonialDTO
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Budi", list[0].Author)

	// Admin melihat semua.
	status, env = request(t, app, http.MethodGet, "/admin/testimonials", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}

func TestCreateTestimonial_DefaultsToActive(t *testing.T) {
	app, _ := newTestimonialTestApp(t)

	status, env := request(t, app, http.MethodPost, "/admin/testimonials", fiber.Map{
		"quote":    "Produknya bagus sekali",
		"author":   "Andi",
		"location": "Makassar",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var got dto.TestimonialDTO
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.True(t, got.IsActive)
	assert.NotEmpty(t, got.ID)
}

func TestCreateTestimonial_ValidationErrors(t *testing.T) {
	app, _ := newTestimonialTestApp(t)

	status, env := request(t, app, http.MethodPost, "/admin/testimonials", fiber.Map{
		"quote": "Tanpa author",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "author")
	assert.Contains(t, env.Errors, "location")
}

func TestUpdateTestimonial_PartialOnlyTouchesSentFields(t *testing.T) {
	app, db := newTestimonialTestApp(t)

	row := model.TestimonialModel{TestimonialQuote: "Awal", TestimonialAuthor: "Budi",
		TestimonialLocation: "Jakarta", TestimonialIsActive: true}
	require.NoError(t, db.Create(&row).Error)

	status, env := request(t, app, http.MethodPut, "/admin/testimonials/"+row.TestimonialID, fiber.Map{
		"quote": "Direvisi",
	})
	require.Equal(t, fiber.StatusOK, status)

	var got dto.TestimonialDTO
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Direvisi", got.Quote)
	assert.Equal(t, "Budi", got.Author, "field yang tidak dikirim tidak boleh berubah")
	assert.Equal(t, "Jakarta", got.Location)
	assert.True(t, got.IsActive)
}

func TestToggleTestimonial_Flips(t *testing.T) {
	app, db := newTestimonialTestApp(t)

	row := model.TestimonialModel{TestimonialQuote: "q", TestimonialAuthor: "a",
		TestimonialLocation: "l", TestimonialIsActive: true}
	require.NoError(t, db.Create(&row).Error)

	url := "/admin/testimonials/" + row.TestimonialID + "/toggle"
	status, env := request(t, app, http.MethodPatch, url, nil)
	require.Equal(t, fiber.StatusOK, status)

	var got dto.TestimonialDTO
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.False(t, got.IsActive)

	status, env = request(t, app, http.MethodPatch, url, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.True(t, got.IsActive)
}

func TestDeleteTestimonial_NotFound(t *testing.T) {
	app, db := newTestimonialTestApp(t)

	row := model.TestimonialModel{TestimonialQuote: "q", TestimonialAuthor: "a", TestimonialLocation: "l"}
	require.NoError(t, db.Create(&row).Error)

	status, _ := request(t, app, http.MethodDelete, "/admin/testimonials/"+row.TestimonialID, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, app, http.MethodDelete, "/admin/testimonials/"+row.TestimonialID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
