package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/blog/posts/dto"
	"gemilang_backend/internals/features/blog/posts/model"
	TopicModel "gemilang_backend/internals/features/blog/topics/model"
	"gemilang_backend/internals/helpers/storage"
)

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	store *storage.Storage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&TopicModel.TopicModel{},
		&model.PostModel{},
		&model.PostContentModel{},
	))

	store := storage.New(t.TempDir(), "http://localhost:3000")

	app := fiber.New()
	public := NewPostUserController(db, store)
	admin := NewPostController(db, store)

	app.Get("/api/posts", public.GetPublicPosts)
	app.Get("/api/posts/:slug", public.GetPublicPostBySlug)

	app.Get("/api/admin/posts", admin.GetAllPosts)
	app.Get("/api/admin/posts/grouped", admin.GetGroupedPosts)
	app.Get("/api/admin/posts/prefill", admin.GetPrefill)
	app.Get("/api/admin/posts/:slug", admin.GetPostBySlug)
	app.Post("/api/admin/posts", admin.CreatePost)
	app.Put("/api/admin/posts/:id", admin.UpdatePost)
	app.Patch("/api/admin/posts/:id/toggle", admin.ToggleActive)
	app.Delete("/api/admin/posts/:id", admin.DeletePost)

	return &testEnv{app: app, db: db, store: store}
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), "body: %s", body)
	return resp.StatusCode, env
}

// postFormRequest membangun request multipart untuk create/update post.
// file == nil berarti tanpa upload gambar.
func postFormRequest(t *testing.T, method, url string, fields map[string]string, file []byte, filename, contentType string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="imageFile"; filename="%s"`, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validPostFields(overrides map[string]string) map[string]string {
	fields := map[string]string{
		"title":            "Budidaya Udang Vaname",
		"excerpt":          "Ringkasan artikel",
		"date":             "2026-08-01",
		"category":         "Aquaculture",
		"meta_title":       "Budidaya Udang",
		"meta_description": "Meta deskripsi",
		"language":         "en",
		"is_active":        "true",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func TestCreatePost_WithContentBlocks(t *testing.T) {
	env := newTestEnv(t)

	contents := `[
		{"type":"h2","text":"Pendahuluan"},
		{"type":"p","text":"Paragraf pembuka."},
		{"type":"ul","items":["satu","dua","tiga"]},
		{"type":"blockquote","text":"Kutipan."}
	]`
	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{"contents": contents}), nil, "", "")

	status, env2 := doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusCreated, status)

	var post dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &post))

	// Slug digenerate dari title karena tidak dikirim.
	assert.Equal(t, "budidaya-udang-vaname", post.Slug)
	require.Len(t, post.Contents, 4)
	assert.Equal(t, "h2", post.Contents[0].Type)
	assert.Equal(t, "p", post.Contents[1].Type)
	assert.Equal(t, "ul", post.Contents[2].Type)
	assert.Equal(t, []string{"satu", "dua", "tiga"}, post.Contents[2].Items)
	assert.Equal(t, "blockquote", post.Contents[3].Type)

	// Baris post_contents ikut tersimpan dengan posisi urut.
	var rows []model.PostContentModel
	require.NoError(t, env.db.Order("post_content_position ASC").Find(&rows).Error)
	require.Len(t, rows, 4)
	assert.Equal(t, 0, rows[0].PostContentPosition)
	assert.Equal(t, 3, rows[3].PostContentPosition)
}

func TestCreatePost_RejectsInvalidBlockType(t *testing.T) {
	env := newTestEnv(t)

	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{"contents": `[{"type":"h1","text":"nope"}]`}), nil, "", "")

	status, env2 := doRequest(t, env.app, req)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env2.Errors, "contents")
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	env := newTestEnv(t)

	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{"slug": "artikel-satu"}), nil, "", "")
	status, _ := doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusCreated, status)

	req = postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{"slug": "Artikel-Satu", "title": "Lain"}), nil, "", "")
	status, env2 := doRequest(t, env.app, req)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env2.Errors, "slug")
}

func TestCreatePost_UnknownTopic(t *testing.T) {
	env := newTestEnv(t)

	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{"topic_id": "3f1c8e8a-0f4f-4f43-9df0-111111111111"}), nil, "", "")
	status, env2 := doRequest(t, env.app, req)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env2.Errors, "topic_id")
}

func TestPublicList_ExcludesInactiveAndFiltersLanguage(t *testing.T) {
	env := newTestEnv(t)

	seed := []model.PostModel{
		{PostSlug: "aktif-en", PostTitle: "EN", PostExcerpt: "x", PostCategory: "c",
			PostMetaTitle: "m", PostMetaDescription: "d", PostLanguage: "en", PostIsActive: true},
		{PostSlug: "aktif-fr", PostTitle: "FR", PostExcerpt: "x", PostCategory: "c",
			PostMetaTitle: "m", PostMetaDescription: "d", PostLanguage: "fr", PostIsActive: true},
		{PostSlug: "nonaktif-en", PostTitle: "Hidden", PostExcerpt: "x", PostCategory: "c",
			PostMetaTitle: "m", PostMetaDescription: "d", PostLanguage: "en", PostIsActive: false},
	}
	for i := range seed {
		require.NoError(t, env.db.Create(&seed[i]).Error)
	}

	// Tanpa filter: semua bahasa, hanya yang aktif.
	status, env2 := doRequest(t, env.app, httptest.NewRequest(fiber.MethodGet, "/api/posts", nil))
	require.Equal(t, fiber.StatusOK, status)
	var list []dto.PostListItemDTO
	require.NoError(t, json.Unmarshal(env2.Data, &list))
	assert.Len(t, list, 2)

	// Filter bahasa.
	status, env2 = doRequest(t, env.app, httptest.NewRequest(fiber.MethodGet, "/api/posts?lang=fr", nil))
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env2.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "aktif-fr", list[0].Slug)

	// lang tanpa nilai dianggap "en".
	status, env2 = doRequest(t, env.app, httptest.NewRequest(fiber.MethodGet, "/api/posts?lang=", nil))
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env2.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "aktif-en", list[0].Slug)

	// Bahasa di luar daftar -> 422.
	status, env2 = doRequest(t, env.app, httptest.NewRequest(fiber.MethodGet, "/api/posts?lang=xx", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env2.Errors, "lang")
}

func TestPublicDetail_InactiveIs404(t *testing.T) {
	env := newTestEnv(t)

	post := model.PostModel{PostSlug: "rahasia", PostTitle: "x", PostExcerpt: "x",
		PostCategory: "c", PostMetaTitle: "m", PostMetaDescription: "d",
		PostLanguage: "en", PostIsActive: false}
	require.NoError(t, env.db.Create(&post).Error)

	status, _ := doRequest(t, env.app, httptest.NewRequest(fiber.MethodGet, "/api/posts/rahasia", nil))
	assert.Equal(t, fiber.StatusNotFound, status)

	// Admin tetap bisa lihat.
	status, _ = doRequest(t, env.app, httptest.NewRequest(fiber.MethodGet, "/api/admin/posts/rahasia", nil))
	assert.Equal(t, fiber.StatusOK, status)
}

func TestToggleActive_FlipsTwice(t *testing.T) {
	env := newTestEnv(t)

	post := model.PostModel{PostSlug: "toggle-me", PostTitle: "x", PostExcerpt: "x",
		PostCategory: "c", PostMetaTitle: "m", PostMetaDescription: "d",
		PostLanguage: "en", PostIsActive: true}
	require.NoError(t, env.db.Create(&post).Error)

	url := "/api/admin/posts/" + post.PostID + "/toggle"

	status, env2 := doRequest(t, env.app, httptest.NewRequest(fiber.MethodPatch, url, nil))
	require.Equal(t, fiber.StatusOK, status)
	var got dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &got))
	assert.False(t, got.IsActive)

	status, env2 = doRequest(t, env.app, httptest.NewRequest(fiber.MethodPatch, url, nil))
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env2.Data, &got))
	assert.True(t, got.IsActive)
}

func TestUpdatePost_ReplacesContentBlocksWholesale(t *testing.T) {
	env := newTestEnv(t)

	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{
			"slug":     "artikel-update",
			"contents": `[{"type":"h2","text":"Lama"},{"type":"p","text":"Isi lama"}]`,
		}), nil, "", "")
	status, env2 := doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusCreated, status)

	var created dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &created))

	req = postFormRequest(t, fiber.MethodPut, "/api/admin/posts/"+created.ID,
		validPostFields(map[string]string{
			"slug":     "artikel-update",
			"contents": `[{"type":"p","text":"Satu-satunya block baru"}]`,
		}), nil, "", "")
	status, env2 = doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusOK, status)

	var updated dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &updated))
	require.Len(t, updated.Contents, 1)
	assert.Equal(t, "p", updated.Contents[0].Type)

	var cnt int64
	require.NoError(t, env.db.Model(&model.PostContentModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt, "block lama harus terhapus semua")
}

func TestUpdatePost_ReplacesImageFile(t *testing.T) {
	env := newTestEnv(t)

	img := bytes.Repeat([]byte("a"), 1024)
	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{"slug": "ada-gambar"}), img, "satu.png", "image/png")
	status, env2 := doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusCreated, status)

	var created dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &created))
	require.NotNil(t, created.Image)
	oldPath := *created.Image
	require.True(t, env.store.Exists(oldPath))

	req = postFormRequest(t, fiber.MethodPut, "/api/admin/posts/"+created.ID,
		validPostFields(map[string]string{"slug": "ada-gambar"}), img, "dua.webp", "image/webp")
	status, env2 = doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusOK, status)

	var updated dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &updated))
	require.NotNil(t, updated.Image)
	newPath := *updated.Image

	assert.NotEqual(t, oldPath, newPath)
	assert.True(t, env.store.Exists(newPath), "gambar baru harus ada")
	assert.False(t, env.store.Exists(oldPath), "gambar lama harus dihapus")
}

func TestUpdatePost_RejectedUploadKeepsOldImage(t *testing.T) {
	env := newTestEnv(t)

	img := bytes.Repeat([]byte("a"), 1024)
	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{"slug": "gambar-aman"}), img, "satu.jpg", "image/jpeg")
	status, env2 := doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusCreated, status)

	var created dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &created))
	oldPath := *created.Image

	// Upload dengan tipe salah -> 422, gambar lama tidak tersentuh.
	req = postFormRequest(t, fiber.MethodPut, "/api/admin/posts/"+created.ID,
		validPostFields(map[string]string{"slug": "gambar-aman"}), img, "virus.exe", "application/octet-stream")
	status, env3 := doRequest(t, env.app, req)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env3.Errors, "imageFile")
	assert.True(t, env.store.Exists(oldPath))
}

func TestDeletePost_RemovesBlocksAndImage(t *testing.T) {
	env := newTestEnv(t)

	img := bytes.Repeat([]byte("a"), 512)
	req := postFormRequest(t, fiber.MethodPost, "/api/admin/posts",
		validPostFields(map[string]string{
			"slug":     "hapus-aku",
			"contents": `[{"type":"p","text":"isi"}]`,
		}), img, "foto.png", "image/png")
	status, env2 := doRequest(t, env.app, req)
	require.Equal(t, fiber.StatusCreated, status)

	var created dto.PostDTO
	require.NoError(t, json.Unmarshal(env2.Data, &created))
	imgPath := *created.Image

	status, _ = doRequest(t, env.app,
		httptest.NewRequest(fiber.MethodDelete, "/api/admin/posts/"+created.ID, nil))
	require.Equal(t, fiber.StatusOK, status)

	var cnt int64
	require.NoError(t, env.db.Model(&model.PostModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)
	require.NoError(t, env.db.Model(&model.PostContentModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)
	assert.False(t, env.store.Exists(imgPath))
}

func TestGetPrefill_ValidatesParams(t *testing.T) {
	env := newTestEnv(t)

	status, env2 := doRequest(t, env.app,
		httptest.NewRequest(fiber.MethodGet, "/api/admin/posts/prefill?language=xx", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env2.Errors, "topic_name")
	assert.Contains(t, env2.Errors, "language")
}

func TestGetPrefill_CopiesEnglishVariant(t *testing.T) {
	env := newTestEnv(t)

	topic := TopicModel.TopicModel{TopicName: "Aquaculture"}
	require.NoError(t, env.db.Create(&topic).Error)

	post := model.PostModel{PostSlug: "sumber-en", PostTitle: "Shrimp Farming",
		PostExcerpt: "x", PostCategory: "c", PostMetaTitle: "m", PostMetaDescription: "d",
		PostLanguage: "en", PostIsActive: true, PostTopicID: &topic.TopicID}
	require.NoError(t, env.db.Create(&post).Error)

	status, env2 := doRequest(t, env.app,
		httptest.NewRequest(fiber.MethodGet, "/api/admin/posts/prefill?topic_name=Aquaculture&language=de", nil))
	require.Equal(t, fiber.StatusOK, status)

	var draft dto.PostDraftDTO
	require.NoError(t, json.Unmarshal(env2.Data, &draft))
	assert.Equal(t, "Shrimp Farming", draft.Title)
	assert.Equal(t, "de", draft.Language)
	assert.Empty(t, draft.Slug)

	// Prefill read-only: tidak ada post baru yang dipersist.
	var cnt int64
	require.NoError(t, env.db.Model(&model.PostModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}
