package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"novelhub/backend/config"
	"novelhub/backend/models"
	"novelhub/backend/routes"
	"novelhub/backend/utils"
)

type testEnv struct {
	App     *fiber.App
	DB      *gorm.DB
	Cfg     *config.Config
	Revoker utils.TokenRevoker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		DBDriver:   "sqlite",
		DBName:     ":memory:",
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	db, err := utils.InitDB(cfg)
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection; keep the pool at
	// one so every query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	revoker := utils.NewMemoryTokenRevoker()

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg, revoker)

	return &testEnv{App: app, DB: db, Cfg: cfg, Revoker: revoker}
}

func (e *testEnv) createUser(t *testing.T, username, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, e.DB.Create(&user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(user.ID, e.Cfg)
	require.NoError(t, err)
	return token
}

func (e *testEnv) createCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, e.DB.Create(&category).Error)
	return category
}

func (e *testEnv) createNovel(t *testing.T, uploader models.User, category models.Category, title string, approved bool) models.Novel {
	t.Helper()
	novel := models.Novel{
		Title:      title,
		Author:     "Author of " + title,
		CategoryID: category.ID,
		Intro:      "intro",
		UploaderID: uploader.ID,
		IsApproved: approved,
	}
	require.NoError(t, e.DB.Create(&novel).Error)
	return novel
}

func (e *testEnv) createChapter(t *testing.T, novel models.Novel, sortNum int, approved bool) models.Chapter {
	t.Helper()
	chapter := models.Chapter{
		NovelID:    novel.ID,
		Title:      "Chapter",
		SortNum:    sortNum,
		Content:    "First line\n\nSecond line",
		UploaderID: novel.UploaderID,
		IsApproved: approved,
	}
	require.NoError(t, e.DB.Create(&chapter).Error)
	return chapter
}

// request performs a JSON request against the test app. An empty token means
// an anonymous caller.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// decodeData unmarshals the data field of the response envelope.
func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// decodeError unmarshals an error response envelope.
func decodeError(t *testing.T, resp *http.Response) (message string, details map[string]interface{}) {
	t.Helper()
	var envelope struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Message, envelope.Details
}
