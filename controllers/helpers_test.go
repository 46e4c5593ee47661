package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/migration"
	"inventory-app/models"
	"inventory-app/routes"
	"inventory-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	idgen.Init()
	os.Exit(m.Run())
}

// setupApp builds a fiber app over a fresh in-memory database with the
// warehouses and the bootstrap admin seeded.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	database.SeedWarehouses(db)
	database.SeedAdminUser(db)

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	routes.SetupShipmentRoutes(app, db)
	routes.SetupMessageRoutes(app, db)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role, hubs string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		Username: username,
		Password: utils.HashPassword(password),
		Role:     role,
		Hubs:     hubs,
	}).Error)
}

func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login",
		fiber.Map{"username": username, "password": password}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["x_token"].(string)
	require.NotEmpty(t, token)
	return token
}
