package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/models"
)

func TestRegisterThenLogin(t *testing.T) {
	app := setupApp(t)

	token, _ := register(t, app, map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "pw123",
	})
	require.NotEmpty(t, token)

	code, body := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, string(models.RoleCustomer), user["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	register(t, app, map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	code, body := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name": "Mallory", "email": "alice@example.com", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, code, "body: %v", body)

	var count int64
	db.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count, "no second record may be created")
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "password": "pw123", "role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := setupApp(t)

	register(t, app, map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	codeUnknown, bodyUnknown := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "nobody@example.com", "password": "pw123",
	})
	codeWrong, bodyWrong := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "alice@example.com", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, codeUnknown)
	assert.Equal(t, codeUnknown, codeWrong)
	assert.Equal(t, bodyUnknown, bodyWrong)
}

func TestLoginStorageFailureIsNotUnauthorized(t *testing.T) {
	app := setupApp(t)

	register(t, app, map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	// With the database gone the lookup fails for a reason other than a
	// missing record. That must surface as a server error, not as bad
	// credentials.
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	code, _ := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "alice@example.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestAdminRegistrationRequiresKey(t *testing.T) {
	app := setupApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name": "Eve", "email": "eve@example.com", "password": "pw", "role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name": "Root", "email": "root@example.com", "password": "pw",
		"role": "admin", "admin_key": "test-admin-key",
	})
	assert.Equal(t, http.StatusCreated, code)
}

func TestPasswordNeverSerialized(t *testing.T) {
	app := setupApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "password": "pw456",
		"role": "provider", "business_name": "Bob's Cuts",
	})
	require.Equal(t, http.StatusCreated, code)

	user := body["user"].(map[string]interface{})
	for _, key := range []string{"password", "Password", "password_hash", "hashed_password"} {
		_, present := user[key]
		assert.False(t, present, "redacted user view leaked %q", key)
	}

	// Same through login and /auth/me.
	code, body = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "bob@example.com", "password": "pw456",
	})
	require.Equal(t, http.StatusOK, code)
	user = body["user"].(map[string]interface{})
	_, present := user["password"]
	assert.False(t, present)

	code, body = doJSON(t, app, http.MethodGet, "/auth/me", body["token"].(string), nil)
	require.Equal(t, http.StatusOK, code)
	user = body["user"].(map[string]interface{})
	_, present = user["password"]
	assert.False(t, present)
}

func TestMe(t *testing.T) {
	app := setupApp(t)

	token, id := register(t, app, map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	code, body := doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, float64(id), user["id"])

	// No token.
	code, _ = doJSON(t, app, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Garbage token.
	code, _ = doJSON(t, app, http.MethodGet, "/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestValidTokenForDeletedUserIsUnauthenticated(t *testing.T) {
	app := setupApp(t)

	token, id := register(t, app, map[string]interface{}{
		"name": "Ghost", "email": "ghost@example.com", "password": "pw123",
	})

	require.NoError(t, db.DB.Delete(&models.User{}, id).Error)

	code, _ := doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
