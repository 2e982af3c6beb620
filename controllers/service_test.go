package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicListingExcludesInactive(t *testing.T) {
	app := setupApp(t)

	bobToken, _ := register(t, app, map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "password": "pw456", "role": "provider",
	})

	code, body := doJSON(t, app, http.MethodPost, "/provider/services", bobToken, map[string]interface{}{
		"title": "Haircut", "category": "grooming", "price": 20.0,
	})
	require.Equal(t, http.StatusCreated, code)
	haircutID := uint(body["service"].(map[string]interface{})["id"].(float64))

	code, _ = doJSON(t, app, http.MethodPost, "/provider/services", bobToken, map[string]interface{}{
		"title": "Beard Trim", "category": "grooming", "price": 10.0,
	})
	require.Equal(t, http.StatusCreated, code)

	code, body = doJSON(t, app, http.MethodGet, "/services/", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["services"], 2)

	code, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/provider/services/%d", haircutID), bobToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, body = doJSON(t, app, http.MethodGet, "/services/", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["services"], 1)

	// Deactivated service is gone from the detail endpoint too.
	code, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/services/%d", haircutID), "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// The provider still sees it in their own list.
	code, body = doJSON(t, app, http.MethodGet, "/provider/services", bobToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["services"], 2)
}

func TestServiceFilters(t *testing.T) {
	app := setupApp(t)

	bobToken, _ := register(t, app, map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "password": "pw456", "role": "provider",
	})

	for _, svc := range []map[string]interface{}{
		{"title": "Haircut", "category": "grooming", "price": 20.0},
		{"title": "Pipe Repair", "category": "plumbing", "price": 80.0},
	} {
		code, _ := doJSON(t, app, http.MethodPost, "/provider/services", bobToken, svc)
		require.Equal(t, http.StatusCreated, code)
	}

	code, body := doJSON(t, app, http.MethodGet, "/services/?category=plumbing", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["services"], 1)

	code, body = doJSON(t, app, http.MethodGet, "/services/?search=Hair", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["services"], 1)

	code, body = doJSON(t, app, http.MethodGet, "/services/categories/list", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.ElementsMatch(t, []interface{}{"grooming", "plumbing"}, body["categories"])
}

func TestOnlyProvidersManageServices(t *testing.T) {
	app := setupApp(t)

	aliceToken, _ := register(t, app, map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	code, _ := doJSON(t, app, http.MethodPost, "/provider/services", aliceToken, map[string]interface{}{
		"title": "Haircut", "category": "grooming", "price": 20.0,
	})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestProviderCannotTouchOthersService(t *testing.T) {
	app := setupApp(t)

	bobToken, _ := register(t, app, map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "password": "pw456", "role": "provider",
	})
	eveToken, _ := register(t, app, map[string]interface{}{
		"name": "Eve", "email": "eve@example.com", "password": "pw789", "role": "provider",
	})

	code, body := doJSON(t, app, http.MethodPost, "/provider/services", bobToken, map[string]interface{}{
		"title": "Haircut", "category": "grooming", "price": 20.0,
	})
	require.Equal(t, http.StatusCreated, code)
	serviceID := uint(body["service"].(map[string]interface{})["id"].(float64))

	code, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/provider/services/%d", serviceID), eveToken,
		map[string]interface{}{"title": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/provider/services/%d", serviceID), eveToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServicePriceValidation(t *testing.T) {
	app := setupApp(t)

	bobToken, _ := register(t, app, map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "password": "pw456", "role": "provider",
	})

	code, _ := doJSON(t, app, http.MethodPost, "/provider/services", bobToken, map[string]interface{}{
		"title": "Haircut", "category": "grooming", "price": -5.0,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, app, http.MethodPost, "/provider/services", bobToken, map[string]interface{}{
		"title": "Haircut", "category": "grooming",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}
