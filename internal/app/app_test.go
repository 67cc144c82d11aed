package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"campaignhub_backend/internal/config"
	"campaignhub_backend/internal/repositories/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "memory"
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.TTLHours = 1

	srv := httptest.NewServer(SetupRouter(cfg, memory.NewStore()))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func doJSONList(t *testing.T, client *http.Client, url string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/api/projects")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodGet, srv.URL+"/api/auth/user", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleGuardForbidsInfluencerMutations(t *testing.T) {
	srv, client := newTestServer(t)

	resp, _ := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/register", map[string]interface{}{
		"username": "vera",
		"password": "secret-password",
		"name":     "Вера",
		"role":     "influencer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/projects", map[string]interface{}{
		"title":     "Кампания",
		"client":    "Acme",
		"startDate": time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEndToEndManagerFlow(t *testing.T) {
	srv, client := newTestServer(t)

	// регистрация открывает сессию
	resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/register", map[string]interface{}{
		"username": "anna",
		"password": "secret-password",
		"name":     "Анна",
		"role":     "manager",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "manager", user["role"])

	resp, body = doJSON(t, client, http.MethodGet, srv.URL+"/api/auth/user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anna", body["user"].(map[string]interface{})["username"])

	// ростер и проект
	resp, influencer := doJSON(t, client, http.MethodPost, srv.URL+"/api/influencers", map[string]interface{}{
		"nickname": "vera_blog",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	influencerID := influencer["id"].(float64)

	resp, project := doJSON(t, client, http.MethodPost, srv.URL+"/api/projects", map[string]interface{}{
		"title":     "Запуск продукта",
		"client":    "Acme",
		"startDate": time.Now().Format(time.RFC3339),
		"platforms": []string{"instagram", "youtube"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "active", project["status"])
	assert.Equal(t, "scenario", project["workflowStage"])
	projectID := project["id"].(float64)
	projectURL := fmt.Sprintf("%s/api/projects/%.0f", srv.URL, projectID)

	// сценарий без инфлюенсеров отклоняется
	resp, _ = doJSON(t, client, http.MethodPost, projectURL+"/scenarios", map[string]interface{}{
		"content": "Обзор продукта",
	})
	assert.Equal(t, http.StatusPreconditionFailed, resp.StatusCode)

	// привязка, повтор дает конфликт
	resp, _ = doJSON(t, client, http.MethodPost, projectURL+"/influencers", map[string]interface{}{
		"influencerId": influencerID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodPost, projectURL+"/influencers", map[string]interface{}{
		"influencerId": influencerID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// сценарий и его утверждение двигают проект на этап материалов
	resp, scenario := doJSON(t, client, http.MethodPost, projectURL+"/scenarios", map[string]interface{}{
		"content": "Обзор продукта",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	scenarioID := scenario["id"].(float64)

	resp, approved := doJSON(t, client, http.MethodPatch,
		fmt.Sprintf("%s/scenarios/%.0f", projectURL, scenarioID),
		map[string]interface{}{"status": "approved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "approved", approved["status"])

	resp, body = doJSON(t, client, http.MethodGet, projectURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "material", body["workflowStage"])

	// журнал: от новых к старым, с пользователем
	resp, activities := doJSONList(t, client, projectURL+"/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, activities, 4)
	assert.Equal(t, "scenario_to_material", activities[0]["activityType"])
	assert.Equal(t, "scenario_approved", activities[1]["activityType"])
	assert.Equal(t, "Анна", activities[0]["user"].(map[string]interface{})["name"])

	// комментарии: от старых к новым
	resp, _ = doJSON(t, client, http.MethodPost, projectURL+"/comments", map[string]interface{}{
		"content": "Отличный сценарий",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, comments := doJSONList(t, client, projectURL+"/comments")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, comments, 1)
	assert.Equal(t, "Отличный сценарий", comments[0]["content"])

	// сводка менеджера
	resp, stats := doJSON(t, client, http.MethodGet, srv.URL+"/api/stats/manager", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), stats["activeProjects"])
	assert.Equal(t, float64(1), stats["pendingReviews"])

	// каскадное удаление
	resp, _ = doJSON(t, client, http.MethodDelete, projectURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodGet, projectURL, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// выход закрывает сессию
	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodGet, srv.URL+"/api/auth/user", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
