package api

import (
	"net/http"
	"testing"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

func TestBootstrapFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	statusResponse := getJSON(t, app, "", "/api/auth/setup-status")
	defer statusResponse.Body.Close()
	status := map[string]bool{}
	decodeJSONBody(t, statusResponse.Body, &status)
	if !status["needsBootstrap"] {
		t.Fatal("fresh database should need bootstrap")
	}

	bootstrapResponse := postJSON(t, app, "", "/api/auth/bootstrap", map[string]any{
		"name":  "Dana",
		"email": "dana@example.com",
		"pin":   "",
	})
	defer bootstrapResponse.Body.Close()
	if bootstrapResponse.StatusCode != http.StatusCreated {
		t.Fatalf("bootstrap status = %d, want 201", bootstrapResponse.StatusCode)
	}
	admin := models.User{}
	decodeJSONBody(t, bootstrapResponse.Body, &admin)
	if admin.Role != models.RoleAdmin {
		t.Fatalf("bootstrap role = %q, want admin", admin.Role)
	}
	if responseCookie(bootstrapResponse.Cookies(), authCookieName) == nil {
		t.Fatal("bootstrap should start a session")
	}

	secondResponse := postJSON(t, app, "", "/api/auth/bootstrap", map[string]any{
		"name":  "Eve",
		"email": "eve@example.com",
		"pin":   "5555",
	})
	defer secondResponse.Body.Close()
	if secondResponse.StatusCode != http.StatusConflict {
		t.Fatalf("second bootstrap status = %d, want 409", secondResponse.StatusCode)
	}

	statusAfter := getJSON(t, app, "", "/api/auth/setup-status")
	defer statusAfter.Body.Close()
	decodeJSONBody(t, statusAfter.Body, &status)
	if status["needsBootstrap"] {
		t.Fatal("bootstrap should close after the first admin")
	}
}

func TestLoginAndMe(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Dana", "dana@example.com", models.RoleAdmin, "2468")

	wrongPIN := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email": "dana@example.com",
		"pin":   "0000",
	})
	defer wrongPIN.Body.Close()
	if wrongPIN.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong PIN status = %d, want 401", wrongPIN.StatusCode)
	}
	if message := readAPIError(t, wrongPIN.Body); message != "invalid credentials" {
		t.Fatalf("wrong PIN error = %q", message)
	}

	authCookie := loginAndExtractAuthCookie(t, app, "dana@example.com", "2468")

	meResponse := getJSON(t, app, authCookie, "/api/auth/me")
	defer meResponse.Body.Close()
	if meResponse.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d, want 200", meResponse.StatusCode)
	}
	me := map[string]any{}
	decodeJSONBody(t, meResponse.Body, &me)
	if me["email"] != "dana@example.com" {
		t.Fatalf("me email = %v", me["email"])
	}
	if _, exposed := me["pin"]; exposed {
		t.Fatal("PIN must never appear in API responses")
	}
}

func TestLoginThrottlesRepeatedFailures(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Dana", "dana@example.com", models.RoleAdmin, "2468")
	createTestUser(t, database, "Finn", "finn@example.com", models.RoleAgent, "1357")

	for attempt := 0; attempt < loginAttemptsLimit; attempt++ {
		response := postJSON(t, app, "", "/api/auth/login", map[string]any{
			"email": "dana@example.com",
			"pin":   "0000",
		})
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d status = %d, want 401", attempt+1, response.StatusCode)
		}
		response.Body.Close()
	}

	lockedOut := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email": "dana@example.com",
		"pin":   "2468",
	})
	defer lockedOut.Body.Close()
	if lockedOut.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("locked-out status = %d, want 429", lockedOut.StatusCode)
	}

	caseVariant := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email": "  DANA@example.com ",
		"pin":   "2468",
	})
	defer caseVariant.Body.Close()
	if caseVariant.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("case-variant email status = %d, want 429 for the same account", caseVariant.StatusCode)
	}

	// Only the attacked account is throttled.
	loginAndExtractAuthCookie(t, app, "finn@example.com", "1357")
}

func TestLoginResetsThrottleOnSuccess(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Dana", "dana@example.com", models.RoleAdmin, "2468")

	for attempt := 0; attempt < loginAttemptsLimit-1; attempt++ {
		response := postJSON(t, app, "", "/api/auth/login", map[string]any{
			"email": "dana@example.com",
			"pin":   "0000",
		})
		response.Body.Close()
	}

	loginAndExtractAuthCookie(t, app, "dana@example.com", "2468")

	failAgain := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email": "dana@example.com",
		"pin":   "0000",
	})
	defer failAgain.Body.Close()
	if failAgain.StatusCode != http.StatusUnauthorized {
		t.Fatalf("post-success failure status = %d, want 401 not a lockout", failAgain.StatusCode)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	for _, path := range []string{"/api/records", "/api/trash", "/api/users", "/api/reminders/due"} {
		response := getJSON(t, app, "", path)
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("GET %s status = %d, want 401", path, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Dana", "dana@example.com", models.RoleAdmin, "2468")
	authCookie := loginAndExtractAuthCookie(t, app, "dana@example.com", "2468")

	logoutResponse := postJSON(t, app, authCookie, "/api/auth/logout", nil)
	defer logoutResponse.Body.Close()
	if logoutResponse.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", logoutResponse.StatusCode)
	}

	cleared := responseCookie(logoutResponse.Cookies(), authCookieName)
	if cleared == nil || cleared.Value != "" {
		t.Fatal("logout should blank the auth cookie")
	}
}
