package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/martinsuchenak/ndfcctl/internal/config"
	"github.com/martinsuchenak/ndfcctl/internal/model"
	"github.com/martinsuchenak/ndfcctl/internal/ndfc"
	"github.com/martinsuchenak/ndfcctl/internal/ui"
)

const networksPattern = "/appcenter/cisco/ndfc/api/v1/lan-fabric/rest/top-down/fabrics/{fabric}/networks"

type fakeController struct {
	networks []model.Network
	putCalls int
	server   *httptest.Server
}

func startFakeController(t *testing.T, records ...string) *fakeController {
	t.Helper()

	fc := &fakeController{}
	for _, r := range records {
		var n model.Network
		if err := json.Unmarshal([]byte(r), &n); err != nil {
			t.Fatalf("Bad test record: %v", err)
		}
		fc.networks = append(fc.networks, n)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
	})
	mux.HandleFunc("GET "+networksPattern, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(fc.networks)
	})
	mux.HandleFunc("PUT "+networksPattern+"/{name}", func(w http.ResponseWriter, r *http.Request) {
		fc.putCalls++
		var updated model.Network
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		for i, n := range fc.networks {
			if n.UpdateName() == r.PathValue("name") {
				fc.networks[i] = updated
			}
		}
		json.NewEncoder(w).Encode(updated)
	})

	fc.server = httptest.NewServer(mux)
	t.Cleanup(fc.server.Close)
	return fc
}

func loggedInClient(t *testing.T, fc *fakeController) *ndfc.Client {
	t.Helper()
	client := ndfc.New(&config.Config{
		Host:     fc.server.URL,
		Username: "admin",
		Password: "secret",
		Domain:   "local",
		Fabric:   "F1",
	})
	if err := client.Login(context.Background()); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return client
}

func TestRunRename_Success(t *testing.T) {
	fc := startFakeController(t, `{"displayName":"Old","networkName":"net-1","fabric":"F1"}`)
	client := loggedInClient(t, fc)

	var out bytes.Buffer
	term := ui.New(strings.NewReader(""), &out)

	err := runRename(context.Background(), client, term, ui.StaticConfirmer(true), &out, "Old", "New")
	if err != nil {
		t.Fatalf("runRename failed: %v", err)
	}

	if fc.putCalls != 1 {
		t.Errorf("Expected one PUT, got %d", fc.putCalls)
	}
	if !strings.Contains(out.String(), `Display name updated: "Old" -> "New"`) {
		t.Errorf("Expected success summary, got:\n%s", out.String())
	}
	// Re-fetched record is shown under its new name
	if !strings.Contains(out.String(), "Display Name:  New") {
		t.Errorf("Expected updated details, got:\n%s", out.String())
	}
}

func TestRunRename_PromptsForMissingNames(t *testing.T) {
	fc := startFakeController(t, `{"displayName":"Old","networkName":"net-1"}`)
	client := loggedInClient(t, fc)

	var out bytes.Buffer
	term := ui.New(strings.NewReader("Old\nNew\n"), &out)

	err := runRename(context.Background(), client, term, ui.StaticConfirmer(true), &out, "", "")
	if err != nil {
		t.Fatalf("runRename failed: %v", err)
	}
	if fc.putCalls != 1 {
		t.Errorf("Expected one PUT, got %d", fc.putCalls)
	}
}

func TestRunRename_ConfirmDenied(t *testing.T) {
	fc := startFakeController(t, `{"displayName":"Old","networkName":"net-1"}`)
	client := loggedInClient(t, fc)

	var out bytes.Buffer
	term := ui.New(strings.NewReader(""), &out)

	err := runRename(context.Background(), client, term, ui.StaticConfirmer(false), &out, "Old", "New")
	if err != nil {
		t.Fatalf("runRename failed: %v", err)
	}

	if fc.putCalls != 0 {
		t.Errorf("Expected no PUT after denied confirmation, got %d", fc.putCalls)
	}
	if !strings.Contains(out.String(), "Rename cancelled") {
		t.Errorf("Expected cancellation notice, got:\n%s", out.String())
	}
}

func TestRunRename_InteractiveDenial(t *testing.T) {
	fc := startFakeController(t, `{"displayName":"Old","networkName":"net-1"}`)
	client := loggedInClient(t, fc)

	var out bytes.Buffer
	term := ui.New(strings.NewReader("n\n"), &out)

	err := runRename(context.Background(), client, term, term, &out, "Old", "New")
	if err != nil {
		t.Fatalf("runRename failed: %v", err)
	}
	if fc.putCalls != 0 {
		t.Errorf("Expected no PUT after interactive denial, got %d", fc.putCalls)
	}
}

func TestRunRename_NotFoundListsAvailable(t *testing.T) {
	fc := startFakeController(t,
		`{"displayName":"Alpha","networkName":"net-1"}`,
		`{"displayName":"Beta","networkName":"net-2"}`,
	)
	client := loggedInClient(t, fc)

	var out bytes.Buffer
	term := ui.New(strings.NewReader(""), &out)

	err := runRename(context.Background(), client, term, ui.StaticConfirmer(true), &out, "Gamma", "Delta")
	if !errors.Is(err, ndfc.ErrNotFound) {
		t.Fatalf("Expected NotFound, got %v", err)
	}

	if fc.putCalls != 0 {
		t.Errorf("Expected no PUT for a missing network, got %d", fc.putCalls)
	}
	for _, name := range []string{"Alpha", "Beta"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected available network %s listed, got:\n%s", name, out.String())
		}
	}
}

func TestRunRename_SameNameIsNoop(t *testing.T) {
	fc := startFakeController(t, `{"displayName":"Old","networkName":"net-1"}`)
	client := loggedInClient(t, fc)

	var out bytes.Buffer
	term := ui.New(strings.NewReader(""), &out)

	err := runRename(context.Background(), client, term, ui.StaticConfirmer(true), &out, "Old", "Old")
	if err != nil {
		t.Fatalf("runRename failed: %v", err)
	}
	if fc.putCalls != 0 {
		t.Errorf("Expected no PUT when the name is unchanged, got %d", fc.putCalls)
	}
	if !strings.Contains(out.String(), "nothing to do") {
		t.Errorf("Expected noop notice, got:\n%s", out.String())
	}
}
