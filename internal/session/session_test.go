package session

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Version{
		{Label: "2.0", Examples: []catalog.ExampleRecord{
			{Identifier: "petstore", DisplayName: "Petstore", JSONText: `{"swagger": "2.0"}`, YAMLText: "swagger: \"2.0\"\n"},
		}},
		{Label: "3.0", Examples: []catalog.ExampleRecord{
			{Identifier: "petstore", DisplayName: "Petstore", JSONText: `{"openapi": "3.0.0"}`, YAMLText: "openapi: 3.0.0\n"},
			{Identifier: "callbacks", DisplayName: "Callbacks", JSONText: `{"openapi": "3.0.3"}`, YAMLText: "openapi: 3.0.3\n"},
		}},
		{Label: "3.1", Examples: []catalog.ExampleRecord{
			{Identifier: "webhooks", DisplayName: "Webhooks", JSONText: `{"openapi": "3.1.0"}`, YAMLText: "openapi: 3.1.0\n"},
		}},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func setupServer(t *testing.T, opts ...viewer.Option) (*Handler, *httptest.Server) {
	t.Helper()
	links := viewer.Links{
		RawTemplate:       "https://example.com/{version}/{format}/{identifier}.{format}",
		ViewerTemplate:    "https://viewer.example.com/?url={url}",
		ViewerUnsupported: []string{"2.0"},
	}
	h := New(testCatalog(t), links, "", opts...)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return h, server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/viewer"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) response {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func send(t *testing.T, conn *websocket.Conn, typ, value string) {
	t.Helper()
	if err := conn.WriteJSON(request{Type: typ, Value: value}); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestInitialState(t *testing.T) {
	_, server := setupServer(t)
	conn := dial(t, server)

	resp := read(t, conn)
	if resp.Type != MsgState || resp.State == nil {
		t.Fatalf("first message = %+v", resp)
	}
	if resp.SessionID == "" {
		t.Error("session id should be set")
	}
	s := resp.State
	if s.Version != "3.0" || s.Example != "petstore" || s.Format != viewer.FormatJSON {
		t.Errorf("initial state = %s/%s/%s", s.Version, s.Example, s.Format)
	}
	if resp.Text != `{"openapi": "3.0.0"}` {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.RawURL != "https://example.com/3.0/json/petstore.json" || resp.ViewerURL == "" {
		t.Errorf("links = %q %q", resp.RawURL, resp.ViewerURL)
	}
	if len(s.Tabs) != 3 || s.Tabs[1].Name != "v3.0" || !s.Tabs[1].Active {
		t.Errorf("tabs = %+v", s.Tabs)
	}
}

func TestTransitions(t *testing.T) {
	_, server := setupServer(t)
	conn := dial(t, server)
	first := read(t, conn)

	send(t, conn, MsgSelectVersion, "3.1")
	resp := read(t, conn)
	if resp.State.Version != "3.1" || resp.State.Example != "webhooks" {
		t.Errorf("after select_version: %+v", resp.State)
	}

	send(t, conn, MsgSelectFormat, "yaml")
	resp = read(t, conn)
	if resp.State.Format != viewer.FormatYAML || resp.Text != "openapi: 3.1.0\n" {
		t.Errorf("after select_format: %+v %q", resp.State, resp.Text)
	}

	send(t, conn, MsgSelectVersion, "2.0")
	resp = read(t, conn)
	if resp.State.Version != "2.0" || resp.State.Example != "petstore" || resp.State.Format != viewer.FormatYAML {
		t.Errorf("after second select_version: %+v", resp.State)
	}
	if resp.ViewerURL != "" {
		t.Errorf("2.0 should have no viewer link, got %q", resp.ViewerURL)
	}
	if resp.SessionID != first.SessionID {
		t.Error("session id changed within one connection")
	}
}

func TestRejectedTransitions(t *testing.T) {
	_, server := setupServer(t)
	conn := dial(t, server)
	read(t, conn)

	tests := []struct {
		typ, value string
	}{
		{MsgSelectVersion, "4.0"},
		{MsgSelectExample, "webhooks"},
		{MsgSelectFormat, "xml"},
		{"launch", ""},
	}
	for _, tt := range tests {
		send(t, conn, tt.typ, tt.value)
		resp := read(t, conn)
		if resp.Type != MsgError || resp.Error == "" {
			t.Errorf("%s(%q): expected error, got %+v", tt.typ, tt.value, resp)
		}
	}

	send(t, conn, MsgState, "")
	resp := read(t, conn)
	if resp.State.Version != "3.0" || resp.State.Example != "petstore" || resp.State.Format != viewer.FormatJSON {
		t.Errorf("rejected messages changed state: %+v", resp.State)
	}
}

func TestInvalidMessage(t *testing.T) {
	_, server := setupServer(t)
	conn := dial(t, server)
	read(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	resp := read(t, conn)
	if resp.Type != MsgError || resp.Error != "invalid message format" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCopy(t *testing.T) {
	_, server := setupServer(t, viewer.WithCopyFeedbackDelay(100*time.Millisecond))
	conn := dial(t, server)
	read(t, conn)

	send(t, conn, MsgSelectExample, "callbacks")
	read(t, conn)

	send(t, conn, MsgCopy, "")

	clip := read(t, conn)
	if clip.Type != MsgClipboard || clip.Text != `{"openapi": "3.0.3"}` {
		t.Errorf("clipboard message = %+v", clip)
	}
	raised := read(t, conn)
	if raised.Type != MsgState || !raised.State.Copied {
		t.Errorf("expected copied state, got %+v", raised)
	}
	reset := read(t, conn)
	if reset.Type != MsgState || reset.State.Copied {
		t.Errorf("expected the flag to reset, got %+v", reset)
	}
}

func TestToggleFilters(t *testing.T) {
	_, server := setupServer(t)
	conn := dial(t, server)
	read(t, conn)

	send(t, conn, MsgToggleFilters, "")
	if resp := read(t, conn); !resp.State.FiltersOpen {
		t.Error("filters should be open")
	}
	send(t, conn, MsgToggleFilters, "")
	if resp := read(t, conn); resp.State.FiltersOpen {
		t.Error("filters should be closed")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	h, server := setupServer(t)
	a := dial(t, server)
	b := dial(t, server)
	first := read(t, a)
	second := read(t, b)

	if first.SessionID == second.SessionID {
		t.Error("connections should get distinct session ids")
	}
	if h.Active() != 2 {
		t.Errorf("active = %d, want 2", h.Active())
	}

	send(t, a, MsgSelectVersion, "3.1")
	read(t, a)
	send(t, b, MsgState, "")
	if resp := read(t, b); resp.State.Version != "3.0" {
		t.Errorf("session b saw session a's selection: %+v", resp.State)
	}

	a.Close()
	deadline := time.Now().Add(2 * time.Second)
	for h.Active() != 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if h.Active() != 1 {
		t.Errorf("closed session still active: %d", h.Active())
	}
}
