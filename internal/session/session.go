// Package session runs live viewer sessions over websockets. Each connection
// owns one viewer.State, created on connect and discarded on close.
package session

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client message types.
const (
	MsgSelectVersion = "select_version"
	MsgSelectExample = "select_example"
	MsgSelectFormat  = "select_format"
	MsgCopy          = "copy"
	MsgToggleFilters = "toggle_filters"
	MsgState         = "state"
)

// Server message types.
const (
	MsgClipboard = "clipboard"
	MsgError     = "error"
)

// request is the incoming WebSocket message format.
type request struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// response is the outgoing WebSocket message format.
type response struct {
	Type      string           `json:"type"` // "state", "clipboard" or "error"
	SessionID string           `json:"session_id"`
	State     *viewer.Snapshot `json:"state,omitempty"`
	Text      string           `json:"text,omitempty"`
	RawURL    string           `json:"raw_url,omitempty"`
	ViewerURL string           `json:"viewer_url,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Handler serves /ws/viewer.
type Handler struct {
	cat            *catalog.Catalog
	links          viewer.Links
	defaultVersion string
	options        []viewer.Option
	active         atomic.Int64
}

// New creates a Handler over cat. Extra options are applied to every
// session's state.
func New(cat *catalog.Catalog, links viewer.Links, defaultVersion string, opts ...viewer.Option) *Handler {
	return &Handler{
		cat:            cat,
		links:          links,
		defaultVersion: defaultVersion,
		options:        opts,
	}
}

// RegisterRoutes mounts the session endpoint on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/viewer", h.handleWebSocket)
}

// Active returns the number of open sessions.
func (h *Handler) Active() int64 { return h.active.Load() }

// conn serializes writes; the state's reset timer writes from its own goroutine.
type conn struct {
	id string
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) send(resp response) error {
	resp.SessionID = c.id
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(resp)
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("session: websocket upgrade: %v", err)
		return
	}
	defer ws.Close()

	c := &conn{id: uuid.NewString(), ws: ws}

	opts := append([]viewer.Option{
		viewer.WithDefaultVersion(h.defaultVersion),
		viewer.WithClipboard(viewer.ClipboardFunc(func(text string) error {
			return c.send(response{Type: MsgClipboard, Text: text})
		})),
		viewer.WithOnChange(func(snap viewer.Snapshot) {
			h.sendState(c, snap)
		}),
	}, h.options...)

	state, err := viewer.New(h.cat, opts...)
	if err != nil {
		h.sendError(c, err.Error())
		return
	}
	defer state.Close()

	h.active.Add(1)
	defer h.active.Add(-1)

	h.sendState(c, state.Snapshot())

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("session: websocket read: %v", err)
			}
			return
		}

		var req request
		if err := json.Unmarshal(msg, &req); err != nil {
			h.sendError(c, "invalid message format")
			continue
		}

		if err := apply(state, req); err != nil {
			h.sendError(c, err.Error())
			continue
		}
		h.sendState(c, state.Snapshot())
	}
}

var errUnknownMessage = errors.New("unknown message type")

// apply runs one client message against the state.
func apply(state *viewer.State, req request) error {
	switch req.Type {
	case MsgSelectVersion:
		return state.SelectVersion(req.Value)
	case MsgSelectExample:
		return state.SelectExample(req.Value)
	case MsgSelectFormat:
		return state.SelectFormat(viewer.Format(req.Value))
	case MsgCopy:
		state.CopyCurrentText()
	case MsgToggleFilters:
		state.ToggleFilters()
	case MsgState:
	default:
		return errUnknownMessage
	}
	return nil
}

func (h *Handler) sendState(c *conn, snap viewer.Snapshot) {
	raw, viewerURL := h.links.ForSnapshot(snap)
	resp := response{
		Type:      MsgState,
		State:     &snap,
		Text:      snap.Text,
		RawURL:    raw,
		ViewerURL: viewerURL,
	}
	if err := c.send(resp); err != nil {
		log.Printf("session: websocket write: %v", err)
	}
}

func (h *Handler) sendError(c *conn, message string) {
	if err := c.send(response{Type: MsgError, Error: message}); err != nil {
		log.Printf("session: websocket write error: %v", err)
	}
}
