package ipc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/slidedrift/slidedrift/internal/playback"
)

type stubPlayer struct {
	snap playback.Snapshot
	cmds []playback.Command
}

func (p *stubPlayer) Snapshot() playback.Snapshot  { return p.snap }
func (p *stubPlayer) Enqueue(cmd playback.Command) { p.cmds = append(p.cmds, cmd) }

func newTestServer(p *stubPlayer) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, p)
	return e
}

func TestStatusHandler(t *testing.T) {
	p := &stubPlayer{snap: playback.Snapshot{
		State:   playback.StateShowing,
		Index:   2,
		Count:   5,
		Current: "/pics/c.jpg",
	}}
	e := newTestServer(p)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /status = %d, want 200", rec.Code)
	}
	var resp StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal status response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.Playback.Current != "/pics/c.jpg" {
		t.Errorf("playback.current = %q, want /pics/c.jpg", resp.Playback.Current)
	}
}

func TestCommandHandlers(t *testing.T) {
	tests := []struct {
		path string
		want playback.CommandType
	}{
		{"/next", playback.CommandNext},
		{"/prev", playback.CommandPrev},
		{"/pause", playback.CommandPause},
		{"/stop", playback.CommandStop},
	}
	for _, tt := range tests {
		p := &stubPlayer{}
		e := newTestServer(p)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("POST %s = %d, want 200", tt.path, rec.Code)
			continue
		}
		if len(p.cmds) != 1 || p.cmds[0].Type != tt.want {
			t.Errorf("POST %s enqueued %v, want one %v", tt.path, p.cmds, tt.want)
		}
	}
}

func TestLoadHandler(t *testing.T) {
	p := &stubPlayer{}
	e := newTestServer(p)

	body := `{"folders": ["/pics/vacation", "/pics/family"]}`
	req := httptest.NewRequest(http.MethodPost, "/load", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /load = %d, want 200", rec.Code)
	}
	if len(p.cmds) != 1 || p.cmds[0].Type != playback.CommandLoad {
		t.Fatalf("enqueued %v, want one load command", p.cmds)
	}
	if len(p.cmds[0].Folders) != 2 {
		t.Errorf("folders = %v, want 2 entries", p.cmds[0].Folders)
	}
}

func TestLoadHandlerRejectsEmptyFolders(t *testing.T) {
	p := &stubPlayer{}
	e := newTestServer(p)

	req := httptest.NewRequest(http.MethodPost, "/load", strings.NewReader(`{"folders": []}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST /load with empty folders = %d, want 400", rec.Code)
	}
	if len(p.cmds) != 0 {
		t.Errorf("no command should be enqueued, got %v", p.cmds)
	}
}
