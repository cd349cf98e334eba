package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/snakeduel/engine/config"
)

func init() {
	// Tests should not wait for real-time playback.
	config.TickRate = rate.Limit(10000)
	config.TickBurst = 100
}

func createTestServer() *Server {
	return New(":0")
}

func postGame(t *testing.T, s *Server, req GameRequest) string {
	body, err := json.Marshal(req)
	require.NoError(t, err)

	r, _ := http.NewRequest("POST", "/games", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, r)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["id"])
	return resp["id"]
}

func TestListStrategies(t *testing.T) {
	s := createTestServer()

	req, _ := http.NewRequest("GET", "/strategies", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Contains(t, resp["strategies"], "direct")
	require.Contains(t, resp["strategies"], "noisy")
}

func TestCreateGame(t *testing.T) {
	s := createTestServer()
	id := postGame(t, s, GameRequest{Strategy1: "direct", Strategy2: "balanced", Seed: 1, MaxSteps: 5})

	_, ok := s.hub.get(id)
	require.True(t, ok)
}

func TestCreateGameUnknownStrategy(t *testing.T) {
	s := createTestServer()

	r, _ := http.NewRequest("POST", "/games", strings.NewReader(`{"strategy1":"deep-rl","strategy2":"direct"}`))
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, r)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGameStatus(t *testing.T) {
	s := createTestServer()
	id := postGame(t, s, GameRequest{Strategy1: "direct", Strategy2: "direct", Seed: 3, MaxSteps: 5})

	var frame Frame
	require.Eventually(t, func() bool {
		req, _ := http.NewRequest("GET", "/games/"+id, nil)
		rr := httptest.NewRecorder()
		s.hs.Handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			return false
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &frame))
		return frame.Done
	}, 5*time.Second, 10*time.Millisecond)

	require.Equal(t, int32(51), frame.State.Width)
	require.Len(t, frame.State.Snake1, 2)
}

func TestGameStatusNotFound(t *testing.T) {
	s := createTestServer()

	req, _ := http.NewRequest("GET", "/games/nope", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameSocketStreamsFrames(t *testing.T) {
	s := createTestServer()
	ts := httptest.NewServer(s.hs.Handler)
	defer ts.Close()

	id := postGame(t, s, GameRequest{Strategy1: "direct", Strategy2: "direct", Seed: 9, MaxSteps: 10})

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/socket/" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var frames []Frame
	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			break
		}
		frames = append(frames, f)
		if f.Done {
			break
		}
	}
	require.NotEmpty(t, frames)
	require.True(t, frames[len(frames)-1].Done)
	// The first frame is the opening position, before any move.
	require.Equal(t, int64(0), frames[0].State.Turn)
}
