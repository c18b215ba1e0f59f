package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mockify/internal/api"
	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/factory"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	storageFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "mockify-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mockify")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		storageFile: filepath.Join(t.TempDir(), "storage.json"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL + "/api",
		"--storage-file", r.storageFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	// Keep the developer's MOCKIFY_* settings out of the run
	cmd.Env = []string{"HOME=" + filepath.Dir(r.storageFile)}
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	app      *factory.TestApp
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	serverURL := "http://" + addr

	app := factory.NewTestApp()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		Interviewer: app.Interviewer,
		Analyzer:    app.Analysis,
		Resumes:     app.Resume,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:  logger,
		Storage: app.Storage,
		Clock:   app.FixedClock,
		Client: config.Client{
			APIBaseURL: serverURL + "/api",
			AIMode:     model.AIModeLocal,
			AppName:    "Mockify AI",
		},
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	waitForServer(t, serverURL+"/api/health")

	return &testServer{
		app:  app,
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type healthResponse struct {
	Status string `json:"status"`
}

type aiResponse struct {
	Mode     string `json:"mode"`
	Question string `json:"question"`
}

type sessionResponse struct {
	LoggedIn bool `json:"logged_in"`
	User     *struct {
		Username string `json:"username"`
	} `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type statsResponse struct {
	TotalInterviews int `json:"total_interviews"`
	AverageScore    int `json:"average_score"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AskBothModes(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("--ai-mode", "local", "ask", "--company", "Google")
	require.NoError(t, err, "output: %s", output)
	var local aiResponse
	require.NoError(t, json.Unmarshal([]byte(output), &local))
	assert.Equal(t, "local", local.Mode)
	assert.Equal(t, "Tell me about yourself.", local.Question)

	output, err = cli.run("--ai-mode", "cloud", "ask", "--company", "Google")
	require.NoError(t, err, "output: %s", output)
	var cloud aiResponse
	require.NoError(t, json.Unmarshal([]byte(output), &cloud))
	assert.Equal(t, "cloud", cloud.Mode)
	assert.Equal(t, "Why do you want to join us?", cloud.Question)
}

func TestCLI_SessionCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("login", "alice")
	require.NoError(t, err, "output: %s", output)

	// Session should be saved in the storage file
	output, err = cli.run("whoami")
	require.NoError(t, err, "output: %s", output)
	var session sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &session))
	assert.True(t, session.LoggedIn)
	require.NotNil(t, session.User)
	assert.Equal(t, "alice", session.User.Username)

	output, err = cli.run("logout")
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Logged out", msg.Message)

	output, err = cli.run("whoami")
	require.NoError(t, err, "output: %s", output)
	session = sessionResponse{}
	require.NoError(t, json.Unmarshal([]byte(output), &session))
	assert.False(t, session.LoggedIn)
}

func TestCLI_AnalyzeAndStats(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	ts.app.Local.Response = `{"score": 64, "verdict": "Lean Hire"}`
	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("analyze", "user: binary search on the answer", "--company", "Amazon")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("stats")
	require.NoError(t, err, "output: %s", output)
	var stats statsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &stats))
	assert.Equal(t, 1, stats.TotalInterviews)
	assert.Equal(t, 64, stats.AverageScore)
}

func TestWeb_InterviewPageServedAlongsideAPI(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	resp, err := http.Get(ts.addr + "/interview.html")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Tell me about yourself.", strings.TrimSpace(doc.Find("#question").Text()))
	assert.Equal(t, 1, doc.Find("#loginBtn").Length())
}
