package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mockify/internal/api"
	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/factory"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/testutil"
	"github.com/mcoot/mockify/internal/web"
	"github.com/mcoot/mockify/internal/web/middleware"
)

// webTestServer serves the pages against a live test backend
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	backend *httptest.Server
	cookies *cookieJar
}

// newWebTestServer creates a web router whose client config points at a test API server
func newWebTestServer(t *testing.T, mode model.AIMode) *webTestServer {
	t.Helper()

	logger := testutil.NopLogger()
	app := factory.NewTestApp()

	backend := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:      logger,
		Interviewer: app.Interviewer,
		Analyzer:    app.Analysis,
		Resumes:     app.Resume,
	}))
	t.Cleanup(backend.Close)

	router := web.NewRouter(web.RouterConfig{
		Logger:  logger,
		Storage: app.Storage,
		Clock:   app.FixedClock,
		Client: config.Client{
			APIBaseURL: backend.URL + "/api",
			AIMode:     mode,
			AppName:    "Mockify AI",
		},
		StaticDir: "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		backend: backend,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows a redirect response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// login submits the login form and expects a redirect to the interview page
func (ts *webTestServer) login(username string) {
	ts.t.Helper()
	rr := ts.post("/auth/login", url.Values{"username": {username}, "password": {"anything"}})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after login")
}

// clientID returns the browser's client storage namespace
func (ts *webTestServer) clientID() model.ClientID {
	ts.t.Helper()
	cookie, ok := ts.cookies.cookies[middleware.ClientCookieName]
	require.True(ts.t, ok, "Expected client cookie to be set")
	return model.ClientID(cookie.Value)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
