// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnroute/internal/handlers"
	"learnroute/internal/middleware"
	"learnroute/internal/model"
	"learnroute/internal/service/mocks"
)

// httpRequestDetails holds what is needed to send one request.
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

type httpResponseExpectations struct {
	ExpectedCode      int
	ExpectedErrorCode string
}

// serviceMocks bundles one mock per service. Mocks without expectations
// also assert that they were never called.
type serviceMocks struct {
	auth     *mocks.AuthService
	user     *mocks.UserService
	roadmap  *mocks.RoadmapService
	resource *mocks.ResourceService
}

func newServiceMocks(t *testing.T) serviceMocks {
	return serviceMocks{
		auth:     mocks.NewAuthService(t),
		user:     mocks.NewUserService(t),
		roadmap:  mocks.NewRoadmapService(t),
		resource: mocks.NewResourceService(t),
	}
}

// newMockServer serves the API with the services replaced by mocks and the
// caller taken from X-User-ID.
func newMockServer(t *testing.T, m serviceMocks) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterRoutes(r, handlers.Handlers{
			Auth:     handlers.NewAuthHandler(m.auth),
			User:     handlers.NewUserHandler(m.user),
			Roadmap:  handlers.NewRoadmapHandler(m.roadmap),
			Resource: handlers.NewResourceHandler(m.resource),
		}, middleware.DevUserContextMiddleware)
	})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

// sendRequest sends the request, asserts the status code and returns the
// body.
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) []byte {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch, body: %s", respBodyBytes)
	if expectations.ExpectedErrorCode != "" {
		verifyErrorResponse(t, respBodyBytes, expectations.ExpectedErrorCode)
	}
	return respBodyBytes
}

// verifyErrorResponse checks the error code in an APIErrorResponse body.
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "body is not an error response: %s", bodyBytes)
	assert.Equal(t, expectedCode, errResp.Error.Code)
}

func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", body)
	return v
}
