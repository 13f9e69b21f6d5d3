package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"learnroute/internal/model"
)

func TestResourceHandler_GetMultiple(t *testing.T) {
	resources := []*model.Resource{
		{ID: 1, Title: "Intro", Difficulty: model.DifficultyBeginner},
		{ID: 8, Title: "DevOps", Difficulty: model.DifficultyAdvanced},
	}

	tests := []struct {
		name              string
		body              interface{}
		setupMock         func(m serviceMocks)
		expectedStatus    int
		expectedErrorCode string
		expectedLen       int
	}{
		{
			name: "Success - unknown ids are dropped",
			body: map[string][]uint{"ids": {1, 8, 404}},
			setupMock: func(m serviceMocks) {
				m.resource.On("GetResources", mock.Anything, []uint{1, 8, 404}).Return(resources, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "Success - empty list",
			body: map[string][]uint{"ids": {}},
			setupMock: func(m serviceMocks) {
				m.resource.On("GetResources", mock.Anything, []uint{}).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:              "Fail - ids missing",
			body:              map[string]string{},
			setupMock:         func(m serviceMocks) {},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "VALIDATION_ERROR",
		},
		{
			name:              "Fail - ids not numbers",
			body:              `{"ids":["a"]}`,
			setupMock:         func(m serviceMocks) {},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "INVALID_REQUEST_BODY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tc.setupMock(m)
			server := newMockServer(t, m)

			body := sendRequest(t, server,
				httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/resources/multiple", Body: tc.body},
				httpResponseExpectations{ExpectedCode: tc.expectedStatus, ExpectedErrorCode: tc.expectedErrorCode},
			)
			if tc.expectedStatus == http.StatusOK {
				got := decodeBody[[]model.Resource](t, body)
				assert.Len(t, got, tc.expectedLen)
			}
		})
	}
}

func TestResourceHandler_ListAndGet(t *testing.T) {
	m := newServiceMocks(t)
	m.resource.On("ListResources", mock.Anything, "devops").Return([]*model.Resource{{ID: 8, Category: "devops"}}, nil).Once()
	m.resource.On("ListResources", mock.Anything, "").Return(nil, nil).Once()
	m.resource.On("GetResource", mock.Anything, uint(8)).Return(&model.Resource{ID: 8}, nil).Once()
	m.resource.On("GetResource", mock.Anything, uint(99)).
		Return(nil, model.NewAppError("RESOURCE_NOT_FOUND", "Resource not found.", "", model.ErrNotFound)).Once()
	server := newMockServer(t, m)

	body := sendRequest(t, server,
		httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/resources?category=devops"},
		httpResponseExpectations{ExpectedCode: http.StatusOK},
	)
	assert.Len(t, decodeBody[[]model.Resource](t, body), 1)

	body = sendRequest(t, server,
		httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/resources"},
		httpResponseExpectations{ExpectedCode: http.StatusOK},
	)
	assert.JSONEq(t, "[]", string(body))

	sendRequest(t, server,
		httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/resources/8"},
		httpResponseExpectations{ExpectedCode: http.StatusOK},
	)
	sendRequest(t, server,
		httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/resources/99"},
		httpResponseExpectations{ExpectedCode: http.StatusNotFound, ExpectedErrorCode: "RESOURCE_NOT_FOUND"},
	)
	sendRequest(t, server,
		httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/resources/abc"},
		httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "INVALID_ID"},
	)
}

func TestResourceHandler_CreateRequiresCaller(t *testing.T) {
	m := newServiceMocks(t)
	req := model.CreateResourceRequest{
		Title:       "Go Concurrency",
		Type:        "video",
		URL:         "https://example.com/go",
		Category:    "web-development",
		Description: "Goroutines and channels",
	}
	m.resource.On("CreateResource", mock.Anything, &req).Return(&model.Resource{ID: 9, Title: req.Title}, nil).Once()
	server := newMockServer(t, m)

	sendRequest(t, server,
		httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/resources", Body: req},
		httpResponseExpectations{ExpectedCode: http.StatusUnauthorized, ExpectedErrorCode: "UNAUTHORIZED"},
	)
	sendRequest(t, server,
		httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/resources", Body: req, Headers: map[string]string{"X-User-ID": uuid.NewString()}},
		httpResponseExpectations{ExpectedCode: http.StatusCreated},
	)

	bad := req
	bad.URL = "not a url"
	sendRequest(t, server,
		httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/resources", Body: bad, Headers: map[string]string{"X-User-ID": uuid.NewString()}},
		httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"},
	)
}
