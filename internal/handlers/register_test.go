package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
	"github.com/sbilibin2017/gw-social-graph/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validReq := RegisterRequest{
		Username:  "john",
		Email:     "john@example.com",
		Password1: "secret123",
		Password2: "secret123",
	}
	validInput := models.RegisterInput{
		Username:  "john",
		Email:     "john@example.com",
		Password1: "secret123",
		Password2: "secret123",
	}

	verr := services.NewValidationError()
	verr.Add("username", "A user with that username already exists.")

	tests := []struct {
		name         string
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), validInput).
					Return(&models.UserDB{ID: 1, Username: "john", Name: "john", Email: "john@example.com"}, "token", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"token":"token","user":{"id":1,"username":"john","name":"john","email":"john@example.com",
				"first_name":null,"last_name":null,"phone_number":null,"date_of_birth":null,"gender":null,"country":null}}`,
		},
		{
			name: "validation error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), validInput).Return(nil, "", verr)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","fields":{"username":["A user with that username already exists."]}}`,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), validInput).Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			body := []byte(tt.rawBody)
			if tt.rawBody == "" {
				body, _ = json.Marshal(validReq)
			}
			req := httptest.NewRequest(http.MethodPost, "/auth/registration", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
