// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscape/internal/model"
)

// testAuthMiddleware はJWT検証を迂回して認証済みユーザーIDを
// コンテキストに直接注入するテスト用ミドルウェアです。
// userIDがnilの場合は何も注入せず、未認証のリクエストを再現します。
func testAuthMiddleware(userID *uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID != nil {
				ctx := context.WithValue(r.Context(), model.UserIDKey, *userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// createRequest はテスト用HTTPリクエストを作成します。
// bodyが文字列ならそのまま、それ以外はJSONにエンコードして送ります。
func createRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reqBody = bytes.NewBufferString(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// assertErrorCode はエラーレスポンスボディのエラーコードを検証します
func assertErrorCode(t *testing.T, body []byte, expectedCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	err := json.Unmarshal(body, &errResp)
	require.NoError(t, err, "Failed to unmarshal error response body")
	assert.Equal(t, expectedCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
}
