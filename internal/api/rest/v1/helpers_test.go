//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	adminClaims  = &users.Claims{UserID: 1, Email: "admin@modarflor.com", Role: users.RoleAdmin}
	viewerClaims = &users.Claims{UserID: 2, Email: "viewer@modarflor.com", Role: users.RoleViewer}
)

// newJSONContext builds a test context whose request carries body encoded as JSON.
// A string body is sent verbatim.
func newJSONContext(t *testing.T, method, url string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// withID sets the :id path parameter
func withID(c *gin.Context, id string) {
	c.Params = append(c.Params, gin.Param{Key: "id", Value: id})
}

// withClaims stores claims the way Authenticate does
func withClaims(c *gin.Context, claims *users.Claims) {
	c.Set(claimsKey, claims)
}

// decodeBody unmarshals the recorded response into v
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
