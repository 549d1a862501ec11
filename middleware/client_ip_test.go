package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIPContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestGetClientIPUsesRemoteAddr(t *testing.T) {
	c := newIPContext(t)
	c.Request.RemoteAddr = "192.0.2.10:4431"
	assert.Equal(t, "192.0.2.10", getClientIP(c))
}

func TestGetClientIPHonorsForwardedFor(t *testing.T) {
	c := newIPContext(t)
	c.Request.RemoteAddr = "10.0.0.5:1234"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.5")
	assert.Equal(t, "203.0.113.7", getClientIP(c))
}
