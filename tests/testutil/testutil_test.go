package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewTestUUID_Deterministic(t *testing.T) {
	a := NewTestUUID("seed")
	b := NewTestUUID("seed")
	c := NewTestUUID("other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNewMockDB(t *testing.T) {
	db := NewMockDB(t)
	defer db.Close()

	assert.NotNil(t, db.DB)
	assert.NotNil(t, db.Mock)

	db.ExpectationsWereMet(t)
}

func TestNewTestContext(t *testing.T) {
	tc := NewTestContext(t)

	assert.NotNil(t, tc.Context)
	assert.NotNil(t, tc.Recorder)
	assert.NotNil(t, tc.Engine)
	assert.Equal(t, http.MethodGet, tc.Context.Request.Method)
}

func TestSetAuthenticatedUser(t *testing.T) {
	tc := NewTestContext(t)
	userID := TestUserID()

	tc.SetAuthenticatedUser(userID, "morgan")

	assert.Equal(t, userID.String(), tc.Context.GetString("auth_user_id"))
	assert.Equal(t, "morgan", tc.Context.GetString("auth_username"))
}

func TestRunHTTPTestCase(t *testing.T) {
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	}

	RunHTTPTestCase(t, handler, HTTPTestCase{
		Name:           "ok",
		Method:         http.MethodGet,
		Path:           "/ping",
		ExpectedStatus: http.StatusOK,
		Validate: func(t *testing.T, tc *TestContext) {
			AssertSuccessResponse(t, tc)
		},
	})
}

func TestAssertEventually(t *testing.T) {
	start := time.Now()
	flag := false
	go func() {
		time.Sleep(20 * time.Millisecond)
		flag = true
	}()

	AssertEventually(t, func() bool { return flag }, time.Second, 5*time.Millisecond)
	assert.Less(t, time.Since(start), time.Second)
}
