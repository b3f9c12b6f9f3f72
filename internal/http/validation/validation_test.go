package validation

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

func bindSample(t *testing.T, values url.Values) (sampleForm, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form sampleForm
	return form, c.ShouldBind(&form)
}

func TestFromBindError_UsesFormTagKeys(t *testing.T) {
	form, err := bindSample(t, url.Values{"email": {"not-an-email"}, "password": {"short"}})
	require.Error(t, err)

	fields := FromBindError(err, &form)
	assert.Equal(t, "Enter a valid email address.", fields["email"])
	assert.Equal(t, "Must be at least 8 characters.", fields["password"])
}

func TestFromBindError_RequiredMessage(t *testing.T) {
	form, err := bindSample(t, url.Values{})
	require.Error(t, err)

	fields := FromBindError(err, &form)
	assert.Equal(t, "This field is required.", fields["email"])
	assert.Equal(t, "This field is required.", fields["password"])
}

func TestFromBindError_NonValidationError(t *testing.T) {
	var form sampleForm
	fields := FromBindError(assert.AnError, &form)
	assert.Contains(t, fields, "_")
}
