package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("provider said no")

	gw := BadGateway("Unable to send email at this time.", cause)
	assert.Equal(t, http.StatusBadGateway, gw.Code)
	assert.Equal(t, "Unable to send email at this time.", gw.Error())
	assert.ErrorIs(t, gw, cause)

	v := Validation(map[string]string{"name": "too short"})
	assert.Equal(t, http.StatusUnprocessableEntity, v.Code)
	assert.Equal(t, "too short", v.Fields["name"])

	assert.Equal(t, http.StatusServiceUnavailable, ServiceUnavailable("down", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, Internal(cause).Code)
	assert.Equal(t, http.StatusNotFound, NotFound("Not found").Code)
	bad := BadRequest("Malformed request body.", cause)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.ErrorIs(t, bad, cause)
}
