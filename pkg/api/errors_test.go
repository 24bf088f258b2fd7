package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/owais-symtera/cognito-sub001/pkg/services"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceError_ValidationError(t *testing.T) {
	w := respond(&services.ValidationError{Field: "drug_names", Message: "required"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "drug_names")
}

func TestRespondServiceError_NotFound(t *testing.T) {
	w := respond(services.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespondServiceError_AlreadyTerminal(t *testing.T) {
	w := respond(services.ErrAlreadyTerminal)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRespondServiceError_Processing(t *testing.T) {
	w := respond(services.ErrProcessing)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "processing")
}

func TestRespondServiceError_RequestFailed(t *testing.T) {
	w := respond(fmt.Errorf("%w: failed", services.ErrRequestFailed))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRespondServiceError_Unexpected(t *testing.T) {
	w := respond(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRespondServiceError_WrappedSentinel(t *testing.T) {
	w := respond(fmt.Errorf("loading: %w", services.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
