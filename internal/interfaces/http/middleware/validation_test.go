package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Limit    int    `json:"limit" binding:"omitempty,max=100"`
}

func validationRouter() *gin.Engine {
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req signUpForm
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleValidationError_FieldErrors(t *testing.T) {
	w := postJSON(validationRouter(), `{"email":"not-an-email","password":"short","limit":500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	require.Len(t, resp.Details, 3)

	byField := map[string]dto.ValidationDetail{}
	for _, d := range resp.Details {
		byField[d.Field] = d
	}
	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "Must be at least 8 characters", byField["password"].Message)
	assert.Equal(t, "Must be at most 100", byField["limit"].Message)
}

func TestHandleValidationError_MalformedJSON(t *testing.T) {
	w := postJSON(validationRouter(), `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	assert.Empty(t, resp.Details)
}

func TestHandleValidationError_BodyTooLarge(t *testing.T) {
	SetupValidator()
	router := gin.New()
	router.Use(BodyLimit(16))
	router.POST("/test", func(c *gin.Context) {
		var req signUpForm
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test",
		strings.NewReader(`{"email":"wanjiku@shop.co.ke","password":"longenough"}`))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleValidationError_Valid(t *testing.T) {
	w := postJSON(validationRouter(), `{"email":"wanjiku@shop.co.ke","password":"longenough"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
