package contact_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/contact"
	"github.com/piyushraj0718/payrollmanagement/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	submitFn func(ctx context.Context, req contact.CreateContactMessageRequest) (contact.ContactMessageResponse, error)
}

func (f *fakeService) Submit(ctx context.Context, req contact.CreateContactMessageRequest) (contact.ContactMessageResponse, error) {
	return f.submitFn(ctx, req)
}

func TestHandler_Create_CachesIdempotentResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, redisMock := redismock.NewClientMock()

	svc := &fakeService{submitFn: func(ctx context.Context, req contact.CreateContactMessageRequest) (contact.ContactMessageResponse, error) {
		return contact.ContactMessageResponse{ID: "m1", Name: req.Name}, nil
	}}
	h := contact.NewHandler(svc, rdb)

	redisMock.ExpectSet("idemp:cache", []byte(`{"id":"m1","name":"Ann","email":"","message":"","created_at":""}`), 24*time.Hour).SetVal("OK")
	redisMock.ExpectDel("idemp:cache:lock").SetVal(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.IdempotencyCacheKey, "idemp:cache")
	c.Set(middleware.IdempotencyLockKey, "idemp:cache:lock")
	c.Request = httptest.NewRequest(http.MethodPost, "/contact-messages",
		strings.NewReader(`{"name":"Ann","email":"ann@acme.test","message":"hi"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Create_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := contact.NewHandler(&fakeService{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/contact-messages",
		strings.NewReader(`{"name":"Ann","email":"not-an-email","message":"hi"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
}
