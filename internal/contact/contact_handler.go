package contact

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/middleware"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	if h.rdb != nil {
		if lk := c.GetString(middleware.IdempotencyLockKey); lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck := c.GetString(middleware.IdempotencyCacheKey); ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotencyTTL).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}
