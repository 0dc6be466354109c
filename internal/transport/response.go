package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/service/historysync"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{Data: data})
}

func failure(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusOf(err), Response{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, repository.ErrInvalidAddress),
		errors.Is(err, historysync.ErrInvalidTransaction),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
