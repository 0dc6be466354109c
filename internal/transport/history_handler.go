// Package transport exposes the history synchronization engine over HTTP.
package transport

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

var errBadRequest = errors.New("bad request")

// HistoryHandler serves the per-address history routes.
type HistoryHandler struct {
	service HistoryService
	credits CreditNotifier
	logger  *zap.Logger
}

// NewHistoryHandler returns a HistoryHandler. credits may be nil, in which
// case credit notifications run a forced scan inline.
func NewHistoryHandler(service HistoryService, credits CreditNotifier, logger *zap.Logger) (*HistoryHandler, error) {
	if service == nil {
		return nil, errors.New("history service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryHandler{
		service: service,
		credits: credits,
		logger:  logger.Named("api"),
	}, nil
}

// Register mounts the routes on r.
func (h *HistoryHandler) Register(r gin.IRouter) {
	r.GET("/healthz", h.health)

	v1 := r.Group("/v1/addresses/:address", h.address)
	v1.GET("/transactions", h.history)
	v1.POST("/transactions", h.save)
	v1.POST("/sync/gap", h.syncGap)
	v1.POST("/sync/heartbeat", h.syncHeartbeat)
	v1.POST("/credit", h.credit)
}

func (h *HistoryHandler) health(c *gin.Context) {
	success(c, http.StatusOK, gin.H{"status": "ok"})
}

func (h *HistoryHandler) address(c *gin.Context) {
	if err := h.service.ValidateAddress(c.Param("address")); err != nil {
		failure(c, err)
	}
}

func (h *HistoryHandler) history(c *gin.Context) {
	txs, err := h.service.GetHistory(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.logger.Error("read history", zap.String("address", c.Param("address")), zap.Error(err))
		failure(c, err)
		return
	}
	success(c, http.StatusOK, txs)
}

// save accepts a single transaction object or an array of them.
func (h *HistoryHandler) save(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		failure(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	txs, err := decodeTransactions(body)
	if err != nil {
		failure(c, err)
		return
	}

	added, err := h.service.SaveBatch(c.Request.Context(), c.Param("address"), txs)
	if err != nil {
		h.logger.Error("save transactions", zap.String("address", c.Param("address")), zap.Error(err))
		failure(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"received": len(txs), "added": added})
}

func (h *HistoryHandler) syncGap(c *gin.Context) {
	report, err := h.service.SyncGap(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.logger.Error("gap sync", zap.String("address", c.Param("address")), zap.Error(err))
		failure(c, err)
		return
	}
	success(c, http.StatusOK, report)
}

func (h *HistoryHandler) syncHeartbeat(c *gin.Context) {
	report, err := h.service.SyncHeartbeat(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.logger.Error("heartbeat", zap.String("address", c.Param("address")), zap.Error(err))
		failure(c, err)
		return
	}
	success(c, http.StatusOK, report)
}

// credit queues a forced rescan on the run loop of a followed address, or
// runs it inline for any other address.
func (h *HistoryHandler) credit(c *gin.Context) {
	address := c.Param("address")
	if h.credits != nil && h.credits.NotifyCredit(address) {
		success(c, http.StatusAccepted, gin.H{"queued": true})
		return
	}

	report, err := h.service.OnPossibleCredit(c.Request.Context(), address)
	if err != nil {
		h.logger.Error("forced rescan", zap.String("address", address), zap.Error(err))
		failure(c, err)
		return
	}
	success(c, http.StatusOK, report)
}

func decodeTransactions(body []byte) ([]model.Transaction, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", errBadRequest)
	}

	var txs []model.Transaction
	if body[0] == '[' {
		if err := sonnet.Unmarshal(body, &txs); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
	} else {
		var tx model.Transaction
		if err := sonnet.Unmarshal(body, &tx); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		txs = append(txs, tx)
	}
	if len(txs) == 0 {
		return nil, fmt.Errorf("%w: no transactions", errBadRequest)
	}
	return txs, nil
}
