// Package transactiondelivery manages delivery layer of balance operations.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Balance(ctx context.Context, accountID int64) (decimal.Decimal, error)
	RecentTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	Deposit(ctx context.Context, accountID int64, channel string, amount decimal.Decimal) (decimal.Decimal, error)
	Purchase(ctx context.Context, accountID int64, channel string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountID int64, channel string, amount decimal.Decimal) (decimal.Decimal, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) *Handler {
	return &Handler{service: ts}
}

type accountURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type operationURI struct {
	ID      int64  `uri:"id" binding:"required,min=1"`
	Channel string `uri:"channel" binding:"required"`
}

type operationRequest struct {
	Amount string `json:"amount" binding:"required,decimal"`
}

type balanceData struct {
	Balance decimal.Decimal `json:"balance"`
}

type transactionsData struct {
	Transactions []domain.Transaction `json:"transactions"`
}

func bindingErrMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return web.GetErrorMsg(ve)
	}

	return err.Error()
}

func respondErr(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnrecognizedChannel),
		errors.Is(err, domain.ErrInsufficientFunds):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

// Balance handles http request to get the account balance.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	balance, err := h.service.Balance(ctx, uri.ID)
	if err != nil {
		l.Info().Err(err).Send()
		respondErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{balance}})
}

// RecentTransactions handles http request to list the newest account transactions.
func (h *Handler) RecentTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	transactions, err := h.service.RecentTransactions(ctx, uri.ID)
	if err != nil {
		l.Info().Err(err).Send()
		respondErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{transactions}})
}

type operation func(ctx context.Context, accountID int64, channel string, amount decimal.Decimal) (decimal.Decimal, error)

func (h *Handler) handleOperation(gctx *gin.Context, op operation) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri operationURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req operationRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))

		return
	}

	balance, err := op(ctx, uri.ID, uri.Channel, amount)
	if err != nil {
		l.Info().Err(err).Send()
		respondErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{balance}})
}

// Deposit handles http request to credit the account through a deposit channel.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.handleOperation(gctx, h.service.Deposit)
}

// Purchase handles http request to debit the account through a purchase channel.
func (h *Handler) Purchase(gctx *gin.Context) {
	h.handleOperation(gctx, h.service.Purchase)
}

// Withdraw handles http request to debit the account through a withdrawal channel.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.handleOperation(gctx, h.service.Withdraw)
}
