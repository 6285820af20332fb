// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

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

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Open(ctx context.Context, variant domain.Variant, balance decimal.Decimal) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type createRequest struct {
	Variant string `json:"variant" binding:"required,variant"`
	Balance string `json:"balance" binding:"omitempty,decimal"`
}

func bindingErrMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return web.GetErrorMsg(ve)
	}

	return err.Error()
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	balance := decimal.Zero

	if req.Balance != "" {
		var err error

		balance, err = decimal.NewFromString(req.Balance)
		if err != nil {
			gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
			return
		}
	}

	account, err := h.service.Open(ctx, domain.Variant(req.Variant), balance)
	if err != nil {
		l.Info().Err(err).Send()

		switch {
		case errors.Is(err, domain.ErrInvalidVariant), errors.Is(err, domain.ErrInvalidAmount):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{account}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	account, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{account}})
}
