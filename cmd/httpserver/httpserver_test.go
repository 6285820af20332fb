package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func newMemoryServer(t *testing.T) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	config := configpkg.Config{StoreDriver: configpkg.StoreDriverMemory}

	server, err := New(context.Background(), zerolog.New(io.Discard), config)
	require.NoError(t, err)

	t.Cleanup(func() { require.NoError(t, server.Close()) })

	return server
}

type response struct {
	Data struct {
		Account      domain.Account       `json:"account"`
		Balance      decimal.Decimal      `json:"balance"`
		Transactions []domain.Transaction `json:"transactions"`
	} `json:"data"`
	Error string `json:"error"`
}

func do(t *testing.T, server *Server, method, url, body string) (int, response) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, r)
	req.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(rec, req)

	var res response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res), rec.Body.String())

	return rec.Code, res
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "got %v, want %v", got, want)
}

func TestNewUnknownStoreDriver(t *testing.T) {
	_, err := New(context.Background(), zerolog.New(io.Discard), configpkg.Config{StoreDriver: "sqlite"})
	require.ErrorIs(t, err, ErrUnknownStoreDriver)
}

func TestLedgerFlow(t *testing.T) {
	server := newMemoryServer(t)

	code, res := do(t, server, http.MethodPost, "/accounts", `{"variant":"basic","balance":"0"}`)
	require.Equal(t, http.StatusCreated, code)

	id := res.Data.Account.ID
	url := func(path string) string { return fmt.Sprintf("/accounts/%d%s", id, path) }

	code, res = do(t, server, http.MethodPost, url("/deposits/branch"), `{"amount":"100"}`)
	require.Equal(t, http.StatusOK, code)
	requireDecimal(t, "100", res.Data.Balance)

	code, res = do(t, server, http.MethodPost, url("/deposits/machine"), `{"amount":"50"}`)
	require.Equal(t, http.StatusOK, code)
	requireDecimal(t, "148", res.Data.Balance)

	code, res = do(t, server, http.MethodPost, url("/purchases/online"), `{"amount":"100"}`)
	require.Equal(t, http.StatusOK, code)
	requireDecimal(t, "43", res.Data.Balance)

	code, res = do(t, server, http.MethodPost, url("/withdrawals/machine"), `{"amount":"43"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, domain.ErrInsufficientFunds.Error(), res.Error)

	code, res = do(t, server, http.MethodPost, url("/withdrawals/machine"), `{"amount":"42"}`)
	require.Equal(t, http.StatusOK, code)
	requireDecimal(t, "0", res.Data.Balance)

	code, res = do(t, server, http.MethodPost, url("/purchases/phone"), `{"amount":"1"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, domain.ErrUnrecognizedChannel.Error(), res.Error)

	code, res = do(t, server, http.MethodGet, url("/balance"), "")
	require.Equal(t, http.StatusOK, code)
	requireDecimal(t, "0", res.Data.Balance)

	code, res = do(t, server, http.MethodGet, url("/transactions"), "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, res.Data.Transactions, 4)

	wantKinds := []domain.Kind{
		domain.KindCashMachineWithdrawal,
		domain.KindOnlinePurchase,
		domain.KindCashMachineDeposit,
		domain.KindBranchDeposit,
	}
	for i, tr := range res.Data.Transactions {
		require.Equal(t, wantKinds[i], tr.Kind)
		require.NotEmpty(t, tr.UniqueCode)
	}

	requireDecimal(t, "42", res.Data.Transactions[0].Amount)
}

func TestRoutesNotFound(t *testing.T) {
	server := newMemoryServer(t)

	for _, url := range []string{"/accounts/77", "/accounts/77/balance", "/accounts/77/transactions"} {
		code, res := do(t, server, http.MethodGet, url, "")
		require.Equal(t, http.StatusNotFound, code, url)
		require.Equal(t, domain.ErrAccountNotFound.Error(), res.Error, url)
	}

	code, res := do(t, server, http.MethodPost, "/accounts/77/deposits/branch", `{"amount":"1"}`)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, domain.ErrAccountNotFound.Error(), res.Error)
}
