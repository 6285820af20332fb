//go:build integration

package eventpublisher

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

func TestRedisPublisher(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()

	client, err := NewClient(ctx, addr, "", 0)
	require.NoError(t, err)

	stream := "test.events." + randompkg.String(8)

	t.Cleanup(func() {
		client.Del(ctx, stream)
		client.Close()
	})

	p := NewRedis(client, stream)
	entry := domain.Transaction{
		ID:         7,
		AccountID:  42,
		Kind:       domain.KindOnlinePurchase,
		Amount:     decimal.RequireFromString("10.50"),
		UniqueCode: "TX-test",
	}

	err = p.TransactionCommitted(ctx, entry, decimal.RequireFromString("84.50"))
	require.NoError(t, err)

	msgs, err := client.XRange(ctx, stream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	raw, ok := msgs[0].Values["event"].(string)
	require.True(t, ok)

	var got struct {
		Type string `json:"type"`
		Data struct {
			Transaction domain.Transaction `json:"transaction"`
			Balance     decimal.Decimal    `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &got))

	require.Equal(t, TransactionCommitted, got.Type)
	require.Equal(t, entry.UniqueCode, got.Data.Transaction.UniqueCode)
	require.True(t, entry.Amount.Equal(got.Data.Transaction.Amount))
	require.True(t, decimal.RequireFromString("84.50").Equal(got.Data.Balance))
}
