package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceipt(t *testing.T) {
	rec := &repository.RecordView{
		Record: entity.Record{
			ID:           "6f1c2a9e-0000-4000-8000-000000000001",
			PartnerName:  "Ana",
			ProductName:  "Soda",
			EmployeeName: "Luis",
			Quantity:     3,
			TotalCredits: decimal.NewFromInt(30),
			CreatedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		Partner: repository.PartnerSummary{Name: "Ana", Email: "ana@club.es"},
		Product: repository.ProductSummary{Name: "Soda", Credits: decimal.NewFromInt(10)},
	}

	out, err := NewMarotoReceiptGenerator("Club").GenerateReceipt(context.Background(), rec, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "0", formatCredits(decimal.Zero))
	assert.Equal(t, "30", formatCredits(decimal.NewFromInt(30)))
	assert.Equal(t, "25.000", formatCredits(decimal.NewFromInt(25000)))
	assert.Equal(t, "7,50", formatCredits(decimal.RequireFromString("7.5")))
	assert.Equal(t, "1.000.000,25", formatCredits(decimal.RequireFromString("1000000.25")))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "6F1C2A9E", shortID("6f1c2a9e-0000"))
	assert.Equal(t, "AB", shortID("ab"))
}
