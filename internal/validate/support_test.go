package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tangtang/pkg/types"
)

func TestSupport(t *testing.T) {
	tests := []struct {
		name  string
		input SupportInput
		want  Reason
	}{
		{
			name:  "money case without an amount",
			input: SupportInput{SupportType: types.SupportTypeMoney, Amount: 0},
			want:  MissingAmount,
		},
		{
			name:  "money case with a negative amount",
			input: SupportInput{SupportType: types.SupportTypeMoney, Amount: -50000},
			want:  MissingAmount,
		},
		{
			name:  "item case without items",
			input: SupportInput{SupportType: types.SupportTypeItems},
			want:  MissingItems,
		},
		{
			name: "item case with only unselected items",
			input: SupportInput{
				SupportType: types.SupportTypeItems,
				Items:       []ItemChoice{{ItemID: "i1", Selected: false, DonateQuantity: 3}},
			},
			want: MissingItems,
		},
		{
			name: "item case with selected zero quantity",
			input: SupportInput{
				SupportType: types.SupportTypeItems,
				Items:       []ItemChoice{{ItemID: "i1", Selected: true, DonateQuantity: 0}},
			},
			want: MissingItems,
		},
		{
			name: "transfer without a transaction id",
			input: SupportInput{
				SupportType:   types.SupportTypeMoney,
				Amount:        100000,
				PaymentMethod: types.PaymentTransfer,
				TransactionID: "",
			},
			want: MissingTransactionID,
		},
		{
			name: "transfer with a whitespace transaction id",
			input: SupportInput{
				SupportType:   types.SupportTypeMoney,
				Amount:        100000,
				PaymentMethod: types.PaymentTransfer,
				TransactionID: "   ",
			},
			want: MissingTransactionID,
		},
		{
			name: "both with neither track",
			input: SupportInput{SupportType: types.SupportTypeBoth},
			want: MissingAmount,
		},
		{
			name: "ok: momo money support",
			input: SupportInput{
				SupportType:   types.SupportTypeBoth,
				Amount:        100000,
				Items:         []ItemChoice{{ItemID: "i1", Selected: true, DonateQuantity: 2}},
				PaymentMethod: types.PaymentMomo,
			},
		},
		{
			name: "ok: both satisfied by items alone",
			input: SupportInput{
				SupportType: types.SupportTypeBoth,
				Items:       []ItemChoice{{ItemID: "i1", Selected: true, DonateQuantity: 1}},
			},
		},
		{
			name: "ok: transfer with a reference",
			input: SupportInput{
				SupportType:   types.SupportTypeMoney,
				Amount:        250000,
				PaymentMethod: types.PaymentTransfer,
				TransactionID: "FT2024061512345",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Support(tt.input)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.want, ReasonOf(err))
		})
	}
}

func TestReasonOf_ForeignError(t *testing.T) {
	assert.Equal(t, Reason(""), ReasonOf(assert.AnError))
	assert.Equal(t, Reason(""), ReasonOf(nil))
}
