package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckoutSession_FindLine_MatchesCompositeKey(t *testing.T) {
	sess := NewCheckoutSession("token")
	sess.Lines = append(sess.Lines,
		&CartLine{ProductID: 1, Size: "M", Color: "blue", Quantity: decimal.NewFromInt(1)},
		&CartLine{ProductID: 1, Size: "L", Color: "blue", Quantity: decimal.NewFromInt(2)},
	)

	assert.NotNil(t, sess.FindLine(1, "M", "blue"))
	assert.NotNil(t, sess.FindLine(1, "L", "blue"))
	assert.Nil(t, sess.FindLine(1, "M", "red"))
	assert.Nil(t, sess.FindLine(2, "M", "blue"))
}

func TestCheckoutSession_RemoveLine(t *testing.T) {
	sess := NewCheckoutSession("token")
	sess.Lines = append(sess.Lines,
		&CartLine{ProductID: 1, Size: "M"},
		&CartLine{ProductID: 1, Size: "L"},
	)

	sess.RemoveLine(1, "M", "")
	assert.Len(t, sess.Lines, 1)
	assert.Equal(t, "L", sess.Lines[0].Size)

	// Removing an absent line is a no-op.
	sess.RemoveLine(42, "", "")
	assert.Len(t, sess.Lines, 1)
}

func TestCheckoutSession_Clear_KeepsToken(t *testing.T) {
	sess := NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &CartLine{ProductID: 1})
	sess.Discount = decimal.NewFromInt(10)

	sess.Clear()

	assert.Empty(t, sess.Lines)
	assert.True(t, sess.Discount.IsZero())
	assert.Equal(t, "token", sess.CSRFToken)
}
