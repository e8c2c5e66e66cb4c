package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
)

func TestNewDefaults(t *testing.T) {
	tr := New(DirectionCredit, PartyManufacturer, types.MustMoney("15000"))

	assert.Equal(t, DirectionCredit, tr.Type)
	assert.Equal(t, PartyManufacturer, tr.PartyType)
	assert.Equal(t, "INR", tr.Currency)
	assert.False(t, id.IsNil(tr.ID))
}

func TestValidate(t *testing.T) {
	tr := New(DirectionDebit, PartyClient, types.MustMoney("500"))
	partyID := id.New()
	tr.PartyID = &partyID
	require.NoError(t, tr.Validate(context.Background()))
}

func TestValidate_InvalidType(t *testing.T) {
	tr := New("refund", PartyClient, types.MustMoney("500"))

	err := tr.Validate(context.Background())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "type", appErr.Details["field"])
}

func TestValidate_InvalidPartyKind(t *testing.T) {
	tr := New(DirectionCredit, "customs", types.MustMoney("500"))

	err := tr.Validate(context.Background())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "partyType", appErr.Details["field"])
}

func TestValidate_NegativeAmount(t *testing.T) {
	tr := New(DirectionCredit, PartyGST, types.MustMoney("-1"))

	err := tr.Validate(context.Background())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "amount", appErr.Details["field"])
}

func TestGovernmentHeadsNeedNoParty(t *testing.T) {
	// Duty drawback and road TP refunds come from government heads,
	// not catalog parties.
	for _, kind := range []PartyKind{PartyGST, PartyDutyDrawback, PartyRoadTP} {
		tr := New(DirectionDebit, kind, types.MustMoney("1200"))
		assert.NoError(t, tr.Validate(context.Background()), string(kind))
	}
}
