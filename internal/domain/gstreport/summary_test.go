package gstreport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/catalogs/party"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/domain/documents/payment"
)

func assertMoney(t *testing.T, want string, got types.Money) {
	t.Helper()
	if !got.Equal(types.MustMoney(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.July, d, 0, 0, 0, 0, time.UTC)
}

func taxedBill(kind bill.Kind, partyID id.ID, number string, d int, central, state, total string) *bill.Bill {
	b := bill.New(kind, id.New(), partyID)
	b.Number = number
	b.Date = day(d)
	if kind == bill.KindTrans {
		tt := types.MustMoney(total)
		b.TotalTax = &tt
		return b
	}
	c := types.MustMoney(central)
	s := types.MustMoney(state)
	b.CentralTaxAmount = &c
	b.StateTaxAmount = &s
	return b
}

func gstRefund(d int, amount, desc string) *payment.Transaction {
	tr := payment.New(payment.DirectionCredit, payment.PartyGST, types.MustMoney(amount))
	tr.Date = day(d)
	tr.Comment = desc
	return tr
}

func TestBuildSummary(t *testing.T) {
	manu := party.New("KAJ", "Kajaria Ceramics", party.TypeManufacturer)
	trans := party.New("VRL", "VRL Logistics", party.TypeTransporter)

	bills := []*bill.Bill{
		taxedBill(bill.KindManu, manu.ID, "MB-001", 1, "900", "900", ""),
		taxedBill(bill.KindTrans, trans.ID, "TB-001", 2, "", "", "250"),
		taxedBill(bill.KindSupply, id.New(), "SB-001", 3, "50", "50", ""),
	}
	refunds := []*payment.Transaction{
		gstRefund(5, "1200", "GST refund Q1"),
	}

	sum := BuildSummary(bills, refunds, []*party.Party{manu, trans}, Query{}, Query{})

	assertMoney(t, "2150", sum.TotalGSTPaid)
	assertMoney(t, "1200", sum.TotalGSTReceived)
	assertMoney(t, "950", sum.RemainingGST)

	require.Len(t, sum.Paid.Items, 3)
	// newest first; SB-001 party is unresolvable
	assert.Equal(t, "Unknown", sum.Paid.Items[0].PartyName)
	assert.Equal(t, "VRL Logistics", sum.Paid.Items[1].PartyName)
	assert.Equal(t, "Kajaria Ceramics", sum.Paid.Items[2].PartyName)
}

func TestBuildSummary_NoiseThreshold(t *testing.T) {
	manu := party.New("KAJ", "Kajaria Ceramics", party.TypeManufacturer)

	bills := []*bill.Bill{
		taxedBill(bill.KindManu, manu.ID, "MB-TINY", 1, "0.40", "0.40", ""),
		taxedBill(bill.KindManu, manu.ID, "MB-BIG", 2, "500", "500", ""),
	}

	sum := BuildSummary(bills, nil, []*party.Party{manu}, Query{}, Query{})

	// 0.80 tax is under the threshold: off the list, out of the total
	require.Len(t, sum.Paid.Items, 1)
	assert.Equal(t, "MB-BIG", sum.Paid.Items[0].InvoiceNumber)
	assertMoney(t, "1000", sum.TotalGSTPaid)
}

func TestBuildSummary_OnlyGSTCreditsReceived(t *testing.T) {
	clientID := id.New()

	fromClient := payment.New(payment.DirectionDebit, payment.PartyClient, types.NewMoney(5000))
	fromClient.PartyID = &clientID
	fromClient.Date = day(1)

	toGov := payment.New(payment.DirectionDebit, payment.PartyGST, types.NewMoney(700))
	toGov.Date = day(2)

	refund := gstRefund(3, "450", "refund")

	sum := BuildSummary(nil, []*payment.Transaction{fromClient, toGov, refund}, nil, Query{}, Query{})

	require.Len(t, sum.Received.Items, 1)
	assertMoney(t, "450", sum.TotalGSTReceived)
	assertMoney(t, "-450", sum.RemainingGST)
}

func TestBuildSummary_FilterKeepsTotals(t *testing.T) {
	manu := party.New("KAJ", "Kajaria Ceramics", party.TypeManufacturer)
	other := party.New("SOM", "Somany Tiles", party.TypeManufacturer)

	bills := []*bill.Bill{
		taxedBill(bill.KindManu, manu.ID, "MB-001", 1, "100", "100", ""),
		taxedBill(bill.KindManu, other.ID, "MB-002", 2, "200", "200", ""),
	}

	sum := BuildSummary(bills, nil, []*party.Party{manu, other}, Query{Filter: "somany"}, Query{})

	require.Len(t, sum.Paid.Items, 1)
	assert.Equal(t, 1, sum.Paid.TotalCount)
	assertMoney(t, "600", sum.TotalGSTPaid)
}

func TestBuildSummary_Pagination(t *testing.T) {
	manu := party.New("KAJ", "Kajaria Ceramics", party.TypeManufacturer)

	var bills []*bill.Bill
	for i := 1; i <= 6; i++ {
		bills = append(bills, taxedBill(bill.KindManu, manu.ID, "MB", i, "10", "10", ""))
	}

	sum := BuildSummary(bills, nil, []*party.Party{manu}, Query{Page: 2}, Query{})

	assert.Len(t, sum.Paid.Items, 1)
	assert.Equal(t, 6, sum.Paid.TotalCount)
	assert.Equal(t, 2, sum.Paid.Page)
}
