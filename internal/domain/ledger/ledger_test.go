package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/aggregate"
	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/domain/catalogs/size"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/domain/documents/exportdoc"
	"exportdoc/internal/domain/documents/payment"
	"exportdoc/internal/domain/documents/trade"
)

func assertMoney(t *testing.T, want string, got types.Money) {
	t.Helper()
	if !got.Equal(types.MustMoney(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func vendorBill(partyID id.ID, number string, d, total int) *bill.Bill {
	b := bill.New(bill.KindManu, id.New(), partyID)
	b.Number = number
	b.Date = day(d)
	grand := types.NewMoney(float64(total))
	b.GrandTotal = &grand
	return b
}

func vendorPayment(kind payment.PartyKind, partyID id.ID, desc string, d, amount int) *payment.Transaction {
	tr := payment.New(payment.DirectionCredit, kind, types.NewMoney(float64(amount)))
	tr.PartyID = &partyID
	tr.Date = day(d)
	tr.Comment = desc
	return tr
}

func TestBuildPartyLedger(t *testing.T) {
	partyID := id.New()

	bills := []*bill.Bill{
		vendorBill(partyID, "MB-001", 1, 10000),
		vendorBill(partyID, "MB-002", 3, 5000),
		vendorBill(id.New(), "MB-OTHER", 2, 999),
	}
	payments := []*payment.Transaction{
		vendorPayment(payment.PartyManufacturer, partyID, "NEFT advance", 2, 4000),
	}

	led := BuildPartyLedger(payment.PartyManufacturer, partyID, bills, payments, Query{}, Query{})

	assertMoney(t, "15000", led.TotalDebit)
	assertMoney(t, "4000", led.TotalCredit)
	assertMoney(t, "11000", led.Balance)

	require.Len(t, led.Debit.Items, 2)
	// newest first
	assert.Equal(t, "Bill - MB-002", led.Debit.Items[0].Description)
	assert.Equal(t, "Bill - MB-001", led.Debit.Items[1].Description)
}

func TestBuildPartyLedger_DeletedExcluded(t *testing.T) {
	partyID := id.New()

	deleted := vendorBill(partyID, "MB-DEL", 2, 7000)
	deleted.MarkDeleted()

	gone := vendorPayment(payment.PartyManufacturer, partyID, "cancelled", 4, 100)
	gone.MarkDeleted()

	led := BuildPartyLedger(payment.PartyManufacturer, partyID,
		[]*bill.Bill{vendorBill(partyID, "MB-001", 1, 10000), deleted},
		[]*payment.Transaction{gone},
		Query{}, Query{})

	assertMoney(t, "10000", led.TotalDebit)
	assertMoney(t, "0", led.TotalCredit)
	require.Len(t, led.Debit.Items, 1)
}

func TestBuildPartyLedger_FilterKeepsTotals(t *testing.T) {
	partyID := id.New()

	bills := []*bill.Bill{
		vendorBill(partyID, "MB-001", 1, 10000),
		vendorBill(partyID, "TRIP-77", 2, 6000),
	}

	led := BuildPartyLedger(payment.PartyTransporter, partyID, bills, nil,
		Query{Filter: "trip"}, Query{})

	// filter narrows the displayed rows, never the summary
	assertMoney(t, "16000", led.TotalDebit)
	require.Len(t, led.Debit.Items, 1)
	assert.Equal(t, "Bill - TRIP-77", led.Debit.Items[0].Description)
	assert.Equal(t, 1, led.Debit.TotalCount)
}

func TestBuildPartyLedger_Pagination(t *testing.T) {
	partyID := id.New()

	var bills []*bill.Bill
	for i := 1; i <= 7; i++ {
		bills = append(bills, vendorBill(partyID, "MB", i, 100))
	}

	first := BuildPartyLedger(payment.PartySupplier, partyID, bills, nil, Query{Page: 1}, Query{})
	second := BuildPartyLedger(payment.PartySupplier, partyID, bills, nil, Query{Page: 2}, Query{})

	assert.Len(t, first.Debit.Items, PageSize)
	assert.Len(t, second.Debit.Items, 2)
	assert.Equal(t, 7, first.Debit.TotalCount)
	// page 2 continues where page 1 ended
	assert.True(t, second.Debit.Items[0].Date.Before(first.Debit.Items[PageSize-1].Date))
}

func clientFixture() (*aggregate.Snapshot, *product.Product) {
	sz := size.New("600X1200", "600x1200", 1.44, 30)
	sz.HSNCode = "69072100"
	p := product.New("GLACIER", "Glacier White", sz.ID)
	return aggregate.NewSnapshot([]*product.Product{p}, []*size.Size{sz}), p
}

func clientDoc(clientID id.ID, p *product.Product, number string, d int) *exportdoc.ExportDocument {
	doc := exportdoc.New(id.New(), clientID, id.New())
	doc.Number = number
	doc.Date = day(d)
	doc.GST = "18%"
	doc.ConversionRate = types.MustMoney("83")
	doc.Freight = types.NewMoney(300)
	rate := types.MustMoney("10")
	doc.AddContainer(exportdoc.ContainerItem{
		ProductItems: []exportdoc.ProductItem{
			{ProductID: p.ID, Boxes: 100, Rate: &rate},
		},
	})
	return doc
}

func TestBuildClientLedger(t *testing.T) {
	snap, p := clientFixture()
	clientID := id.New()

	docs := []*exportdoc.ExportDocument{
		clientDoc(clientID, p, "EXP/HEM/001/24-25", 1),
		clientDoc(id.New(), p, "EXP/HEM/002/24-25", 2),
	}

	received := payment.New(payment.DirectionDebit, payment.PartyClient, types.NewMoney(1000))
	received.PartyID = &clientID
	received.Date = day(3)
	received.Comment = "wire transfer"

	led := BuildClientLedger(clientID, docs, nil, nil, []*payment.Transaction{received}, snap, Query{}, Query{})

	// 1440 + 259.20 GST + 300 freight
	assertMoney(t, "1999.20", led.TotalInvoiced)
	assertMoney(t, "1000", led.TotalReceived)
	assertMoney(t, "999.20", led.Balance)
	require.Len(t, led.Invoiced.Items, 1)
	assert.Equal(t, "Invoice - EXP/HEM/001/24-25", led.Invoiced.Items[0].Description)
}

func TestBuildClientLedger_TransitiveLinkage(t *testing.T) {
	snap, p := clientFixture()
	clientID := id.New()

	pi := trade.NewPerformaInvoice(clientID)
	po := trade.NewPurchaseOrder(pi.ID, id.New())

	doc := clientDoc(id.New(), p, "EXP/HEM/003/24-25", 5)
	doc.PurchaseOrderID = &po.ID

	led := BuildClientLedger(clientID,
		[]*exportdoc.ExportDocument{doc},
		[]*trade.PurchaseOrder{po},
		[]*trade.PerformaInvoice{pi},
		nil, snap, Query{}, Query{})

	require.Len(t, led.Invoiced.Items, 1)
	assertMoney(t, "1999.20", led.TotalInvoiced)
}

func TestBuildClientLedger_UnlinkedDocOmitted(t *testing.T) {
	snap, p := clientFixture()
	clientID := id.New()

	// purchase order chain broken: performa invoice missing
	po := trade.NewPurchaseOrder(id.New(), id.New())
	doc := clientDoc(id.New(), p, "EXP/HEM/004/24-25", 5)
	doc.PurchaseOrderID = &po.ID

	led := BuildClientLedger(clientID,
		[]*exportdoc.ExportDocument{doc},
		[]*trade.PurchaseOrder{po},
		nil, nil, snap, Query{}, Query{})

	assert.Empty(t, led.Invoiced.Items)
	assertMoney(t, "0", led.TotalInvoiced)
}
