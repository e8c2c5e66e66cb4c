// Package ledger builds the debit/credit history of one counterparty.
// Vendor ledgers (manufacturer, transporter, supplier, pallet) debit from
// bills and credit from payments made; client ledgers debit from export
// invoices and credit from payments received. Both sides are independent
// streams: filtering and paging one side never moves the other, and the
// summary totals are always computed over the unfiltered set.
package ledger

import (
	"sort"
	"strings"
	"time"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/aggregate"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/domain/documents/exportdoc"
	"exportdoc/internal/domain/documents/payment"
	"exportdoc/internal/domain/documents/trade"
)

// PageSize is the fixed number of rows per ledger page.
const PageSize = 5

// Entry is one ledger row.
type Entry struct {
	ID          id.ID       `json:"id"`
	Date        time.Time   `json:"date"`
	Description string      `json:"description"`
	Amount      types.Money `json:"amount"`
}

// Query selects the displayed rows of one ledger side. Filter is a
// case-insensitive substring match on the description; Page is 1-based.
type Query struct {
	Filter string
	Page   int
}

// Page is one displayed slice of a ledger side. TotalCount counts the
// filtered rows, not just the page.
type Page struct {
	Items      []Entry `json:"items"`
	TotalCount int     `json:"totalCount"`
	Page       int     `json:"page"`
}

// PartyLedger is the computed ledger of one vendor-side party.
// Balance = TotalDebit - TotalCredit: positive means the business still
// owes the vendor.
type PartyLedger struct {
	Debit       Page        `json:"debit"`
	Credit      Page        `json:"credit"`
	TotalDebit  types.Money `json:"totalDebit"`
	TotalCredit types.Money `json:"totalCredit"`
	Balance     types.Money `json:"balance"`
}

// ClientLedger is the computed ledger of one client. Same shape and sign
// convention as PartyLedger under invoice/payment naming: Balance =
// TotalInvoiced - TotalReceived, positive means the client still owes the
// business.
type ClientLedger struct {
	Invoiced      Page        `json:"invoiced"`
	Payments      Page        `json:"payments"`
	TotalInvoiced types.Money `json:"totalInvoiced"`
	TotalReceived types.Money `json:"totalReceived"`
	Balance       types.Money `json:"balance"`
}

// BuildPartyLedger computes the ledger of one vendor-side party from its
// bills (debit) and the credit payments made to it.
func BuildPartyLedger(kind payment.PartyKind, partyID id.ID, bills []*bill.Bill, transactions []*payment.Transaction, debitQ, creditQ Query) PartyLedger {
	var debits []Entry
	for _, b := range bills {
		if b == nil || b.IsDeleted || b.PartyID != partyID {
			continue
		}
		debits = append(debits, Entry{
			ID:          b.ID,
			Date:        b.Date,
			Description: "Bill - " + b.Number,
			Amount:      b.PayableAmount(),
		})
	}

	credits := transactionEntries(transactions, payment.DirectionCredit, kind, partyID)

	totalDebit := sumEntries(debits)
	totalCredit := sumEntries(credits)

	return PartyLedger{
		Debit:       pageOf(debits, debitQ),
		Credit:      pageOf(credits, creditQ),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Balance:     totalDebit.Sub(totalCredit),
	}
}

// BuildClientLedger computes the ledger of one client. The debit side is
// every export document linked to the client, directly or transitively
// through its purchase order's performa invoice; each is valued at the
// document total including GST plus freight. The credit side is the debit
// payments received from the client.
func BuildClientLedger(clientID id.ID, docs []*exportdoc.ExportDocument, orders []*trade.PurchaseOrder, invoices []*trade.PerformaInvoice, transactions []*payment.Transaction, snap *aggregate.Snapshot, invoicedQ, paymentsQ Query) ClientLedger {
	piClient := make(map[id.ID]id.ID, len(invoices))
	for _, pi := range invoices {
		if pi == nil || pi.IsDeleted {
			continue
		}
		piClient[pi.ID] = pi.ClientID
	}
	poClient := make(map[id.ID]id.ID, len(orders))
	for _, po := range orders {
		if po == nil || po.IsDeleted {
			continue
		}
		if cID, ok := piClient[po.PerformaInvoiceID]; ok {
			poClient[po.ID] = cID
		}
	}

	var invoiced []Entry
	for _, doc := range docs {
		if doc == nil || doc.IsDeleted || !linkedToClient(doc, clientID, piClient, poClient) {
			continue
		}
		totals := aggregate.DocumentTotal(doc, snap)
		invoiced = append(invoiced, Entry{
			ID:          doc.ID,
			Date:        doc.Date,
			Description: "Invoice - " + doc.Number,
			Amount:      totals.TotalAmount.Add(doc.Freight),
		})
	}

	payments := transactionEntries(transactions, payment.DirectionDebit, payment.PartyClient, clientID)

	totalInvoiced := sumEntries(invoiced)
	totalReceived := sumEntries(payments)

	return ClientLedger{
		Invoiced:      pageOf(invoiced, invoicedQ),
		Payments:      pageOf(payments, paymentsQ),
		TotalInvoiced: totalInvoiced,
		TotalReceived: totalReceived,
		Balance:       totalInvoiced.Sub(totalReceived),
	}
}

// linkedToClient reports whether an export document belongs to a client,
// either by direct reference or through its trade documents.
func linkedToClient(doc *exportdoc.ExportDocument, clientID id.ID, piClient, poClient map[id.ID]id.ID) bool {
	if doc.ClientID == clientID {
		return true
	}
	if doc.PurchaseOrderID != nil {
		if cID, ok := poClient[*doc.PurchaseOrderID]; ok && cID == clientID {
			return true
		}
	}
	if doc.PerformaInvoiceID != nil {
		if cID, ok := piClient[*doc.PerformaInvoiceID]; ok && cID == clientID {
			return true
		}
	}
	return false
}

func transactionEntries(transactions []*payment.Transaction, direction payment.Direction, kind payment.PartyKind, partyID id.ID) []Entry {
	var entries []Entry
	for _, t := range transactions {
		if t == nil || t.IsDeleted || t.Type != direction || t.PartyType != kind {
			continue
		}
		if t.PartyID == nil || *t.PartyID != partyID {
			continue
		}
		entries = append(entries, Entry{
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Comment,
			Amount:      t.Amount,
		})
	}
	return entries
}

func sumEntries(entries []Entry) types.Money {
	total := types.Zero()
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// pageOf sorts entries descending by date, applies the description filter
// and cuts one fixed-size page. Totals are never derived from its output.
func pageOf(entries []Entry, q Query) Page {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	filtered := sorted
	if f := strings.TrimSpace(q.Filter); f != "" {
		f = strings.ToLower(f)
		filtered = nil
		for _, e := range sorted {
			if strings.Contains(strings.ToLower(e.Description), f) {
				filtered = append(filtered, e)
			}
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Items:      filtered[start:end],
		TotalCount: len(filtered),
		Page:       page,
	}
}
