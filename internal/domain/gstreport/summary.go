// Package gstreport builds the GST position: tax paid through vendor
// bills against tax recovered from the government, with the open balance.
package gstreport

import (
	"sort"
	"strings"
	"time"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/catalogs/party"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/domain/documents/payment"
)

// PageSize is the fixed number of rows per table page.
const PageSize = 5

// noiseThreshold excludes bills whose tax amount rounds to nothing from
// the paid table. They remain in the bill tables untouched.
var noiseThreshold = types.NewMoney(1)

// PaidItem is one bill's tax contribution.
type PaidItem struct {
	ID            id.ID       `json:"id"`
	Date          time.Time   `json:"date"`
	Kind          bill.Kind   `json:"kind"`
	PartyName     string      `json:"partyName"`
	InvoiceNumber string      `json:"invoiceNumber"`
	TaxAmount     types.Money `json:"taxAmount"`
}

// ReceivedItem is one GST refund received from the government.
type ReceivedItem struct {
	ID          id.ID       `json:"id"`
	Date        time.Time   `json:"date"`
	Description string      `json:"description"`
	Amount      types.Money `json:"amount"`
}

// Query selects the displayed rows of one table. Filter is a
// case-insensitive substring match; Page is 1-based.
type Query struct {
	Filter string
	Page   int
}

// PaidPage is one displayed slice of the paid table.
type PaidPage struct {
	Items      []PaidItem `json:"items"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
}

// ReceivedPage is one displayed slice of the received table.
type ReceivedPage struct {
	Items      []ReceivedItem `json:"items"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
}

// Summary is the computed GST position. Totals are always over the full
// unfiltered tables.
type Summary struct {
	Paid             PaidPage     `json:"paid"`
	Received         ReceivedPage `json:"received"`
	TotalGSTPaid     types.Money  `json:"totalGstPaid"`
	TotalGSTReceived types.Money  `json:"totalGstReceived"`
	RemainingGST     types.Money  `json:"remainingGst"`
}

// BuildSummary collects tax paid across every bill kind and tax recovered
// through gst-head credit transactions. Bills with tax at or under the
// noise threshold are excluded from the paid table; unresolvable parties
// render as "Unknown".
func BuildSummary(bills []*bill.Bill, transactions []*payment.Transaction, parties []*party.Party, paidQ, receivedQ Query) Summary {
	names := make(map[id.ID]string, len(parties))
	for _, p := range parties {
		if p == nil || p.IsDeleted {
			continue
		}
		names[p.ID] = p.Name
	}

	var paid []PaidItem
	for _, b := range bills {
		if b == nil || b.IsDeleted {
			continue
		}
		tax := b.TaxTotal()
		if !tax.GreaterThan(noiseThreshold) {
			continue
		}
		name, ok := names[b.PartyID]
		if !ok {
			name = "Unknown"
		}
		paid = append(paid, PaidItem{
			ID:            b.ID,
			Date:          b.Date,
			Kind:          b.Kind,
			PartyName:     name,
			InvoiceNumber: b.Number,
			TaxAmount:     tax,
		})
	}

	var received []ReceivedItem
	for _, t := range transactions {
		if t == nil || t.IsDeleted {
			continue
		}
		if t.Type != payment.DirectionCredit || t.PartyType != payment.PartyGST {
			continue
		}
		received = append(received, ReceivedItem{
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Comment,
			Amount:      t.Amount,
		})
	}

	totalPaid := types.Zero()
	for _, item := range paid {
		totalPaid = totalPaid.Add(item.TaxAmount)
	}
	totalReceived := types.Zero()
	for _, item := range received {
		totalReceived = totalReceived.Add(item.Amount)
	}

	return Summary{
		Paid:             paidPageOf(paid, paidQ),
		Received:         receivedPageOf(received, receivedQ),
		TotalGSTPaid:     totalPaid,
		TotalGSTReceived: totalReceived,
		RemainingGST:     totalPaid.Sub(totalReceived),
	}
}

func paidPageOf(items []PaidItem, q Query) PaidPage {
	sorted := make([]PaidItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	filtered := sorted
	if f := strings.TrimSpace(q.Filter); f != "" {
		f = strings.ToLower(f)
		filtered = nil
		for _, item := range sorted {
			if strings.Contains(strings.ToLower(item.PartyName), f) ||
				strings.Contains(strings.ToLower(item.InvoiceNumber), f) {
				filtered = append(filtered, item)
			}
		}
	}

	start, end, page := pageBounds(len(filtered), q.Page)
	return PaidPage{Items: filtered[start:end], TotalCount: len(filtered), Page: page}
}

func receivedPageOf(items []ReceivedItem, q Query) ReceivedPage {
	sorted := make([]ReceivedItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	filtered := sorted
	if f := strings.TrimSpace(q.Filter); f != "" {
		f = strings.ToLower(f)
		filtered = nil
		for _, item := range sorted {
			if strings.Contains(strings.ToLower(item.Description), f) {
				filtered = append(filtered, item)
			}
		}
	}

	start, end, page := pageBounds(len(filtered), q.Page)
	return ReceivedPage{Items: filtered[start:end], TotalCount: len(filtered), Page: page}
}

func pageBounds(total, page int) (start, end, normalized int) {
	if page < 1 {
		page = 1
	}
	start = (page - 1) * PageSize
	if start > total {
		start = total
	}
	end = start + PageSize
	if end > total {
		end = total
	}
	return start, end, page
}
