// Package reports composes repositories into the read models the API
// exposes: document aggregation, party and client ledgers, and the GST
// summary. All builders run on read-only transactions.
package reports

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain/aggregate"
	"exportdoc/internal/domain/catalogs/party"
	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/domain/catalogs/size"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/domain/documents/exportdoc"
	"exportdoc/internal/domain/documents/payment"
	"exportdoc/internal/domain/documents/trade"
	"exportdoc/internal/domain/gstreport"
	"exportdoc/internal/domain/ledger"
)

// Service assembles report read models from the underlying repositories.
type Service struct {
	txManager tx.ReadOnlyManager

	sizes    size.Repository
	products product.Repository
	parties  party.Repository

	docs         exportdoc.Repository
	bills        bill.Repository
	transactions payment.Repository
	performas    trade.PerformaInvoiceRepository
	orders       trade.PurchaseOrderRepository
}

// NewService creates a new reports service.
func NewService(
	txManager tx.ReadOnlyManager,
	sizes size.Repository,
	products product.Repository,
	parties party.Repository,
	docs exportdoc.Repository,
	bills bill.Repository,
	transactions payment.Repository,
	performas trade.PerformaInvoiceRepository,
	orders trade.PurchaseOrderRepository,
) *Service {
	return &Service{
		txManager:    txManager,
		sizes:        sizes,
		products:     products,
		parties:      parties,
		docs:         docs,
		bills:        bills,
		transactions: transactions,
		performas:    performas,
		orders:       orders,
	}
}

// Snapshot loads the current product and size catalogs for aggregation.
func (s *Service) Snapshot(ctx context.Context) (*aggregate.Snapshot, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sizes, err := s.sizes.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.NewSnapshot(products, sizes), nil
}

// DocumentReport is an export document joined with its computed line
// aggregation and money totals, ready for rendering.
type DocumentReport struct {
	Document *exportdoc.ExportDocument
	Exporter *party.Party
	Client   *party.Party
	Lines    aggregate.Result
	Totals   aggregate.Totals
	Snapshot *aggregate.Snapshot

	// PartyNames resolves every party reference on the document
	// (manufacturer details, transporter) for rendering.
	PartyNames map[id.ID]string
}

// Document aggregates one export document: grouped product lines, the
// zero-valued sample section, grand totals and the money totals derived
// from them.
func (s *Service) Document(ctx context.Context, docID id.ID) (*DocumentReport, error) {
	var report *DocumentReport
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		doc, err := s.docs.GetByID(ctx, docID)
		if err != nil {
			return err
		}
		snap, err := s.Snapshot(ctx)
		if err != nil {
			return err
		}
		exporter, err := s.parties.GetByID(ctx, doc.ExporterID)
		if err != nil {
			return err
		}
		client, err := s.parties.GetByID(ctx, doc.ClientID)
		if err != nil {
			return err
		}
		allParties, err := s.parties.GetAll(ctx)
		if err != nil {
			return err
		}
		names := make(map[id.ID]string, len(allParties))
		for _, p := range allParties {
			names[p.ID] = p.Name
		}
		report = &DocumentReport{
			Document:   doc,
			Exporter:   exporter,
			Client:     client,
			Lines:      aggregate.AggregateContainerItems(doc, snap),
			Totals:     aggregate.DocumentTotal(doc, snap),
			Snapshot:   snap,
			PartyNames: names,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// billKindFor maps a ledger party kind to the bill variant that carries
// its debit side. Pallet vendors bill as suppliers.
func billKindFor(kind payment.PartyKind) (bill.Kind, bool) {
	switch kind {
	case payment.PartyManufacturer:
		return bill.KindManu, true
	case payment.PartyTransporter:
		return bill.KindTrans, true
	case payment.PartySupplier, payment.PartyPallet:
		return bill.KindSupply, true
	default:
		return "", false
	}
}

// PartyLedger builds the two-sided ledger for a vendor party: bills on
// the debit side, credit payments on the credit side.
func (s *Service) PartyLedger(ctx context.Context, kind payment.PartyKind, partyID id.ID, debitQ, creditQ ledger.Query) (ledger.PartyLedger, error) {
	billKind, ok := billKindFor(kind)
	if !ok {
		return ledger.PartyLedger{}, apperror.NewValidation("unsupported ledger party kind").
			WithDetail("kind", string(kind))
	}

	var result ledger.PartyLedger
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		bills, err := s.bills.ListByParty(ctx, billKind, partyID)
		if err != nil {
			return err
		}
		transactions, err := s.transactions.ListByParty(ctx, kind, partyID)
		if err != nil {
			return err
		}
		result = ledger.BuildPartyLedger(kind, partyID, bills, transactions, debitQ, creditQ)
		return nil
	})
	if err != nil {
		return ledger.PartyLedger{}, err
	}
	return result, nil
}

// ClientLedger builds the receivables ledger for a client: invoiced
// export documents against received payments.
func (s *Service) ClientLedger(ctx context.Context, clientID id.ID, invoicedQ, paymentsQ ledger.Query) (ledger.ClientLedger, error) {
	var result ledger.ClientLedger
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		docs, err := s.docs.GetAll(ctx)
		if err != nil {
			return err
		}
		orders, err := s.orders.GetAll(ctx)
		if err != nil {
			return err
		}
		invoices, err := s.performas.GetAll(ctx)
		if err != nil {
			return err
		}
		transactions, err := s.transactions.ListByParty(ctx, payment.PartyClient, clientID)
		if err != nil {
			return err
		}
		snap, err := s.Snapshot(ctx)
		if err != nil {
			return err
		}
		result = ledger.BuildClientLedger(clientID, docs, orders, invoices, transactions, snap, invoicedQ, paymentsQ)
		return nil
	})
	if err != nil {
		return ledger.ClientLedger{}, err
	}
	return result, nil
}

// GSTSummary builds the paid/received GST report across every bill kind
// and the GST payment head.
func (s *Service) GSTSummary(ctx context.Context, paidQ, receivedQ gstreport.Query) (gstreport.Summary, error) {
	var result gstreport.Summary
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var bills []*bill.Bill
		for _, kind := range []bill.Kind{bill.KindManu, bill.KindTrans, bill.KindSupply} {
			part, err := s.bills.GetAllByKind(ctx, kind)
			if err != nil {
				return err
			}
			bills = append(bills, part...)
		}
		transactions, err := s.transactions.ListByPartyKind(ctx, payment.PartyGST)
		if err != nil {
			return err
		}
		parties, err := s.parties.GetAll(ctx)
		if err != nil {
			return err
		}
		result = gstreport.BuildSummary(bills, transactions, parties, paidQ, receivedQ)
		return nil
	})
	if err != nil {
		return gstreport.Summary{}, err
	}
	return result, nil
}
