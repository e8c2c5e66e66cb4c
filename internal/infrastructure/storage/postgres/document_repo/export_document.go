package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/exportdoc"
	"exportdoc/internal/infrastructure/storage/postgres"
)

const (
	exportDocTable          = "doc_export_documents"
	exportManufacturerTable = "doc_export_manufacturer_details"
	exportContainerTable    = "doc_export_containers"
	exportContainerLines    = "doc_export_container_lines"
)

// exportDocumentRow flattens the header plus the shipping references into
// one scannable row. The nested ShippingRef structs carry no db tags of
// their own.
type exportDocumentRow struct {
	exportdoc.ExportDocument

	EwayBillNumber   string     `db:"eway_bill_number"`
	EwayBillDate     *time.Time `db:"eway_bill_date"`
	EwayBillDocument string     `db:"eway_bill_document"`

	ShippingBillNumber   string     `db:"shipping_bill_number"`
	ShippingBillDate     *time.Time `db:"shipping_bill_date"`
	ShippingBillDocument string     `db:"shipping_bill_document"`

	BLNumber   string     `db:"bl_number"`
	BLDate     *time.Time `db:"bl_date"`
	BLDocument string     `db:"bl_document"`
}

func (row *exportDocumentRow) toModel() *exportdoc.ExportDocument {
	doc := row.ExportDocument
	doc.EwayBill = exportdoc.ShippingRef{Number: row.EwayBillNumber, Date: row.EwayBillDate, Document: row.EwayBillDocument}
	doc.ShippingBill = exportdoc.ShippingRef{Number: row.ShippingBillNumber, Date: row.ShippingBillDate, Document: row.ShippingBillDocument}
	doc.BL = exportdoc.ShippingRef{Number: row.BLNumber, Date: row.BLDate, Document: row.BLDocument}
	return &doc
}

func shippingRefColumns(doc *exportdoc.ExportDocument) map[string]any {
	return map[string]any{
		"eway_bill_number":       doc.EwayBill.Number,
		"eway_bill_date":         doc.EwayBill.Date,
		"eway_bill_document":     doc.EwayBill.Document,
		"shipping_bill_number":   doc.ShippingBill.Number,
		"shipping_bill_date":     doc.ShippingBill.Date,
		"shipping_bill_document": doc.ShippingBill.Document,
		"bl_number":              doc.BL.Number,
		"bl_date":                doc.BL.Date,
		"bl_document":            doc.BL.Document,
	}
}

type manufacturerDetailRow struct {
	LineID           id.ID      `db:"line_id"`
	DocumentID       id.ID      `db:"document_id"`
	Position         int        `db:"position"`
	ManufacturerID   id.ID      `db:"manufacturer_id"`
	InvoiceNumber    string     `db:"invoice_number"`
	InvoiceDate      *time.Time `db:"invoice_date"`
	PermissionNumber string     `db:"permission_number"`
}

type containerRow struct {
	LineID           id.ID  `db:"line_id"`
	DocumentID       id.ID  `db:"document_id"`
	Position         int    `db:"position"`
	ContainerNo      string `db:"container_no"`
	TruckNumber      string `db:"truck_number"`
	BuiltyNo         string `db:"builty_no"`
	RFIDSeal         string `db:"rfid_seal"`
	LineSeal         string `db:"line_seal"`
	TareWeight       string `db:"tare_weight"`
	StartPalletNo    string `db:"start_pallet_no"`
	EndPalletNo      string `db:"end_pallet_no"`
	TotalPallets     string `db:"total_pallets"`
	WeighingSlipNo   string `db:"weighing_slip_no"`
	WeighingDateTime string `db:"weighing_date_time"`
}

type containerLineRow struct {
	LineID      id.ID        `db:"line_id"`
	ContainerID id.ID        `db:"container_id"`
	DocumentID  id.ID        `db:"document_id"`
	Position    int          `db:"position"`
	IsSample    bool         `db:"is_sample"`
	ProductID   id.ID        `db:"product_id"`
	Boxes       float64      `db:"boxes"`
	NetWeight   *float64     `db:"net_weight"`
	GrossWeight *float64     `db:"gross_weight"`
	Rate        *types.Money `db:"rate"`
}

// ExportDocumentRepo implements exportdoc.Repository. The header and the
// three table parts are written together; updates rewrite the table parts
// wholesale.
type ExportDocumentRepo struct {
	*BaseDocumentRepo[*exportDocumentRow]
}

// NewExportDocumentRepo creates a new export document repository.
func NewExportDocumentRepo(txManager *postgres.TxManager) *ExportDocumentRepo {
	cols := postgres.ExtractDBColumns[exportDocumentRow]()
	return &ExportDocumentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			exportDocTable,
			cols,
			func() *exportDocumentRow { return &exportDocumentRow{} },
		),
	}
}

// Create inserts the header and all table parts.
func (r *ExportDocumentRepo) Create(ctx context.Context, doc *exportdoc.ExportDocument) error {
	row := &exportDocumentRow{ExportDocument: *doc}
	if err := r.CreateRow(ctx, row, shippingRefColumns(doc)); err != nil {
		return err
	}
	return r.insertParts(ctx, doc)
}

// Update rewrites the header and replaces every table part row.
func (r *ExportDocumentRepo) Update(ctx context.Context, doc *exportdoc.ExportDocument) error {
	row := &exportDocumentRow{ExportDocument: *doc}
	if err := r.UpdateRow(ctx, row, shippingRefColumns(doc)); err != nil {
		return err
	}
	if err := r.deleteParts(ctx, doc.ID); err != nil {
		return err
	}
	return r.insertParts(ctx, doc)
}

// GetByID retrieves a document with all table parts.
func (r *ExportDocumentRepo) GetByID(ctx context.Context, docID id.ID) (*exportdoc.ExportDocument, error) {
	row, err := r.GetRow(ctx, docID)
	if err != nil {
		return nil, err
	}

	doc := row.toModel()
	if err := r.loadParts(ctx, []*exportdoc.ExportDocument{doc}); err != nil {
		return nil, err
	}
	return doc, nil
}

// List retrieves documents with filtering and pagination. Table parts are
// loaded for the returned page only.
func (r *ExportDocumentRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*exportdoc.ExportDocument], error) {
	rows, err := r.ListRows(ctx, filter)
	if err != nil {
		return domain.ListResult[*exportdoc.ExportDocument]{}, err
	}

	result := domain.ListResult[*exportdoc.ExportDocument]{
		TotalCount: rows.TotalCount,
		Limit:      rows.Limit,
		Offset:     rows.Offset,
	}
	for _, row := range rows.Items {
		result.Items = append(result.Items, row.toModel())
	}

	if err := r.loadParts(ctx, result.Items); err != nil {
		return domain.ListResult[*exportdoc.ExportDocument]{}, err
	}
	return result, nil
}

// GetAll retrieves every non-deleted document with table parts.
func (r *ExportDocumentRepo) GetAll(ctx context.Context) ([]*exportdoc.ExportDocument, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date DESC")

	rows, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}

	docs := make([]*exportdoc.ExportDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toModel())
	}

	if err := r.loadParts(ctx, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ListInvoiceNumbers returns the invoice numbers of all non-deleted
// documents.
func (r *ExportDocumentRepo) ListInvoiceNumbers(ctx context.Context) ([]string, error) {
	q := r.Builder().
		Select("number").
		From(exportDocTable).
		Where(squirrel.Eq{"is_deleted": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var numbers []string
	if err := pgxscan.Select(ctx, r.Querier(ctx), &numbers, sql, args...); err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	return numbers, nil
}

func (r *ExportDocumentRepo) insertParts(ctx context.Context, doc *exportdoc.ExportDocument) error {
	querier := r.Querier(ctx)

	for i, md := range doc.ManufacturerDetails {
		q := r.Builder().Insert(exportManufacturerTable).SetMap(map[string]any{
			"line_id":           md.LineID,
			"document_id":       doc.ID,
			"position":          i + 1,
			"manufacturer_id":   md.ManufacturerID,
			"invoice_number":    md.InvoiceNumber,
			"invoice_date":      md.InvoiceDate,
			"permission_number": md.PermissionNumber,
		})
		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build manufacturer detail insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert manufacturer detail: %w", err)
		}
	}

	for i, c := range doc.ContainerItems {
		q := r.Builder().Insert(exportContainerTable).SetMap(map[string]any{
			"line_id":            c.LineID,
			"document_id":        doc.ID,
			"position":           i + 1,
			"container_no":       c.ContainerNo,
			"truck_number":       c.TruckNumber,
			"builty_no":          c.BuiltyNo,
			"rfid_seal":          c.RFIDSeal,
			"line_seal":          c.LineSeal,
			"tare_weight":        c.TareWeight,
			"start_pallet_no":    c.StartPalletNo,
			"end_pallet_no":      c.EndPalletNo,
			"total_pallets":      c.TotalPallets,
			"weighing_slip_no":   c.WeighingSlipNo,
			"weighing_date_time": c.WeighingDateTime,
		})
		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build container insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert container: %w", err)
		}

		if err := r.insertContainerLines(ctx, doc.ID, c.LineID, c.ProductItems, false); err != nil {
			return err
		}
		if err := r.insertContainerLines(ctx, doc.ID, c.LineID, c.SampleItems, true); err != nil {
			return err
		}
	}

	return nil
}

func (r *ExportDocumentRepo) insertContainerLines(ctx context.Context, docID, containerID id.ID, items []exportdoc.ProductItem, sample bool) error {
	querier := r.Querier(ctx)

	for i, item := range items {
		q := r.Builder().Insert(exportContainerLines).SetMap(map[string]any{
			"line_id":      item.LineID,
			"container_id": containerID,
			"document_id":  docID,
			"position":     i + 1,
			"is_sample":    sample,
			"product_id":   item.ProductID,
			"boxes":        item.Boxes,
			"net_weight":   item.NetWeight,
			"gross_weight": item.GrossWeight,
			"rate":         item.Rate,
		})
		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build container line insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert container line: %w", err)
		}
	}
	return nil
}

func (r *ExportDocumentRepo) deleteParts(ctx context.Context, docID id.ID) error {
	querier := r.Querier(ctx)

	for _, table := range []string{exportContainerLines, exportContainerTable, exportManufacturerTable} {
		q := r.Builder().Delete(table).Where(squirrel.Eq{"document_id": docID})
		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build parts delete: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	return nil
}

// loadParts attaches table parts to the given documents in three queries.
func (r *ExportDocumentRepo) loadParts(ctx context.Context, docs []*exportdoc.ExportDocument) error {
	if len(docs) == 0 {
		return nil
	}

	docIDs := make([]id.ID, 0, len(docs))
	byID := make(map[id.ID]*exportdoc.ExportDocument, len(docs))
	for _, doc := range docs {
		docIDs = append(docIDs, doc.ID)
		byID[doc.ID] = doc
	}

	querier := r.Querier(ctx)

	mdQ := r.Builder().
		Select("line_id", "document_id", "position", "manufacturer_id", "invoice_number", "invoice_date", "permission_number").
		From(exportManufacturerTable).
		Where(squirrel.Eq{"document_id": docIDs}).
		OrderBy("document_id", "position")
	sql, args, err := mdQ.ToSql()
	if err != nil {
		return fmt.Errorf("build manufacturer details query: %w", err)
	}
	var mdRows []manufacturerDetailRow
	if err := pgxscan.Select(ctx, querier, &mdRows, sql, args...); err != nil {
		return fmt.Errorf("load manufacturer details: %w", err)
	}
	for _, row := range mdRows {
		doc := byID[row.DocumentID]
		doc.ManufacturerDetails = append(doc.ManufacturerDetails, exportdoc.ManufacturerDetail{
			LineID:           row.LineID,
			ManufacturerID:   row.ManufacturerID,
			InvoiceNumber:    row.InvoiceNumber,
			InvoiceDate:      row.InvoiceDate,
			PermissionNumber: row.PermissionNumber,
		})
	}

	cQ := r.Builder().
		Select("line_id", "document_id", "position", "container_no", "truck_number", "builty_no",
			"rfid_seal", "line_seal", "tare_weight", "start_pallet_no", "end_pallet_no",
			"total_pallets", "weighing_slip_no", "weighing_date_time").
		From(exportContainerTable).
		Where(squirrel.Eq{"document_id": docIDs}).
		OrderBy("document_id", "position")
	sql, args, err = cQ.ToSql()
	if err != nil {
		return fmt.Errorf("build containers query: %w", err)
	}
	var cRows []containerRow
	if err := pgxscan.Select(ctx, querier, &cRows, sql, args...); err != nil {
		return fmt.Errorf("load containers: %w", err)
	}

	// Build each document's container slice at its final size before
	// taking element pointers.
	cByDoc := make(map[id.ID][]containerRow, len(docs))
	for _, row := range cRows {
		cByDoc[row.DocumentID] = append(cByDoc[row.DocumentID], row)
	}
	containers := make(map[id.ID]*exportdoc.ContainerItem, len(cRows))
	for docID, rows := range cByDoc {
		doc := byID[docID]
		doc.ContainerItems = make([]exportdoc.ContainerItem, len(rows))
		for i, row := range rows {
			doc.ContainerItems[i] = exportdoc.ContainerItem{
				LineID:           row.LineID,
				ContainerNo:      row.ContainerNo,
				TruckNumber:      row.TruckNumber,
				BuiltyNo:         row.BuiltyNo,
				RFIDSeal:         row.RFIDSeal,
				LineSeal:         row.LineSeal,
				TareWeight:       row.TareWeight,
				StartPalletNo:    row.StartPalletNo,
				EndPalletNo:      row.EndPalletNo,
				TotalPallets:     row.TotalPallets,
				WeighingSlipNo:   row.WeighingSlipNo,
				WeighingDateTime: row.WeighingDateTime,
			}
			containers[row.LineID] = &doc.ContainerItems[i]
		}
	}

	lQ := r.Builder().
		Select("line_id", "container_id", "document_id", "position", "is_sample",
			"product_id", "boxes", "net_weight", "gross_weight", "rate").
		From(exportContainerLines).
		Where(squirrel.Eq{"document_id": docIDs}).
		OrderBy("container_id", "position")
	sql, args, err = lQ.ToSql()
	if err != nil {
		return fmt.Errorf("build container lines query: %w", err)
	}
	var lRows []containerLineRow
	if err := pgxscan.Select(ctx, querier, &lRows, sql, args...); err != nil {
		return fmt.Errorf("load container lines: %w", err)
	}
	for _, row := range lRows {
		c, ok := containers[row.ContainerID]
		if !ok {
			continue
		}
		item := exportdoc.ProductItem{
			LineID:      row.LineID,
			ProductID:   row.ProductID,
			Boxes:       row.Boxes,
			NetWeight:   row.NetWeight,
			GrossWeight: row.GrossWeight,
			Rate:        row.Rate,
		}
		if row.IsSample {
			c.SampleItems = append(c.SampleItems, item)
		} else {
			c.ProductItems = append(c.ProductItems, item)
		}
	}

	return nil
}
