// Package document arma los comprobantes imprimibles de recepciones y
// despachos (representación PDF del documento que firma el bodeguero).
package document

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ReceiptHeaderForPDF datos de cabecera ya resueltos para el comprobante.
type ReceiptHeaderForPDF struct {
	ReceiptID   string
	Title       string // "RECEPCIÓN DE MERCANCÍA" o "DESPACHO DE MERCANCÍA"
	PartnerRole string // "Proveedor" o "Cliente"
	PartnerName string
	Date        time.Time
	Notes       string
}

// ReceiptLineForPDF línea ya resuelta (códigos y nombres, no IDs).
type ReceiptLineForPDF struct {
	ItemCode     string
	ItemName     string
	LocationCode string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal // costo en recepciones, precio de venta en despachos
	Total        decimal.Decimal
}

// ReceiptPDFGenerator puerto del generador de comprobantes.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, header ReceiptHeaderForPDF, lines []ReceiptLineForPDF) ([]byte, error)
}

// UseCase arma el comprobante de una recepción o despacho resolviendo
// referencias a nombres y delega el render al generador.
type UseCase struct {
	receiptRepo  repository.ReceiptRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	generator    ReceiptPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	receiptRepo repository.ReceiptRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	generator ReceiptPDFGenerator,
) *UseCase {
	return &UseCase{
		receiptRepo:  receiptRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		generator:    generator,
	}
}

// InboundPDF genera el comprobante PDF de una recepción.
func (uc *UseCase) InboundPDF(ctx context.Context, receiptID string) ([]byte, error) {
	receipt, err := uc.receiptRepo.GetInbound(receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(receipt.SupplierID)
	if err != nil {
		return nil, err
	}
	partnerName := ""
	if supplier != nil {
		partnerName = supplier.Name
	}
	header := ReceiptHeaderForPDF{
		ReceiptID:   receipt.ID,
		Title:       "RECEPCIÓN DE MERCANCÍA",
		PartnerRole: "Proveedor",
		PartnerName: partnerName,
		Date:        receipt.CreatedDate,
		Notes:       receipt.Notes,
	}
	lines := make([]ReceiptLineForPDF, 0, len(receipt.Details))
	for _, line := range receipt.Details {
		pdfLine, err := uc.resolveLine(line.ItemID, line.LocationID, line.Quantity, line.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pdfLine)
	}
	return uc.generator.GenerateReceiptPDF(ctx, header, lines)
}

// OutboundPDF genera el comprobante PDF de un despacho.
func (uc *UseCase) OutboundPDF(ctx context.Context, receiptID string) ([]byte, error) {
	receipt, err := uc.receiptRepo.GetOutbound(receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(receipt.CustomerID)
	if err != nil {
		return nil, err
	}
	partnerName := ""
	if customer != nil {
		partnerName = customer.Name
	}
	header := ReceiptHeaderForPDF{
		ReceiptID:   receipt.ID,
		Title:       "DESPACHO DE MERCANCÍA",
		PartnerRole: "Cliente",
		PartnerName: partnerName,
		Date:        receipt.CreatedDate,
		Notes:       receipt.Notes,
	}
	lines := make([]ReceiptLineForPDF, 0, len(receipt.Details))
	for _, line := range receipt.Details {
		pdfLine, err := uc.resolveLine(line.ItemID, line.LocationID, line.Quantity, line.SalesPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pdfLine)
	}
	return uc.generator.GenerateReceiptPDF(ctx, header, lines)
}

func (uc *UseCase) resolveLine(itemID, locationID string, qty, price decimal.Decimal) (ReceiptLineForPDF, error) {
	out := ReceiptLineForPDF{Quantity: qty, UnitPrice: price, Total: qty.Mul(price)}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return out, err
	}
	if item != nil {
		out.ItemCode = item.Code
		out.ItemName = item.Name
	}
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return out, err
	}
	if loc != nil {
		out.LocationCode = loc.Code
	}
	return out, nil
}
