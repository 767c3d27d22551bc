package infra

// Thermal-receipt style PDF comanda using go-pdf/fpdf: stand header, client
// name, line items with the para-llevar marker, total, payment breakdown.
// Output: storagePath/comanda_{venta_id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"feriapos/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ComandaPDFPath returns where the comanda for a venta lives (or would live).
func ComandaPDFPath(ventaID, storagePath string) string {
	return filepath.Join(storagePath, fmt.Sprintf("comanda_%s.pdf", ventaID))
}

// GenerateComandaPDF renders the PDF receipt of a venta and returns its path.
func GenerateComandaPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := ComandaPDFPath(venta.ID.String(), storagePath)

	// 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "FeriaPOS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comanda", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Cliente: "+venta.NombreCliente, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.Fecha.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venta.Detalles {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		if item.ParaLlevar {
			nombre += " (llevar)"
		}
		if len(nombre) > 22 {
			nombre = nombre[:21] + "…"
		}
		subtotal := item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "₡"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total and payment ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "₡"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Pago ("+venta.FormaPago+"):", "", 0, "L", false, 0, "")
	switch {
	case venta.MontoPagado != nil:
		pdf.CellFormat(col3, 4, "₡"+venta.MontoPagado.StringFixed(2), "", 1, "R", false, 0, "")
	case venta.ComprobanteSinpe != nil:
		pdf.CellFormat(col3, 4, *venta.ComprobanteSinpe, "", 1, "R", false, 0, "")
	default:
		pdf.Ln(4)
	}
	if venta.Vuelto != nil {
		pdf.CellFormat(col1+col2, 4, "Vuelto:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "₡"+venta.Vuelto.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
