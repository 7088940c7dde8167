// Package pdf implementa la generación del manifiesto de entrega imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + ID de negocio  │  N° Orden + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RUTA: Dirección de recogida → Dirección de entrega          │
//	│  CONDUCTOR: Nombre / Teléfono     CLIENTE: Nombre / Teléfono│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | IVA | Subtotal            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal neto / Impuestos / TOTAL                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Estado + firmas de recibido                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/delivery-pro/internal/application/usecase"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoManifestGenerator implementa usecase.ManifestPDFGenerator.
var _ usecase.ManifestPDFGenerator = (*MarotoManifestGenerator)(nil)

// MarotoManifestGenerator implementa usecase.ManifestPDFGenerator usando Maroto v2.
type MarotoManifestGenerator struct{}

// NewMarotoManifestGenerator construye el generador.
func NewMarotoManifestGenerator() *MarotoManifestGenerator { return &MarotoManifestGenerator{} }

// GenerateManifestPDF genera el PDF y devuelve sus bytes. Conductor y cliente
// pueden ser nil (orden sin asignar, o usuario dado de baja).
func (g *MarotoManifestGenerator) GenerateManifestPDF(
	_ context.Context,
	order *entity.Order,
	company *entity.Company,
	driver, customer *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Manifiesto de Entrega", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(order, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(routeRow(order))
	m.AddRows(partiesRow(driver, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	// Footer con estado y firmas
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(order) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa + ID de negocio (izq) y N° Orden + Fecha (der).
func headerRow(order *entity.Order, company *entity.Company) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Empresa: "+company.CompanyID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("MANIFIESTO DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// routeRow: direcciones de recogida y entrega.
func routeRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("RECOGIDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(order.PickupAddress, "—"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(order.DeliveryAddress, "—"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

// partiesRow: conductor asignado y cliente (ambos opcionales).
func partiesRow(driver, customer *entity.User) core.Row {
	driverName, driverContact := "Sin asignar", "—"
	if driver != nil {
		driverName = driver.Name
		driverContact = nonEmpty(driver.Email, "—")
	}
	customerName, customerContact := "—", "—"
	if customer != nil {
		customerName = customer.Name
		customerContact = nonEmpty(customer.Email, "—")
	}

	return row.New(14).Add(
		col.New(6).Add(
			text.New("CONDUCTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", driverName, driverContact), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", customerName, customerContact), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la orden.
func tableItemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		subtotal := it.UnitPrice.Mul(qty)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.UnitPrice.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxRate.Mul(decimal.NewFromInt(100)).StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(subtotal.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(order *entity.Order) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(3).Add(
			label("Subtotal neto:"),
			label("Impuestos:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(order.NetTotal.StringFixed(0))),
			value("$"+formatMoney(order.TaxTotal.StringFixed(0))),
			grandValue("$"+formatMoney(order.GrandTotal.StringFixed(0))),
		),
		col.New(3), // espacio derecho
	)
}

// footerRows: estado de la orden + líneas de firma de entrega y recibido.
func footerRows(order *entity.Order) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Estado de la orden: "+order.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(20).Add(
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 10}),
				text.New("Firma del conductor", props.Text{Size: 8, Align: align.Center, Top: 15, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 10}),
				text.New("Firma de recibido", props.Text{Size: 8, Align: align.Center, Top: 15, Color: colorGray}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Este manifiesto acompaña la mercancía durante el transporte. "+
					"Conserve este documento como soporte de la entrega.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
