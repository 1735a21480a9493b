package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"bookstore/internal/entities"
)

var ErrGeneration = errors.New("receipt generation failed")

const (
	currencyPrefix = "Rs. "
	dateLayout     = "02 Jan 2006 15:04 MST"

	pageMargin  = 20.0
	lineHeight  = 7.0
	labelWidth  = 45.0
	titleSize   = 18.0
	headingSize = 12.0
	bodySize    = 11.0
	fontFamily  = "Helvetica"
	producer    = "bookstore"
)

// Filename - имя, под которым квитанция прикладывается к письмам и отдается по HTTP.
func Filename(orderID int64) string {
	return "order_" + strconv.FormatInt(orderID, 10) + ".pdf"
}

// PDF отдает Generate как зависимость с методом.
type PDF struct{}

func (PDF) Generate(order *entities.Order) ([]byte, error) {
	return Generate(order)
}

// Generate строит PDF квитанцию. Результат зависит только от полей заказа:
// дата создания документа берется из заказа, каталоги сортируются.
func Generate(order *entities.Order) (content []byte, err error) {
	if order == nil {
		return nil, fmt.Errorf("%w: nil order", ErrGeneration)
	}

	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("%w: order %d: panic: %v", ErrGeneration, order.ID, r)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(order.CreatedAt)
	pdf.SetModificationDate(order.CreatedAt)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(false)
	pdf.SetProducer(producer, false)
	pdf.SetTitle("Order #"+strconv.FormatInt(order.ID, 10), true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	// core шрифты в cp1252, все прочее заменяется
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", titleSize)
	pdf.CellFormat(0, 12, "Order Receipt", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	w := &writer{pdf: pdf, tr: tr}

	w.heading("Order")
	w.row("Order ID", strconv.FormatInt(order.ID, 10))
	w.row("Date", order.CreatedAt.UTC().Format(dateLayout))
	w.row("Status", order.Status.String())

	w.heading("Book")
	w.row("Title", order.BookTitle)
	w.row("Author", order.AuthorName)
	w.row("Unit price", currencyPrefix+order.UnitPrice.StringFixed(2))
	w.row("Quantity", strconv.Itoa(order.Quantity))
	w.boldRow("Total", currencyPrefix+order.Total().StringFixed(2))

	w.heading("Buyer")
	w.row("Name", order.Name)
	w.row("Email", order.Email)
	w.row("Phone", order.Phone)
	w.row("Address", order.Address)

	if order.Notes != "" {
		w.heading("Notes")
		pdf.SetFont(fontFamily, "", bodySize)
		pdf.MultiCell(0, lineHeight, tr(order.Notes), "", "L", false)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: order %d: %w", ErrGeneration, order.ID, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: order %d: %w", ErrGeneration, order.ID, err)
	}
	return buf.Bytes(), nil
}

type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *writer) heading(text string) {
	w.pdf.Ln(3)
	w.pdf.SetFont(fontFamily, "B", headingSize)
	w.pdf.CellFormat(0, lineHeight+1, w.tr(text), "B", 1, "L", false, 0, "")
	w.pdf.Ln(1)
}

func (w *writer) row(label, value string) {
	w.rowStyled(label, value, "")
}

func (w *writer) boldRow(label, value string) {
	w.rowStyled(label, value, "B")
}

// rowStyled печатает подпись слева и значение с переносом по словам справа.
func (w *writer) rowStyled(label, value, style string) {
	w.pdf.SetFont(fontFamily, "B", bodySize)
	w.pdf.CellFormat(labelWidth, lineHeight, w.tr(label+":"), "", 0, "L", false, 0, "")
	w.pdf.SetFont(fontFamily, style, bodySize)
	w.pdf.MultiCell(0, lineHeight, w.tr(value), "", "L", false)
}
