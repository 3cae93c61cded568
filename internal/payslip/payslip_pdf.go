package payslip

import (
	"bytes"
	"fmt"
	"strings"
)

// A4 portrait in points, with the printable column between the margins.
const (
	pageWidth   = 595
	pageHeight  = 842
	marginLeft  = 50
	marginRight = pageWidth - 50
)

// amountRow is one line of the pay table: label on the left, amount flush
// right. Total rows are set in bold with a rule above.
type amountRow struct {
	label  string
	amount string
	total  bool
}

type payslipDocument struct {
	title  string
	header []string
	rows   []amountRow
	note   string
}

func payslipLayout(p PayslipResponse) payslipDocument {
	return payslipDocument{
		title: fmt.Sprintf("Payslip - %s", p.Period),
		header: []string{
			fmt.Sprintf("Employee: %s", p.Employee.Name),
			fmt.Sprintf("Department: %s", p.Employee.Department),
			fmt.Sprintf("Organization: %s", p.Organization),
			fmt.Sprintf("Attendance: %d / %d days (%s%%)", p.DaysPresent, p.TotalWorkdays, p.AttendancePercentage),
		},
		rows: []amountRow{
			{label: "Basic Salary (pro-rata)", amount: p.BasicPay},
			{label: "HRA (20% of Basic)", amount: p.HRA},
			{label: "DA (10% of Basic)", amount: p.DA},
			{label: "Bonus", amount: p.Bonus},
			{label: "Penalty", amount: "-" + p.Penalty},
			{label: "Gross Salary", amount: p.GrossSalary, total: true},
			{label: "Tax", amount: "-" + p.Tax},
			{label: "Net Salary (Payable)", amount: p.NetSalary, total: true},
		},
		note: p.Warning,
	}
}

// helveticaWidth is the advance width, in 1/1000 em, of the glyphs amounts
// are made of. Bold shares these widths. Other glyphs use the digit width.
var helveticaWidth = map[rune]int{'.': 278, ',': 278, '-': 333, ' ': 278}

func textWidth(s string, size float64) float64 {
	units := 0
	for _, r := range s {
		w, ok := helveticaWidth[r]
		if !ok {
			w = 556
		}
		units += w
	}
	return float64(units) * size / 1000
}

// contentStream draws the document with absolute positioning so amounts can
// be right aligned against marginRight.
func (d payslipDocument) contentStream() string {
	var b strings.Builder
	text := func(font string, size, x, y float64, s string) {
		fmt.Fprintf(&b, "BT /%s %g Tf %.2f %.2f Td (%s) Tj ET\n", font, size, x, y, pdfEscape(s))
	}
	rule := func(y float64) {
		fmt.Fprintf(&b, "%d %.2f m %d %.2f l S\n", marginLeft, y, marginRight, y)
	}

	y := float64(pageHeight - 60)
	text("F2", 16, marginLeft, y, d.title)
	y -= 28
	for _, line := range d.header {
		text("F1", 11, marginLeft, y, line)
		y -= 16
	}

	y -= 6
	rule(y + 12)
	for _, row := range d.rows {
		font := "F1"
		if row.total {
			font = "F2"
			rule(y + 12)
		}
		text(font, 11, marginLeft, y, row.label)
		text(font, 11, marginRight-textWidth(row.amount, 11), y, row.amount)
		y -= 18
	}

	if d.note != "" {
		text("F1", 10, marginLeft, y-10, d.note)
	}
	return b.String()
}

// buildPayslipPDF writes a single page PDF 1.4 document.
func buildPayslipPDF(doc payslipDocument) ([]byte, error) {
	stream := doc.contentStream()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R /F2 5 0 R >> >> /Contents 6 0 R >>", pageWidth, pageHeight),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)
	return out.Bytes(), nil
}

// pdfEscape escapes string literal delimiters and drops bytes outside
// printable ASCII, which the standard Helvetica encoding cannot show.
func pdfEscape(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
