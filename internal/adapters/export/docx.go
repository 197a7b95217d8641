package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"lettrix/internal/domain"
)

const (
	docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	docxDocumentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	docxDocumentClose = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="680" w:right="850" w:bottom="680" w:left="850" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr></w:body></w:document>`
)

// DOCXExporter renders letters as WordprocessingML documents.
type DOCXExporter struct {
	logger *slog.Logger
}

// NewDOCXExporter creates a DOCX exporter.
func NewDOCXExporter(logger *slog.Logger) *DOCXExporter {
	return &DOCXExporter{logger: logger}
}

// Format returns domain.FormatDOCX.
func (e *DOCXExporter) Format() domain.Format { return domain.FormatDOCX }

// ContentType returns the DOCX MIME type.
func (e *DOCXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Export renders doc into a DOCX package.
func (e *DOCXExporter) Export(_ context.Context, doc *domain.Document) ([]byte, error) {
	body := renderDocumentXML(doc)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", body},
	}

	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close docx: %w", err)
	}

	e.logger.Debug("docx rendered", "document_id", doc.ID, "bytes", buf.Len())

	return buf.Bytes(), nil
}

// runStyle describes the formatting of one paragraph.
type runStyle struct {
	bold  bool
	size  int // half-points, 0 keeps the default
	color string
	align string
}

type docxWriter struct {
	buf strings.Builder
}

func (w *docxWriter) paragraph(text string, st runStyle) {
	w.buf.WriteString("<w:p>")
	if st.align != "" {
		fmt.Fprintf(&w.buf, `<w:pPr><w:jc w:val="%s"/></w:pPr>`, st.align)
	}
	if text != "" {
		w.buf.WriteString("<w:r>")
		if st.bold || st.size > 0 || st.color != "" {
			w.buf.WriteString("<w:rPr>")
			if st.bold {
				w.buf.WriteString("<w:b/>")
			}
			if st.color != "" {
				fmt.Fprintf(&w.buf, `<w:color w:val="%s"/>`, st.color)
			}
			if st.size > 0 {
				fmt.Fprintf(&w.buf, `<w:sz w:val="%d"/>`, st.size)
			}
			w.buf.WriteString("</w:rPr>")
		}
		for i, line := range strings.Split(text, "\n") {
			if i > 0 {
				w.buf.WriteString("<w:br/>")
			}
			w.buf.WriteString(`<w:t xml:space="preserve">`)
			_ = xml.EscapeText(&w.buf, []byte(line))
			w.buf.WriteString("</w:t>")
		}
		w.buf.WriteString("</w:r>")
	}
	w.buf.WriteString("</w:p>")
}

func renderDocumentXML(doc *domain.Document) string {
	w := &docxWriter{}
	w.buf.WriteString(docxDocumentOpen)

	head := doc.Letterhead
	if head.CompanyName != "" {
		w.paragraph(head.CompanyName, runStyle{bold: true, size: 32, color: "0033CC", align: "center"})
	}
	if head.Address != "" {
		w.paragraph(head.Address, runStyle{size: 18, color: "555555", align: "center"})
	}
	if c := contactLine(head.Phone, head.Email); c != "" {
		w.paragraph(c, runStyle{size: 18, color: "555555", align: "center"})
	}

	if doc.Title != "" {
		w.paragraph(doc.Title, runStyle{bold: true, size: 32, align: "center"})
		w.paragraph("", runStyle{})
	}

	for _, row := range doc.Details {
		w.paragraph(row.Label+" "+row.Value, runStyle{})
	}
	if len(doc.Details) > 0 {
		w.paragraph("", runStyle{})
	}

	if doc.Greeting != "" {
		w.paragraph(doc.Greeting, runStyle{})
	}

	for _, p := range doc.Paragraphs() {
		w.paragraph(p, runStyle{align: "both"})
	}

	w.paragraph("", runStyle{})
	for _, line := range []string{doc.Signature.Name, doc.Signature.Role, placeLine(doc.Signature.Place, doc.Signature.Date)} {
		if line != "" {
			w.paragraph(line, runStyle{bold: true, align: "right"})
		}
	}

	if doc.Footer != "" {
		w.paragraph("", runStyle{})
		w.paragraph(doc.Footer, runStyle{size: 16, color: "666666", align: "center"})
	}

	w.buf.WriteString(docxDocumentClose)
	return w.buf.String()
}
