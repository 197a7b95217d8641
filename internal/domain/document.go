package domain

import "strings"

// Format identifies an export document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat normalizes a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX, "word":
		return FormatDOCX, nil
	}
	return "", ErrUnsupportedFormat
}

// Letterhead is the company block printed at the top of an exported letter.
type Letterhead struct {
	CompanyName string
	Address     string
	Phone       string
	Email       string
	LogoPath    string
}

// DetailRow is a labelled value shown in the summary table above the text.
type DetailRow struct {
	Label string
	Value string
}

// Signature is the signer block placed below the text.
type Signature struct {
	Name  string
	Role  string
	Place string
	Date  string
}

// Document is everything an exporter needs to lay out one letter.
type Document struct {
	ID         string
	Category   string
	Title      string
	Letterhead Letterhead
	Details    []DetailRow
	Greeting   string
	Text       string
	Signature  Signature
	Footer     string
	Watermark  string
}

// Paragraphs splits the letter text on blank lines, dropping empty paragraphs.
func (d *Document) Paragraphs() []string {
	text := strings.ReplaceAll(d.Text, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.Trim(p, "\n"))
		}
	}
	return out
}

// Export is a rendered document ready to be downloaded.
type Export struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
}
