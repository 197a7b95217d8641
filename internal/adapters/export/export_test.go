package export

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lettrix/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func sampleDocument() *domain.Document {
	return &domain.Document{
		ID:       "doc-1",
		Category: "work_certificate",
		Title:    "WORK CERTIFICATE",
		Letterhead: domain.Letterhead{
			CompanyName: "Acme & Sons",
			Address:     "1 Main Street",
			Phone:       "555-0100",
			Email:       "hr@acme.test",
		},
		Details: []domain.DetailRow{
			{Label: "Employee:", Value: "Zoë Alvarez"},
			{Label: "Position:", Value: "Engineer"},
		},
		Greeting: "To whom it may concern,",
		Text:     "First paragraph.\n\nSecond paragraph\nwith a break.\n\nSincerely,\nBob\nHR",
		Signature: domain.Signature{
			Name:  "Bob",
			Role:  "HR",
			Place: "Paris",
			Date:  "January 05, 2024",
		},
		Footer:    "Issued upon request.",
		Watermark: "LETTRIX - WEB",
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestPDFExporter_Export(t *testing.T) {
	e := NewPDFExporter("", newTestLogger())

	data, err := e.Export(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", data[:min(16, len(data))])
	}
	if e.Format() != domain.FormatPDF || e.ContentType() != "application/pdf" {
		t.Errorf("unexpected format metadata %s %s", e.Format(), e.ContentType())
	}
}

func TestPDFExporter_EmbedsLogoFromAssetDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "logo.png"))

	doc := sampleDocument()
	doc.Letterhead.LogoPath = "logo.png"

	withLogo, err := NewPDFExporter(dir, newTestLogger()).Export(context.Background(), doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	doc.Letterhead.LogoPath = ""
	withoutLogo, err := NewPDFExporter(dir, newTestLogger()).Export(context.Background(), doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if !bytes.Contains(withLogo, []byte("/Subtype /Image")) {
		t.Error("expected an image object in the PDF")
	}
	if bytes.Contains(withoutLogo, []byte("/Subtype /Image")) {
		t.Error("unexpected image object without a logo")
	}
}

func TestPDFExporter_MinimalDocument(t *testing.T) {
	data, err := NewPDFExporter("", newTestLogger()).Export(context.Background(), &domain.Document{Text: "Only text."})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty output")
	}
}

func readDocumentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	names := make(map[string]bool)
	var body string
	for _, f := range zr.File {
		names[f.Name] = true
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		body = string(b)
	}

	for _, want := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if !names[want] {
			t.Errorf("docx missing part %s", want)
		}
	}
	return body
}

func TestDOCXExporter_Export(t *testing.T) {
	e := NewDOCXExporter(newTestLogger())

	data, err := e.Export(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	body := readDocumentXML(t, data)
	for _, want := range []string{
		"Acme &amp; Sons",
		"WORK CERTIFICATE",
		"Employee: Zoë Alvarez",
		"First paragraph.",
		"Second paragraph</w:t><w:br/><w:t xml:space=\"preserve\">with a break.",
		"Paris January 05, 2024",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestResolveAsset(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "logo.png"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cases := map[string]bool{
		"logo.png":           true,
		"/logo.png":          true,
		"../logo.png":        false,
		"notes.txt":          false,
		"missing.png":        false,
		"":                   false,
		"sub/../../logo.png": false,
	}
	for in, ok := range cases {
		got := resolveAsset(dir, in)
		if (got != "") != ok {
			t.Errorf("resolveAsset(%q) = %q, want found=%v", in, got, ok)
		}
	}

	if resolveAsset("", "logo.png") != "" {
		t.Error("no asset dir must disable logos")
	}
}
