package resume

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mcoot/mockify/internal/model"
)

// Supported reports whether filename has an extension resumes can be read from
func Supported(filename string) bool {
	switch extension(filename) {
	case "txt", "pdf", "docx":
		return true
	default:
		return false
	}
}

// CleanFilename drops any directory part a client sent with the name
func CleanFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// ExtractText returns the plain text of a txt, pdf or docx resume.
// A file that yields no text is reported as model.ErrUnreadableResume.
func ExtractText(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch extension(filename) {
	case "txt":
		text = strings.ToValidUTF8(string(data), "")
	case "pdf":
		text, err = pdfText(data)
	case "docx":
		text, err = docxText(data)
	default:
		return "", model.ErrUnsupportedResume
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUnreadableResume, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", model.ErrUnreadableResume
	}
	return text, nil
}

func extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i == -1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func pdfText(data []byte) (text string, err error) {
	// the parser panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// docxText collects the w:t runs of word/document.xml, one line per paragraph
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	f, err := zr.Open("word/document.xml")
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	dec := xml.NewDecoder(f)
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inText = t.Name.Local == "t"
			if t.Name.Local == "tab" {
				b.WriteByte('\t')
			}
		case xml.EndElement:
			inText = false
			if t.Name.Local == "p" {
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
