package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedFormat is returned for uploads that are not a recognized
// text-bearing format. Nothing is written when this happens.
var ErrUnsupportedFormat = errors.New("unsupported file type")

const docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// FromUpload converts an uploaded document into plain transcript text.
// Supported: plain text (returned as-is) and .docx.
func FromUpload(data []byte) (string, error) {
	mtype := mimetype.Detect(data)

	switch {
	case mtype.Is("text/plain"):
		return string(data), nil
	case mtype.Is(docxMime):
		return fromDocx(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mtype.String())
	}
}

// fromDocx pulls the raw text out of word/document.xml. A .docx file is a
// zip archive; paragraphs become newlines, everything else is dropped.
func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a valid docx archive", ErrUnsupportedFormat)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: missing word/document.xml", ErrUnsupportedFormat)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: malformed document xml", ErrUnsupportedFormat)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "br", "cr":
				sb.WriteByte('\n')
			case "tab":
				sb.WriteByte('\t')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
