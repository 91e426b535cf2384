package services

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kwizera-io/go-momo-etl/internal/models"
)

const smsRootElement = "smses"

// Extractor turns an XML backup document into a stream of RawRecord. It is
// tolerant of per-element corruption: a broken <sms> element becomes an
// extract-stage rejection and the stream continues. Only a document that is
// not well formed at all fails the whole parse.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decodes the document from r, calling emit for every usable record
// and reject for every element that cannot become one. The returned error is
// nil or a *models.DocumentParseError.
func (e *Extractor) Extract(
	ctx context.Context,
	r io.Reader,
	emit func(models.RawRecord),
	reject func(*models.StageRejection),
) error {
	decoder := xml.NewDecoder(r)

	rootSeen := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &models.DocumentParseError{Err: err}
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if !rootSeen {
			if start.Name.Local != smsRootElement {
				return &models.DocumentParseError{
					Err: fmt.Errorf("unexpected root element <%s>, want <%s>", start.Name.Local, smsRootElement),
				}
			}
			rootSeen = true
			continue
		}

		if start.Name.Local != "sms" {
			// unrelated siblings (call logs, mms) are skipped, not rejected
			if err := decoder.Skip(); err != nil {
				return &models.DocumentParseError{Err: err}
			}
			continue
		}

		var element models.SMSElement
		if err := decoder.DecodeElement(&element, &start); err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				// the decoder cannot recover from malformed markup
				return &models.DocumentParseError{Err: err}
			}
			reject(models.NewRejection(models.StageExtract, renderStart(start), "unparsable sms element", err))
			continue
		}

		record := element.Normalize(renderStart(start))
		if record.Body != "" {
			// the message body is what later stages and dead-letter triage
			// actually need to see
			record.Payload = record.Body
		}
		if strings.TrimSpace(record.Body) == "" {
			reject(models.NewRejection(models.StageExtract, record.Payload, "sms element has no message body", nil))
			continue
		}

		emit(record)
	}

	if !rootSeen {
		return &models.DocumentParseError{Err: fmt.Errorf("document has no <%s> root element", smsRootElement)}
	}

	return nil
}

// renderStart rebuilds the opening tag so rejections carry a recognizable
// piece of the source even when the element content could not be decoded.
func renderStart(start xml.StartElement) string {
	var b strings.Builder
	b.WriteString("<" + start.Name.Local)
	for _, attr := range start.Attr {
		b.WriteString(fmt.Sprintf(" %s=%q", attr.Name.Local, attr.Value))
	}
	b.WriteString(">")
	return b.String()
}
