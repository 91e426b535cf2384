package models

import "encoding/xml"

// SMSElement is one <sms> element of a backup document. The processed corpus
// encodes every field as a child element, while stock SMS backup exports use
// attributes; both spellings are accepted and merged by Normalize.
type SMSElement struct {
	XMLName xml.Name `xml:"sms"`

	AddressAttr  string `xml:"address,attr"`
	BodyAttr     string `xml:"body,attr"`
	DateAttr     string `xml:"date,attr"`
	ReadableAttr string `xml:"readable_date,attr"`

	AddressElem  string `xml:"address"`
	BodyElem     string `xml:"body"`
	DateElem     string `xml:"date"`
	ReadableElem string `xml:"readable_date"`
}

// RawRecord is the loosely typed candidate handed from the extractor to the
// normalizer. It lives only for the duration of one pipeline run.
type RawRecord struct {
	Address      string
	Body         string
	Date         string
	ReadableDate string

	// Payload is the original XML fragment, kept verbatim so a rejection at
	// any later stage can be dead-lettered with its source.
	Payload string
}

func (e SMSElement) Normalize(payload string) RawRecord {
	pick := func(attr, elem string) string {
		if elem != "" {
			return elem
		}
		return attr
	}

	return RawRecord{
		Address:      pick(e.AddressAttr, e.AddressElem),
		Date:         pick(e.DateAttr, e.DateElem),
		Body:         pick(e.BodyAttr, e.BodyElem),
		ReadableDate: pick(e.ReadableAttr, e.ReadableElem),
		Payload:      payload,
	}
}
