// Package opensearch implements the OpenSearch descriptor service (spec
// component C8): serving the XML description document that lets a browser
// discover the search and suggestion URL templates.
package opensearch

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ShortName and Description are the fixed display strings for this engine's
// OpenSearch descriptor.
const (
	ShortName   = "bangsuggest"
	Description = "Bang shortcuts and autocomplete"
)

type urlEntry struct {
	XMLName  xml.Name `xml:"Url"`
	Type     string   `xml:"type,attr"`
	Template string   `xml:"template,attr"`
	Method   string   `xml:"method,attr,omitempty"`
}

type image struct {
	XMLName xml.Name `xml:"Image"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	Type    string   `xml:"type,attr"`
	Value   string   `xml:",chardata"`
}

// WriteDescriptor writes the UTF-8 OpenSearch XML document for origin (e.g.
// "https://bangsuggest.example") to w.
func WriteDescriptor(w io.Writer, origin string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	doc := struct {
		XMLName       xml.Name   `xml:"OpenSearchDescription"`
		Xmlns         string     `xml:"xmlns,attr"`
		XmlnsMoz      string     `xml:"xmlns:moz,attr"`
		ShortName     string     `xml:"ShortName"`
		Description   string     `xml:"Description"`
		InputEncoding string     `xml:"InputEncoding"`
		Image         image      `xml:"Image"`
		URLs          []urlEntry `xml:"Url"`
	}{
		Xmlns:         "http://a9.com/-/spec/opensearch/1.1/",
		XmlnsMoz:      "http://www.mozilla.org/2006/browser/search/",
		ShortName:     ShortName,
		Description:   Description,
		InputEncoding: "UTF-8",
		Image: image{
			Width:  16,
			Height: 16,
			Type:   "image/x-icon",
			Value:  origin + "/favicon.ico",
		},
		URLs: []urlEntry{
			{
				Type:     "text/html",
				Template: fmt.Sprintf("%s/search?q={searchTerms}", origin),
				Method:   "get",
			},
			{
				Type:     "application/x-suggestions+json",
				Template: fmt.Sprintf("%s/api/suggest?q={searchTerms}", origin),
				Method:   "get",
			},
		},
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(doc)
}
