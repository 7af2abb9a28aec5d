package opensearch

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDescriptor_WellFormedXML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDescriptor(&buf, "https://bangsuggest.example")
	require.NoError(t, err)

	var doc struct {
		XMLName xml.Name `xml:"OpenSearchDescription"`
		Urls    []struct {
			Type     string `xml:"type,attr"`
			Template string `xml:"template,attr"`
		} `xml:"Url"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Urls, 2)
	assert.Equal(t, "text/html", doc.Urls[0].Type)
	assert.Equal(t, "https://bangsuggest.example/search?q={searchTerms}", doc.Urls[0].Template)
	assert.Equal(t, "application/x-suggestions+json", doc.Urls[1].Type)
	assert.Equal(t, "https://bangsuggest.example/api/suggest?q={searchTerms}", doc.Urls[1].Template)
}
