package json

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// init swaps the package default from encoding/json to goccy/go-json: the
// suggest endpoint encodes a response on every keystroke, so the faster
// reflection-free encoder matters more here than elsewhere in the pack.
func init() {
	SetConfig(Config{
		Marshal:       gojson.Marshal,
		MarshalIndent: gojson.MarshalIndent,
		MarshalString: func(v any) (string, error) {
			data, err := gojson.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
		Unmarshal: gojson.Unmarshal,
		UnmarshalString: func(s string, v any) error {
			return gojson.Unmarshal([]byte(s), v)
		},
		NewEncoder: func(w io.Writer) Encoder {
			return gojson.NewEncoder(w)
		},
		NewDecoder: func(r io.Reader) Decoder {
			return gojson.NewDecoder(r)
		},
	})
}
