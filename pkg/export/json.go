package export

import (
	"encoding/json"

	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/view"
)

type jsonDocument struct {
	Name  string          `json:"name,omitempty"`
	Size  geom.Size       `json:"size"`
	Views []view.Snapshot `json:"views"`
}

// ToJSON encodes doc with its root size, indented.
func ToJSON(doc Document) ([]byte, error) {
	out := jsonDocument{Name: doc.Name, Views: doc.Views}
	if len(doc.Views) > 0 {
		out.Size = doc.Views[0].Frame.Size()
	}
	if out.Views == nil {
		out.Views = []view.Snapshot{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return append(data, '\n'), nil
}
