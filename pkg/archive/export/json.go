package export

import (
	"context"
	"encoding/json"
	"io"

	"colloquy-hq/colloquy/pkg/archive"
)

// JSONExporter exports archived runs as JSON.
type JSONExporter struct {
	// Pretty enables indented output.
	Pretty bool
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(pretty bool) *JSONExporter {
	return &JSONExporter{Pretty: pretty}
}

// Export writes the runs to w as a JSON array. An empty input writes "[]".
func (e *JSONExporter) Export(ctx context.Context, records []*archive.RunRecord, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []*archive.RunRecord{}
	}

	var data []byte
	var err error
	if e.Pretty {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return archive.NewStorageError("export", "marshal_json", err)
	}

	if _, err := w.Write(data); err != nil {
		return archive.NewStorageError("export", "write_json", err)
	}
	return nil
}
