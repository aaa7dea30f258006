package sales

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrFormat           = errors.New("sales: malformed dataset")
	ErrNegativeAmount   = errors.New("sales: negative amount")
	ErrDuplicateDate    = errors.New("sales: duplicate date")
	ErrNotChronological = errors.New("sales: dates out of order")
)

// LoadFile reads a dataset from path.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "sales: open dataset")
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return records, nil
}

// Load reads a mapping of date → {salesTotal, transactionsTotal} in JSON or
// YAML. Records keep the order of the keys in the document, which must be
// strictly chronological. An empty document yields an empty, non-nil slice.
func Load(r io.Reader) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []Record{}, nil
		}
		return nil, errors.Wrap(err, "sales: decode dataset")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []Record{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrFormat, "line %d: expected a mapping of dates", root.Line)
	}

	out := make([]Record, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		date, err := ParseDate(key.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", key.Line)
		}
		rec, err := decodeTotals(val)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: %s", key.Line, key.Value)
		}
		rec.Date = date

		if n := len(out); n > 0 {
			prev := out[n-1].Date
			if date.Equal(prev) {
				return nil, errors.Wrapf(ErrDuplicateDate, "line %d: %s", key.Line, key.Value)
			}
			if date.Before(prev) {
				return nil, errors.Wrapf(ErrNotChronological, "line %d: %s after %s", key.Line, key.Value, prev.Format("2006/01/02"))
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeTotals(n *yaml.Node) (Record, error) {
	rec := Record{SalesTotal: decimal.Zero}
	if n.Kind != yaml.MappingNode {
		return rec, errors.Wrap(ErrFormat, "expected totals mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch strings.TrimSpace(key.Value) {
		case "salesTotal":
			d, err := decimal.NewFromString(val.Value)
			if err != nil {
				return rec, errors.Wrapf(ErrFormat, "salesTotal %q", val.Value)
			}
			if d.IsNegative() {
				return rec, errors.Wrapf(ErrNegativeAmount, "salesTotal %s", d)
			}
			rec.SalesTotal = d
		case "transactionsTotal":
			d, err := decimal.NewFromString(val.Value)
			if err != nil || !d.Equal(d.Truncate(0)) {
				return rec, errors.Wrapf(ErrFormat, "transactionsTotal %q", val.Value)
			}
			if d.IsNegative() {
				return rec, errors.Wrapf(ErrNegativeAmount, "transactionsTotal %s", d)
			}
			n := int(d.IntPart())
			if !decimal.NewFromInt(int64(n)).Equal(d) {
				return rec, errors.Wrapf(ErrFormat, "transactionsTotal %s out of range", d)
			}
			rec.TransactionsTotal = n
		}
	}
	return rec, nil
}
