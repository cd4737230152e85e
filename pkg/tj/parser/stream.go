// Package parser turns JSON streams and xlsx sheets into records.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/tj-go/pkg/tj/models"
)

// ErrInvalidJSON indicates input that is not a sequence of JSON values.
var ErrInvalidJSON = errors.New("invalid json")

// node is a decoded top-level value. Objects keep their fields and arrays
// their elements; anything nested deeper is reduced to a placeholder.
type node struct {
	value  models.Value
	record *models.Record
	items  []node
}

// DecodeStream decodes every JSON value in r into a record. Values may be
// concatenated without separators. A stream holding a single array of
// objects yields one record per element.
func DecodeStream(r io.Reader) ([]*models.Record, error) {
	iter := jsoniter.Parse(jsoniter.ConfigCompatibleWithStandardLibrary, r, 4096)

	var nodes []node
	for {
		if iter.WhatIsNext() == jsoniter.InvalidValue {
			if iter.Error == io.EOF {
				break
			}
			if iter.Error == nil {
				iter.ReportError("DecodeStream", "expect a json value")
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, iter.Error)
		}

		n := readTop(iter)
		if iter.Error != nil && iter.Error != io.EOF {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, iter.Error)
		}
		nodes = append(nodes, n)
	}

	if len(nodes) == 1 && len(nodes[0].items) > 0 && nodes[0].items[0].record != nil {
		return toRecords(nodes[0].items), nil
	}
	return toRecords(nodes), nil
}

func toRecords(ns []node) []*models.Record {
	records := make([]*models.Record, 0, len(ns))
	for _, n := range ns {
		records = append(records, n.toRecord())
	}
	return records
}

// toRecord keys objects by field name, arrays by element index, and any
// other value by "0".
func (n node) toRecord() *models.Record {
	if n.record != nil {
		return n.record
	}
	rec := models.NewRecord()
	if n.value.Kind != models.KindArray {
		rec.Set("0", n.value)
		return rec
	}
	for i, item := range n.items {
		rec.Set(strconv.Itoa(i), item.value)
	}
	return rec
}

func readTop(iter *jsoniter.Iterator) node {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		return node{value: models.Object(), record: readRecord(iter)}
	case jsoniter.ArrayValue:
		n := node{value: models.Array()}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			if iter.WhatIsNext() == jsoniter.ObjectValue {
				n.items = append(n.items, node{value: models.Object(), record: readRecord(iter)})
			} else {
				n.items = append(n.items, node{value: readValue(iter)})
			}
			return iter.Error == nil || iter.Error == io.EOF
		})
		return n
	}
	return node{value: readValue(iter)}
}

func readRecord(iter *jsoniter.Iterator) *models.Record {
	rec := models.NewRecord()
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		rec.Set(field, readValue(iter))
		return iter.Error == nil || iter.Error == io.EOF
	})
	return rec
}

// readValue reads one value, skipping the contents of nested containers.
func readValue(iter *jsoniter.Iterator) models.Value {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return models.Text(iter.ReadString())
	case jsoniter.NumberValue:
		n := iter.ReadNumber()
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			iter.ReportError("readValue", "invalid number "+string(n))
			return models.Absent()
		}
		return models.Number(f)
	case jsoniter.BoolValue:
		return models.Bool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		return models.Absent()
	case jsoniter.ArrayValue:
		iter.Skip()
		return models.Array()
	case jsoniter.ObjectValue:
		iter.Skip()
		return models.Object()
	}
	iter.ReportError("readValue", "expect a json value")
	return models.Absent()
}
