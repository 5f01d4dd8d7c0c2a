package render

import (
	"github.com/reoring/itksn"
)

// textOf prints the indented "Record:" tree, one field per line.
func textOf(v itksn.Value, o Options) string {
	if v == nil {
		return "None"
	}
	rec, ok := v.(*itksn.Record)
	if !ok {
		return v.String()
	}
	if o.Views {
		return rec.String()
	}
	return stripViews(rec).String()
}

func stripViews(rec *itksn.Record) *itksn.Record {
	out := &itksn.Record{Fields: make([]itksn.Field, 0, rec.Len())}
	for _, f := range rec.Fields {
		if f.View {
			continue
		}
		if inner, ok := f.Value.(*itksn.Record); ok {
			f.Value = stripViews(inner)
		}
		out.Fields = append(out.Fields, f)
	}
	return out
}
