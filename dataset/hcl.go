package dataset

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclTable represents the top-level structure of an HCL table for decoding.
//
//	name     = "corridor"
//	directed = false
//
//	city "Addis Ababa" {
//	  lat       = 9.03
//	  lon       = 38.74
//	  heuristic = 613
//	  meta      = { region = "Addis Ababa" }
//	}
//
//	road {
//	  from = "Addis Ababa"
//	  to   = "Adama"
//	  km   = 104
//	}
type hclTable struct {
	Name     *string    `hcl:"name,optional"`
	Directed *bool      `hcl:"directed,optional"`
	Cities   []*hclCity `hcl:"city,block"`
	Roads    []*hclRoad `hcl:"road,block"`
}

type hclCity struct {
	Name      string    `hcl:"name,label"`
	Lat       *float64  `hcl:"lat,optional"`
	Lon       *float64  `hcl:"lon,optional"`
	Heuristic *float64  `hcl:"heuristic,optional"`
	Terminal  *bool     `hcl:"terminal,optional"`
	Utility   *float64  `hcl:"utility,optional"`
	Meta      cty.Value `hcl:"meta,optional"`
}

type hclRoad struct {
	From     string   `hcl:"from"`
	To       string   `hcl:"to"`
	Km       *float64 `hcl:"km,optional"`
	Blocked  *bool    `hcl:"blocked,optional"`
	Directed *bool    `hcl:"directed,optional"`
}

// LoadHCL parses src as an HCL table; filename is used in diagnostics.
func LoadHCL(filename string, src []byte) (*Dataset, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("dataset: failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclTable
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("dataset: failed to decode HCL file %s: %w", filename, diags)
	}

	t := Table{}
	if parsed.Name != nil {
		t.Name = *parsed.Name
	}
	if parsed.Directed != nil {
		t.Directed = *parsed.Directed
	}
	for _, c := range parsed.Cities {
		meta, err := metaFromCty(c.Meta)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: city %q meta: %w", filename, c.Name, err)
		}
		t.Cities = append(t.Cities, City{
			Name:      c.Name,
			Lat:       c.Lat,
			Lon:       c.Lon,
			Heuristic: c.Heuristic,
			Terminal:  c.Terminal,
			Utility:   c.Utility,
			Meta:      meta,
		})
	}
	for _, r := range parsed.Roads {
		t.Roads = append(t.Roads, Road{
			From:     r.From,
			To:       r.To,
			Km:       r.Km,
			Blocked:  r.Blocked != nil && *r.Blocked,
			Directed: r.Directed,
		})
	}

	return Build(t)
}

// metaFromCty converts an object or map attribute into Go values.
func metaFromCty(v cty.Value) (map[string]interface{}, error) {
	if v == cty.NilVal || v.IsNull() {
		return nil, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("want an object, got %s", v.Type().FriendlyName())
	}
	native, err := ctyToNative(v)
	if err != nil {
		return nil, err
	}

	return native.(map[string]interface{}), nil
}

// ctyToNative recursively converts a cty.Value to its most natural Go counterpart.
func ctyToNative(v cty.Value) (interface{}, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]interface{}, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()
			n, err := ctyToNative(el)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]interface{})
		for it := v.ElementIterator(); it.Next(); {
			k, el := it.Element()
			n, err := ctyToNative(el)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", k.AsString(), err)
			}
			out[k.AsString()] = n
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
	}
}
