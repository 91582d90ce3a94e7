// Package batch evaluates files of named tolerance checks.
//
// A check file is HCL:
//
//	check "spindle_bore" {
//	  size = 25
//	  zone = "H7"
//	  mode = "table"
//	}
//
//	check "dowel_pin" {
//	  designation = "8p6"
//	}
//
// Checks run independently; one failing check does not abort the file.
package batch

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"isofit/core/designation"
	"isofit/core/engine"
	"isofit/core/types"
	"isofit/internal/errors"
)

// Check is one named tolerance query. Either Designation or Size+Zone is
// set, never both.
type Check struct {
	Name        string
	Size        float64
	Zone        string
	Designation string
	Mode        types.Mode
}

// Result pairs a check with its outcome
type Result struct {
	Name      string
	Tolerance *types.ToleranceResult
	Err       error
}

// File is a parsed check file
type File struct {
	Path   string
	Checks []Check
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "check", LabelNames: []string{"name"}},
	},
}

// ParseFile reads and parses a check file. Checks with no explicit mode
// attribute get defaultMode.
func ParseFile(path string, defaultMode types.Mode) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to read check file", err)
	}
	return Parse(src, path, defaultMode)
}

// Parse parses check file source
func Parse(src []byte, filename string, defaultMode types.Mode) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsef("invalid check file %s: %s", filename, diags.Error())
	}

	content, _, diags := hclFile.Body.PartialContent(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Parsef("invalid check file %s: %s", filename, diags.Error())
	}

	file := &File{Path: filename}
	for _, block := range content.Blocks {
		check, err := parseCheck(block, defaultMode)
		if err != nil {
			return nil, err
		}
		file.Checks = append(file.Checks, check)
	}

	return file, nil
}

func parseCheck(block *hcl.Block, defaultMode types.Mode) (Check, error) {
	check := Check{Name: block.Labels[0], Mode: defaultMode}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return Check{}, errors.Parsef("check %q: %s", check.Name, diags.Error())
	}

	for name, attr := range attrs {
		switch name {
		case "size":
			v, err := attrNumber(attr)
			if err != nil {
				return Check{}, errors.Parsef("check %q: %v", check.Name, err)
			}
			check.Size = v
		case "zone":
			v, err := attrString(attr)
			if err != nil {
				return Check{}, errors.Parsef("check %q: %v", check.Name, err)
			}
			check.Zone = v
		case "designation":
			v, err := attrString(attr)
			if err != nil {
				return Check{}, errors.Parsef("check %q: %v", check.Name, err)
			}
			check.Designation = v
		case "mode":
			v, err := attrString(attr)
			if err != nil {
				return Check{}, errors.Parsef("check %q: %v", check.Name, err)
			}
			mode, err := types.ParseMode(v)
			if err != nil {
				return Check{}, errors.Parsef("check %q: unknown mode %q", check.Name, v)
			}
			check.Mode = mode
		default:
			return Check{}, errors.Parsef("check %q: unknown attribute %q", check.Name, name)
		}
	}

	hasDesignation := check.Designation != ""
	hasZone := check.Zone != "" || check.Size != 0
	if hasDesignation == hasZone {
		return Check{}, errors.Parsef("check %q: set either designation or size+zone", check.Name)
	}
	if hasZone && (check.Zone == "" || check.Size == 0) {
		return Check{}, errors.Parsef("check %q: size and zone are both required", check.Name)
	}

	return check, nil
}

// attrString evaluates an attribute expecting a known string. Values are
// converted explicitly; unknowns are rejected.
func attrString(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("attribute %q: %s", attr.Name, diags.Error())
	}
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.String {
		return "", fmt.Errorf("attribute %q must be a string", attr.Name)
	}
	return val.AsString(), nil
}

// attrNumber evaluates an attribute expecting a known number
func attrNumber(attr *hcl.Attribute) (float64, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("attribute %q: %s", attr.Name, diags.Error())
	}
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.Number {
		return 0, fmt.Errorf("attribute %q must be a number", attr.Name)
	}
	f, _ := val.AsBigFloat().Float64()
	return f, nil
}

// Run evaluates every check against the engine
func (f *File) Run(eng *engine.Engine) []Result {
	results := make([]Result, 0, len(f.Checks))
	for _, check := range f.Checks {
		results = append(results, runCheck(eng, check))
	}
	return results
}

func runCheck(eng *engine.Engine, check Check) Result {
	result := Result{Name: check.Name}

	if check.Designation != "" {
		result.Tolerance, result.Err = eng.ComputeDesignation(check.Designation, check.Mode)
		return result
	}

	zone, err := designation.ParseZone(check.Zone)
	if err != nil {
		result.Err = err
		return result
	}
	result.Tolerance, result.Err = eng.Compute(check.Size, zone.Letter, zone.Grade, check.Mode)
	return result
}
