package request

import (
	"isofields/internal/diagnostic"
	"isofields/isoformat"
)

const (
	CodeUnsupportedVersion = "unsupported_version"
	CodeDuplicateName      = "duplicate_name"
	CodeAmbiguousRequest   = "ambiguous_request"
	CodeEmptyRequest       = "empty_request"
	CodeUnknownField       = "unknown_field"
	CodeUnknownPattern     = "unknown_pattern"
	CodeNoRequests         = "no_requests"
)

// Validate checks a batch file before it is run. Requests that fail
// validation are still run and reported individually; validation only
// surfaces the problems up front.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "batch file is nil", "")
		return res
	}

	if f.Version != "1" {
		res.AddError(CodeUnsupportedVersion, "unsupported batch file version "+f.Version, "")
	}

	if len(f.Requests) == 0 {
		res.AddWarning(CodeNoRequests, "batch file has no requests", "")
	}

	seen := make(map[string]bool, len(f.Requests))

	for _, r := range f.Requests {
		if seen[r.Name] {
			res.AddError(CodeDuplicateName, "request name "+r.Name+" is used more than once", r.Name)
		}

		seen[r.Name] = true

		switch {
		case !r.Fields.IsEmpty() && r.Pattern != "":
			res.AddError(CodeAmbiguousRequest, "request sets both fields and pattern", r.Name)
		case r.Fields.IsEmpty() && r.Pattern == "":
			res.AddError(CodeEmptyRequest, "request sets neither fields nor pattern", r.Name)
		case r.Pattern != "":
			if _, ok := isoformat.Lookup(r.Pattern); !ok {
				res.AddError(CodeUnknownPattern, "no catalog layout named "+r.Pattern, r.Name,
					isoformat.Similar(r.Pattern, 3)...)
			}
		default:
			if _, err := r.FieldSet(); err != nil {
				res.AddError(CodeUnknownField, err.Error(), r.Name)
			}
		}
	}

	return res
}
