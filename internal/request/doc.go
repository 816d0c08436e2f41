// Package request loads batch files of layout requests and resolves them
// concurrently.
//
// A batch file lists named requests. Each request either names a set of
// fields to resolve into a layout, or a catalog layout to look up:
//
//	version: "1"
//	defaults: {extended: true, strict: true}
//	requests:
//	  - name: calendar
//	    fields: [year, monthOfYear, dayOfMonth]
//	  - name: hour
//	    fields: hourOfDay
//	    strict: false
//	  - name: catalog
//	    pattern: basicDateTime
package request
