// Package format names the document formats understood by vscript.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//
// The native format is the script format ("vsc"). YAML and JSON are
// interchange formats that go through the plain-data projection in
// package ir and do not preserve every script construct.
//
// # Related Packages
//
//   - github.com/signadot/vscript/parse - Parse text to IR
//   - github.com/signadot/vscript/encode - Encode IR to text
package format
