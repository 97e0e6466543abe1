// Package patch applies JSON patches (RFC 6902) and JSON merge patches
// (RFC 7386) to vscript trees.
//
// Trees go through their JSON projection (see ir.ToPlain), so the
// identifier kind and names inside arrays do not survive a patch. Object
// members that existed before the patch keep their original order;
// members added by the patch follow them.
//
//	doc, _ := parse.ParseString(`server { port = 8080 }`)
//	out, err := patch.Apply(doc, []byte(`[{"op":"replace","path":"/server/port","value":9090}]`))
package patch
