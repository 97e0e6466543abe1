// Package schema validates trees against templates describing their
// shape.
//
// A [Template] checks three things about a subject: that its kind is in
// the template's kind mask, that its name is one of the template's names
// (if any are listed), and for collections, that its children line up
// with the template's ordered fields. Fields may be optional; once an
// optional field is reached, every later field is optional too.
//
// Template is generic over the kind mask so the same validator serves
// any tree type exposing Kind, Name, Len and KindAt. [NodeTemplate] is
// the instantiation for [ir.Node].
//
// Templates may also be written as documents and loaded with [Load]:
//
//	template server {
//	    kind = Node
//	    fields = [Integer, Array, "String|Boolean?"]
//	    children {
//	        port {
//	            kind = Integer
//	        }
//	    }
//	}
package schema
