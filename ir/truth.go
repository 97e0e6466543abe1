package ir

func Truth(node *Node) bool {
	switch node.Kind() {
	case ArrayKind, NodeKind, IdentifierKind:
		return len(node.children) != 0
	case StringKind:
		return node.str != ""
	case IntegerKind:
		return node.i64 != 0
	case FloatKind:
		return node.f64 != 0.0
	case BooleanKind:
		return node.b
	case NullKind:
		return false
	default:
		panic("kind")
	}
}
