package token

// Tokenize appends the tokens of src to dst, ending with a TEOF token.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	r := NewReader(NewCursorBytes(src))
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, err
		}
		dst = append(dst, tok)
		if tok.Type == TEOF {
			return dst, nil
		}
	}
}
