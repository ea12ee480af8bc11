package lz78

var testWords = []string{
	"the", "of", "and", "to", "in", "light", "rays", "colours", "refraction",
	"prism", "which", "is", "that", "by", "glass", "as", "be", "are", "with",
	"experiment", "reflected", "white", "red", "violet", "image", "sun",
	"those", "from", "more", "or", "than", "were", "lens", "paper", "edge",
}

// testText returns n bytes of deterministic word salad.
func testText(n int) []byte {
	out := make([]byte, 0, n+16)
	state := uint64(42)
	for len(out) < n {
		state = state*6364136223846793005 + 1442695040888963407
		word := testWords[(state>>33)%uint64(len(testWords))]
		out = append(out, word...)
		switch (state >> 20) % 16 {
		case 0:
			out = append(out, ". "...)
		case 1:
			out = append(out, ", "...)
		case 2:
			out = append(out, '\n')
		default:
			out = append(out, ' ')
		}
	}
	return out[:n]
}
