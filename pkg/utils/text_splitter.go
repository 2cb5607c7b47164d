package utils

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters, with an 'overlap' to preserve context at boundaries. Character
// based; listing descriptions are short enough that a tokenizer-aware
// splitter is not worth the dependency.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
