package parser

// MergeAndDeduplicate parses multiple mbox files and merges them into one
// deduplicated list, sorted by date ascending.
//
// Deduplication is by Message-ID with the first occurrence kept. Gmail
// Takeout places the same message under every label folder it carries, so
// identity is the Message-ID, not the file a message was found in.
func MergeAndDeduplicate(paths []string) ([]*Email, error) {
	seen := make(map[string]bool)
	var unique []*Email

	for _, path := range paths {
		emails, err := ParseMboxFile(path)
		if err != nil {
			return nil, err
		}
		for _, email := range emails {
			if seen[email.MessageID] {
				continue
			}
			seen[email.MessageID] = true
			unique = append(unique, email)
		}
	}

	sortByDate(unique)
	return unique, nil
}
