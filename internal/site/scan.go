package site

// Scan validates every document in paths without rendering or writing.
// Records come back newest first; issues in input order.
func Scan(paths []string) ([]Record, []*SkipError) {
	var records []Record
	issues := []*SkipError{}
	for _, path := range paths {
		doc, err := ReadDocument(path)
		if err == nil {
			var record Record
			record, _, err = Inspect(doc)
			if err == nil {
				records = append(records, record)
				continue
			}
		}
		if skip, ok := AsSkipError(err); ok {
			issues = append(issues, skip)
		}
	}
	return SortRecords(records), issues
}
