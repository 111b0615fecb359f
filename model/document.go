package model

// Document is a flexible map representing an item stored in a dataset.
// Fields are accessed by their string keys and depend on the dataset's
// searchable-field configuration. Example: doc["firstName"], doc["city"].
type Document map[string]any

// GetDocumentID returns the documentID if it's stored in the document
// map under the "documentID" key.
func (d Document) GetDocumentID() (string, bool) {
	if id, ok := d["documentID"]; ok {
		if str, sok := id.(string); sok && str != "" {
			return str, true
		}
	}
	return "", false
}
