// Package fts implements token filters for full-text search indexing.
//
// Filters form a chain: each filter is created with an optional parent, and
// Filter runs the parent first. A filter may rewrite a token or drop it, in
// which case the rest of the chain is skipped.
//
//	norm, _ := fts.Create(fts.NormalizerName, nil, nil, nil)
//	stop, _ := fts.Create(fts.StopwordsName, norm, &fts.Language{Name: "en"},
//	    map[string]string{"stopwords_dir": "/usr/share/stopwords"})
//	token, keep, err := stop.Filter("Elephants")
package fts
