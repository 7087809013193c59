package models

// PathRewriteRule is the substring find/replace pair applied to the PATH
// column of every row in a batch.
type PathRewriteRule struct {
	// From is the substring to find.
	From string `json:"from"`
	// To is the replacement.
	To string `json:"to"`
}

// Complete reports whether both sides of the rule are set.
func (r PathRewriteRule) Complete() bool {
	return r.From != "" && r.To != ""
}
