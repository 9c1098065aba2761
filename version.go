package gpart

// gpartVersion is set by GitHub tag replacement.
// GitHub replaces $Format:%(describe:tags=true)$ with the actual tag.
var gpartVersion = "$Format:%(describe:tags=true)$"

// Version returns the version of this gpart build, derived from git tags. It
// reports "dev" in a checkout that hasn't gone through GitHub's archive
// export substitution.
func Version() string {
	if gpartVersion[0] == '$' {
		return "dev"
	}
	return gpartVersion
}
