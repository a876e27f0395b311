package core

// Release assets are published with distribution-style architecture
// tokens rather than Go's GOARCH names.
var archTokens = map[string]string{
	"amd64": "x64",
	"386":   "x86",
	"arm64": "arm64",
}

// PlatformTag composes the token embedded in asset filenames, e.g.
// "linux-x64" for GOOS=linux GOARCH=amd64.
func PlatformTag(goos, goarch string) string {
	token, ok := archTokens[goarch]
	if !ok {
		token = goarch
	}
	return goos + "-" + token
}
