// Package arxiv normalizes user input that names an arXiv paper.
//
// Accepted forms:
//
//	2401.01234            new-style id
//	2401.01234v2          with version
//	arXiv:2401.01234      prefixed
//	hep-th/9901001        old-style id
//	https://arxiv.org/abs/2401.01234
//	https://arxiv.org/pdf/2401.01234v2.pdf
package arxiv

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/yanizio/mabel/internal/mabelerr"
)

var (
	newStyle = regexp.MustCompile(`^\d{4}\.\d{4,5}(v\d+)?$`)
	oldStyle = regexp.MustCompile(`^[a-z][a-z\-]*(\.[A-Z]{2})?/\d{7}(v\d+)?$`)
)

// ID is a validated arXiv identifier, version suffix included if given.
type ID string

// Parse extracts an ID from a bare id or an arxiv.org URL.
func Parse(input string) (ID, error) {
	s := strings.TrimSpace(input)

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil || !isArxivHost(u.Hostname()) {
			return "", &mabelerr.InvalidArxivIDError{Input: input}
		}
		p := strings.TrimPrefix(u.Path, "/")
		switch {
		case strings.HasPrefix(p, "abs/"):
			s = strings.TrimPrefix(p, "abs/")
		case strings.HasPrefix(p, "pdf/"):
			s = strings.TrimSuffix(strings.TrimPrefix(p, "pdf/"), ".pdf")
		default:
			return "", &mabelerr.InvalidArxivIDError{Input: input}
		}
		s = strings.TrimSuffix(s, "/")
	}

	if len(s) > 6 && strings.EqualFold(s[:6], "arxiv:") {
		s = s[6:]
	}

	if newStyle.MatchString(s) || oldStyle.MatchString(s) {
		return ID(s), nil
	}
	return "", &mabelerr.InvalidArxivIDError{Input: input}
}

func isArxivHost(h string) bool {
	h = strings.ToLower(h)
	return h == "arxiv.org" || strings.HasSuffix(h, ".arxiv.org")
}

// FileStem is the id with "/" replaced, safe to use as a file name.
func (id ID) FileStem() string {
	return strings.ReplaceAll(string(id), "/", "_")
}

// AbsURL is the paper's abstract page.
func (id ID) AbsURL() string { return "https://arxiv.org/abs/" + string(id) }

// PDFURL is the paper's PDF.
func (id ID) PDFURL() string { return "https://arxiv.org/pdf/" + string(id) }
