package arxiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/mabel/internal/mabelerr"
)

func TestParse(t *testing.T) {
	cases := map[string]ID{
		"2401.01234":                             "2401.01234",
		" 2401.01234v2 ":                         "2401.01234v2",
		"0704.0001":                              "0704.0001",
		"arXiv:2401.01234":                       "2401.01234",
		"hep-th/9901001":                         "hep-th/9901001",
		"math.GT/0309136v1":                      "math.GT/0309136v1",
		"https://arxiv.org/abs/2401.01234":       "2401.01234",
		"https://arxiv.org/abs/2401.01234v3/":    "2401.01234v3",
		"http://export.arxiv.org/abs/2401.01234": "2401.01234",
		"https://arxiv.org/pdf/2401.01234v2.pdf": "2401.01234v2",
		"https://arxiv.org/pdf/2401.01234":       "2401.01234",
		"https://arxiv.org/abs/hep-th/9901001":   "hep-th/9901001",
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"hello",
		"24010.1234",
		"2401.123",
		"https://example.org/abs/2401.01234",
		"https://arxiv.org/list/cs.AI/recent",
		"arxiv:",
	} {
		_, err := Parse(in)
		var ie *mabelerr.InvalidArxivIDError
		require.ErrorAs(t, err, &ie, "input %q", in)
		assert.Equal(t, in, ie.Input)
	}
}

func TestIDHelpers(t *testing.T) {
	id := ID("hep-th/9901001v2")
	assert.Equal(t, "hep-th_9901001v2", id.FileStem())
	assert.Equal(t, "https://arxiv.org/abs/hep-th/9901001v2", id.AbsURL())
	assert.Equal(t, "https://arxiv.org/pdf/2401.01234", ID("2401.01234").PDFURL())
}
