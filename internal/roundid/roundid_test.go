package roundid

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	assert.Len(t, id, 26)
	assert.Equal(t, strings.ToLower(id), id)
	require.NoError(t, Validate(id))
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for range 100 {
		id := Generate()
		assert.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	var ids []string
	for range 5 {
		ids = append(ids, Generate())
		time.Sleep(2 * time.Millisecond)
	}
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i], "IDs should sort by creation time")
	}
}

func TestGeneratorUsesReader(t *testing.T) {
	g := NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0xab}, 64)))
	id, err := g.Generate()
	require.NoError(t, err)

	u, err := Parse(id)
	require.NoError(t, err)
	assert.EqualValues(t, 7, u.Version())
}

func TestGeneratorReaderExhausted(t *testing.T) {
	g := NewGenerator(bytes.NewReader(nil))
	_, err := g.Generate()
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	assert.Error(t, Validate(""))
	assert.Error(t, Validate("short"))
	assert.ErrorContains(t, Validate("0"+strings.Repeat("u", 25)), "not base32", "u is not in the alphabet")
	assert.ErrorContains(t, Validate("8"+strings.Repeat("0", 25)), "overflows")
	// a valid base32 string of a version 4 layout
	assert.Error(t, Validate(strings.Repeat("0", 26)))
}

func TestEncodingMatchesTypeID(t *testing.T) {
	u := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")
	assert.Equal(t, "01h455vb4pex5vsknk084sn02q", encode(u))

	got, err := Parse("01h455vb4pex5vsknk084sn02q")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestGenerateLeadingCharacter(t *testing.T) {
	for range 50 {
		id := Generate()
		assert.LessOrEqual(t, id[0], byte('7'), id)
	}
}
