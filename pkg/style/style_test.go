package style

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range styleNames {
		assert.Contains(t, registry, name)
	}
	assert.True(t, GetStyle("Success").GetBold())
	assert.True(t, GetStyle("Path").GetItalic())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	original := registry
	t.Cleanup(func() { registry = original })

	assert.Error(t, LoadStylesFromData([]byte("styles: [unterminated")))
	assert.Equal(t, original, registry, "registry unchanged on parse error")
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, "text", GetStyle("NoSuchStyle").Render("text"))
}

func TestRender_PlainWhenNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, ColorEnabled(f))
	assert.Equal(t, "Module file created", Render(f, "Success", "Module file created"))
	assert.Equal(t, "whatis(\"gcc\")\n", RenderPreview(f, "whatis(\"gcc\")\n", "lua"))
}

func TestRender_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout))
}

func TestCodeBlock(t *testing.T) {
	assert.Equal(t, "```lua\nwhatis(\"gcc\")\n```\n", codeBlock("whatis(\"gcc\")\n", "lua"))
	assert.Equal(t, "````\nuses ``` inside\n````\n", codeBlock("uses ``` inside", ""))
}
