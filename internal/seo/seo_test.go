package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeStripsMarkup(t *testing.T) {
	t.Parallel()

	got := Summarize("<p>Crafted from <strong>mycelium</strong>,\n  durable.</p><script>var x = 1</script>", 0)
	require.Equal(t, "Crafted from mycelium , durable.", got)
}

func TestSummarizeTruncatesOnWordBoundary(t *testing.T) {
	t.Parallel()

	got := Summarize("<p>one two three four five</p>", 12)
	require.Equal(t, "one two…", got)
	require.Equal(t, "short", Summarize("<p>short</p>", 12))
}

func TestProductSchema(t *testing.T) {
	t.Parallel()

	m := Product(ProductInfo{
		Name:     "Mushroom Leather",
		URL:      "https://example.com/products/mushroom-leather",
		Images:   []string{"https://example.com/a.png"},
		Brand:    "MycoTex",
		Price:    2999,
		Currency: "INR",
		InStock:  true,
		Rating:   5,
	})
	raw := string(JSON(m))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	offers := decoded["offers"].(map[string]any)
	require.Equal(t, "2999", offers["price"])
	require.Equal(t, "INR", offers["priceCurrency"])
	require.True(t, strings.HasSuffix(offers["availability"].(string), "InStock"))
	require.Equal(t, "MycoTex", decoded["brand"].(map[string]any)["name"])
}
