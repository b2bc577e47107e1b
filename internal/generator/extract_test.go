package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTML(t *testing.T) {
	t.Run("fenced html block", func(t *testing.T) {
		response := "这是生成的原型：\n```html\n<!DOCTYPE html>\n<html></html>\n```\n希望符合要求。"

		html, ok := ExtractHTML(response)

		require.True(t, ok)
		assert.Equal(t, "<!DOCTYPE html>\n<html></html>", html)
	})

	t.Run("doctype fallback takes everything to the end", func(t *testing.T) {
		response := "以下是页面代码：\n<!DOCTYPE html>\n<html><body>hi</body></html>"

		html, ok := ExtractHTML(response)

		require.True(t, ok)
		assert.True(t, len(html) > 0)
		assert.Equal(t, "<!DOCTYPE html>\n<html><body>hi</body></html>", html)
	})

	t.Run("fenced block wins over a later doctype", func(t *testing.T) {
		response := "```html\n<div>fenced</div>\n```\n<!DOCTYPE html><html></html>"

		html, ok := ExtractHTML(response)

		require.True(t, ok)
		assert.Equal(t, "<div>fenced</div>", html)
	})

	t.Run("no html at all", func(t *testing.T) {
		_, ok := ExtractHTML("抱歉，我无法生成这个页面。")
		assert.False(t, ok)
	})

	t.Run("empty response", func(t *testing.T) {
		_, ok := ExtractHTML("")
		assert.False(t, ok)
	})
}
