// Package loader implements the partial loader named in §4.3: a small
// scanner that pulls the embedded JavaScript/TypeScript region(s) out of a
// .vue/.astro/.svelte single-file component, replacing every byte outside
// those regions with a space (newlines are left alone), so the cleaned
// buffer it hands to internal/lexer/internal/parser has the exact same
// line layout as the original file and every token span still points at
// the right line. There's no library in this corpus for HTML-ish region
// extraction, so the scan is written the way internal/lexer itself reads
// its input: a plain byte cursor, no backtracking, no regexp.
package loader

import "strings"

// Result is the cleaned buffer plus the script-language flags the loader
// recovered from the component's own markup (a `lang="ts"` attribute on
// vue/svelte, or astro's frontmatter convention).
type Result struct {
	Source     string
	TypeScript bool
	JSX        bool
}

// RequiresLoader reports whether ext names a single-file-component format
// this package knows how to scan (§6.5 "extensions recognized as requiring
// the partial loader").
func RequiresLoader(ext string) bool {
	switch ext {
	case "vue", "astro", "svelte":
		return true
	default:
		return false
	}
}

// Extract scans src for its embedded script region(s) according to ext's
// convention.
func Extract(src, ext string) Result {
	if ext == "astro" {
		return extractAstroFrontmatter(src)
	}
	return extractScriptTags(src)
}

// blank fills every byte of buf with a space, except newlines, which are
// left in place so downstream line numbers stay aligned with the input.
func blank(buf []byte) {
	for i, c := range buf {
		if c != '\n' {
			buf[i] = ' '
		}
	}
}

func extractScriptTags(src string) Result {
	out := make([]byte, len(src))
	copy(out, src)
	blank(out)

	res := Result{}
	seenLang := false
	pos := 0
	for {
		openStart := indexFoldASCII(src, pos, "<script")
		if openStart == -1 {
			break
		}
		tagEnd := strings.IndexByte(src[openStart:], '>')
		if tagEnd == -1 {
			break
		}
		tagEnd += openStart
		attrs := src[openStart+len("<script") : tagEnd]
		contentStart := tagEnd + 1

		closeStart := indexFoldASCII(src, contentStart, "</script")
		contentEnd := len(src)
		nextPos := len(src)
		if closeStart != -1 {
			contentEnd = closeStart
			if gt := strings.IndexByte(src[closeStart:], '>'); gt != -1 {
				nextPos = closeStart + gt + 1
			} else {
				nextPos = len(src)
			}
		}

		copy(out[contentStart:contentEnd], src[contentStart:contentEnd])

		if !seenLang {
			if lang, ok := parseLangAttr(attrs); ok {
				applyLang(&res, lang)
				seenLang = true
			}
		}

		pos = nextPos
		if pos <= openStart {
			break
		}
	}
	res.Source = string(out)
	return res
}

func applyLang(res *Result, lang string) {
	switch strings.ToLower(lang) {
	case "ts":
		res.TypeScript = true
	case "tsx":
		res.TypeScript = true
		res.JSX = true
	case "jsx":
		res.JSX = true
	}
}

// parseLangAttr finds `lang="..."` or `lang='...'` within a <script> tag's
// attribute text, returning the quoted value.
func parseLangAttr(attrs string) (string, bool) {
	i := indexFoldASCII(attrs, 0, "lang")
	if i == -1 {
		return "", false
	}
	rest := attrs[i+len("lang"):]
	rest = strings.TrimLeft(rest, " \t\r\n")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	rest = strings.TrimLeft(rest[1:], " \t\r\n")
	if len(rest) == 0 {
		return "", false
	}
	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return "", false
	}
	rest = rest[1:]
	end := strings.IndexByte(rest, quote)
	if end == -1 {
		return "", false
	}
	return rest[:end], true
}

// indexFoldASCII is strings.Index starting at pos, ASCII-case-insensitive
// (script tag names never need full Unicode folding).
func indexFoldASCII(s string, pos int, substr string) int {
	if pos > len(s) {
		return -1
	}
	idx := strings.Index(strings.ToLower(s[pos:]), strings.ToLower(substr))
	if idx == -1 {
		return -1
	}
	return pos + idx
}

// extractAstroFrontmatter pulls the region between the file's first two
// `---` fence lines, astro's convention for the component's TypeScript
// frontmatter block.
func extractAstroFrontmatter(src string) Result {
	out := make([]byte, len(src))
	copy(out, src)
	blank(out)

	first := findFenceLine(src, 0)
	if first == -1 {
		return Result{Source: string(out), TypeScript: true}
	}
	contentStart := first
	second := findFenceLine(src, first)
	if second == -1 {
		return Result{Source: string(out), TypeScript: true}
	}
	contentEnd := fenceLineStart(src, second)

	copy(out[contentStart:contentEnd], src[contentStart:contentEnd])
	return Result{Source: string(out), TypeScript: true}
}

// findFenceLine returns the byte offset just past the first line at or
// after pos whose trimmed content is exactly "---", or -1.
func findFenceLine(src string, pos int) int {
	for pos < len(src) {
		nl := strings.IndexByte(src[pos:], '\n')
		lineEnd := len(src)
		next := len(src)
		if nl != -1 {
			lineEnd = pos + nl
			next = lineEnd + 1
		}
		if strings.TrimSpace(src[pos:lineEnd]) == "---" {
			return next
		}
		pos = next
	}
	return -1
}

// fenceLineStart returns the byte offset of the start of the line that
// ends just before afterFence (i.e. the closing fence found by
// findFenceLine, walked back to where that line began).
func fenceLineStart(src string, afterFence int) int {
	// afterFence is one past the closing fence line's newline (or EOF);
	// the fence line itself starts at the previous newline + 1.
	lineStart := afterFence
	if lineStart > 0 && src[lineStart-1] == '\n' {
		lineStart--
	}
	idx := strings.LastIndexByte(src[:lineStart], '\n')
	return idx + 1
}
