package detector

import (
	"regexp"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/mcpscan/mcpscan/internal/models"
)

// language bundles the file globs and detection rules for one source
// language.
type language struct {
	name   string
	globs  []string
	detect func(content, relPath string) []models.Tool
}

// languages are checked in order: all Python files first, then TypeScript.
var languages = []language{
	{
		name:   "python",
		globs:  []string{"**/*.py"},
		detect: detectPythonTools,
	},
	{
		name:   "typescript",
		globs:  []string{"**/*.ts", "**/*.tsx"},
		detect: detectTypeScriptTools,
	},
}

// matches reports whether a repo-relative path belongs to the language.
func (l language) matches(rel string) bool {
	for _, glob := range l.globs {
		if ok, _ := doublestar.Match(glob, rel); ok {
			return true
		}
	}
	return false
}

// Python decorator shapes that mark a function as an MCP tool. Group 1 is the
// optional explicit name= argument, group 2 the function identifier.
var pythonToolPatterns = []*regexp.Regexp{
	// @mcp.tool() / @server.tool(), FastMCP and the official SDK
	regexp.MustCompile(`@(?:mcp|server)\.tool\(\s*(?:name=["']([^"']+)["'])?\s*\)\s*(?:async\s+)?def\s+(\w+)`),
	// bare @tool() decorator
	regexp.MustCompile(`@tool\(\s*(?:name=["']([^"']+)["'])?\s*\)\s*(?:async\s+)?def\s+(\w+)`),
}

// pythonDocstringPattern captures the docstring immediately following a
// function signature. Only the first line is used as the description.
var pythonDocstringPattern = regexp.MustCompile(`(?s)def\s+(\w+)\s*\([^)]*\)\s*(?:->.*?)?\s*:\s*"""([^"]+)"""`)

// detectPythonTools applies the Python rule set to one file's content.
func detectPythonTools(content, relPath string) []models.Tool {
	// Map function name -> first docstring line, for descriptions.
	docstrings := make(map[string]string)
	for _, m := range pythonDocstringPattern.FindAllStringSubmatch(content, -1) {
		docstrings[m[1]] = firstLine(m[2])
	}

	var found []positionedTool
	for _, pattern := range pythonToolPatterns {
		for _, idx := range pattern.FindAllStringSubmatchIndex(content, -1) {
			funcName := content[idx[4]:idx[5]]

			// Explicit name= wins over the function identifier.
			toolName := funcName
			if idx[2] >= 0 {
				toolName = content[idx[2]:idx[3]]
			}

			found = append(found, positionedTool{
				start: idx[0],
				tool: models.Tool{
					Name:        toolName,
					FilePath:    relPath,
					Description: docstrings[funcName],
					LineNumber:  lineNumber(content, idx[0]),
				},
			})
		}
	}

	return inFileOrder(found)
}

// TypeScript decorator and handler-registration shapes. Group 1 is the tool
// name in both.
var typescriptToolPatterns = []*regexp.Regexp{
	// @Tool({ ... }) decorator
	regexp.MustCompile(`@Tool\(\{[^}]*\}\)\s*(?:async\s+)?(?:function\s+)?(\w+)`),
	// server.setRequestHandler(ListToolsRequestSchema, ...) with a name: field
	regexp.MustCompile(`(?s)setRequestHandler\s*\(\s*ListToolsRequestSchema[^)]*\)\s*.*?name:\s*["']([^"']+)["']`),
}

// detectTypeScriptTools applies the TypeScript rule set to one file's content.
func detectTypeScriptTools(content, relPath string) []models.Tool {
	var found []positionedTool
	for _, pattern := range typescriptToolPatterns {
		for _, idx := range pattern.FindAllStringSubmatchIndex(content, -1) {
			toolName := content[idx[2]:idx[3]]

			found = append(found, positionedTool{
				start: idx[0],
				tool: models.Tool{
					Name:        toolName,
					FilePath:    relPath,
					Description: typescriptDescription(content, toolName),
					LineNumber:  lineNumber(content, idx[0]),
				},
			})
		}
	}

	return inFileOrder(found)
}

// typescriptDescription looks for a description: field inside the @Tool({...})
// invocation that declares the named tool.
func typescriptDescription(content, toolName string) string {
	pattern := regexp.MustCompile(
		`@Tool\(\{[^}]*description:\s*["']([^"']+)["'][^}]*\}\)\s*(?:async\s+)?(?:function\s+)?` +
			regexp.QuoteMeta(toolName))
	if m := pattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}

// positionedTool keeps a match's byte offset so per-file results can follow
// the linear position of matches regardless of which pattern produced them.
type positionedTool struct {
	start int
	tool  models.Tool
}

func inFileOrder(found []positionedTool) []models.Tool {
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].start < found[j].start
	})

	tools := make([]models.Tool, 0, len(found))
	for _, f := range found {
		tools = append(tools, f.tool)
	}
	return tools
}

// lineNumber converts a byte offset into a 1-indexed line number.
func lineNumber(content string, offset int) int {
	return 1 + strings.Count(content[:offset], "\n")
}

// firstLine trims a docstring and returns its first line.
func firstLine(docstring string) string {
	trimmed := strings.TrimSpace(docstring)
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
