// Package prompts provides string templates with {variable} placeholders.
package prompts

import (
	"regexp"
	"strings"
)

// DefaultAgentPromptTmpl is the system prompt for the movie agent. The
// {tool_name} variable is the name of the similarity-search tool the model
// should call.
const DefaultAgentPromptTmpl = `You are a helpful movie expert. Use the {tool_name} tool to look up movies from the knowledge base before answering. Base your answers on the retrieved documents and say so when nothing relevant was found.`

// templateVarRegex matches {variable} placeholders in templates.
var templateVarRegex = regexp.MustCompile(`\{(\w+)\}`)

// GetTemplateVars extracts variable names from a template string.
func GetTemplateVars(template string) []string {
	matches := templateVarRegex.FindAllStringSubmatch(template, -1)
	vars := make([]string, 0, len(matches))
	seen := make(map[string]bool)
	for _, match := range matches {
		if len(match) > 1 && !seen[match[1]] {
			vars = append(vars, match[1])
			seen[match[1]] = true
		}
	}
	return vars
}

// FormatString formats a template string with the given variables.
func FormatString(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		placeholder := "{" + key + "}"
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// PromptTemplate is a string-based prompt template.
type PromptTemplate struct {
	// Template is the template string with {variable} placeholders.
	Template string
	// TemplateVars are the variable names extracted from the template.
	TemplateVars []string
	// PartialVars are pre-filled variables.
	PartialVars map[string]string
}

// NewPromptTemplate creates a new PromptTemplate.
func NewPromptTemplate(template string) *PromptTemplate {
	return &PromptTemplate{
		Template:     template,
		TemplateVars: GetTemplateVars(template),
		PartialVars:  make(map[string]string),
	}
}

// Format formats the prompt into a string. Provided variables take
// precedence over pre-filled ones.
func (pt *PromptTemplate) Format(vars map[string]string) string {
	allVars := make(map[string]string)
	for k, v := range pt.PartialVars {
		allVars[k] = v
	}
	for k, v := range vars {
		allVars[k] = v
	}
	return FormatString(pt.Template, allVars)
}

// PartialFormat creates a new template with some variables pre-filled.
func (pt *PromptTemplate) PartialFormat(vars map[string]string) *PromptTemplate {
	newPT := &PromptTemplate{
		Template:     pt.Template,
		TemplateVars: pt.TemplateVars,
		PartialVars:  make(map[string]string),
	}
	for k, v := range pt.PartialVars {
		newPT.PartialVars[k] = v
	}
	for k, v := range vars {
		newPT.PartialVars[k] = v
	}
	return newPT
}
