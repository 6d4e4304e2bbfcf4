package formparse

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

var _ output.FormParser = (*Parser)(nil)

// Parser extracts fillable fields and apply links from raw page HTML.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Input types that carry no user data.
var skippedInputTypes = map[string]bool{
	"hidden": true, "submit": true, "button": true, "reset": true, "image": true,
}

// ExtractFields walks the document and returns every detectable form input.
// Inputs outside <form> tags are included too; single-page apps often render
// fields without a form element.
func (p *Parser) ExtractFields(rawHTML string) ([]entity.FormField, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	labels := collectLabels(doc)

	var fields []entity.FormField
	positions := map[string]int{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "input", "textarea", "select":
				positions[n.Data]++
				if f, ok := buildField(n, labels, positions[n.Data]); ok {
					fields = append(fields, f)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return fields, nil
}

func buildField(n *html.Node, labels map[string]string, position int) (entity.FormField, bool) {
	attrs := attrMap(n)

	fieldType := n.Data
	if n.Data == "input" {
		fieldType = strings.ToLower(attrs["type"])
		if fieldType == "" {
			fieldType = "text"
		}
		if skippedInputTypes[fieldType] {
			return entity.FormField{}, false
		}
	}

	name := attrs["name"]
	if name == "" {
		name = attrs["id"]
	}
	if name == "" {
		return entity.FormField{}, false
	}

	field := entity.FormField{
		Name:        name,
		Type:        fieldType,
		Placeholder: attrs["placeholder"],
		Required:    hasAttr(n, "required"),
		Label:       findLabel(n, attrs, labels),
		Selector:    buildSelector(n, attrs, position),
	}

	if n.Data == "select" {
		field.Options = optionTexts(n)
	}
	return field, true
}

// findLabel tries, in order: a <label for=...>, an enclosing label, the
// aria-label, the title, and finally the placeholder.
func findLabel(n *html.Node, attrs map[string]string, labels map[string]string) string {
	if id := attrs["id"]; id != "" {
		if text, ok := labels[id]; ok {
			return text
		}
	}
	for parent := n.Parent; parent != nil; parent = parent.Parent {
		if parent.Type == html.ElementNode && parent.Data == "label" {
			return strings.TrimSpace(nodeText(parent))
		}
	}
	if aria := attrs["aria-label"]; aria != "" {
		return aria
	}
	if title := attrs["title"]; title != "" {
		return title
	}
	return attrs["placeholder"]
}

func buildSelector(n *html.Node, attrs map[string]string, position int) string {
	if id := attrs["id"]; id != "" {
		return "#" + id
	}
	if name := attrs["name"]; name != "" {
		return fmt.Sprintf(`%s[name="%s"]`, n.Data, name)
	}
	return fmt.Sprintf("%s:nth-of-type(%d)", n.Data, position)
}

// FindApplyLink looks for an application link by anchor text, href, and class
// heuristics. Returns an XPath selector usable by the browser adapter.
func (p *Parser) FindApplyLink(rawHTML string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", false
	}

	linkTexts := []string{
		"apply now", "apply here", "submit application", "start application",
		"begin application", "apply for funding", "apply for investment",
		"submit your application", "apply today", "apply",
	}

	var found string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && (n.Data == "a" || n.Data == "button") {
			attrs := attrMap(n)
			text := strings.ToLower(strings.TrimSpace(nodeText(n)))
			href := strings.ToLower(attrs["href"])
			class := strings.ToLower(attrs["class"])

			matched := false
			for _, lt := range linkTexts {
				if strings.Contains(text, lt) {
					matched = true
					break
				}
			}
			if !matched && n.Data == "a" &&
				(strings.Contains(href, "apply") || strings.Contains(href, "application")) {
				matched = true
			}
			if !matched && strings.Contains(class, "apply") {
				matched = true
			}

			if matched {
				found = applySelector(n, attrs)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found, found != ""
}

func applySelector(n *html.Node, attrs map[string]string) string {
	if id := attrs["id"]; id != "" {
		return fmt.Sprintf(`//%s[@id="%s"]`, n.Data, id)
	}
	if n.Data == "a" && attrs["href"] != "" {
		return fmt.Sprintf(`//a[@href="%s"]`, attrs["href"])
	}
	text := strings.TrimSpace(nodeText(n))
	return fmt.Sprintf(`//%s[contains(., "%s")]`, n.Data, text)
}

// collectLabels maps control ids to the text of their <label for=...>.
func collectLabels(doc *html.Node) map[string]string {
	labels := make(map[string]string)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "label" {
			if forAttr := attrMap(n)["for"]; forAttr != "" {
				labels[forAttr] = strings.TrimSpace(nodeText(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return labels
}

func optionTexts(selectNode *html.Node) []string {
	var options []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "option" {
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				options = append(options, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(selectNode)
	return options
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attrMap(n *html.Node) map[string]string {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}
	return attrs
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return true
		}
	}
	return false
}
