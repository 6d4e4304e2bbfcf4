package scoring

import (
	"fmt"
	"strings"

	"venture-agent/internal/domain/entity"
)

// CompareTwoTools renders a short head-to-head summary of two tools covering
// pricing, openness, API access, and breadth of language support.
func CompareTwoTools(a, b entity.ToolRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s vs %s\n", a.Name, b.Name)
	fmt.Fprintf(&sb, "%s\n\n", strings.Repeat("=", len(a.Name)+len(b.Name)+4))

	fmt.Fprintf(&sb, "Pricing: %s is %s, %s is %s\n",
		a.Name, orUnknown(string(a.PricingModel)),
		b.Name, orUnknown(string(b.PricingModel)))

	fmt.Fprintf(&sb, "Open source: %s %s, %s %s\n",
		a.Name, triStateWord(a.IsOpenSource),
		b.Name, triStateWord(b.IsOpenSource))

	fmt.Fprintf(&sb, "API access: %s %s, %s %s\n",
		a.Name, triStateWord(a.APIAvailable),
		b.Name, triStateWord(b.APIAvailable))

	fmt.Fprintf(&sb, "Language support: %s covers %d languages, %s covers %d\n",
		a.Name, len(a.LanguageSupport), b.Name, len(b.LanguageSupport))

	switch {
	case len(a.LanguageSupport) > len(b.LanguageSupport):
		fmt.Fprintf(&sb, "\n%s has the broader language coverage.\n", a.Name)
	case len(b.LanguageSupport) > len(a.LanguageSupport):
		fmt.Fprintf(&sb, "\n%s has the broader language coverage.\n", b.Name)
	default:
		sb.WriteString("\nBoth cover the same number of languages.\n")
	}

	return sb.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

func triStateWord(v *bool) string {
	switch {
	case v == nil:
		return "unknown"
	case *v:
		return "yes"
	default:
		return "no"
	}
}
