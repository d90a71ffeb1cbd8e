package pagenav

import "fmt"

// LinkTemplate is a URL pattern with exactly one integer placeholder, e.g.
// "/bacon/page/%d". It is validated once at construction so that building a
// link can never fail at render time.
type LinkTemplate string

// ParseLinkTemplate validates the template: it must contain exactly one %d
// verb and no other verbs. "%%" escapes a literal percent sign.
func ParseLinkTemplate(template string) (LinkTemplate, error) {
	placeholders := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 >= len(template) {
			return "", fmt.Errorf("%w: link template %q ends with a bare %%", ErrConfiguration, template)
		}

		switch template[i+1] {
		case '%':
			i++
		case 'd':
			placeholders++
			i++
		default:
			return "", fmt.Errorf("%w: link template %q contains unsupported verb %%%c", ErrConfiguration, template, template[i+1])
		}
	}

	if placeholders != 1 {
		return "", fmt.Errorf("%w: link template %q must contain exactly one %%d placeholder, found %d", ErrConfiguration, template, placeholders)
	}

	return LinkTemplate(template), nil
}

// Build substitutes the page number into the template.
func (t LinkTemplate) Build(page int) string {
	return fmt.Sprintf(string(t), page)
}
