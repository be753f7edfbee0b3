package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Page template placeholders. They are replaced literally, without
// escaping.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrInvalidTemplate indicates a page template cannot hold page content.
var ErrInvalidTemplate = errors.New("invalid page template")

// ValidateTemplate checks that tmpl has somewhere to put the content.
func ValidateTemplate(tmpl string) error {
	if strings.TrimSpace(tmpl) == "" {
		return fmt.Errorf("%w: empty template", ErrInvalidTemplate)
	}
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return fmt.Errorf("%w: missing %s placeholder", ErrInvalidTemplate, ContentPlaceholder)
	}
	return nil
}

// FillTemplate substitutes every title and content placeholder in tmpl in
// a single pass. Placeholders inside the substituted title or content are
// left as written.
func FillTemplate(tmpl, title, content string) string {
	r := strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, content)
	return r.Replace(tmpl)
}
