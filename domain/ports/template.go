package ports

// TemplateEngine renders a raw descriptor before it is parsed.
type TemplateEngine interface {
	// Render executes raw as a template against data.
	Render(raw []byte, data map[string]any) ([]byte, error)
}
