package ports

// Prompter asks the user to confirm an action.
type Prompter interface {
	// IsInteractive reports whether a user can answer prompts.
	IsInteractive() bool

	// Confirm shows question and reports whether the user agreed.
	Confirm(question string) (bool, error)
}
