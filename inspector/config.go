package inspector

// Config configures the inspector Model.
type Config struct {
	// Initial text.
	Text string

	Style  Style
	KeyMap KeyMap

	// OnChange is called after every update that changes the text.
	OnChange func(ChangeEvent)
}
