package feature

// IconRef is an opaque handle to a scalable vector graphic. Resolution happens
// through an assets.Resolver supplied by the host; descriptors never hold the
// graphic itself.
type IconRef string

// Markup is an inline HTML fragment (bold, links, code...). Values are passed
// through SanitizeMarkup before they reach a renderer.
type Markup string

// Descriptor describes a single feature tile.
type Descriptor struct {
	Title       string  `json:"title" yaml:"title"`
	Icon        IconRef `json:"icon" yaml:"icon"`
	Description Markup  `json:"description" yaml:"description"`
}
