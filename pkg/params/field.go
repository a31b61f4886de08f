package params

// Component declares a fixed URL component rendered under a literal key.
type Component struct {
	Key      string
	Required bool
}

// Variable declares a URL component whose key is derived from the schema's
// custom prefix and Index.
type Variable struct {
	Index int
}

// NamedComponent pairs a field name with its fixed component declaration.
type NamedComponent struct {
	Name string
	Component
}

// NamedVariable pairs a field name with its variable component declaration.
type NamedVariable struct {
	Name string
	Variable
}
