package search

// Source carries what every provider shares: its identity, its settings
// prefix and the gate deciding whether it may run. Concrete providers
// embed it.
type Source struct {
	ID           string
	Prefix       string
	DefaultLabel string
	Settings     Settings
	Availability Availability
}

// Identifier returns the content source key
func (s Source) Identifier() string {
	return s.ID
}

// DisplayName reads <prefix>_label, falling back to DefaultLabel
func (s Source) DisplayName() string {
	return s.SettingString("label", s.DefaultLabel)
}

// Available reports whether the content source is installed
func (s Source) Available() bool {
	return s.Availability != nil && s.Availability.IsAvailable(s.ID)
}

// Enabled reads <prefix>_enabled, true by default
func (s Source) Enabled() bool {
	return s.SettingBool("enabled", true)
}

// Open is the gate checked before any query: the source must be
// installed and enabled, and the query must not be blank.
func (s Source) Open(query string) bool {
	return !IsBlank(query) && s.Available() && s.Enabled()
}

// SettingString reads <prefix>_<name>
func (s Source) SettingString(name, defaultValue string) string {
	if s.Settings == nil {
		return defaultValue
	}
	return s.Settings.GetSettingString(s.key(name), defaultValue)
}

// SettingBool reads <prefix>_<name>
func (s Source) SettingBool(name string, defaultValue bool) bool {
	if s.Settings == nil {
		return defaultValue
	}
	return s.Settings.GetSettingBool(s.key(name), defaultValue)
}

func (s Source) key(name string) string {
	return s.Prefix + "_" + name
}
