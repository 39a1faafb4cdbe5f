package model

// Report holds every candidate discovered in one source file.
type Report struct {
	Source     Source               `yaml:"source"`
	Type       MutationType         `yaml:"type"`
	Candidates []MutationIdentifier `yaml:"candidates"`
}
