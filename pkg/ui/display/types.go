// Package display holds the view models handed to renderers
package display

// RuleRow is one filetype of the loaded rule table
type RuleRow struct {
	Filetype string `json:"filetype"`
	IsTest   string `json:"is_test"`
	Strip    string `json:"strip"`
}

// RuleListing is the result of the rules command
type RuleListing struct {
	Rules   []RuleRow `json:"rules"`
	Sources []string  `json:"sources"`
}
