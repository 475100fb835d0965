// Package views renders the organiser wizard markup as templ components.
//
// Components live in wizard.templ; run `go generate ./views` after editing it
// to refresh wizard_templ.go.
package views
