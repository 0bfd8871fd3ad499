// Package common provides shared types and utilities for UI features.
package common

// NavItem is an entry of the top navigation.
type NavItem struct {
	Path  string
	Label string
}

// Nav lists the dashboard views in display order.
var Nav = []NavItem{
	{Path: "/queries", Label: "Query Runner"},
	{Path: "/gallery", Label: "Gallery"},
	{Path: "/profile", Label: "Country Profile"},
}

// ShellData holds what every page needs to render its frame.
type ShellData struct {
	Title       string
	CurrentPath string
	IsDev       bool
}
